// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "github.com/sirupsen/logrus"

// Build turns a Formula into an unreduced BDD, allocated in a fresh Store
// built for order. When order is nil, one is derived from f.Variables(), in
// first-occurrence order, matching §4.1's "used as the default variable
// ordering when none is supplied."
//
// It is UnknownVariable for f to mention a variable absent from order: the
// original reference implementation built against whatever order it was
// given without validating it, which this package tightens into an
// explicit, checked precondition rather than a silent wrong answer.
//
// The result satisfies invariants (1) terminals unique, (3) non-redundant
// and (4) uniqueness, since every node is created through Store.Make, which
// enforces all three; Reduce leaves such a BDD unchanged.
func Build(f Formula, order *Order, opts ...Option) (*BDD, error) {
	if f == nil {
		return nil, newError(MalformedFormula, "build: nil formula")
	}
	if order == nil {
		var err error
		order, err = NewOrder(f.Variables())
		if err != nil {
			return nil, err
		}
	}
	for _, v := range f.Variables() {
		if _, ok := order.Index(v); !ok {
			return nil, newError(UnknownVariable, "build: formula variable %q absent from variable order", v)
		}
	}

	store := NewStore(order, opts...)
	b := &builder{store: store, order: order, log: store.log}
	root, err := b.build(0, f, make(Interpretation, order.Len()))
	if err != nil {
		return nil, err
	}
	return &BDD{Root: root, Store: store}, nil
}

// builder carries the state threaded through one Build recursion: the
// target Store and Order, plus a logger for Debug-level level-by-level
// tracing, the generalization of the teacher's _LOGLEVEL-gated log.Printf
// calls in hkernel.go.
type builder struct {
	store *Store
	order *Order
	log   *logrus.Logger
}

// build implements §4.3's recursive Shannon decomposition: at level i it
// fixes the truth value of order.At(i) in both directions and recurses to
// i+1, bottoming out at a terminal once every variable has been assigned.
func (b *builder) build(i int, f Formula, I Interpretation) (Handle, error) {
	if i >= b.order.Len() {
		v, err := f.Eval(I)
		if err != nil {
			return False, err
		}
		return b.store.Terminal(v), nil
	}

	v := b.order.At(i)
	if b.log.IsLevelEnabled(logrus.DebugLevel) {
		b.log.WithFields(logrus.Fields{"level": i, "variable": v}).Debug("build: expanding")
	}

	I[v] = false
	lo, err := b.build(i+1, f, I)
	if err != nil {
		return False, err
	}
	I[v] = true
	hi, err := b.build(i+1, f, I)
	if err != nil {
		return False, err
	}
	delete(I, v)

	return b.store.Make(int32(i), lo, hi), nil
}
