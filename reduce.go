// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "github.com/sirupsen/logrus"

// Statistics reports what a Reduce call changed, mirroring the original
// reference implementation's BDDReducer.get_statistics().
type Statistics struct {
	NodesRemoved int // redundant nodes (low == high) collapsed
	NodesMerged  int // isomorphic subgraphs identified and unified
}

// Reduce transforms b into canonical form in place (re-rooting b.Root).
// Every node of a Store is created through Store.Make, which already
// enforces invariants (1), (3) and (4), so on a BDD coming out of Build or
// Apply the pass finds nothing to collapse or merge and returns zero
// Statistics.
//
// This is Algorithm 5.3: a single bottom-up pass, expressed here as a
// memoized post-order walk rather than explicit per-level buckets, since
// Store.Make's unique table is already keyed by (level, low, high) and so
// plays the role of the per-level table without a separate one — a node
// can only collide with another node at the same level because level is
// part of the key. The underlying Store is never shrunk; old, now
// unreachable nodes remain allocated (§3 Lifecycles: no reclamation).
func Reduce(b *BDD) (Statistics, error) {
	if b == nil {
		return Statistics{}, newError(MalformedFormula, "reduce: nil bdd")
	}
	r := &reducer{store: b.Store, log: b.Store.log, canon: make(map[Handle]Handle)}
	root := r.reduce(b.Root)
	b.Root = root
	return r.stats, nil
}

type reducer struct {
	store *Store
	log   *logrus.Logger
	canon map[Handle]Handle
	stats Statistics
}

func (r *reducer) reduce(h Handle) Handle {
	if c, ok := r.canon[h]; ok {
		return c
	}
	if r.store.isTerminal(h) {
		r.canon[h] = h
		return h
	}

	lo := r.reduce(r.store.low(h))
	hi := r.reduce(r.store.high(h))

	var result Handle
	switch {
	case lo == hi:
		result = lo
		r.stats.NodesRemoved++
		if r.log.IsLevelEnabled(logrus.DebugLevel) {
			r.log.WithFields(logrus.Fields{"handle": h}).Debug("reduce: redundant node collapsed")
		}
	default:
		before := r.store.Size()
		result = r.store.Make(r.store.level(h), lo, hi)
		if r.store.Size() == before && result != h {
			r.stats.NodesMerged++
			if r.log.IsLevelEnabled(logrus.DebugLevel) {
				r.log.WithFields(logrus.Fields{"handle": h, "canonical": result}).Debug("reduce: isomorphic subgraph merged")
			}
		}
	}

	r.canon[h] = result
	return result
}
