// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "github.com/sirupsen/logrus"

// Operator tags a binary Boolean connective recognized by Apply. It plays
// the role of the teacher's Operator enum (operator.go), trimmed to the
// seven connectives named by the query surface. Unary NOT is not a member:
// it is implemented in terms of XOR (see Store.Not), per §4.5.
type Operator int

const (
	AND Operator = iota
	OR
	XOR
	IMPLIES
	IFF
	NAND
	NOR
)

func (op Operator) String() string {
	switch op {
	case AND:
		return "AND"
	case OR:
		return "OR"
	case XOR:
		return "XOR"
	case IMPLIES:
		return "IMPLIES"
	case IFF:
		return "IFF"
	case NAND:
		return "NAND"
	case NOR:
		return "NOR"
	default:
		return "?"
	}
}

// terminal is the truth table for op, the generalization of the teacher's
// opres array (operator.go) to the spec's seven connectives. It is consulted
// only once both operands of an Apply recursion have reached a terminal.
func terminal(op Operator, a, b bool) bool {
	switch op {
	case AND:
		return a && b
	case OR:
		return a || b
	case XOR:
		return a != b
	case IMPLIES:
		return !a || b
	case IFF:
		return a == b
	case NAND:
		return !(a && b)
	case NOR:
		return !(a || b)
	default:
		return false
	}
}

func validOperator(op Operator) bool {
	return op >= AND && op <= NOR
}

// applyKey is the memoization key for one Apply recursion step, the
// generalization of the teacher's cache entry in cache.go (there keyed into
// a fixed hashed array; here a plain map key, per the Node Store's same
// simplification).
type applyKey struct {
	op          Operator
	left, right Handle
}

// Apply computes the BDD for op(f, g) over s, where f and g are Handles
// already living in s. It is the low-level, single-Store entry point;
// BinOp is the BDD-level wrapper that additionally checks
// OrderMismatch/StoreMismatch across distinct BDD values.
func (s *Store) Apply(op Operator, f, g Handle) (Handle, error) {
	if !validOperator(op) {
		return False, newError(InvalidOperator, "apply: operator %v not recognized", op)
	}
	cache := s.applyCache
	if cache == nil {
		cache = make(map[applyKey]Handle, s.cacheCapacity)
	}
	return s.apply(op, f, g, cache), nil
}

func (s *Store) apply(op Operator, f, g Handle, cache map[applyKey]Handle) Handle {
	if s.isTerminal(f) && s.isTerminal(g) {
		return s.Terminal(terminal(op, f == True, g == True))
	}
	key := applyKey{op: op, left: f, right: g}
	if h, ok := cache[key]; ok {
		if s.log.IsLevelEnabled(logrus.TraceLevel) {
			s.log.WithFields(logrus.Fields{"op": op, "left": f, "right": g, "handle": h}).
				Trace("apply cache hit")
		}
		return h
	}

	var level int32
	var lowF, highF, lowG, highG Handle
	switch {
	case s.isTerminal(f):
		level, lowF, highF, lowG, highG = s.level(g), f, f, s.low(g), s.high(g)
	case s.isTerminal(g):
		level, lowF, highF, lowG, highG = s.level(f), s.low(f), s.high(f), g, g
	default:
		// §4.5: "v = earliest variable among {var(f), var(g)} in the
		// variable order" — both f and g name a real variable here, so
		// Order.Earliest (§4.7) makes the call instead of comparing the
		// raw level ints directly.
		vf, vg := s.order.At(int(s.level(f))), s.order.At(int(s.level(g)))
		ev, _ := s.order.Earliest(vf, vg)
		idx, _ := s.order.Index(ev)
		level = int32(idx)
		switch {
		case vf == vg:
			lowF, highF, lowG, highG = s.low(f), s.high(f), s.low(g), s.high(g)
		case ev == vf:
			lowF, highF, lowG, highG = s.low(f), s.high(f), g, g
		default:
			lowF, highF, lowG, highG = f, f, s.low(g), s.high(g)
		}
	}

	low := s.apply(op, lowF, lowG, cache)
	high := s.apply(op, highF, highG, cache)
	h := s.Make(level, low, high)
	cache[key] = h
	return h
}

// Not computes the BDD for ¬f over s. It is implemented as f XOR ⊤ so it
// shares the same recursion and memoization as every other connective,
// rather than a separate top-down walk.
func (s *Store) Not(f Handle) Handle {
	h, _ := s.Apply(XOR, f, True)
	return h
}

// BinOp computes op(a, b) at the BDD level, checking that a and b share a
// Store (StoreMismatch) and, transitively, an Order (OrderMismatch) before
// delegating to Store.Apply.
func BinOp(op Operator, a, b *BDD) (*BDD, error) {
	if !sameContext(a, b) {
		if !a.Order().Equal(b.Order()) {
			return nil, newError(OrderMismatch, "apply: %v: operands have different variable orders", op)
		}
		return nil, newError(StoreMismatch, "apply: %v: operands belong to different stores", op)
	}
	root, err := a.Store.Apply(op, a.Root, b.Root)
	if err != nil {
		return nil, err
	}
	return &BDD{Root: root, Store: a.Store}, nil
}

// And computes a ∧ b.
func And(a, b *BDD) (*BDD, error) { return BinOp(AND, a, b) }

// Or computes a ∨ b.
func Or(a, b *BDD) (*BDD, error) { return BinOp(OR, a, b) }

// Xor computes a ⊕ b.
func Xor(a, b *BDD) (*BDD, error) { return BinOp(XOR, a, b) }

// ImpliesBDD computes a → b.
func ImpliesBDD(a, b *BDD) (*BDD, error) { return BinOp(IMPLIES, a, b) }

// IffBDD computes a ↔ b.
func IffBDD(a, b *BDD) (*BDD, error) { return BinOp(IFF, a, b) }

// Nand computes ¬(a ∧ b).
func Nand(a, b *BDD) (*BDD, error) { return BinOp(NAND, a, b) }

// Nor computes ¬(a ∨ b).
func Nor(a, b *BDD) (*BDD, error) { return BinOp(NOR, a, b) }

// NotBDD computes ¬a.
func NotBDD(a *BDD) *BDD {
	return &BDD{Root: a.Store.Not(a.Root), Store: a.Store}
}
