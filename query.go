// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "github.com/bits-and-blooms/bitset"

// Evaluate descends from root, at each internal node following high if the
// Interpretation assigns its variable true and low otherwise, returning the
// terminal's value. It is UndefinedVariable if I omits a variable the walk
// actually depends on.
func Evaluate(b *BDD, I Interpretation) (bool, error) {
	order := b.Order()
	h := b.Root
	for !b.Store.isTerminal(h) {
		v := order.At(int(b.Store.level(h)))
		bit, err := I.Get(v)
		if err != nil {
			return false, err
		}
		if bit {
			h = b.Store.high(h)
		} else {
			h = b.Store.low(h)
		}
	}
	return h == True, nil
}

// IsSatisfiable reports whether any interpretation makes b true: a DFS for
// a path reaching the ⊤ terminal. On a reduced BDD this is equivalent to,
// and no cheaper than, root != ⊥, since the DFS still needs to confirm a
// path exists; this implementation uses the DFS uniformly so it is correct
// for both reduced and unreduced BDDs.
func IsSatisfiable(b *BDD) bool {
	return reaches(b.Store, b.Root, True)
}

// IsValid reports whether every interpretation makes b true: no path may
// reach the ⊥ terminal.
func IsValid(b *BDD) bool {
	return !reaches(b.Store, b.Root, False)
}

func reaches(s *Store, h, target Handle) bool {
	visited := make(map[Handle]bool)
	var walk func(Handle) bool
	walk = func(h Handle) bool {
		if s.isTerminal(h) {
			return h == target
		}
		if visited[h] {
			return false
		}
		visited[h] = true
		return walk(s.low(h)) || walk(s.high(h))
	}
	return walk(h)
}

// CountNodes returns the size of the subgraph reachable from root,
// terminals included if reached.
func CountNodes(b *BDD) int {
	seen := make(map[Handle]bool)
	var walk func(Handle)
	walk = func(h Handle) {
		if seen[h] {
			return
		}
		seen[h] = true
		if !b.Store.isTerminal(h) {
			walk(b.Store.low(h))
			walk(b.Store.high(h))
		}
	}
	walk(b.Root)
	return len(seen)
}

// Support returns the set of variable positions (indices into b.Order())
// actually appearing in the subgraph reachable from root. It reuses the
// same DFS CountNodes walks, adding only an accumulator over levels rather
// than a new traversal primitive.
func Support(b *BDD) *bitset.BitSet {
	bs := bitset.New(uint(b.Order().Len()))
	seen := make(map[Handle]bool)
	var walk func(Handle)
	walk = func(h Handle) {
		if seen[h] || b.Store.isTerminal(h) {
			return
		}
		seen[h] = true
		bs.Set(uint(b.Store.level(h)))
		walk(b.Store.low(h))
		walk(b.Store.high(h))
	}
	walk(b.Root)
	return bs
}

// Equal is the cheap, same-store/order path of equivalence (§4.6): it
// errors rather than paying a cross-store rebuild. Use Equivalent when a
// and b may come from different Builds.
func Equal(a, b *BDD) (bool, error) {
	if !sameContext(a, b) {
		if !a.Order().Equal(b.Order()) {
			return false, newError(OrderMismatch, "equal: operands have different variable orders")
		}
		return false, newError(StoreMismatch, "equal: operands belong to different stores")
	}
	return a.Root == b.Root, nil
}

// Equivalent reports whether a and b encode the same Boolean function. When
// both share a store, this is root identity (O(1)).
//
// Otherwise, Equivalent rebuilds b against a's store and order — via
// copyInto, the same recursive Shannon decomposition Build uses, not a
// per-node relabeling — then checks IsValid on Apply(IFF, a, rebuilt). It
// does not error merely because a and b come from different stores or
// orders; it simply pays for the rebuild, except in the one case a rebuild
// cannot paper over: b's order contains a variable absent from a's order,
// which is UnknownVariable.
func Equivalent(a, b *BDD) (bool, error) {
	if sameContext(a, b) {
		return a.Root == b.Root, nil
	}
	rebuilt, err := copyInto(b, a.Store)
	if err != nil {
		return false, err
	}
	iff, err := a.Store.Apply(IFF, a.Root, rebuilt)
	if err != nil {
		return false, err
	}
	return IsValid(&BDD{Root: iff, Store: a.Store}), nil
}

// copyInto reconstructs b's Boolean function inside dst, via dst's own
// Shannon decomposition (one cofactor pair per dst-order variable,
// evaluated against b through Evaluate) rather than a per-node relabeling
// of b's existing graph. A relabel would keep b's original topology, which
// only respects invariant (2) for dst's order when the two orders rank
// variables in the same relative sequence; when they don't (e.g. a full
// reversal), a node nominally at a later dst level can end up with a child
// nominally at an earlier one. Rebuilding level by level against dst's own
// order, as Build does for a Formula, avoids that by construction.
func copyInto(b *BDD, dst *Store) (Handle, error) {
	dstOrder := dst.Order()
	for _, v := range b.Order().Variables() {
		if _, ok := dstOrder.Index(v); !ok {
			return False, newError(UnknownVariable, "equivalent: variable %q absent from target variable order", v)
		}
	}
	return rebuildAt(b, dst, 0, make(Interpretation, dstOrder.Len()))
}

func rebuildAt(b *BDD, dst *Store, i int, I Interpretation) (Handle, error) {
	order := dst.Order()
	if i >= order.Len() {
		v, err := Evaluate(b, I)
		if err != nil {
			return False, err
		}
		return dst.Terminal(v), nil
	}

	v := order.At(i)
	I[v] = false
	lo, err := rebuildAt(b, dst, i+1, I)
	if err != nil {
		return False, err
	}
	I[v] = true
	hi, err := rebuildAt(b, dst, i+1, I)
	if err != nil {
		return False, err
	}
	delete(I, v)

	return dst.Make(int32(i), lo, hi), nil
}
