// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// Variable is an opaque identifier drawn from a string name space. It plays
// the role of a propositional atom.
type Variable string

// Order is a total order on a fixed set of Variables, used to decide which
// variable comes first when building, reducing, or combining BDDs. An Order
// is immutable once constructed.
type Order struct {
	vars  []Variable
	index map[Variable]int
}

// NewOrder builds an Order ranking vars in the sequence given. It returns a
// *Error of kind MalformedFormula if vars contains a duplicate, since a
// variable cannot have two distinct positions in a total order.
func NewOrder(vars []Variable) (*Order, error) {
	o := &Order{
		vars:  append([]Variable(nil), vars...),
		index: make(map[Variable]int, len(vars)),
	}
	for i, v := range o.vars {
		if _, dup := o.index[v]; dup {
			return nil, newError(MalformedFormula, "duplicate variable %q in variable order", v)
		}
		o.index[v] = i
	}
	return o, nil
}

// Len returns the number of variables in the order.
func (o *Order) Len() int {
	return len(o.vars)
}

// At returns the variable ranked at position i.
func (o *Order) At(i int) Variable {
	return o.vars[i]
}

// Index returns the position of v in the order, and false if v is not part
// of it.
func (o *Order) Index(v Variable) (int, bool) {
	i, ok := o.index[v]
	return i, ok
}

// Earliest returns whichever of v1, v2 comes first in the order. Both
// variables must belong to the order.
func (o *Order) Earliest(v1, v2 Variable) (Variable, bool) {
	i1, ok1 := o.index[v1]
	i2, ok2 := o.index[v2]
	if !ok1 || !ok2 {
		return "", false
	}
	if i1 <= i2 {
		return v1, true
	}
	return v2, true
}

// Equal reports whether o and other rank the same variables in the same
// sequence. Two independently constructed Orders over identical sequences
// are interchangeable for the purposes of Apply.
func (o *Order) Equal(other *Order) bool {
	if o == other {
		return true
	}
	if o == nil || other == nil {
		return false
	}
	if len(o.vars) != len(other.vars) {
		return false
	}
	for i, v := range o.vars {
		if other.vars[i] != v {
			return false
		}
	}
	return true
}

// Variables returns the ordered sequence of variables, in rank order.
func (o *Order) Variables() []Variable {
	return append([]Variable(nil), o.vars...)
}
