// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"

	"github.com/samber/lo"
)

// Interpretation maps Variables to truth values. It is the argument to
// Formula.Eval and to Evaluate.
type Interpretation map[Variable]bool

// Get returns the value assigned to v, or UndefinedVariable if I has no
// entry for v.
func (I Interpretation) Get(v Variable) (bool, error) {
	b, ok := I[v]
	if !ok {
		return false, newError(UndefinedVariable, "variable %q has no assignment in interpretation", v)
	}
	return b, nil
}

// Formula is a node of an immutable Boolean expression tree, over the
// canonical connective set Var, Const, Not, And, Or, Implies, Iff.
type Formula interface {
	// Eval computes the value of the formula under I. It returns
	// UndefinedVariable if I omits a variable the formula depends on.
	Eval(I Interpretation) (bool, error)
	// Variables returns the free variables of the formula, in the order
	// they are first encountered by a left-to-right pre-order traversal.
	Variables() []Variable
	String() string
}

// Var is a propositional atom.
type Var struct {
	Name Variable
}

// NewVar returns a Var. It is MalformedFormula for name to be empty.
func NewVar(name Variable) (Var, error) {
	if name == "" {
		return Var{}, newError(MalformedFormula, "variable with empty name")
	}
	return Var{Name: name}, nil
}

func (f Var) Eval(I Interpretation) (bool, error) { return I.Get(f.Name) }
func (f Var) Variables() []Variable                { return []Variable{f.Name} }
func (f Var) String() string                       { return string(f.Name) }

// Const is a Boolean constant, ⊥ or ⊤.
type Const struct {
	Value bool
}

func (f Const) Eval(Interpretation) (bool, error) { return f.Value, nil }
func (f Const) Variables() []Variable              { return nil }
func (f Const) String() string {
	if f.Value {
		return "⊤"
	}
	return "⊥"
}

// Not is logical negation, ¬f.
type Not struct {
	Operand Formula
}

// NewNot returns a Not. It is MalformedFormula for operand to be nil.
func NewNot(operand Formula) (Not, error) {
	if operand == nil {
		return Not{}, newError(MalformedFormula, "not: nil operand")
	}
	return Not{Operand: operand}, nil
}

func (f Not) Eval(I Interpretation) (bool, error) {
	v, err := f.Operand.Eval(I)
	if err != nil {
		return false, err
	}
	return !v, nil
}
func (f Not) Variables() []Variable { return f.Operand.Variables() }
func (f Not) String() string        { return fmt.Sprintf("¬%s", f.Operand) }

// binary is the shared shape of And, Or, Implies, Iff: two operands and a
// way to combine their values and their free-variable sets.
type binary struct {
	Left, Right Formula
}

func newBinary(kind string, left, right Formula) (binary, error) {
	if left == nil || right == nil {
		return binary{}, newError(MalformedFormula, "%s: nil operand", kind)
	}
	return binary{Left: left, Right: right}, nil
}

func (b binary) Variables() []Variable {
	return lo.Uniq(append(b.Left.Variables(), b.Right.Variables()...))
}

// AndFormula is logical conjunction, f ∧ g.
type AndFormula struct{ binary }

// NewAnd returns an AndFormula. It is MalformedFormula for either operand to
// be nil.
func NewAnd(left, right Formula) (AndFormula, error) {
	b, err := newBinary("and", left, right)
	return AndFormula{b}, err
}

func (f AndFormula) Eval(I Interpretation) (bool, error) {
	l, err := f.Left.Eval(I)
	if err != nil {
		return false, err
	}
	r, err := f.Right.Eval(I)
	if err != nil {
		return false, err
	}
	return l && r, nil
}
func (f AndFormula) String() string { return fmt.Sprintf("(%s ∧ %s)", f.Left, f.Right) }

// OrFormula is logical disjunction, f ∨ g.
type OrFormula struct{ binary }

// NewOr returns an OrFormula. It is MalformedFormula for either operand to
// be nil.
func NewOr(left, right Formula) (OrFormula, error) {
	b, err := newBinary("or", left, right)
	return OrFormula{b}, err
}

func (f OrFormula) Eval(I Interpretation) (bool, error) {
	l, err := f.Left.Eval(I)
	if err != nil {
		return false, err
	}
	r, err := f.Right.Eval(I)
	if err != nil {
		return false, err
	}
	return l || r, nil
}
func (f OrFormula) String() string { return fmt.Sprintf("(%s ∨ %s)", f.Left, f.Right) }

// Implies is material implication, f → g, equal to ¬f ∨ g.
type Implies struct{ binary }

// NewImplies returns an Implies. It is MalformedFormula for either operand
// to be nil.
func NewImplies(left, right Formula) (Implies, error) {
	b, err := newBinary("implies", left, right)
	return Implies{b}, err
}

func (f Implies) Eval(I Interpretation) (bool, error) {
	l, err := f.Left.Eval(I)
	if err != nil {
		return false, err
	}
	r, err := f.Right.Eval(I)
	if err != nil {
		return false, err
	}
	return !l || r, nil
}
func (f Implies) String() string { return fmt.Sprintf("(%s → %s)", f.Left, f.Right) }

// Iff is logical biconditional, f ↔ g, equal to the equality of their
// truth values.
type Iff struct{ binary }

// NewIff returns an Iff. It is MalformedFormula for either operand to be
// nil.
func NewIff(left, right Formula) (Iff, error) {
	b, err := newBinary("iff", left, right)
	return Iff{b}, err
}

func (f Iff) Eval(I Interpretation) (bool, error) {
	l, err := f.Left.Eval(I)
	if err != nil {
		return false, err
	}
	r, err := f.Right.Eval(I)
	if err != nil {
		return false, err
	}
	return l == r, nil
}
func (f Iff) String() string { return fmt.Sprintf("(%s ↔ %s)", f.Left, f.Right) }
