// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildReduced(t *testing.T, f Formula, order *Order) *BDD {
	b, err := Build(f, order)
	require.NoError(t, err)
	_, err = Reduce(b)
	require.NoError(t, err)
	return b
}

func mustEquivalent(t *testing.T, a, b *BDD) bool {
	eq, err := Equivalent(a, b)
	require.NoError(t, err)
	return eq
}

func TestApplyInvalidOperator(t *testing.T) {
	s := newTestStore(t, "p")
	_, err := s.Apply(Operator(99), True, False)
	assert.ErrorIs(t, err, ErrInvalidOperator)
}

func TestBinOpStoreMismatch(t *testing.T) {
	order, err := NewOrder([]Variable{"p"})
	require.NoError(t, err)
	sa, sb := NewStore(order), NewStore(order)
	a := &BDD{Root: True, Store: sa}
	b := &BDD{Root: True, Store: sb}
	_, err = And(a, b)
	assert.ErrorIs(t, err, ErrStoreMismatch)
}

func TestBinOpOrderMismatch(t *testing.T) {
	oa, err := NewOrder([]Variable{"p", "q"})
	require.NoError(t, err)
	ob, err := NewOrder([]Variable{"q", "p"})
	require.NoError(t, err)
	a := &BDD{Root: True, Store: NewStore(oa)}
	b := &BDD{Root: True, Store: NewStore(ob)}
	_, err = And(a, b)
	assert.ErrorIs(t, err, ErrOrderMismatch)
}

func TestApplyScenario2(t *testing.T) {
	p, q, r := mustVar(t, "p"), mustVar(t, "q"), mustVar(t, "r")
	pq, err := NewAnd(p, q)
	require.NoError(t, err)
	pr, err := NewAnd(p, r)
	require.NoError(t, err)
	lhs, err := NewOr(pq, pr)
	require.NoError(t, err)

	qr, err := NewOr(q, r)
	require.NoError(t, err)
	rhs, err := NewAnd(p, qr)
	require.NoError(t, err)

	order, err := NewOrder([]Variable{"p", "q", "r"})
	require.NoError(t, err)
	a := buildReduced(t, lhs, order)
	b := buildReduced(t, rhs, order)
	assert.True(t, mustEquivalent(t, a, b))
}

func TestApplyScenario3Tautology(t *testing.T) {
	p, q := mustVar(t, "p"), mustVar(t, "q")
	pImpliesQ, err := NewImplies(p, q)
	require.NoError(t, err)
	notP, err := NewNot(p)
	require.NoError(t, err)
	notPOrQ, err := NewOr(notP, q)
	require.NoError(t, err)
	lhs, err := NewIff(pImpliesQ, notPOrQ)
	require.NoError(t, err)

	order, err := NewOrder([]Variable{"p", "q"})
	require.NoError(t, err)
	a := buildReduced(t, lhs, order)
	b := buildReduced(t, Const{Value: true}, order)
	assert.True(t, mustEquivalent(t, a, b))
}

func TestBooleanAlgebraLaws(t *testing.T) {
	order, err := NewOrder([]Variable{"a", "b", "c"})
	require.NoError(t, err)
	store := NewStore(order)

	av, _ := NewVar("a")
	bv, _ := NewVar("b")
	cv, _ := NewVar("c")
	a := buildInto(t, store, order, av)
	b := buildInto(t, store, order, bv)
	c := buildInto(t, store, order, cv)

	t.Run("commutative-and", func(t *testing.T) {
		ab, err := And(a, b)
		require.NoError(t, err)
		ba, err := And(b, a)
		require.NoError(t, err)
		assert.True(t, mustEquivalent(t, ab, ba))
	})

	t.Run("associative-or", func(t *testing.T) {
		ab, err := Or(a, b)
		require.NoError(t, err)
		abc1, err := Or(ab, c)
		require.NoError(t, err)
		bc, err := Or(b, c)
		require.NoError(t, err)
		abc2, err := Or(a, bc)
		require.NoError(t, err)
		assert.True(t, mustEquivalent(t, abc1, abc2))
	})

	t.Run("distributive", func(t *testing.T) {
		bc, err := Or(b, c)
		require.NoError(t, err)
		lhs, err := And(a, bc)
		require.NoError(t, err)
		ab, err := And(a, b)
		require.NoError(t, err)
		ac, err := And(a, c)
		require.NoError(t, err)
		rhs, err := Or(ab, ac)
		require.NoError(t, err)
		assert.True(t, mustEquivalent(t, lhs, rhs))
	})

	t.Run("de-morgan", func(t *testing.T) {
		ab, err := And(a, b)
		require.NoError(t, err)
		lhs := NotBDD(ab)
		na := NotBDD(a)
		nb := NotBDD(b)
		rhs, err := Or(na, nb)
		require.NoError(t, err)
		assert.True(t, mustEquivalent(t, lhs, rhs))
	})

	t.Run("double-negation", func(t *testing.T) {
		nna := NotBDD(NotBDD(a))
		assert.True(t, mustEquivalent(t, nna, a))
	})

	t.Run("absorption", func(t *testing.T) {
		ab, err := And(a, b)
		require.NoError(t, err)
		lhs, err := Or(a, ab)
		require.NoError(t, err)
		assert.True(t, mustEquivalent(t, lhs, a))
	})
}

// buildInto builds f against an already-allocated store/order, the shape
// needed to combine several BDDs through Apply (which requires a shared
// store), rather than Build's usual one-BDD-per-call convenience path.
func buildInto(t *testing.T, store *Store, order *Order, f Formula) *BDD {
	b := &builder{store: store, order: order, log: store.log}
	root, err := b.build(0, f, make(Interpretation, order.Len()))
	require.NoError(t, err)
	return &BDD{Root: root, Store: store}
}
