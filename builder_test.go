// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pOrQandR builds the formula p ∨ (q ∧ r), the running example of scenario 1.
func pOrQandR(t *testing.T) Formula {
	p, q, r := mustVar(t, "p"), mustVar(t, "q"), mustVar(t, "r")
	qr, err := NewAnd(q, r)
	require.NoError(t, err)
	f, err := NewOr(p, qr)
	require.NoError(t, err)
	return f
}

func TestBuildDefaultOrder(t *testing.T) {
	f := pOrQandR(t)
	b, err := Build(f, nil)
	require.NoError(t, err)
	assert.Equal(t, []Variable{"p", "q", "r"}, b.Order().Variables())
}

func TestBuildUnknownVariable(t *testing.T) {
	f := pOrQandR(t)
	order, err := NewOrder([]Variable{"p", "q"}) // missing r
	require.NoError(t, err)
	_, err = Build(f, order)
	assert.ErrorIs(t, err, ErrUnknownVariable)
}

func TestBuildSoundness(t *testing.T) {
	f := pOrQandR(t)
	order, err := NewOrder([]Variable{"p", "q", "r"})
	require.NoError(t, err)
	b, err := Build(f, order)
	require.NoError(t, err)

	for _, I := range allInterpretations([]Variable{"p", "q", "r"}) {
		want, err := f.Eval(I)
		require.NoError(t, err)
		got, err := Evaluate(b, I)
		require.NoError(t, err)
		assert.Equal(t, want, got, "I = %v", I)
	}
}

func TestBuildConstantOnly(t *testing.T) {
	b, err := Build(Const{Value: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, True, b.Root)

	b, err = Build(Const{Value: false}, nil)
	require.NoError(t, err)
	assert.Equal(t, False, b.Root)
}

// allInterpretations enumerates every assignment of vars, for exhaustive
// cross-checks over small variable counts (spec scenario 6).
func allInterpretations(vars []Variable) []Interpretation {
	if len(vars) == 0 {
		return []Interpretation{{}}
	}
	rest := allInterpretations(vars[1:])
	out := make([]Interpretation, 0, 2*len(rest))
	for _, bit := range []bool{false, true} {
		for _, r := range rest {
			I := make(Interpretation, len(vars))
			for k, v := range r {
				I[k] = v
			}
			I[vars[0]] = bit
			out = append(out, I)
		}
	}
	return out
}
