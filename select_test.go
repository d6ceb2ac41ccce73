package wgram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWSelect(t *testing.T) {
	candidates := []Rule{
		{LHS: "S", Weight: 3},
		{LHS: "S", Weight: 1},
		{LHS: "S", Weight: 2},
	}
	require.Equal(t, uint64(6), WeightSum(candidates))

	want := []int{0, 0, 0, 1, 2, 2}
	for pick, w := range want {
		i, err := WSelect(candidates, uint64(pick))
		require.NoError(t, err)
		assert.Equal(t, w, i, "pick %d", pick)
	}

	_, err := WSelect(candidates, 6)
	assert.ErrorIs(t, err, ErrPickOutOfRange)

	_, err = WSelect(nil, 0)
	assert.ErrorIs(t, err, ErrPickOutOfRange)
}

func TestExpandSymbol(t *testing.T) {
	g := MustGrammar(
		Rule{LHS: "S", Weight: 3, RHS: Form{NonTerminal("A")}},
		Rule{LHS: "S", Weight: 1, RHS: Form{NonTerminal("B")}},
	)

	t.Run("terminal", func(t *testing.T) {
		out, state, err := ExpandSymbol(Terminal("t"), g, 12)
		require.NoError(t, err)
		assert.Equal(t, Form{Terminal("t")}, out)
		assert.Equal(t, Stream(12), state)
	})

	t.Run("weighted", func(t *testing.T) {
		want := []SymbolID{"A", "A", "A", "B"}
		for pick, w := range want {
			state := Stream(pick)
			out, next, err := ExpandSymbol(S, g, state)
			require.NoError(t, err)
			assert.Equal(t, Form{NonTerminal(w)}, out, "pick %d", pick)
			assert.Equal(t, state.Next(), next)
		}
	})

	t.Run("no matching rule", func(t *testing.T) {
		_, state, err := ExpandSymbol(NonTerminal("X"), g, 12)
		assert.ErrorIs(t, err, ErrNoMatchingRule)
		assert.Contains(t, err.Error(), `"X"`)
		assert.Equal(t, Stream(12), state)
	})
}

func TestExpandSymbol_RuleOrder(t *testing.T) {
	// Same distribution, different declaration order
	ab := MustGrammar(
		Rule{LHS: "S", Weight: 1, RHS: Form{Terminal("a")}},
		Rule{LHS: "S", Weight: 1, RHS: Form{Terminal("b")}},
	)
	ba := MustGrammar(
		Rule{LHS: "S", Weight: 1, RHS: Form{Terminal("b")}},
		Rule{LHS: "S", Weight: 1, RHS: Form{Terminal("a")}},
	)

	x, _, err := ExpandSymbol(S, ab, 2)
	require.NoError(t, err)
	y, _, err := ExpandSymbol(S, ba, 2)
	require.NoError(t, err)
	assert.NotEqual(t, x, y)
}
