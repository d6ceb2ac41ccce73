package wgram

import "github.com/pkg/errors"

// WeightSum is the total weight of the candidates
func WeightSum(candidates []Rule) uint64 {
	var sum uint64
	for _, r := range candidates {
		sum += r.Weight
	}
	return sum
}

// WSelect returns the index of the candidate whose cumulative weight interval contains pick,
// that is the first k for which the weights of candidates[:k+1] add up to more than pick.
func WSelect(candidates []Rule, pick uint64) (int, error) {
	remainder := pick
	for i, r := range candidates {
		if remainder < r.Weight {
			return i, nil
		}
		remainder -= r.Weight
	}
	return 0, errors.Wrapf(ErrPickOutOfRange, "pick %d over total weight %d", pick, WeightSum(candidates))
}

// selectRule chooses the rule rewriting sym with the current stream state
func selectRule(sym Symbol, g *Grammar, state Stream) (Rule, error) {
	matching := g.MatchingRules(sym.ID)
	if len(matching) == 0 {
		return Rule{}, errors.Wrapf(ErrNoMatchingRule, "symbol %q", sym.ID)
	}

	i, err := WSelect(matching, state.Pick(WeightSum(matching)))
	if err != nil {
		return Rule{}, err
	}
	return matching[i], nil
}

// ExpandSymbol rewrites a single symbol.
// Terminals are returned as is and leave the stream untouched; a non-terminal
// is replaced by the right-hand side of the selected rule and advances the
// stream exactly once, whatever the number of alternatives.
// The returned form of a non-terminal is shared with the grammar and must not be modified.
func ExpandSymbol(sym Symbol, g *Grammar, state Stream) (Form, Stream, error) {
	if sym.Terminal {
		return Form{sym}, state, nil
	}

	r, err := selectRule(sym, g, state)
	if err != nil {
		return nil, state, err
	}
	return r.RHS, state.Next(), nil
}
