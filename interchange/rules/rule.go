// Package rules has shorthands to define grammars in Go code
package rules

import "github.com/aabizri/wgram"

// T is a terminal
func T(text string) wgram.Symbol {
	return wgram.Terminal(text)
}

// N is a non-terminal
func N(id string) wgram.Symbol {
	return wgram.NonTerminal(wgram.SymbolID(id))
}

// Classic rules all weigh the same
func Classic(on string, rewrite ...wgram.Symbol) wgram.Rule {
	return Weighted(on, 1, rewrite...)
}

// Weighted is a rule of the given weight
func Weighted(on string, weight uint64, rewrite ...wgram.Symbol) wgram.Rule {
	return wgram.Rule{
		LHS:    wgram.SymbolID(on),
		Weight: weight,
		RHS:    wgram.Form(rewrite),
	}
}

// An Alternative is one of the right-hand sides of a Choice
type Alternative struct {
	Weight  uint64
	Rewrite []wgram.Symbol
}

// A is an alternative
func A(weight uint64, rewrite ...wgram.Symbol) Alternative {
	return Alternative{weight, rewrite}
}

// Choice returns one weighted rule per alternative, in the given order
func Choice(on string, alternatives ...Alternative) []wgram.Rule {
	out := make([]wgram.Rule, len(alternatives))
	for i, a := range alternatives {
		out[i] = Weighted(on, a.Weight, a.Rewrite...)
	}
	return out
}

// Words is a choice between equally weighted terminals, each its own rule
func Words(on string, words ...string) []wgram.Rule {
	out := make([]wgram.Rule, len(words))
	for i, w := range words {
		out[i] = Classic(on, T(w))
	}
	return out
}

// Concat flattens rule sets, keeping their order
func Concat(sets ...[]wgram.Rule) []wgram.Rule {
	var out []wgram.Rule
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}
