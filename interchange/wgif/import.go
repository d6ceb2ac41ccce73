package wgif

import (
	"github.com/aabizri/wgram"
	"github.com/aabizri/wgram/interchange"
	"github.com/aabizri/wgram/interchange/rules"
	"github.com/pkg/errors"
)

var ensureInterfaceCompliance interchange.Format = &Format{}

// symbol resolves an identity into a terminal or a non-terminal
func (format *Format) symbol(id string) wgram.Symbol {
	if text, ok := format.Terminals[id]; ok {
		return wgram.Symbol{
			ID:       wgram.SymbolID(id),
			Terminal: true,
			Text:     text,
		}
	}
	return rules.N(id).WithPlaceholder(format.Placeholders[id])
}

func (format *Format) Import() (wgram.Parameters, error) {
	if format.Start == "" {
		return wgram.Parameters{}, errors.New("no start symbol")
	}

	env := Constants(format.Constants)

	builtRules := make([]wgram.Rule, len(format.Rules))
	for ri, definedRule := range format.Rules {
		if definedRule.From == "" {
			return wgram.Parameters{}, errors.Errorf("rule %d: no left-hand side", ri)
		}
		if _, ok := format.Terminals[definedRule.From]; ok {
			return wgram.Parameters{}, errors.Errorf("rule %d: terminal %q can't be rewritten", ri, definedRule.From)
		}

		f, err := parseWeight(string(definedRule.Weight))
		if err != nil {
			return wgram.Parameters{}, errors.Wrapf(err, "rule %d (%s)", ri, definedRule.From)
		}
		weight, err := f(env)
		if err != nil {
			return wgram.Parameters{}, errors.Wrapf(err, "rule %d (%s)", ri, definedRule.From)
		}

		rewrite := make([]wgram.Symbol, len(definedRule.To))
		for i, id := range definedRule.To {
			rewrite[i] = format.symbol(id)
		}

		builtRules[ri] = rules.Weighted(definedRule.From, weight, rewrite...)
	}

	grammar, err := wgram.NewGrammar(builtRules...)
	if err != nil {
		return wgram.Parameters{}, errors.Wrap(err, "building grammar")
	}

	return wgram.Parameters{
		Start:   format.symbol(format.Start),
		Grammar: grammar,
		Seed:    format.Seed,
	}, nil
}
