package wgram

import (
	"strings"

	"github.com/pkg/errors"
)

// SymbolID is the identity of a symbol. Rule lookup compares identities, never texts.
type SymbolID string

// Symbol is either a terminal, carrying literal text, or a non-terminal to be
// rewritten by the rules sharing its identity.
type Symbol struct {
	ID       SymbolID
	Terminal bool

	// For a terminal, the literal output. For a non-terminal, an optional
	// placeholder only used when rendering a truncated form.
	Text string
}

// Terminal returns a terminal symbol whose identity is its text
func Terminal(text string) Symbol {
	return Symbol{
		ID:       SymbolID(text),
		Terminal: true,
		Text:     text,
	}
}

// NonTerminal returns a non-terminal symbol with no placeholder text
func NonTerminal(id SymbolID) Symbol {
	return Symbol{ID: id}
}

// WithPlaceholder returns a copy of a non-terminal that renders as placeholder when left unexpanded
func (s Symbol) WithPlaceholder(placeholder string) Symbol {
	if !s.Terminal {
		s.Text = placeholder
	}
	return s
}

// Symbol stringifier, see Render
func (s Symbol) String() string {
	var b strings.Builder
	s.render(&b)
	return b.String()
}

func (s Symbol) render(b *strings.Builder) {
	switch {
	case s.Terminal, s.Text != "":
		b.WriteString(s.Text)
	default:
		b.WriteByte('<')
		b.WriteString(string(s.ID))
		b.WriteByte('>')
	}
}

// Form is a sentential form: the ordered symbols of a derivation in progress.
type Form []Symbol

// AllTerminal reports whether nothing is left to rewrite
func (f Form) AllTerminal() bool {
	for _, s := range f {
		if !s.Terminal {
			return false
		}
	}
	return true
}

// NonTerminals counts the symbols still to be rewritten
func (f Form) NonTerminals() int {
	n := 0
	for _, s := range f {
		if !s.Terminal {
			n++
		}
	}
	return n
}

func (f Form) String() string {
	return Render(f)
}

// A Rule rewrites its left-hand side into its right-hand side. Its weight is
// relative to the other rules sharing the same left-hand side.
type Rule struct {
	LHS    SymbolID
	Weight uint64
	RHS    Form
}

// Grammar is an ordered, read-only collection of rules.
// It may be shared by any number of concurrent expansions.
type Grammar struct {
	rules []Rule

	// Rules by left-hand side, each list in declaration order
	byLHS map[SymbolID][]Rule
}

// NewGrammar checks and indexes the rules, keeping their declaration order
func NewGrammar(rules ...Rule) (*Grammar, error) {
	g := &Grammar{
		rules: make([]Rule, len(rules)),
		byLHS: make(map[SymbolID][]Rule),
	}
	totals := make(map[SymbolID]uint64)

	for i, r := range rules {
		if r.LHS == "" {
			return nil, errors.Wrapf(ErrInvalidRule, "rule %d has an empty left-hand side", i)
		}
		if r.Weight == 0 {
			return nil, errors.Wrapf(ErrInvalidWeight, "rule %d (%s)", i, r.LHS)
		}
		if totals[r.LHS]+r.Weight < totals[r.LHS] {
			return nil, errors.Wrapf(ErrInvalidWeight, "rule %d overflows the total weight of %s", i, r.LHS)
		}
		totals[r.LHS] += r.Weight

		// Own the right-hand side, so that the caller can't mutate the grammar afterwards
		r.RHS = append(Form(nil), r.RHS...)

		g.rules[i] = r
		g.byLHS[r.LHS] = append(g.byLHS[r.LHS], r)
	}

	return g, nil
}

// MustGrammar is like NewGrammar but panics on error. Meant for grammars defined in code.
func MustGrammar(rules ...Rule) *Grammar {
	g, err := NewGrammar(rules...)
	if err != nil {
		panic(err)
	}
	return g
}

// MatchingRules returns the rules rewriting id, in declaration order.
// The returned slice is shared and must not be modified.
func (g *Grammar) MatchingRules(id SymbolID) []Rule {
	return g.byLHS[id]
}

// Rules returns a copy of every rule, in declaration order
func (g *Grammar) Rules() []Rule {
	return append([]Rule(nil), g.rules...)
}

// Len is the number of rules
func (g *Grammar) Len() int {
	return len(g.rules)
}

// Validate walks every symbol reachable from start and fails with ErrNoMatchingRule
// on the first non-terminal no rule rewrites. Expansion would fail on it too, but
// only for the seeds that happen to reach it.
func (g *Grammar) Validate(start Symbol) error {
	if start.Terminal {
		return nil
	}

	seen := map[SymbolID]bool{start.ID: true}
	queue := []SymbolID{start.ID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		matching := g.MatchingRules(id)
		if len(matching) == 0 {
			return errors.Wrapf(ErrNoMatchingRule, "symbol %q is reachable from %q", id, start.ID)
		}

		for _, r := range matching {
			for _, s := range r.RHS {
				if s.Terminal || seen[s.ID] {
					continue
				}
				seen[s.ID] = true
				queue = append(queue, s.ID)
			}
		}
	}
	return nil
}
