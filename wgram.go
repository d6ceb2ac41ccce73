// Package wgram generates text from a weighted context-free grammar.
//
// Starting from a single symbol, every non-terminal of the working form is
// rewritten in parallel by one of its rules, chosen by weight with a
// deterministic xorshift stream, until only terminals are left or the form
// grows past MaxFormSize.
package wgram

import (
	"sync"

	"github.com/pkg/errors"
)

// MaxFormSize bounds expansion: a form longer than this is no longer rewritten,
// even if non-terminals are left in it.
const MaxFormSize = 100

// Parameters of one expansion
type Parameters struct {
	Start   Symbol
	Grammar *Grammar
	Seed    uint64
}

// Result of an expansion
type Result struct {
	Form  Form
	State Stream

	// Number of full rewriting passes applied
	Passes int

	// Set when the size bound stopped expansion with non-terminals left in Form
	Truncated bool
}

// String renders the resulting form
func (r Result) String() string {
	return Render(r.Form)
}

// Expander runs the derivation of a single start symbol.
// It must not be shared between concurrent expansions, while its grammar can.
type Expander struct {
	Parameters Parameters

	passes int
	state  Stream
	form   Form

	mu sync.Mutex
}

// New prepares an expansion, the seed is checked when deriving
func New(parameters Parameters) *Expander {
	return &Expander{
		Parameters: parameters,
		state:      NewStream(parameters.Seed),
		form:       Form{parameters.Start},
	}
}

// replacements selects, for each symbol of the input, the form it is rewritten to,
// drawing once from the stream per non-terminal in left-to-right order.
// It returns the replacements, their total size and the resulting stream.
func replacements(input Form, g *Grammar, state Stream) ([]Form, int, Stream, error) {
	out := make([]Form, len(input))
	size := 0
	for i, sym := range input {
		rewritten, next, err := ExpandSymbol(sym, g, state)
		if err != nil {
			return nil, 0, state, err
		}
		out[i] = rewritten
		size += len(rewritten)
		state = next
	}
	return out, size, state, nil
}

// ExpandOneSentence rewrites every symbol of the form once, terminals
// included as themselves, and concatenates the results in order.
// The input form is left untouched.
func ExpandOneSentence(form Form, g *Grammar, state Stream) (Form, Stream, error) {
	// 1. Select the rules, sizing the output as we go
	rewrites, size, next, err := replacements(form, g, state)
	if err != nil {
		return nil, state, err
	}

	// 2. Rewrite into a single output
	output := make(Form, 0, size)
	for _, r := range rewrites {
		output = append(output, r...)
	}
	return output, next, nil
}

/*
Derivate runs one rewriting pass over the whole current form.

	1. Select a rule for each non-terminal, in order, consuming the stream once per selection
	2. Calculate the output size and allocate it
	3. Rewrite

On error the form and the stream are left as they were.
*/
func (e *Expander) Derivate() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.derivate()
}

func (e *Expander) derivate() error {
	if !e.state.Valid() {
		return errors.Wrapf(ErrInvalidSeed, "seed %d", e.Parameters.Seed)
	}

	output, next, err := ExpandOneSentence(e.form, e.Parameters.Grammar, e.state)
	if err != nil {
		return errors.Wrapf(err, "pass %d", e.passes+1)
	}

	e.form = output
	e.state = next
	e.passes++
	return nil
}

// Run derives until every symbol is terminal, or until the form outgrows MaxFormSize,
// in which case the form is returned as is and the result marked as truncated.
func (e *Expander) Run() (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.Valid() {
		return Result{}, errors.Wrapf(ErrInvalidSeed, "seed %d", e.Parameters.Seed)
	}

	truncated := false
	for !e.form.AllTerminal() {
		if len(e.form) > MaxFormSize {
			truncated = true
			break
		}

		if err := e.derivate(); err != nil {
			return Result{}, err
		}
	}

	return Result{
		Form:      append(Form(nil), e.form...),
		State:     e.state,
		Passes:    e.passes,
		Truncated: truncated,
	}, nil
}

// Export returns a copy of the current form
func (e *Expander) Export() Form {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append(Form(nil), e.form...)
}

// State returns the current stream state
func (e *Expander) State() Stream {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// Passes returns the number of passes applied so far
func (e *Expander) Passes() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.passes
}

// ExpandForm derives start to completion
func ExpandForm(start Symbol, g *Grammar, seed uint64) (Result, error) {
	return New(Parameters{
		Start:   start,
		Grammar: g,
		Seed:    seed,
	}).Run()
}

// Expand derives start to completion and renders the result
func Expand(start Symbol, g *Grammar, seed uint64) (string, error) {
	res, err := ExpandForm(start, g, seed)
	if err != nil {
		return "", err
	}
	return Render(res.Form), nil
}
