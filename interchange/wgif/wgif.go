// Package wgif is the reference implementation for the Weighted Grammar Interchange Format.
//
// A WGIF stream is a sequence of YAML documents, each describing one expansion:
//
//	start: S
//	seed: 42
//	constants:
//	  common: 3
//	terminals:
//	  sp: " "
//	rules:
//	  - from: S
//	    to: [NP, sp, VP]
//	  - from: NP
//	    weight: common
//	    to: [cat]
//
// Identities listed in terminals are terminals rendering as their text, every other
// identity is a non-terminal. Weights are integers or expressions over the constants.
package wgif

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Format struct {
	Start     string             `yaml:"start"`
	Seed      uint64             `yaml:"seed"`
	Constants map[string]float64 `yaml:"constants"`

	// Terminal identity to text
	Terminals map[string]string `yaml:"terminals"`

	// Non-terminal identity to the text it renders as when left unexpanded
	Placeholders map[string]string `yaml:"placeholders"`

	Rules []Rule `yaml:"rules"`
}

type Rule struct {
	From   string     `yaml:"from"`
	Weight Expression `yaml:"weight"`
	To     []string   `yaml:"to"`
}

// Expression is a weight as written, either a number or an expression
type Expression string

func (e *Expression) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: weight must be a scalar", value.Line)
	}
	*e = Expression(value.Value)
	return nil
}

type Decoder struct {
	in          io.Reader
	yamlDecoder *yaml.Decoder
}

func NewDecoder(in io.Reader) *Decoder {
	yamlDecoder := yaml.NewDecoder(in)
	yamlDecoder.KnownFields(true)

	return &Decoder{
		in:          in,
		yamlDecoder: yamlDecoder,
	}
}

// Decode reads the next document, returning io.EOF once the stream is exhausted
func (dec *Decoder) Decode() (*Format, error) {
	format := &Format{}
	err := dec.yamlDecoder.Decode(format)
	if err == io.EOF {
		return nil, err
	} else if err != nil {
		return nil, errors.Wrap(err, "decoding wgif document")
	}
	return format, nil
}
