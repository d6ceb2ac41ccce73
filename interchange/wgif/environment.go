package wgif

import "github.com/pkg/errors"

// Environment resolves the variables of weight expressions
type Environment interface {
	Get(v string) (float64, error)
}

// Constants is the environment of a document
type Constants map[string]float64

func (c Constants) Get(v string) (float64, error) {
	val, ok := c[v]
	if !ok {
		return 0, errors.Errorf("undefined constant %q", v)
	}
	return val, nil
}

// wrappedEnvironment adapts an Environment to govaluate's parameters
type wrappedEnvironment struct {
	Inner Environment
}

func (wenv wrappedEnvironment) Get(name string) (interface{}, error) {
	if wenv.Inner == nil {
		return nil, errors.Errorf("call to undefined constant %q as there is no environment defined", name)
	}
	return wenv.Inner.Get(name)
}
