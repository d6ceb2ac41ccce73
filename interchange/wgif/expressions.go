package wgif

import (
	"math"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
	"github.com/pkg/errors"
)

// Largest weight an expression can produce exactly
const maxExactWeight = 1 << 53

type weightFunction func(env Environment) (uint64, error)

func parseWeight(asString string) (weightFunction, error) {
	asString = strings.TrimSpace(asString)

	// Unspecified weights make classic rules
	if asString == "" {
		return func(_ Environment) (uint64, error) {
			return 1, nil
		}, nil
	}

	// Check if possible to simplify if it just an integer
	if scalar, err := strconv.ParseUint(asString, 10, 64); err == nil {
		return func(_ Environment) (uint64, error) {
			return scalar, nil
		}, nil
	}

	evaluable, err := govaluate.NewEvaluableExpression(asString)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing weight expression %q", asString)
	}

	return func(env Environment) (uint64, error) {
		resAsInterface, err := evaluable.Eval(wrappedEnvironment{env})
		if err != nil {
			return 0, errors.Wrapf(err, "evaluating weight expression %q", asString)
		}

		resAsFloat, ok := resAsInterface.(float64)
		if !ok {
			return 0, errors.Errorf("weight expression %q is not numeric: %v", asString, resAsInterface)
		}
		if resAsFloat < 0 || resAsFloat > maxExactWeight || resAsFloat != math.Trunc(resAsFloat) {
			return 0, errors.Errorf("weight expression %q evaluates to %v, not a weight", asString, resAsFloat)
		}

		return uint64(resAsFloat), nil
	}, nil
}
