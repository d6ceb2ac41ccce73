package wgram

import "github.com/pkg/errors"

var (
	// ErrNoMatchingRule is returned when a non-terminal reached during expansion has no rule
	ErrNoMatchingRule = errors.New("no matching rule")

	// ErrInvalidSeed is returned when the seed is the stream's fixed point
	ErrInvalidSeed = errors.New("invalid seed")

	// ErrInvalidWeight is returned when building a grammar with a zero-weighted rule
	ErrInvalidWeight = errors.New("invalid rule weight")

	// ErrInvalidRule is returned when building a grammar with a rule lacking a left-hand side
	ErrInvalidRule = errors.New("invalid rule")

	// ErrPickOutOfRange is returned by WSelect when the pick isn't below the total weight
	ErrPickOutOfRange = errors.New("pick out of range")
)
