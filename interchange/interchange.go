// Package interchange imports grammars defined outside of Go code
package interchange

import "github.com/aabizri/wgram"

type Format interface {
	Import() (wgram.Parameters, error)
}
