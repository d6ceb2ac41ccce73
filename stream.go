package wgram

// Xorshift shifts. Changing them changes every output for a given seed.
const (
	ShiftA = 13
	ShiftB = 7
	ShiftC = 17
)

// Stream is a deterministic xorshift pseudo-random stream. Its value is its whole state:
// copying a Stream duplicates its future, it doesn't fork it.
type Stream uint64

// NewStream seeds a stream. A zero seed is the transform's fixed point, see Valid.
func NewStream(seed uint64) Stream {
	return Stream(seed)
}

// Next returns the state following s
func (s Stream) Next() Stream {
	x := uint64(s)
	x ^= x << ShiftA
	x ^= x >> ShiftB
	x ^= x >> ShiftC
	return Stream(x)
}

// Valid reports whether the stream can ever leave its state
func (s Stream) Valid() bool {
	return s != 0
}

// Pick derives an index in [0, n) from the current state. n must not be zero.
func (s Stream) Pick(n uint64) uint64 {
	return uint64(s) % n
}
