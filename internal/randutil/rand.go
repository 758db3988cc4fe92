package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// Stream labels for the independent generators a single hand consumes.
// Deriving them from one seed keeps the hand reproducible while preventing
// the deck and the decision policies from sharing a sequence.
const (
	StreamDeck uint64 = iota
	StreamActions
	StreamChat
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	return Derive(seed, 0)
}

// Derive returns a *rand.Rand for the given seed and stream label. The same
// (seed, stream) pair always yields the same sequence; distinct streams from
// the same seed are uncorrelated.
func Derive(seed int64, stream uint64) *rand.Rand {
	u := uint64(seed) ^ mix(stream+goldenRatio64)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// ForSeat widens a stream label to one seat, so every seat at a table gets
// its own uncorrelated generator for the same concern.
func ForSeat(stream uint64, seat int) uint64 {
	return stream | uint64(seat+1)<<8
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
