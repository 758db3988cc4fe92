// Package gameid derives stable record identifiers from hand seeds.
package gameid

import (
	"fmt"
	"strings"
)

// Crockford's base32 alphabet.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

const prefix = "game_"

// FromSeed returns the record identifier for a hand seed, e.g.
// "game_3f2a9c01". The same seed always maps to the same identifier, which
// keeps exported records byte-identical across reruns. The 40-bit payload is
// a mixed hash of the seed so adjacent seeds don't produce adjacent ids.
func FromSeed(seed int64) string {
	x := mix(uint64(seed))

	var b strings.Builder
	b.WriteString(prefix)
	for i := 0; i < 8; i++ {
		b.WriteByte(alphabet[x&0x1f])
		x >>= 5
	}
	return b.String()
}

// Validate checks that an identifier has the expected prefix and payload.
func Validate(id string) error {
	if !strings.HasPrefix(id, prefix) {
		return fmt.Errorf("game ID must start with %q, got %q", prefix, id)
	}
	payload := id[len(prefix):]
	if len(payload) != 8 {
		return fmt.Errorf("game ID payload must be 8 characters, got %d", len(payload))
	}
	for i, ch := range payload {
		if !strings.ContainsRune(alphabet, ch) {
			return fmt.Errorf("invalid character %c at position %d", ch, i)
		}
	}
	return nil
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
