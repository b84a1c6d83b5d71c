package session

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// newSeed returns a high-entropy seed, falling back to the clock if the
// system source fails.
func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]))
	if seed == 0 {
		seed = 1
	}
	return seed
}
