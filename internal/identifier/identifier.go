// Package identifier produces the unique ids assigned to book records
// at creation time.
package identifier

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/google/uuid"
)

// New returns a 36-character version-4 UUID string. Ids come from the
// crypto-strong source; if that source is unavailable the pseudo-random
// fallback below still produces a well-formed v4 UUID. Generation never
// fails.
func New() string {
	id, err := uuid.NewRandom()
	if err != nil {
		log.Printf("crypto random source unavailable, using fallback id generator: %v", err)
		return fallback()
	}
	return id.String()
}

// fallback builds a v4-shaped UUID from math/rand. The version nibble is
// fixed to 4 and the variant nibble lands in {8, 9, a, b}.
func fallback() string {
	var b [16]byte
	for i := range b {
		b[i] = byte(rand.UintN(256))
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
