// Package uid generates identifiers for variables and blocks: 20
// characters drawn from a fixed soup alphabet, safe to embed in project
// XML attributes and JSON keys.
package uid

import "math/rand/v2"

const soup = "!#%()*+,-./:;=?@[]^_`{|}~" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const idLength = 20

// New mints an identifier from the shared randomness source.
func New() string {
	return NewWithRand(nil)
}

// NewWithRand mints an identifier from rng, or the shared source when rng
// is nil. Injecting the source makes ids reproducible in tests.
func NewWithRand(rng *rand.Rand) string {
	id := make([]byte, idLength)
	for i := range id {
		id[i] = soup[intN(rng, len(soup))]
	}
	return string(id)
}

func intN(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.IntN(n)
	}
	return rand.IntN(n)
}
