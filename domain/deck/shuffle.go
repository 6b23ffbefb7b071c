package deck

import (
	"encoding/binary"
	"math/rand"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// NewRand returns a process local generator seeded from the suite random stream.
func NewRand() (*rand.Rand, error) {
	seed, err := suite.Scalar().Pick(suite.RandomStream()).MarshalBinary()
	if err != nil {
		return nil, err
	}
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(seed)))), nil
}

// Shuffle performs iterations random transpositions: each one swaps the
// cards at two distinct uniformly drawn positions. This only approximates
// a uniform permutation. Decks with fewer than two cards are left as is.
func (d *Deck) Shuffle(r *rand.Rand, iterations int) {
	size := len(d.cards)
	if size < 2 {
		return
	}
	for i := 0; i < iterations; i++ {
		a := r.Intn(size)
		b := r.Intn(size)
		for a == b {
			b = r.Intn(size)
		}
		d.cards[a], d.cards[b] = d.cards[b], d.cards[a]
	}
}
