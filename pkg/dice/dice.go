// Package dice deals the numbers for each round.
package dice

import (
	"errors"
	"math/rand/v2"
	"sync"
)

const (
	DefaultCount = 4
	DefaultFaces = 6
)

var (
	ErrInvalidCount = errors.New("dice count must be at least 1")
	ErrInvalidFaces = errors.New("dice must have at least 1 face")
)

// Dealer rolls count dice with faces faces each. A Dealer may be shared
// between goroutines.
type Dealer struct {
	mu    sync.Mutex
	rng   *rand.Rand
	count int
	faces uint32
}

// NewDealer returns a Dealer. With a non-nil seed the sequence of hands is
// reproducible; otherwise the generator is seeded randomly.
func NewDealer(count int, faces uint32, seed *uint64) (*Dealer, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if faces < 1 {
		return nil, ErrInvalidFaces
	}

	var src rand.Source
	if seed != nil {
		src = rand.NewPCG(*seed, *seed)
	} else {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return &Dealer{
		rng:   rand.New(src),
		count: count,
		faces: faces,
	}, nil
}

// Count returns the number of dice per hand.
func (d *Dealer) Count() int { return d.count }

// Faces returns the highest value a die can show.
func (d *Dealer) Faces() uint32 { return d.faces }

// Deal rolls a fresh hand; every value is in [1, Faces()].
func (d *Dealer) Deal() []uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	hand := make([]uint32, d.count)
	for i := range hand {
		hand[i] = d.rng.Uint32N(d.faces) + 1
	}
	return hand
}
