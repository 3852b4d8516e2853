package rng

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source hands out apple positions. A zero seed picks one from the clock.
type Source struct {
	seed uint64
	r    *rand.Rand
}

func New(seed uint64) *Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Source{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

func (s *Source) Seed() uint64 {
	return s.seed
}

func (s *Source) RandomBelow(bound int) int {
	if bound <= 0 {
		return 0
	}
	return s.r.Intn(bound)
}
