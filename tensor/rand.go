package tensor

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source supplies one-sample draws for the randomized initializers.
//
// Sources are injected at construction rather than taken from a global
// generator, so construction with the same seed is reproducible and
// concurrent construction does not race.
type Source interface {
	// Normal draws one sample from the standard normal distribution
	// (mean 0, variance 1).
	Normal() float64

	// Uniform draws one sample uniformly from [0, 1).
	Uniform() float64
}

// NewSource returns a seedable Source backed by gonum's distuv
// distributions. The same seed always yields the same sample stream.
func NewSource(seed uint64) Source {
	src := rand.NewSource(seed)
	return &distSource{
		normal:  distuv.Normal{Mu: 0, Sigma: 1, Src: src},
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: src},
	}
}

type distSource struct {
	normal  distuv.Normal
	uniform distuv.Uniform
}

func (s *distSource) Normal() float64  { return s.normal.Rand() }
func (s *distSource) Uniform() float64 { return s.uniform.Rand() }
