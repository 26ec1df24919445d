package pong

import "math/rand"

// Sampler draws launch angles. It is the engine's only source of randomness.
type Sampler interface {
	// Uniform returns a value in [min, max).
	Uniform(min, max float64) float64
}

// SamplerFunc adapts a plain function to Sampler.
type SamplerFunc func(min, max float64) float64

// Uniform calls f(min, max).
func (f SamplerFunc) Uniform(min, max float64) float64 {
	return f(min, max)
}

// FixedSampler always returns v, whatever range is asked for.
func FixedSampler(v float64) Sampler {
	return SamplerFunc(func(_, _ float64) float64 { return v })
}

// RandSampler is a seeded uniform sampler backed by math/rand.
type RandSampler struct {
	rng *rand.Rand
}

// NewRandSampler creates a sampler whose sequence is fixed by seed.
func NewRandSampler(seed int64) *RandSampler {
	return &RandSampler{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns a value in [min, max).
func (s *RandSampler) Uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}
