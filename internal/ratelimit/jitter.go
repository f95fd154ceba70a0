package ratelimit

import (
	"math/rand/v2"
	"time"
)

// Jitter draws human-looking pauses uniformly from [Min, Max].
type Jitter struct {
	Min, Max time.Duration
	rnd      *rand.Rand
}

func NewJitter(min, max time.Duration) *Jitter {
	return NewJitterWithSource(min, max, rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewJitterWithSource is NewJitter with a fixed source, for tests.
func NewJitterWithSource(min, max time.Duration, src rand.Source) *Jitter {
	if max < min {
		min, max = max, min
	}
	return &Jitter{Min: min, Max: max, rnd: rand.New(src)}
}

func (j *Jitter) Next() time.Duration {
	span := j.Max - j.Min
	if span <= 0 {
		return j.Min
	}
	return j.Min + time.Duration(j.rnd.Int64N(int64(span)+1))
}
