package rng

import (
	"github.com/willbeason/vermont/pkg/geometry"
	"log"
	"math/rand"
	"time"
)

// Source is the only way generators obtain randomness. Every generator takes
// one explicitly so that a fixed seed reproduces a picture exactly.
type Source interface {
	// Uniform returns a value in [min, max). Swapped bounds are allowed.
	Uniform(min, max float64) float64

	// Intn returns a value in [0, n). n <= 0 returns 0.
	Intn(n int) int
}

// Rand is a Source backed by math/rand.
type Rand struct {
	r *rand.Rand
}

func New(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

func (r *Rand) Uniform(min, max float64) float64 {
	return min + (max-min)*r.r.Float64()
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.Intn(n)
}

// Seed returns seed unless it is zero, in which case a clock-derived seed is
// chosen. The seed in use is logged so a picture can be regenerated.
func Seed(seed int64) int64 {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", seed)
	return seed
}

// Between draws uniformly from r.
func Between(src Source, r geometry.Range) float64 {
	return src.Uniform(r.Min, r.Max)
}

// IntBetween draws an integer from [min, max].
func IntBetween(src Source, min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + src.Intn(max-min+1)
}

// Chance is true with probability p.
func Chance(src Source, p float64) bool {
	return src.Uniform(0, 1) < p
}

// Bool is a fair coin flip.
func Bool(src Source) bool {
	return src.Intn(2) == 1
}

// Choice picks a uniformly random element. Repeated elements weight the draw,
// which is how weighted choices are written ([2, 2, 3, 3, 3, ...]).
func Choice[T any](src Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[src.Intn(len(items))]
}
