package random

import (
	"math/rand"
	"sync"
	"time"
)

// Randomizer is the source of randomness for card draws, source selection,
// discard pile shuffles and auto-picks
type Randomizer interface {
	// Intn returns a number in [0, n)
	Intn(n int) int

	// Float64 returns a number in [0.0, 1.0)
	Float64() float64

	// Shuffle pseudo-randomizes the order of n elements using swap
	Shuffle(n int, swap func(i, j int))
}

// Config for the randomizer
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Random is a goroutine-safe Randomizer. Card draws fan out over several
// goroutines, and *rand.Rand is not safe for concurrent use.
type Random struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new randomizer
func New(cfg *Config) *Random {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Random{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a number in [0, n). n <= 0 yields 0.
func (r *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}

// Float64 returns a number in [0.0, 1.0)
func (r *Random) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Float64()
}

// Shuffle performs a uniform random permutation of n elements
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.random.Shuffle(n, swap)
}
