package random

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_random.go github.com/KirkDiggler/minimposter/internal/random Source

// Source provides the randomness used for role shuffles, word picks and room codes
type Source interface {
	// Intn returns a uniform value in [0, n)
	Intn(n int) int

	// Shuffle permutes n elements with swap
	Shuffle(n int, swap func(i, j int))
}

// Config for the random source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Generator is a goroutine-safe math/rand source
type Generator struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new random generator
func New(cfg *Config) *Generator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a uniform value in [0, n); n < 1 yields 0
func (g *Generator) Intn(n int) int {
	if n < 1 {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.random.Intn(n)
}

// Shuffle is a Fisher-Yates permutation
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.random.Shuffle(n, swap)
}
