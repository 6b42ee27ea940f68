package random

import (
	"math/rand/v2"
	"strings"
	"sync"
)

const (
	// Lowercase lists the lowercase ASCII letters.
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	// Alphanumeric lists mixed-case ASCII letters and digits.
	Alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Source returns a pseudo-random int in [0, n). Implementations must be safe
// for concurrent use.
type Source interface {
	IntN(n int) int
}

type global struct{}

func (global) IntN(n int) int { return rand.IntN(n) }

// Default returns the process-wide generator, safe for concurrent use.
func Default() Source { return global{} }

// Seeded is a deterministic Source.
type Seeded struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// IntN returns the next pseudo-random int in [0, n).
func (s *Seeded) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

// NewSeeded returns a Source producing the same sequence for the same seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rnd: rand.New(rand.NewPCG(seed, seed))}
}

// String returns n runes drawn from alphabet.
func String(src Source, alphabet string, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[src.IntN(len(alphabet))])
	}
	return b.String()
}

// Letter returns a lowercase ASCII letter.
func Letter(src Source) byte {
	return Lowercase[src.IntN(len(Lowercase))]
}
