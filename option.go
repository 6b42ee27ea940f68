package resourceid

import (
	"log/slog"
	"time"

	"github.com/viant/resourceid/registry"
)

// Option customises a Service.
type Option func(s *Service)

// RandomSource returns a pseudo-random int in [0, n). Implementations must be
// safe for concurrent use.
type RandomSource interface {
	IntN(n int) int
}

// WithRandom sets the source of random letters and suffixes.
func WithRandom(src RandomSource) Option {
	return func(s *Service) {
		if src != nil {
			s.random = src
		}
	}
}

// WithClock sets the time source used for instance timestamp suffixes.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRegistry records every issued database and instance ID in reg and
// disambiguates collisions.
func WithRegistry(reg *registry.Registry) Option {
	return func(s *Service) { s.registry = reg }
}

// WithLogger sets the logger; by default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}
