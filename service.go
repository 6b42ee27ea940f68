package resourceid

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/viant/resourceid/internal/charset"
	"github.com/viant/resourceid/internal/clock"
	"github.com/viant/resourceid/internal/random"
	"github.com/viant/resourceid/registry"
)

const (
	// suffixLength is the width of random suffixes; downstream naming depends on it.
	suffixLength = 8
	// newIDSeparator joins the truncated prefix and the suffix in NewID.
	newIDSeparator = "-"
	// timestampLength is len("-YYYYMMDD-HHMMSS-ffffff").
	timestampLength = 23
	timestampLayout = "20060102-150405"
)

// Service generates identifiers according to its Config. It is immutable
// after construction and safe for concurrent use.
type Service struct {
	config   *Config
	random   RandomSource
	now      func() time.Time
	registry *registry.Registry
	logger   *slog.Logger
}

// New creates a service with DefaultConfig.
func New(opts ...Option) *Service {
	s := &Service{
		config: DefaultConfig(),
		random: random.Default(),
		now:    clock.System,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromConfig creates a service with a validated copy of cfg. A nil cfg
// means DefaultConfig.
func NewFromConfig(cfg *Config, opts ...Option) (*Service, error) {
	s := New(opts...)
	if cfg == nil {
		return s, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	c := *cfg
	s.config = &c
	return s, nil
}

// Config returns a copy of the service configuration.
func (s *Service) Config() Config {
	return *s.config
}

// DatabaseID derives a database identifier matching [a-z][a-z0-9_]* from
// base. The result never ends in '_' and, when longer than one character,
// never ends in a digit.
func (s *Service) DatabaseID(base string) (string, error) {
	if base == "" {
		return "", fmt.Errorf("%w: base string cannot be empty", ErrInvalidArgument)
	}
	id := charset.Normalize(base, charset.Underscore)
	if !charset.HasContent(id) {
		return "", fmt.Errorf("%w: base string %q contains no letters or digits", ErrInvalidArgument, base)
	}
	b := []byte(charset.TrimTrailingSeparators(id))
	if !charset.IsLower(rune(b[0])) {
		b[0] = random.Letter(s.random)
	}
	if last := len(b) - 1; last > 0 && charset.IsDigit(rune(b[last])) {
		b[last] = random.Letter(s.random)
	}
	id = string(b)

	maxLength := s.config.Database.MaxLength
	if maxLength > 0 && len(id) > maxLength {
		shortened := s.suffixed(id, maxLength, charset.Underscore)
		s.logger.Debug("database id shortened", "base", base, "id", shortened, "maxLength", maxLength)
		id = shortened
	}
	return s.issue(id, func() string {
		return s.suffixed(id, maxLength, charset.Underscore)
	})
}

// InstanceID derives an instance identifier from base followed by a UTC
// timestamp suffix of the form -YYYYMMDD-HHMMSS-ffffff.
func (s *Service) InstanceID(base string) (string, error) {
	if base == "" {
		return "", fmt.Errorf("%w: base string cannot be empty", ErrInvalidArgument)
	}
	b := []byte(charset.TrimTrailingSeparators(charset.Normalize(base, charset.Hyphen)))
	if len(b) == 0 {
		b = []byte{random.Letter(s.random)}
	}
	if !charset.IsLower(rune(b[0])) {
		b[0] = random.Letter(s.random)
	}
	prefix := string(b)

	budget := 0
	if maxLength := s.config.Instance.MaxLength; maxLength > 0 {
		budget = maxLength - timestampLength
		if len(prefix) > budget {
			prefix = charset.TrimTrailingSeparators(prefix[:budget])
			s.logger.Debug("instance id shortened", "base", base, "prefix", prefix, "maxLength", maxLength)
		}
	}
	return s.issue(prefix+s.timestamp(), func() string {
		return s.suffixed(prefix, budget, charset.Hyphen) + s.timestamp()
	})
}

// NewID returns baseID unchanged when it fits in targetLength runes;
// otherwise it truncates baseID and appends '-' plus 8 random alphanumeric
// runes so the result is exactly targetLength runes long.
func (s *Service) NewID(baseID string, targetLength int) (string, error) {
	if targetLength <= suffixLength {
		return "", fmt.Errorf("%w: target length must be greater than %d, got %d", ErrInvalidArgument, suffixLength, targetLength)
	}
	runes := []rune(baseID)
	if len(runes) <= targetLength {
		return baseID, nil
	}
	prefix := string(runes[:targetLength-suffixLength-len(newIDSeparator)])
	return prefix + newIDSeparator + random.String(s.random, random.Alphanumeric, suffixLength), nil
}

// suffixed appends separator and a random lowercase suffix to id, truncating
// id first so the result fits in maxLength (0 means unlimited).
func (s *Service) suffixed(id string, maxLength int, separator rune) string {
	prefix := id
	if maxLength > 0 && len(id)+1+suffixLength > maxLength {
		prefix = charset.TrimTrailingSeparators(id[:maxLength-1-suffixLength])
	}
	return prefix + string(separator) + random.String(s.random, random.Lowercase, suffixLength)
}

func (s *Service) timestamp() string {
	t := s.now().UTC()
	return fmt.Sprintf("-%s-%06d", t.Format(timestampLayout), t.Nanosecond()/int(time.Microsecond))
}

// issue reserves id in the registry, drawing alternatives from next on
// collision.
func (s *Service) issue(id string, next func() string) (string, error) {
	if s.registry == nil {
		return id, nil
	}
	for attempt := 1; ; attempt++ {
		if s.registry.Reserve(id) {
			return id, nil
		}
		if attempt >= s.config.Registry.MaxAttempts {
			return "", fmt.Errorf("%w: %q already issued in run %s after %d attempts", ErrDuplicate, id, s.registry.RunID(), attempt)
		}
		s.logger.Debug("id already issued, disambiguating", "id", id, "runID", s.registry.RunID())
		id = next()
	}
}
