package resourceid

import (
	"errors"
	"fmt"
)

// A shortened name keeps at least one base character before the separator
// and random suffix; instance names also keep the timestamp.
const (
	minDatabaseLength = 1 + 1 + suffixLength
	minInstanceLength = minDatabaseLength + timestampLength
)

// Config is a serialisable representation of the naming rules. Zero lengths
// disable the corresponding limit.
type Config struct {
	Database DatabaseConfig `json:"database" yaml:"database"`
	Instance InstanceConfig `json:"instance" yaml:"instance"`
	Registry RegistryConfig `json:"registry" yaml:"registry"`
}

type DatabaseConfig struct {
	MaxLength int `json:"maxLength" yaml:"maxLength"`
}

type InstanceConfig struct {
	MaxLength int `json:"maxLength" yaml:"maxLength"`
}

type RegistryConfig struct {
	MaxAttempts int `json:"maxAttempts" yaml:"maxAttempts"`
}

// DefaultConfig returns the Spanner naming limits. Callers may modify the
// returned struct before passing it to NewFromConfig.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{MaxLength: 30},
		Instance: InstanceConfig{MaxLength: 64},
		Registry: RegistryConfig{MaxAttempts: 5},
	}
}

// Validate returns an aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	if l := c.Database.MaxLength; l < 0 || (l > 0 && l < minDatabaseLength) {
		errs = append(errs, fmt.Errorf("database.maxLength must be 0 or >= %d, got %d", minDatabaseLength, l))
	}
	if l := c.Instance.MaxLength; l < 0 || (l > 0 && l < minInstanceLength) {
		errs = append(errs, fmt.Errorf("instance.maxLength must be 0 or >= %d, got %d", minInstanceLength, l))
	}
	if c.Registry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("registry.maxAttempts must be > 0, got %d", c.Registry.MaxAttempts))
	}
	return errors.Join(errs...)
}
