package clock

import "time"

// Func returns the current time. Inject a fixed Func in tests for determinism.
type Func func() time.Time

// System returns the wall clock in UTC.
func System() time.Time { return time.Now().UTC() }

// Fixed returns a Func that always reports t.
func Fixed(t time.Time) Func {
	return func() time.Time { return t }
}
