// Package clock abstracts the wall clock so booking date rules can be
// exercised at a fixed instant in tests.
package clock

import "time"

// Clock supplies the current instant for date validation and timestamps.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock reports a frozen instant.
type MockClock struct {
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	return c.now
}
