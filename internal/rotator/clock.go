package rotator

import "time"

// Clock supplies the current instant. It is injected so rotated filenames
// are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real UTC wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
