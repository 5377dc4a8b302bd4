package ports

import "time"

// Clock supplies the current time to the accrual math. Production code uses
// SystemClock; tests substitute a controllable implementation.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock implementation of Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
