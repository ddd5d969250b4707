package engine

import "time"

// Clock supplies the current wall-clock instant. It is the only place
// this package reads real time; everything else takes the instant as an
// argument so results are reproducible in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
