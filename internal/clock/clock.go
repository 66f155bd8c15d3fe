// Package clock supplies the timestamp stamped on every report.
package clock

import "time"

// timestampLayout is the hour-minute format carried in the report's
// updated attribute. No seconds.
const timestampLayout = "2006-01-02 15-04"

// Clock yields the formatted local timestamp for a report.
type Clock interface {
	Now() string
}

// SystemClock reads the real local time.
type SystemClock struct{}

// NewSystemClock creates a SystemClock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

func (SystemClock) Now() string {
	return time.Now().Format(timestampLayout)
}

// FixedClock always reports the same instant, enabling byte-exact
// assertions on generated reports.
type FixedClock struct {
	at time.Time
}

// NewFixedClock creates a FixedClock pinned to the given instant.
func NewFixedClock(at time.Time) FixedClock {
	return FixedClock{at: at}
}

func (c FixedClock) Now() string {
	return c.at.Format(timestampLayout)
}
