package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local time. Day and week boundaries are defined by the
// user's wall clock, so local time is the canonical frame.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
