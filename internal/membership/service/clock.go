package service

import "time"

// nowFrom reads fn, or the wall clock when fn is nil. Times are UTC and
// truncated to microseconds so they survive a round trip through postgres.
func nowFrom(fn func() time.Time) time.Time {
	t := time.Now()
	if fn != nil {
		t = fn()
	}
	return t.UTC().Truncate(time.Microsecond)
}
