// Package duration converts between time quantities and time.Duration.
//
// A time.Duration counts nanoseconds in an int64, so From is exact for every
// duration, while To fails for quantities that are not a whole number of
// nanoseconds or that overflow roughly 292 years:
//
//	d, err := duration.To(si.From[units.Millisecond](1500)) // 1.5s
//	ms := si.Scale[prefix.Milli](duration.From(90 * time.Second))
package duration
