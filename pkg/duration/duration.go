package duration

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/exactsi/si-go/pkg/dimension"
	"github.com/exactsi/si-go/pkg/exact"
	"github.com/exactsi/si-go/pkg/prefix"
	"github.com/exactsi/si-go/pkg/si"
	"github.com/exactsi/si-go/pkg/units"
)

// ErrOverflow is returned when a quantity does not fit in a time.Duration.
var ErrOverflow = errors.New("duration overflow")

// Time is any quantity of time.
type Time = si.Quantity[dimension.Time, units.SecondUnit]

// From returns d as an exact number of nanoseconds.
func From(d time.Duration) units.Nanosecond {
	return si.From[units.Nanosecond](int64(d))
}

// To returns q as a time.Duration.
func To(q Time) (time.Duration, error) {
	ns := si.Scale[prefix.Nano](q).Value()
	if !ns.IsInt() {
		return 0, fmt.Errorf("%s is not a whole number of nanoseconds: %w", ns, exact.ErrInexact)
	}
	n := ns.Num()
	if !n.IsInt64() {
		return 0, fmt.Errorf("%s ns: %w", n, ErrOverflow)
	}
	return time.Duration(n.Int64()), nil
}

// Truncate returns q as a time.Duration, dropping any fraction of a
// nanosecond. It still fails on overflow.
func Truncate(q Time) (time.Duration, error) {
	ns := si.Scale[prefix.Nano](q).Value()
	n := new(big.Int).Quo(ns.Num(), ns.Denom())
	if !n.IsInt64() {
		return 0, fmt.Errorf("%s ns: %w", n, ErrOverflow)
	}
	return time.Duration(n.Int64()), nil
}
