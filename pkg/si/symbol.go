package si

import (
	"fmt"
	"strings"

	"github.com/exactsi/si-go/pkg/exact"
	"github.com/exactsi/si-go/pkg/prefix"
)

// resolve returns the exponent that symbol denotes relative to the base unit
// with the given short and long forms. Both "km" and "kilometer" resolve to 3
// against ("m", "meter").
func resolve(symbol, short, long string) (int, error) {
	if symbol == short || symbol == long {
		return 0, nil
	}
	if p, ok := strings.CutSuffix(symbol, long); ok && p != "" {
		info, ok := prefix.LookupName(p)
		if !ok {
			return 0, fmt.Errorf("%w %q in %q", ErrUnknownPrefix, p, symbol)
		}
		return info.Exponent, nil
	}
	if p, ok := strings.CutSuffix(symbol, short); ok && p != "" {
		info, ok := prefix.Lookup(p)
		if !ok {
			return 0, fmt.Errorf("%w %q in %q", ErrUnknownPrefix, p, symbol)
		}
		return info.Exponent, nil
	}
	return 0, fmt.Errorf("%w: %q is not a multiple of %s", ErrUnitMismatch, symbol, long)
}

// parseQuantity parses "<value> <symbol>" and returns the value expressed at
// 10^exp of the base unit.
func parseQuantity(text, short, long string, exp int) (exact.Value, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return exact.Value{}, fmt.Errorf("parsing quantity %q: %w", text, ErrMalformed)
	}
	v, err := exact.Parse(fields[0])
	if err != nil {
		return exact.Value{}, fmt.Errorf("parsing quantity %q: %w", text, err)
	}
	from, err := resolve(fields[1], short, long)
	if err != nil {
		return exact.Value{}, fmt.Errorf("parsing quantity %q: %w", text, err)
	}
	return rescale(v, from, exp), nil
}

// Parse parses "<value> <symbol>" into a quantity of type Q, converting from
// any prefix of Q's base unit:
//
//	km, err := si.Parse[units.Kilometer]("1500 m") // 3/2 km
func Parse[Q any, PQ interface {
	*Q
	UnmarshalText(text []byte) error
}](s string) (Q, error) {
	var q Q
	if err := PQ(&q).UnmarshalText([]byte(s)); err != nil {
		return q, err
	}
	return q, nil
}
