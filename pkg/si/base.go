package si

import (
	"fmt"

	"github.com/exactsi/si-go/pkg/dimension"
	"github.com/exactsi/si-go/pkg/exact"
)

// Base is a quantity of dimension D in its base unit U.
// The zero value is 0 of that unit. Base values are immutable and safe for
// concurrent use.
type Base[D dimension.Dimension, U Def[D]] struct {
	value exact.Value
}

func (Base[D, U]) withValue(v exact.Value) Base[D, U] {
	return Base[D, U]{value: v}
}

// Value returns the stored magnitude in units of U.
func (b Base[D, U]) Value() exact.Value {
	return b.value
}

// Shortform returns the unit symbol, e.g. "m".
func (Base[D, U]) Shortform() string {
	var u U
	return u.Shortform()
}

// Longform returns the unit name, e.g. "meter".
func (Base[D, U]) Longform() string {
	var u U
	return u.Longform()
}

// Dimension returns the dimension tag.
func (Base[D, U]) Dimension() D {
	var u U
	return u.Dimension()
}

// Exponent is always 0 for a base unit.
func (Base[D, U]) Exponent() int {
	return 0
}

// Factor is always 1 for a base unit.
func (Base[D, U]) Factor() exact.Value {
	return exact.One
}

// ToBase returns b itself.
func (b Base[D, U]) ToBase() Base[D, U] {
	return b
}

// Add returns b + q in the base unit.
func (b Base[D, U]) Add(q Quantity[D, U]) Base[D, U] {
	return Base[D, U]{value: b.value.Add(q.ToBase().value)}
}

// Sub returns b - q in the base unit.
func (b Base[D, U]) Sub(q Quantity[D, U]) Base[D, U] {
	return Base[D, U]{value: b.value.Sub(q.ToBase().value)}
}

// Mul multiplies the stored values of b and o. The product keeps the unit of
// b; no squared unit is formed.
func (b Base[D, U]) Mul(o Base[D, U]) Base[D, U] {
	return Base[D, U]{value: b.value.Mul(o.value)}
}

// Quo divides the stored value of b by that of o.
func (b Base[D, U]) Quo(o Base[D, U]) (Base[D, U], error) {
	v, err := b.value.Quo(o.value)
	if err != nil {
		return Base[D, U]{}, fmt.Errorf("%s / %s: %w", b, o, err)
	}
	return Base[D, U]{value: v}, nil
}

// MulScalar returns b scaled by the dimensionless k.
func (b Base[D, U]) MulScalar(k exact.Value) Base[D, U] {
	return Base[D, U]{value: b.value.Mul(k)}
}

// QuoScalar returns b divided by the dimensionless k.
func (b Base[D, U]) QuoScalar(k exact.Value) (Base[D, U], error) {
	v, err := b.value.Quo(k)
	if err != nil {
		return Base[D, U]{}, fmt.Errorf("%s / %s: %w", b, k, err)
	}
	return Base[D, U]{value: v}, nil
}

// Neg returns -b.
func (b Base[D, U]) Neg() Base[D, U] {
	return Base[D, U]{value: b.value.Neg()}
}

// Abs returns |b|.
func (b Base[D, U]) Abs() Base[D, U] {
	return Base[D, U]{value: b.value.Abs()}
}

// Sign returns -1, 0 or +1.
func (b Base[D, U]) Sign() int {
	return b.value.Sign()
}

// IsZero reports whether b is 0.
func (b Base[D, U]) IsZero() bool {
	return b.value.IsZero()
}

// Equal reports whether b and q denote the same amount.
func (b Base[D, U]) Equal(q Quantity[D, U]) bool {
	return b.value.Equal(q.ToBase().value)
}

// Cmp compares the amounts of b and q and returns -1, 0 or +1.
func (b Base[D, U]) Cmp(q Quantity[D, U]) int {
	return b.value.Cmp(q.ToBase().value)
}

// String returns the value followed by the unit symbol, e.g. "3/2 m".
func (b Base[D, U]) String() string {
	return b.value.String() + " " + b.Shortform()
}
