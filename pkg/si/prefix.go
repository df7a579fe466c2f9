package si

import (
	"fmt"

	"github.com/exactsi/si-go/pkg/dimension"
	"github.com/exactsi/si-go/pkg/exact"
)

// Prefix is a quantity of dimension D counted in multiples of 10^P.Exponent()
// of the base unit U. The stored value is the number of prefixed units: one
// kilometer stores 1, not 1000.
//
// The zero value is 0 of that unit. Prefix values are immutable and safe for
// concurrent use.
type Prefix[D dimension.Dimension, U Def[D], P Kind] struct {
	value exact.Value
}

func (Prefix[D, U, P]) withValue(v exact.Value) Prefix[D, U, P] {
	return Prefix[D, U, P]{value: v}
}

// Value returns the stored magnitude in prefixed units.
func (p Prefix[D, U, P]) Value() exact.Value {
	return p.value
}

// Exponent returns the power of ten of the prefix.
func (Prefix[D, U, P]) Exponent() int {
	var k P
	return k.Exponent()
}

// Factor returns 10^Exponent().
func (p Prefix[D, U, P]) Factor() exact.Value {
	return factor(p.Exponent())
}

// Shortform returns the prefixed symbol, e.g. "km".
func (Prefix[D, U, P]) Shortform() string {
	var k P
	var u U
	return k.Shortform() + u.Shortform()
}

// Longform returns the prefixed name, e.g. "kilometer".
func (Prefix[D, U, P]) Longform() string {
	var k P
	var u U
	return k.Longform() + u.Longform()
}

// Dimension returns the dimension tag of the base unit.
func (Prefix[D, U, P]) Dimension() D {
	var u U
	return u.Dimension()
}

// ToBase converts p to the base unit by multiplying with the factor.
func (p Prefix[D, U, P]) ToBase() Base[D, U] {
	return Base[D, U]{value: rescale(p.value, p.Exponent(), 0)}
}

// fromBase expresses a base-equivalent value in this prefix.
func (p Prefix[D, U, P]) fromBase(v exact.Value) Prefix[D, U, P] {
	return Prefix[D, U, P]{value: rescale(v, 0, p.Exponent())}
}

// Add returns p + q expressed in p's prefix.
func (p Prefix[D, U, P]) Add(q Quantity[D, U]) Prefix[D, U, P] {
	if same, ok := q.(Prefix[D, U, P]); ok {
		return Prefix[D, U, P]{value: p.value.Add(same.value)}
	}
	return p.fromBase(p.ToBase().value.Add(q.ToBase().value))
}

// Sub returns p - q expressed in p's prefix.
func (p Prefix[D, U, P]) Sub(q Quantity[D, U]) Prefix[D, U, P] {
	if same, ok := q.(Prefix[D, U, P]); ok {
		return Prefix[D, U, P]{value: p.value.Sub(same.value)}
	}
	return p.fromBase(p.ToBase().value.Sub(q.ToBase().value))
}

// Mul multiplies the stored values of p and o.
func (p Prefix[D, U, P]) Mul(o Prefix[D, U, P]) Prefix[D, U, P] {
	return Prefix[D, U, P]{value: p.value.Mul(o.value)}
}

// Quo divides the stored value of p by that of o.
func (p Prefix[D, U, P]) Quo(o Prefix[D, U, P]) (Prefix[D, U, P], error) {
	v, err := p.value.Quo(o.value)
	if err != nil {
		return Prefix[D, U, P]{}, fmt.Errorf("%s / %s: %w", p, o, err)
	}
	return Prefix[D, U, P]{value: v}, nil
}

// MulScalar returns p scaled by the dimensionless k.
func (p Prefix[D, U, P]) MulScalar(k exact.Value) Prefix[D, U, P] {
	return Prefix[D, U, P]{value: p.value.Mul(k)}
}

// QuoScalar returns p divided by the dimensionless k.
func (p Prefix[D, U, P]) QuoScalar(k exact.Value) (Prefix[D, U, P], error) {
	v, err := p.value.Quo(k)
	if err != nil {
		return Prefix[D, U, P]{}, fmt.Errorf("%s / %s: %w", p, k, err)
	}
	return Prefix[D, U, P]{value: v}, nil
}

// Neg returns -p.
func (p Prefix[D, U, P]) Neg() Prefix[D, U, P] {
	return Prefix[D, U, P]{value: p.value.Neg()}
}

// Abs returns |p|.
func (p Prefix[D, U, P]) Abs() Prefix[D, U, P] {
	return Prefix[D, U, P]{value: p.value.Abs()}
}

// Sign returns -1, 0 or +1.
func (p Prefix[D, U, P]) Sign() int {
	return p.value.Sign()
}

// IsZero reports whether p is 0.
func (p Prefix[D, U, P]) IsZero() bool {
	return p.value.IsZero()
}

// Equal reports whether p and q denote the same amount.
func (p Prefix[D, U, P]) Equal(q Quantity[D, U]) bool {
	return p.Cmp(q) == 0
}

// Cmp compares the amounts of p and q and returns -1, 0 or +1.
func (p Prefix[D, U, P]) Cmp(q Quantity[D, U]) int {
	if same, ok := q.(Prefix[D, U, P]); ok {
		return p.value.Cmp(same.value)
	}
	return p.ToBase().value.Cmp(q.ToBase().value)
}

// String returns the value followed by the prefixed symbol, e.g. "3/2 km".
func (p Prefix[D, U, P]) String() string {
	return p.value.String() + " " + p.Shortform()
}
