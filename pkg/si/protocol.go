package si

import (
	"github.com/exactsi/si-go/pkg/dimension"
	"github.com/exactsi/si-go/pkg/exact"
)

// New returns the quantity of type Q whose stored value is v.
// For a prefixed Q the value is taken as a number of prefixed units and is
// not scaled.
func New[Q constructor[Q]](v exact.Value) Q {
	var q Q
	return q.withValue(v)
}

// From is like New but promotes any integer, *big.Int, *big.Rat or
// exact.Value first.
func From[Q constructor[Q], T exact.Number](v T) Q {
	return New[Q](exact.Of(v))
}

// FromBase converts a base quantity to prefix P by dividing its value by
// P's factor. FromBase[P](b).ToBase() always equals b.
func FromBase[P Kind, D dimension.Dimension, U Def[D]](b Base[D, U]) Prefix[D, U, P] {
	var k P
	return Prefix[D, U, P]{value: rescale(b.value, 0, k.Exponent())}
}

// Scale converts any quantity of base unit U to prefix P.
func Scale[P Kind, D dimension.Dimension, U Def[D]](q Quantity[D, U]) Prefix[D, U, P] {
	if same, ok := q.(Prefix[D, U, P]); ok {
		return same
	}
	return FromBase[P](q.ToBase())
}

// BaseValue returns the base-equivalent value of q.
func BaseValue[D dimension.Dimension, U Def[D]](q Quantity[D, U]) exact.Value {
	return q.ToBase().value
}

// Equal reports whether a and b denote the same amount, whatever their scales.
func Equal[D dimension.Dimension, U Def[D]](a, b Quantity[D, U]) bool {
	return Cmp(a, b) == 0
}

// Cmp compares the base-equivalent values of a and b.
func Cmp[D dimension.Dimension, U Def[D]](a, b Quantity[D, U]) int {
	return a.ToBase().value.Cmp(b.ToBase().value)
}

// Sum returns the exact total of qs in the base unit. The sum of no
// quantities is 0.
func Sum[D dimension.Dimension, U Def[D]](qs ...Quantity[D, U]) Base[D, U] {
	total := exact.Zero
	for _, q := range qs {
		total = total.Add(q.ToBase().value)
	}
	return Base[D, U]{value: total}
}
