package kube

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/exactsi/si-go/pkg/dimension"
	"github.com/exactsi/si-go/pkg/exact"
	"github.com/exactsi/si-go/pkg/si"
)

// ErrOutOfRange is returned for values beyond what a resource.Quantity holds.
var ErrOutOfRange = errors.New("value out of range for a resource quantity")

// minExponent is the finest scale a resource.Quantity keeps (nano).
const minExponent = -9

var maxMagnitude = decimal.NewFromInt(math.MaxInt64)

// ToExact returns the exact value of q.
func ToExact(q resource.Quantity) exact.Value {
	d := q.AsDec()
	return exact.Of(d.UnscaledBig()).Mul(exact.Pow10(-int(d.Scale())))
}

// FromExact returns v as a decimal SI resource.Quantity.
func FromExact(v exact.Value) (resource.Quantity, error) {
	d, err := v.Decimal()
	if err != nil {
		return resource.Quantity{}, fmt.Errorf("converting %s: %w", v, err)
	}
	if d.Exponent() < minExponent {
		return resource.Quantity{}, fmt.Errorf("converting %s: finer than 10^%d: %w", v, minExponent, exact.ErrInexact)
	}
	if d.Abs().GreaterThan(maxMagnitude) {
		return resource.Quantity{}, fmt.Errorf("converting %s: %w", v, ErrOutOfRange)
	}
	q, err := resource.ParseQuantity(d.String())
	if err != nil {
		return resource.Quantity{}, fmt.Errorf("converting %s: %w", v, err)
	}
	return q, nil
}

// FromQuantity returns the base-equivalent value of q as a resource.Quantity:
// 3/2 km becomes "1500".
func FromQuantity[D dimension.Dimension, U si.Def[D]](q si.Quantity[D, U]) (resource.Quantity, error) {
	return FromExact(si.BaseValue(q))
}
