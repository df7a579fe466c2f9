package exact

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	bigFive = big.NewInt(5)
	bigTen  = big.NewInt(10)
)

// FromDecimal returns the Value equal to d.
func FromDecimal(d decimal.Decimal) Value {
	return Value{r: d.Rat()}
}

// Decimal returns v as a decimal without rounding. It fails with ErrInexact
// when v has no terminating decimal expansion, i.e. when its denominator has
// a prime factor other than 2 or 5.
func (v Value) Decimal() (decimal.Decimal, error) {
	den := v.Denom()

	rem := new(big.Int).Set(den)
	twos := rem.TrailingZeroBits()
	rem.Rsh(rem, twos)

	var fives uint
	mod := new(big.Int)
	for {
		q, r := new(big.Int).QuoRem(rem, bigFive, mod)
		if r.Sign() != 0 {
			break
		}
		rem = q
		fives++
	}
	if rem.Cmp(big.NewInt(1)) != 0 {
		return decimal.Decimal{}, fmt.Errorf("decimal of %s: %w", v, ErrInexact)
	}

	// v = num/den = num*10^n/den * 10^-n with 10^n divisible by den.
	n := max(twos, fives)
	scaled := new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
	scaled.Mul(scaled, v.Num())
	scaled.Quo(scaled, den)
	return decimal.NewFromBigInt(scaled, -int32(n)), nil
}

// Round returns v rounded to places digits after the decimal point.
func (v Value) Round(places int32) decimal.Decimal {
	return decimal.NewFromBigRat(v.rat(), places)
}
