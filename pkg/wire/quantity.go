package wire

import (
	"errors"
	"math/big"
)

// CBOR map keys for quantity records.
const (
	KeyNumerator   = 1
	KeyDenominator = 2
	KeySymbol      = 3
)

// Quantity record errors.
var (
	ErrMissingNumerator = errors.New("missing numerator")
	ErrBadDenominator   = errors.New("denominator must be positive")
	ErrMissingSymbol    = errors.New("missing unit symbol")
)

// Quantity is the wire form of an exact quantity.
//
// CBOR encoding:
//
//	{
//	  1: numerator,    // int or bignum
//	  2: denominator,  // int or bignum, > 0
//	  3: symbol        // text
//	}
type Quantity struct {
	Numerator   *big.Int `cbor:"1,keyasint"`
	Denominator *big.Int `cbor:"2,keyasint"`
	Symbol      string   `cbor:"3,keyasint"`
}

// NewQuantity builds a record for the rational r expressed in symbol.
func NewQuantity(r *big.Rat, symbol string) *Quantity {
	return &Quantity{
		Numerator:   new(big.Int).Set(r.Num()),
		Denominator: new(big.Int).Set(r.Denom()),
		Symbol:      symbol,
	}
}

// Validate checks if the record is well formed.
func (q *Quantity) Validate() error {
	if q.Numerator == nil {
		return ErrMissingNumerator
	}
	if q.Denominator == nil || q.Denominator.Sign() <= 0 {
		return ErrBadDenominator
	}
	if q.Symbol == "" {
		return ErrMissingSymbol
	}
	return nil
}

// Rat returns the magnitude as a big.Rat. The record must be valid.
func (q *Quantity) Rat() *big.Rat {
	return new(big.Rat).SetFrac(q.Numerator, q.Denominator)
}
