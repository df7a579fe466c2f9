// Package exact implements the arbitrary-precision rational numbers that every
// measurement in this module is built on.
//
// # Values
//
// A Value wraps a math/big.Rat that is never modified after construction.
// Every operation allocates a fresh result, so a Value can be copied, stored
// in maps, and shared between goroutines without synchronization. The zero
// Value is 0.
//
//	a := exact.Of(1000)
//	b := exact.MustParse("3/2")
//	c := a.Mul(b) // 1500
//
// # Promotion
//
// Of accepts any native integer width, *big.Int, *big.Rat or Value and
// returns the Value with exactly that magnitude. Integer promotion never
// loses information; uint64 values above math.MaxInt64 are handled.
//
// # Division
//
// Quo and Inv return ErrDivisionByZero instead of panicking the way
// big.Rat does. The result is never a sentinel number.
//
// # Decimal Interop
//
// FromDecimal and Value.Decimal convert to and from shopspring decimals.
// Decimal is exact and fails with ErrInexact when the rational has no
// terminating decimal expansion (1/3). Round gives a rounded decimal for
// display.
package exact
