// Package si implements exact, type-checked arithmetic on SI quantities.
//
// # Quantity Types
//
// There are two generic quantity types:
//
//	Base[D, U]      a value in the base unit U of dimension D (meters)
//	Prefix[D, U, P] a value in U scaled by the prefix kind P (kilometers)
//
// D is a tag from package dimension, U is a zero-sized unit definition
// satisfying Def[D], and P is a zero-sized prefix kind satisfying Kind. The
// concrete combinations are declared as aliases in package units:
//
//	type Meter     = si.Base[dimension.Length, MeterUnit]
//	type Kilometer = si.Prefix[dimension.Length, MeterUnit, prefix.Kilo]
//
// A Def[D] constraint only admits definitions whose Dimension method returns
// D, so si.Base[dimension.Length, GramUnit] does not compile, and neither does
// adding a Gram to a Meter.
//
// # Construction
//
//	m  := si.From[units.Meter](1000)          // 1000 m
//	km := si.From[units.Kilometer](1)         // 1 km, the number is not scaled
//	k2 := si.FromBase[prefix.Kilo](m)         // 1 km, 1000 m divided by 10^3
//	mm := si.Scale[prefix.Milli](km)          // 1000000 mm
//
// # Cross-Scale Arithmetic
//
// Every quantity satisfies Quantity[D, U]: it can report its base-equivalent
// value through ToBase. Add, Sub, Equal and Cmp accept any Quantity of the same
// base unit and work on base-equivalent values. The result of Add and Sub is
// always expressed in the type of the left operand:
//
//	m.Add(km)   // Meter: 2000 m
//	km.Add(m)   // Kilometer: 2 km
//	m.Equal(km) // true
//
// Mul and Quo combine two values of the identical type and work on the stored
// numbers. MulScalar and QuoScalar scale by a dimensionless exact.Value.
// Division by zero returns an error wrapping exact.ErrDivisionByZero.
//
// Quantities hold an exact.Value, so the == operator does not compare
// magnitudes. Use Equal.
//
// # Factors
//
// A prefix factor is 10^Exponent(), computed once per exponent on first use
// and cached for the life of the process.
//
// # Encoding
//
// Base and Prefix implement encoding.TextMarshaler ("3/2 km"), YAML and CBOR
// marshaling. Decoders accept any prefix of the same base unit and convert
// the value to the receiving type's scale.
package si
