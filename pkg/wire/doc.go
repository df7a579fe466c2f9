// Package wire defines the CBOR encoding of exact quantities.
//
// Quantities use CBOR (RFC 8949) maps with integer keys for compactness:
//
//	{
//	  1: numerator,    // integer or bignum, signed
//	  2: denominator,  // integer or bignum, positive
//	  3: symbol        // text: unit short form, e.g. "km"
//	}
//
// Numerator and denominator carry the exact rational magnitude, so encoding
// never rounds. The symbol names the scale the magnitude is expressed in;
// decoders convert to their own scale.
//
// # Determinism
//
// Encoding uses canonical key ordering, definite lengths and the shortest
// integer form, so equal records always produce identical bytes.
package wire
