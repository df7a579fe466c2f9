// Package prefix declares the twenty SI metric prefixes, from Yotta (10^24)
// to Yocto (10^-24), as zero-sized kinds for use with si.Prefix:
//
//	type Kilometer = si.Prefix[dimension.Length, units.MeterUnit, prefix.Kilo]
//
// Each kind reports its power of ten and its labels. The package also keeps
// a runtime table of the same prefixes, keyed by symbol, name and exponent,
// which the decoders in package si use to read "km" or "kilometer".
//
// The kinds and the table are generated from the definitions table by
// cmd/si-gen.
package prefix
