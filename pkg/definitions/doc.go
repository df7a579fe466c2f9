// Package definitions holds the table of base units and metric prefixes
// that the generated packages prefix and units are built from.
//
// The table is a YAML document embedded in the binary:
//
//	version: "1.0"
//	units:
//	  - name: Meter
//	    dimension: length
//	    shortform: m
//	    longform: meter
//	prefixes:
//	  - name: Kilo
//	    exponent: 3
//	    shortform: k
//	    longform: kilo
//
// Default returns the embedded table; Parse and Load read other tables for
// the generator. Every table is validated before it is returned: the schema
// version must be compatible with version.Current, dimensions must be known,
// names, symbols and exponents must be unique, and each dimension has at
// most one base unit.
package definitions
