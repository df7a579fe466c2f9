// Package units declares the seven SI base units and every metric-prefixed
// variant of them as aliases of the generic types in package si:
//
//	var d units.Kilometer = si.From[units.Kilometer](3)
//	var m units.Meter = d.ToBase() // 3000 m
//
// The base unit of mass is the gram, so the kilogram is units.Kilogram, a
// prefixed gram.
//
// Everything in this package is generated from the definitions table.
package units

//go:generate go run ../../cmd/si-gen -prefix-output ../prefix/prefix_gen.go -units-output units_gen.go
