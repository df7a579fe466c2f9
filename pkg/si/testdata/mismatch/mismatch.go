package mismatch

import (
	"github.com/exactsi/si-go/pkg/dimension"
	"github.com/exactsi/si-go/pkg/prefix"
	"github.com/exactsi/si-go/pkg/si"
	"github.com/exactsi/si-go/pkg/units"
)

var (
	m  = si.From[units.Meter](1)
	km = si.From[units.Kilometer](1)
	g  = si.From[units.Gram](1)
	kg = si.From[units.Kilogram](1)
	s  = si.From[units.Second](1)
)

var _ = m.Add(g)                                // ERROR
var _ = km.Sub(kg)                              // ERROR
var _ = m.Equal(s)                              // ERROR
var _ = kg.Cmp(km)                              // ERROR
var _ = km.Mul(m)                               // ERROR
var _ = si.Equal(m, g)                          // ERROR
var _ = si.Scale[prefix.Milli](s).Add(km)       // ERROR
var _ units.Meter = km                          // ERROR
var _ si.Base[dimension.Length, units.GramUnit] // ERROR
