package valid

import (
	"github.com/exactsi/si-go/pkg/prefix"
	"github.com/exactsi/si-go/pkg/si"
	"github.com/exactsi/si-go/pkg/units"
)

var (
	m  = si.From[units.Meter](1)
	km = si.From[units.Kilometer](1)
	kg = si.From[units.Kilogram](1)
)

var (
	_ = m.Add(km)
	_ = km.Sub(m)
	_ = m.Equal(km)
	_ = si.Equal(km, m)
	_ = si.Scale[prefix.Milli](km)
	_ = kg.ToBase().Add(kg)
)
