package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exactsi/si-go/pkg/definitions"
	"github.com/exactsi/si-go/pkg/dimension"
	"github.com/exactsi/si-go/pkg/si"
	"github.com/exactsi/si-go/pkg/units"
)

type def interface {
	Shortform() string
	Longform() string
}

func TestDefsMatchDefinitions(t *testing.T) {
	defs, err := definitions.Default()
	require.NoError(t, err)

	byName := map[string]def{
		"Meter":   units.MeterUnit{},
		"Gram":    units.GramUnit{},
		"Second":  units.SecondUnit{},
		"Ampere":  units.AmpereUnit{},
		"Kelvin":  units.KelvinUnit{},
		"Mole":    units.MoleUnit{},
		"Candela": units.CandelaUnit{},
	}
	require.Len(t, defs.Units, len(byName))

	for _, u := range defs.Units {
		t.Run(u.Name, func(t *testing.T) {
			d, ok := byName[u.Name]
			require.True(t, ok)
			assert.Equal(t, u.Shortform, d.Shortform())
			assert.Equal(t, u.Longform, d.Longform())
		})
	}
}

func TestDimensions(t *testing.T) {
	assert.Equal(t, dimension.Length{}, units.MeterUnit{}.Dimension())
	assert.Equal(t, dimension.Mass{}, units.GramUnit{}.Dimension())
	assert.Equal(t, dimension.Time{}, units.SecondUnit{}.Dimension())
	assert.Equal(t, dimension.Current{}, units.AmpereUnit{}.Dimension())
	assert.Equal(t, dimension.Temperature{}, units.KelvinUnit{}.Dimension())
	assert.Equal(t, dimension.Amount{}, units.MoleUnit{}.Dimension())
	assert.Equal(t, dimension.Intensity{}, units.CandelaUnit{}.Dimension())

	// A prefixed quantity inherits the dimension of its base unit.
	assert.Equal(t, dimension.Mass{}, units.Kilogram{}.Dimension())
	assert.Equal(t, dimension.Time{}, units.Microsecond{}.Dimension())
}

func TestLabels(t *testing.T) {
	tests := []struct {
		name      string
		q         def
		shortform string
		longform  string
	}{
		{"Meter", units.Meter{}, "m", "meter"},
		{"Kilometer", units.Kilometer{}, "km", "kilometer"},
		{"Kilogram", units.Kilogram{}, "kg", "kilogram"},
		{"Microsecond", units.Microsecond{}, "µs", "microsecond"},
		{"Milliampere", units.Milliampere{}, "mA", "milliampere"},
		{"Decakelvin", units.Decakelvin{}, "daK", "decakelvin"},
		{"Nanomole", units.Nanomole{}, "nmol", "nanomole"},
		{"Megacandela", units.Megacandela{}, "Mcd", "megacandela"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.shortform, tt.q.Shortform())
			assert.Equal(t, tt.longform, tt.q.Longform())
		})
	}
}

func TestFactors(t *testing.T) {
	assert.Equal(t, 0, units.Gram{}.Exponent())
	assert.Equal(t, 3, units.Kilogram{}.Exponent())
	assert.Equal(t, -6, units.Microsecond{}.Exponent())
	assert.Equal(t, 24, units.Yottameter{}.Exponent())
	assert.Equal(t, -24, units.Yoctocandela{}.Exponent())
	assert.Equal(t, "1000", units.Kilogram{}.Factor().String())
	assert.Equal(t, "1/100", units.Centimeter{}.Factor().String())
}

func TestKilogramIsAPrefixedGram(t *testing.T) {
	kg := si.From[units.Kilogram](2)
	g := si.From[units.Gram](2000)

	assert.True(t, kg.Equal(g))
	assert.True(t, g.Equal(kg))
	assert.Equal(t, "2000 g", kg.ToBase().String())
}
