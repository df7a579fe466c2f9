package si_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exactsi/si-go/pkg/dimension"
	"github.com/exactsi/si-go/pkg/exact"
	"github.com/exactsi/si-go/pkg/prefix"
	"github.com/exactsi/si-go/pkg/si"
	"github.com/exactsi/si-go/pkg/units"
)

func TestPrefix_ConstructionIsUnscaled(t *testing.T) {
	km := si.From[units.Kilometer](1)

	assert.Equal(t, "1", km.Value().String())
	assert.Equal(t, "1000", km.ToBase().Value().String())
}

func TestPrefix_Introspection(t *testing.T) {
	us := si.From[units.Microsecond](1)

	assert.Equal(t, "µs", us.Shortform())
	assert.Equal(t, "microsecond", us.Longform())
	assert.Equal(t, dimension.Time{}, us.Dimension())
	assert.Equal(t, -6, us.Exponent())
	assert.Equal(t, "1/1000000", us.Factor().String())
}

func TestPrefix_CrossScaleEquality(t *testing.T) {
	m := si.From[units.Meter](1000)

	assert.True(t, m.Equal(si.From[units.Kilometer](1)))
	assert.True(t, si.From[units.Kilometer](1).Equal(m))
	assert.False(t, m.Equal(si.From[units.Kilometer](1000)))
	assert.False(t, si.From[units.Kilometer](1000).Equal(m))
}

func TestPrefix_ZeroEqualsZero(t *testing.T) {
	assert.True(t, units.Yottameter{}.Equal(units.Yoctometer{}))
	assert.True(t, units.Meter{}.Equal(units.Nanometer{}))
}

func TestPrefix_Addition(t *testing.T) {
	m := si.From[units.Meter](1000)
	km := si.From[units.Kilometer](1)

	left := m.Add(km)
	assert.IsType(t, units.Meter{}, left)
	assert.True(t, left.Equal(si.From[units.Meter](2000)))
	assert.Equal(t, "2000", left.Value().String())

	right := km.Add(m)
	assert.IsType(t, units.Kilometer{}, right)
	assert.True(t, right.Equal(si.From[units.Kilometer](2)))
	assert.Equal(t, "2", right.Value().String())
}

func TestPrefix_Subtraction(t *testing.T) {
	m := si.From[units.Meter](1000)
	km := si.From[units.Kilometer](1)

	assert.True(t, km.Sub(m).IsZero())
	assert.True(t, m.Sub(km).IsZero())

	km2 := si.From[units.Kilometer](2)
	assert.Equal(t, "1 km", km2.Sub(m).String())
	assert.Equal(t, "-1000 m", m.Sub(km2).String())
}

func TestPrefix_SameKindArithmetic(t *testing.T) {
	a := si.From[units.Millisecond](3)
	b := si.From[units.Millisecond](5)

	assert.Equal(t, "8 ms", a.Add(b).String())
	assert.Equal(t, "-2 ms", a.Sub(b).String())
	assert.Equal(t, "15 ms", a.Mul(b).String())

	q, err := a.Quo(b)
	require.NoError(t, err)
	assert.Equal(t, "3/5 ms", q.String())

	_, err = a.Quo(units.Millisecond{})
	assert.ErrorIs(t, err, exact.ErrDivisionByZero)
}

func TestPrefix_CrossPrefixAddition(t *testing.T) {
	km := si.From[units.Kilometer](1)
	mm := si.From[units.Millimeter](1)

	assert.Equal(t, "1000001/1000000 km", km.Add(mm).String())
	assert.Equal(t, "1000001 mm", mm.Add(km).String())
}

func TestPrefix_Scalar(t *testing.T) {
	m := si.From[units.Meter](1000)

	scaled := m.MulScalar(exact.Of(10))
	assert.True(t, scaled.Equal(si.From[units.Kilometer](10)))

	km := si.From[units.Kilometer](10)
	q, err := km.QuoScalar(exact.Of(10))
	require.NoError(t, err)
	assert.True(t, q.Equal(si.From[units.Kilometer](1)))
	assert.True(t, q.Equal(si.From[units.Meter](1000)))
	assert.Equal(t, "1 km", q.String())

	assert.Equal(t, "30 km", km.MulScalar(exact.Of(big.NewInt(3))).String())

	_, err = km.QuoScalar(exact.Zero)
	assert.ErrorIs(t, err, exact.ErrDivisionByZero)
}

func TestPrefix_SignAbsNeg(t *testing.T) {
	mA := si.From[units.Milliampere](-4)

	assert.Equal(t, -1, mA.Sign())
	assert.Equal(t, "4 mA", mA.Abs().String())
	assert.Equal(t, "4 mA", mA.Neg().String())
	assert.False(t, mA.IsZero())
}

func TestPrefix_Cmp(t *testing.T) {
	km := si.From[units.Kilometer](1)

	assert.Equal(t, 0, km.Cmp(si.From[units.Meter](1000)))
	assert.Equal(t, 1, km.Cmp(si.From[units.Meter](999)))
	assert.Equal(t, -1, km.Cmp(si.From[units.Kilometer](2)))
	assert.Equal(t, -1, km.Cmp(si.From[units.Megameter](1)))
}

func TestPrefix_EqualityIsTransitive(t *testing.T) {
	a := si.From[units.Kilogram](1)
	b := si.From[units.Gram](1000)
	c := si.From[units.Milligram](1_000_000)

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(c))
	assert.True(t, a.Equal(c))
	assert.True(t, c.Equal(a))
}

// unity is a prefix of 10^0.
type unity struct{}

func (unity) Exponent() int     { return 0 }
func (unity) Shortform() string { return "" }
func (unity) Longform() string  { return "" }

func TestPrefix_UnityBehavesLikeBase(t *testing.T) {
	type unitMeter = si.Prefix[dimension.Length, units.MeterUnit, unity]

	v := exact.MustParse("17/3")
	u := si.New[unitMeter](v)
	m := si.New[units.Meter](v)

	assert.True(t, u.Factor().Equal(exact.One))
	assert.True(t, u.ToBase().Equal(m))
	assert.True(t, u.Value().Equal(m.Value()))
	assert.True(t, si.FromBase[unity](m).Value().Equal(v))
	assert.Equal(t, "m", u.Shortform())
	assert.Equal(t, "17/3 m", u.String())
	assert.Equal(t, "34/3 m", u.Add(m).String())
}

func TestPrefix_KindsSatisfyKind(t *testing.T) {
	kinds := []si.Kind{
		prefix.Yotta{}, prefix.Zetta{}, prefix.Exa{}, prefix.Peta{}, prefix.Tera{},
		prefix.Giga{}, prefix.Mega{}, prefix.Kilo{}, prefix.Hecto{}, prefix.Deca{},
		prefix.Deci{}, prefix.Centi{}, prefix.Milli{}, prefix.Micro{}, prefix.Nano{},
		prefix.Pico{}, prefix.Femto{}, prefix.Atto{}, prefix.Zepto{}, prefix.Yocto{},
	}
	for _, k := range kinds {
		info, ok := prefix.ByExponent(k.Exponent())
		require.True(t, ok, k.Longform())
		assert.Equal(t, info.Shortform, k.Shortform())
	}
}
