package exact

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDecimal(t *testing.T) {
	v := FromDecimal(decimal.RequireFromString("1.25"))
	assert.Equal(t, "5/4", v.String())

	v = FromDecimal(decimal.RequireFromString("-0.001"))
	assert.Equal(t, "-1/1000", v.String())
}

func TestDecimal_Exact(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5/4", "1.25"},
		{"1/8", "0.125"},
		{"-3/20", "-0.15"},
		{"1000", "1000"},
		{"1/1000000", "0.000001"},
		{"0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := MustParse(tt.in).Decimal()
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
			assert.True(t, FromDecimal(d).Equal(MustParse(tt.in)))
		})
	}
}

func TestDecimal_Inexact(t *testing.T) {
	for _, in := range []string{"1/3", "2/7", "1/12"} {
		_, err := MustParse(in).Decimal()
		assert.ErrorIs(t, err, ErrInexact, "input %s", in)
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, "0.333", MustParse("1/3").Round(3).String())
	assert.Equal(t, "0.67", MustParse("2/3").Round(2).String())
}
