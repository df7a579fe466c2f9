package si

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exactsi/si-go/pkg/exact"
	"github.com/exactsi/si-go/pkg/prefix"
)

func TestFactor(t *testing.T) {
	tests := []struct {
		exp  int
		want string
	}{
		{0, "1"},
		{1, "10"},
		{3, "1000"},
		{24, "1000000000000000000000000"},
		{-1, "1/10"},
		{-6, "1/1000000"},
		{-24, "1/1000000000000000000000000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, factor(tt.exp).String(), "factor(%d)", tt.exp)
	}
}

func TestFactor_NegativeExponentsAreReciprocals(t *testing.T) {
	for _, info := range prefix.All() {
		if info.Exponent >= 0 {
			continue
		}
		// factor * 10^|exp| == 1, checked by cross-multiplication.
		product := factor(info.Exponent).Mul(factor(-info.Exponent))
		assert.True(t, product.Equal(exact.One), info.Name)
		assert.Equal(t, "1", factor(info.Exponent).Num().String(), info.Name)
	}
}

func TestFactor_Cached(t *testing.T) {
	first := factor(-9)
	second := factor(-9)

	assert.True(t, first.Equal(second))

	f, ok := factors.Load(-9)
	require.True(t, ok)
	assert.True(t, f.(func() exact.Value)().Equal(first))
}

func TestFactor_ConcurrentFirstUse(t *testing.T) {
	const exp = 17

	var wg sync.WaitGroup
	results := make([]exact.Value, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = factor(exp)
		}()
	}
	wg.Wait()

	for _, r := range results {
		assert.True(t, r.Equal(exact.Pow10(exp)))
	}
}

func TestRescale(t *testing.T) {
	v := exact.Of(3)

	assert.Equal(t, "3", rescale(v, 3, 3).String())
	assert.Equal(t, "3000", rescale(v, 3, 0).String())
	assert.Equal(t, "3/1000", rescale(v, 0, 3).String())
	assert.Equal(t, "3000000", rescale(v, 3, -3).String())
	assert.Equal(t, "3/1000000", rescale(v, -3, 3).String())
}
