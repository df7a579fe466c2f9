package si

import (
	"sync"

	"github.com/exactsi/si-go/pkg/exact"
)

// factors maps an exponent to a func returning 10^exponent. Each entry is a
// sync.OnceValue, so a factor is computed exactly once.
var factors sync.Map

// factor returns 10^exp.
func factor(exp int) exact.Value {
	if exp == 0 {
		return exact.One
	}
	if f, ok := factors.Load(exp); ok {
		return f.(func() exact.Value)()
	}
	f, _ := factors.LoadOrStore(exp, sync.OnceValue(func() exact.Value {
		return exact.Pow10(exp)
	}))
	return f.(func() exact.Value)()
}

// rescale converts a value expressed at 10^from into one expressed at 10^to.
func rescale(v exact.Value, from, to int) exact.Value {
	if from == to {
		return v
	}
	return v.Mul(factor(from - to))
}
