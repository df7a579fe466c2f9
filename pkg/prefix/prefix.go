package prefix

import (
	"slices"

	"github.com/exactsi/si-go/pkg/exact"
)

// Info describes one metric prefix.
type Info struct {
	Name      string   // Go type name, e.g. "Kilo"
	Exponent  int      // power of ten
	Shortform string   // e.g. "k"
	Longform  string   // e.g. "kilo"
	Aliases   []string // extra accepted shortforms, e.g. "u" for micro
}

// Factor returns 10^Exponent.
func (i Info) Factor() exact.Value {
	return exact.Pow10(i.Exponent)
}

var (
	bySymbol   = make(map[string]Info)
	byName     = make(map[string]Info)
	byExponent = make(map[int]Info)
)

func init() {
	for _, p := range table {
		bySymbol[p.Shortform] = p
		for _, a := range p.Aliases {
			bySymbol[a] = p
		}
		byName[p.Longform] = p
		byExponent[p.Exponent] = p
	}
}

// All returns every prefix, largest first.
func All() []Info {
	return slices.Clone(table)
}

// Lookup returns the prefix with the given shortform or alias.
func Lookup(symbol string) (Info, bool) {
	p, ok := bySymbol[symbol]
	return p, ok
}

// LookupName returns the prefix with the given longform, e.g. "milli".
func LookupName(name string) (Info, bool) {
	p, ok := byName[name]
	return p, ok
}

// ByExponent returns the prefix for 10^exp.
func ByExponent(exp int) (Info, bool) {
	p, ok := byExponent[exp]
	return p, ok
}
