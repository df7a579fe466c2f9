package definitions

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/exactsi/si-go/pkg/dimension"
	"github.com/exactsi/si-go/pkg/version"
)

//go:embed si.yaml
var embedded []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid definitions")

// Table is a parsed definitions document.
type Table struct {
	Version     string   `yaml:"version"`
	Description string   `yaml:"description"`
	Units       []Unit   `yaml:"units"`
	Prefixes    []Prefix `yaml:"prefixes"`
}

// Unit declares the base unit of one dimension. Name is the Go identifier
// ("Meter") and Dimension the name dimension.Lookup knows ("length").
type Unit struct {
	Name      string `yaml:"name"`
	Dimension string `yaml:"dimension"`
	Shortform string `yaml:"shortform"`
	Longform  string `yaml:"longform"`
}

// Prefix declares a metric prefix 10^Exponent. Aliases are extra accepted
// shortforms, such as "u" for micro.
type Prefix struct {
	Name      string   `yaml:"name"`
	Exponent  int      `yaml:"exponent"`
	Shortform string   `yaml:"shortform"`
	Longform  string   `yaml:"longform"`
	Aliases   []string `yaml:"aliases"`
}

var loadDefault = sync.OnceValues(func() (*Table, error) {
	return Parse(embedded)
})

// Default returns the embedded SI table. The result is shared and must not
// be modified.
func Default() (*Table, error) {
	return loadDefault()
}

// Parse parses and validates a table from YAML bytes.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing definitions: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Load reads and parses a table from a file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks the table for consistency.
func (t *Table) Validate() error {
	if _, err := version.Check(t.Version); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	names := make(map[string]bool)
	claim := func(name string) error {
		if name == "" {
			return fmt.Errorf("%w: missing name", ErrInvalid)
		}
		if names[name] {
			return fmt.Errorf("%w: duplicate name %s", ErrInvalid, name)
		}
		names[name] = true
		return nil
	}

	dims := make(map[string]string)
	unitSymbols := make(map[string]string)
	for _, u := range t.Units {
		if err := claim(u.Name); err != nil {
			return err
		}
		if _, ok := dimension.Lookup(u.Dimension); !ok {
			return fmt.Errorf("%w: unit %s: unknown dimension %q", ErrInvalid, u.Name, u.Dimension)
		}
		if other, ok := dims[u.Dimension]; ok {
			return fmt.Errorf("%w: units %s and %s share dimension %s", ErrInvalid, other, u.Name, u.Dimension)
		}
		dims[u.Dimension] = u.Name
		if u.Shortform == "" || u.Longform == "" {
			return fmt.Errorf("%w: unit %s: missing shortform or longform", ErrInvalid, u.Name)
		}
		for _, sym := range []string{u.Shortform, u.Longform} {
			if other, ok := unitSymbols[sym]; ok {
				return fmt.Errorf("%w: units %s and %s share symbol %q", ErrInvalid, other, u.Name, sym)
			}
			unitSymbols[sym] = u.Name
		}
	}

	exponents := make(map[int]string)
	prefixSymbols := make(map[string]string)
	for _, p := range t.Prefixes {
		if err := claim(p.Name); err != nil {
			return err
		}
		if p.Exponent == 0 {
			return fmt.Errorf("%w: prefix %s: exponent 0 is the base unit", ErrInvalid, p.Name)
		}
		if other, ok := exponents[p.Exponent]; ok {
			return fmt.Errorf("%w: prefixes %s and %s share exponent %d", ErrInvalid, other, p.Name, p.Exponent)
		}
		exponents[p.Exponent] = p.Name
		if p.Shortform == "" || p.Longform == "" {
			return fmt.Errorf("%w: prefix %s: missing shortform or longform", ErrInvalid, p.Name)
		}
		for _, sym := range append([]string{p.Shortform, p.Longform}, p.Aliases...) {
			if other, ok := prefixSymbols[sym]; ok {
				return fmt.Errorf("%w: prefixes %s and %s share symbol %q", ErrInvalid, other, p.Name, sym)
			}
			prefixSymbols[sym] = p.Name
		}
	}
	return nil
}

// PrefixByExponent looks up a prefix by its power of ten.
func (t *Table) PrefixByExponent(exp int) (Prefix, bool) {
	for _, p := range t.Prefixes {
		if p.Exponent == exp {
			return p, true
		}
	}
	return Prefix{}, false
}
