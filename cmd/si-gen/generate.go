package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/exactsi/si-go/pkg/definitions"
	"github.com/exactsi/si-go/pkg/dimension"
)

// prefixData is one prefix kind as the templates see it.
type prefixData struct {
	Name      string
	Exponent  int
	Shortform string
	Longform  string
	Aliases   []string
}

// unitData is one base unit with all of its prefixed aliases.
type unitData struct {
	Name      string // alias of the base quantity, "Meter"
	Def       string // definition type, "MeterUnit"
	DimType   string // dimension type, "Length"
	Dimension string // dimension name, "length"
	Shortform string
	Longform  string
	Prefixed  []prefixedData
}

type prefixedData struct {
	Name   string // "Kilometer"
	Prefix string // "Kilo"
}

type unitsData struct {
	Module string
	Units  []unitData
}

// sortedPrefixes returns the table's prefixes ordered from the largest
// exponent to the smallest.
func sortedPrefixes(t *definitions.Table) []prefixData {
	out := make([]prefixData, 0, len(t.Prefixes))
	for _, p := range t.Prefixes {
		out = append(out, prefixData{
			Name:      p.Name,
			Exponent:  p.Exponent,
			Shortform: p.Shortform,
			Longform:  p.Longform,
			Aliases:   p.Aliases,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Exponent > out[j].Exponent })
	return out
}

// GeneratePrefixes renders the prefix kinds and the prefix table.
func GeneratePrefixes(t *definitions.Table) (string, error) {
	if len(t.Prefixes) == 0 {
		return "", fmt.Errorf("definitions declare no prefixes")
	}
	var b strings.Builder
	if err := renderTemplate(&b, "prefixes", sortedPrefixes(t)); err != nil {
		return "", err
	}
	return b.String(), nil
}

// GenerateUnits renders the unit definitions and one alias per base unit and
// prefix pair. Units follow SI dimension order.
func GenerateUnits(t *definitions.Table, module string) (string, error) {
	if len(t.Units) == 0 {
		return "", fmt.Errorf("definitions declare no units")
	}
	prefixes := sortedPrefixes(t)

	order := make(map[string]int)
	for i, d := range dimension.All() {
		order[d.String()] = i
	}

	data := unitsData{Module: module}
	for _, u := range t.Units {
		dim, ok := dimension.Lookup(u.Dimension)
		if !ok {
			return "", fmt.Errorf("unit %s: unknown dimension %q", u.Name, u.Dimension)
		}
		ud := unitData{
			Name:      u.Name,
			Def:       u.Name + "Unit",
			DimType:   dimension.TypeName(dim),
			Dimension: u.Dimension,
			Shortform: u.Shortform,
			Longform:  u.Longform,
		}
		for _, p := range prefixes {
			ud.Prefixed = append(ud.Prefixed, prefixedData{
				Name:   p.Name + strings.ToLower(u.Name),
				Prefix: p.Name,
			})
		}
		data.Units = append(data.Units, ud)
	}
	sort.SliceStable(data.Units, func(i, j int) bool {
		return order[data.Units[i].Dimension] < order[data.Units[j].Dimension]
	})

	var b strings.Builder
	if err := renderTemplate(&b, "units", data); err != nil {
		return "", err
	}
	return b.String(), nil
}
