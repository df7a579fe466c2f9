// Package dimension defines the compile-time tags for the seven SI base
// quantities.
//
// A tag is a zero-sized type with no runtime data. Unit definitions name
// their dimension through a Dimension() method, and the generic quantity types
// in package si carry the tag as a type parameter, so mixing a length with a
// mass fails to compile.
package dimension

// Dimension is implemented by the tag types in this package only.
type Dimension interface {
	// String returns the quantity name, e.g. "length".
	String() string
	dimension()
}

type (
	// Length is measured in meters.
	Length struct{}
	// Mass is measured in grams (the SI kilogram is a prefixed gram here).
	Mass struct{}
	// Time is measured in seconds.
	Time struct{}
	// Current is electric current, measured in amperes.
	Current struct{}
	// Temperature is thermodynamic temperature, measured in kelvins.
	Temperature struct{}
	// Amount is amount of substance, measured in moles.
	Amount struct{}
	// Intensity is luminous intensity, measured in candelas.
	Intensity struct{}
)

func (Length) String() string      { return "length" }
func (Mass) String() string        { return "mass" }
func (Time) String() string        { return "time" }
func (Current) String() string     { return "current" }
func (Temperature) String() string { return "temperature" }
func (Amount) String() string      { return "amount" }
func (Intensity) String() string   { return "intensity" }

func (Length) dimension()      {}
func (Mass) dimension()        {}
func (Time) dimension()        {}
func (Current) dimension()     {}
func (Temperature) dimension() {}
func (Amount) dimension()      {}
func (Intensity) dimension()   {}

// All returns every dimension in SI order.
func All() []Dimension {
	return []Dimension{
		Length{}, Mass{}, Time{}, Current{}, Temperature{}, Amount{}, Intensity{},
	}
}

// Lookup returns the dimension whose String() is name.
func Lookup(name string) (Dimension, bool) {
	for _, d := range All() {
		if d.String() == name {
			return d, true
		}
	}
	return nil, false
}

// TypeName returns the Go type name of d, e.g. "Length".
func TypeName(d Dimension) string {
	switch d.(type) {
	case Length:
		return "Length"
	case Mass:
		return "Mass"
	case Time:
		return "Time"
	case Current:
		return "Current"
	case Temperature:
		return "Temperature"
	case Amount:
		return "Amount"
	case Intensity:
		return "Intensity"
	default:
		return ""
	}
}
