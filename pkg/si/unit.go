package si

import (
	"errors"

	"github.com/exactsi/si-go/pkg/dimension"
	"github.com/exactsi/si-go/pkg/exact"
)

// Decoding errors.
var (
	ErrMalformed     = errors.New("malformed quantity")
	ErrUnitMismatch  = errors.New("unit mismatch")
	ErrUnknownPrefix = errors.New("unknown prefix")
)

// Def is implemented by zero-sized base unit definitions of dimension D.
type Def[D dimension.Dimension] interface {
	// Dimension returns the dimension tag. Its result type binds the
	// definition to exactly one dimension.
	Dimension() D
	// Shortform returns the unit symbol, e.g. "m".
	Shortform() string
	// Longform returns the unit name, e.g. "meter".
	Longform() string
}

// Kind is implemented by zero-sized prefix kinds.
type Kind interface {
	// Exponent returns the power of ten the prefix stands for.
	Exponent() int
	// Shortform returns the prefix symbol, e.g. "k".
	Shortform() string
	// Longform returns the prefix name, e.g. "kilo".
	Longform() string
}

// Quantity is any value measured in base unit U or a prefix of it.
type Quantity[D dimension.Dimension, U Def[D]] interface {
	// ToBase returns the base-equivalent value.
	ToBase() Base[D, U]
}

// constructor is satisfied by Base and Prefix instantiations.
type constructor[Q any] interface {
	withValue(v exact.Value) Q
}
