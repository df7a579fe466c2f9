package exact

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Exact arithmetic errors.
var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrZeroDenominator = errors.New("zero denominator")
	ErrSyntax          = errors.New("invalid number syntax")
	ErrInexact         = errors.New("no exact decimal representation")
)

// zeroRat backs the zero Value. It is only ever read.
var zeroRat = new(big.Rat)

// Integer is the set of native integer types accepted by Of.
type Integer interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

// Number is the set of types that can be promoted to a Value.
type Number interface {
	Integer | *big.Int | *big.Rat | Value
}

// Value is an immutable arbitrary-precision rational number.
// The zero value is 0.
type Value struct {
	r *big.Rat
}

// Zero and One are the additive and multiplicative identities.
var (
	Zero = Value{}
	One  = Value{r: big.NewRat(1, 1)}
)

// Of promotes v to a Value with exactly the same magnitude.
// A nil *big.Int or *big.Rat is treated as 0. The argument is copied, so
// later changes to a big.Int or big.Rat do not affect the result.
func Of[T Number](v T) Value {
	switch x := any(v).(type) {
	case Value:
		return x
	case *big.Int:
		if x == nil {
			return Value{}
		}
		return Value{r: new(big.Rat).SetInt(x)}
	case *big.Rat:
		if x == nil {
			return Value{}
		}
		return Value{r: new(big.Rat).Set(x)}
	case int:
		return FromInt64(int64(x))
	case int8:
		return FromInt64(int64(x))
	case int16:
		return FromInt64(int64(x))
	case int32:
		return FromInt64(int64(x))
	case int64:
		return FromInt64(x)
	case uint:
		return FromUint64(uint64(x))
	case uint8:
		return FromUint64(uint64(x))
	case uint16:
		return FromUint64(uint64(x))
	case uint32:
		return FromUint64(uint64(x))
	case uint64:
		return FromUint64(x)
	case uintptr:
		return FromUint64(uint64(x))
	}
	// Unreachable: the Number type set is closed.
	panic(fmt.Sprintf("exact: unsupported number type %T", v))
}

// FromInt64 returns the Value n.
func FromInt64(n int64) Value {
	return Value{r: new(big.Rat).SetInt64(n)}
}

// FromUint64 returns the Value n.
func FromUint64(n uint64) Value {
	return Value{r: new(big.Rat).SetUint64(n)}
}

// NewFraction returns num/den in lowest terms.
func NewFraction(num, den int64) (Value, error) {
	if den == 0 {
		return Value{}, fmt.Errorf("fraction %d/%d: %w", num, den, ErrZeroDenominator)
	}
	return Value{r: big.NewRat(num, den)}, nil
}

// Parse parses s as a fraction "a/b", a decimal "1.25" or a number in
// scientific notation "1e-3".
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, fmt.Errorf("parsing %q: %w", s, ErrSyntax)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Value{}, fmt.Errorf("parsing %q: %w", s, ErrSyntax)
	}
	return Value{r: r}, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
// It simplifies initialization of package-level values.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("exact.MustParse(%q) failed: %v", s, err))
	}
	return v
}

// Pow10 returns 10^exp exactly. Negative exponents yield 1/10^|exp|.
func Pow10(exp int) Value {
	abs := exp
	if abs < 0 {
		abs = -abs
	}
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs)), nil)
	if exp < 0 {
		return Value{r: new(big.Rat).SetFrac(big.NewInt(1), p)}
	}
	return Value{r: new(big.Rat).SetInt(p)}
}

func (v Value) rat() *big.Rat {
	if v.r == nil {
		return zeroRat
	}
	return v.r
}

// Add returns v + w.
func (v Value) Add(w Value) Value {
	return Value{r: new(big.Rat).Add(v.rat(), w.rat())}
}

// Sub returns v - w.
func (v Value) Sub(w Value) Value {
	return Value{r: new(big.Rat).Sub(v.rat(), w.rat())}
}

// Mul returns v * w.
func (v Value) Mul(w Value) Value {
	return Value{r: new(big.Rat).Mul(v.rat(), w.rat())}
}

// Quo returns v / w, or ErrDivisionByZero if w is 0.
func (v Value) Quo(w Value) (Value, error) {
	if w.IsZero() {
		return Value{}, ErrDivisionByZero
	}
	return Value{r: new(big.Rat).Quo(v.rat(), w.rat())}, nil
}

// Inv returns 1/v, or ErrDivisionByZero if v is 0.
func (v Value) Inv() (Value, error) {
	if v.IsZero() {
		return Value{}, ErrDivisionByZero
	}
	return Value{r: new(big.Rat).Inv(v.rat())}, nil
}

// Neg returns -v.
func (v Value) Neg() Value {
	return Value{r: new(big.Rat).Neg(v.rat())}
}

// Abs returns |v|.
func (v Value) Abs() Value {
	return Value{r: new(big.Rat).Abs(v.rat())}
}

// Cmp compares v and w and returns -1, 0 or +1.
func (v Value) Cmp(w Value) int {
	return v.rat().Cmp(w.rat())
}

// Equal reports whether v and w are the same number.
func (v Value) Equal(w Value) bool {
	return v.Cmp(w) == 0
}

// Sign returns -1, 0 or +1 depending on the sign of v.
func (v Value) Sign() int {
	return v.rat().Sign()
}

// IsZero reports whether v is 0.
func (v Value) IsZero() bool {
	return v.Sign() == 0
}

// IsInt reports whether the denominator of v is 1.
func (v Value) IsInt() bool {
	return v.rat().IsInt()
}

// Num returns a copy of the numerator of v. It may be negative.
func (v Value) Num() *big.Int {
	return new(big.Int).Set(v.rat().Num())
}

// Denom returns a copy of the denominator of v. It is always positive.
func (v Value) Denom() *big.Int {
	return new(big.Int).Set(v.rat().Denom())
}

// Rat returns a copy of v as a big.Rat.
func (v Value) Rat() *big.Rat {
	return new(big.Rat).Set(v.rat())
}

// String returns v as "a/b", or "a" when v is an integer.
func (v Value) String() string {
	return v.rat().RatString()
}

// FloatString returns v in decimal notation with prec digits after the
// radix point, rounded to nearest with halves away from zero.
func (v Value) FloatString(prec int) string {
	return v.rat().FloatString(prec)
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
