package si

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/exactsi/si-go/pkg/exact"
	"github.com/exactsi/si-go/pkg/wire"
)

// MarshalText implements encoding.TextMarshaler. JSON encodes through it.
func (b Base[D, U]) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Base[D, U]) UnmarshalText(text []byte) error {
	var u U
	v, err := parseQuantity(string(text), u.Shortform(), u.Longform(), 0)
	if err != nil {
		return err
	}
	b.value = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (b Base[D, U]) MarshalYAML() (any, error) {
	return b.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Base[D, U]) UnmarshalYAML(node *yaml.Node) error {
	text, err := scalarText(node)
	if err != nil {
		return err
	}
	return b.UnmarshalText([]byte(text))
}

// MarshalCBOR implements cbor.Marshaler.
func (b Base[D, U]) MarshalCBOR() ([]byte, error) {
	return wire.EncodeQuantity(wire.NewQuantity(b.value.Rat(), b.Shortform()))
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (b *Base[D, U]) UnmarshalCBOR(data []byte) error {
	var u U
	v, err := decodeCBOR(data, u.Shortform(), u.Longform(), 0)
	if err != nil {
		return err
	}
	b.value = v
	return nil
}

// MarshalText implements encoding.TextMarshaler. JSON encodes through it.
func (p Prefix[D, U, P]) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Prefix[D, U, P]) UnmarshalText(text []byte) error {
	var u U
	v, err := parseQuantity(string(text), u.Shortform(), u.Longform(), p.Exponent())
	if err != nil {
		return err
	}
	p.value = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Prefix[D, U, P]) MarshalYAML() (any, error) {
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Prefix[D, U, P]) UnmarshalYAML(node *yaml.Node) error {
	text, err := scalarText(node)
	if err != nil {
		return err
	}
	return p.UnmarshalText([]byte(text))
}

// MarshalCBOR implements cbor.Marshaler.
func (p Prefix[D, U, P]) MarshalCBOR() ([]byte, error) {
	return wire.EncodeQuantity(wire.NewQuantity(p.value.Rat(), p.Shortform()))
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (p *Prefix[D, U, P]) UnmarshalCBOR(data []byte) error {
	var u U
	v, err := decodeCBOR(data, u.Shortform(), u.Longform(), p.Exponent())
	if err != nil {
		return err
	}
	p.value = v
	return nil
}

func scalarText(node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: %w: expected a scalar", node.Line, ErrMalformed)
	}
	return node.Value, nil
}

func decodeCBOR(data []byte, short, long string, exp int) (exact.Value, error) {
	q, err := wire.DecodeQuantity(data)
	if err != nil {
		return exact.Value{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	from, err := resolve(q.Symbol, short, long)
	if err != nil {
		return exact.Value{}, err
	}
	return rescale(exact.Of(q.Rat()), from, exp), nil
}
