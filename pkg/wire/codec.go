package wire

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder mode for quantity records.
// Configured for deterministic encoding with integer keys.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for quantity records.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		BigIntConvert: cbor.BigIntConvertShortest, // small values as plain integers
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Lenient for forward compatibility: unknown keys are skipped.
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Marshal encodes a value to CBOR bytes.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR bytes into a value.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// NewEncoder creates a new CBOR encoder that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder creates a new CBOR decoder that reads from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return decMode.NewDecoder(r)
}

// EncodeQuantity encodes a quantity record to CBOR bytes.
func EncodeQuantity(q *Quantity) ([]byte, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("invalid quantity: %w", err)
	}
	return Marshal(q)
}

// DecodeQuantity decodes CBOR bytes into a quantity record.
func DecodeQuantity(data []byte) (*Quantity, error) {
	var q Quantity
	if err := Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("failed to decode quantity: %w", err)
	}
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("invalid quantity: %w", err)
	}
	return &q, nil
}

// PeekSymbol returns the unit symbol of an encoded quantity without decoding
// the magnitude.
func PeekSymbol(data []byte) (string, error) {
	var peek struct {
		Symbol string `cbor:"3,keyasint"`
	}
	if err := Unmarshal(data, &peek); err != nil {
		return "", fmt.Errorf("failed to peek quantity: %w", err)
	}
	if peek.Symbol == "" {
		return "", ErrMissingSymbol
	}
	return peek.Symbol, nil
}

// EncodeStream writes each quantity to w as a CBOR sequence (RFC 8742).
func EncodeStream(w io.Writer, qs []*Quantity) error {
	enc := NewEncoder(w)
	for i, q := range qs {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("quantity %d: %w", i, err)
		}
		if err := enc.Encode(q); err != nil {
			return fmt.Errorf("encoding quantity %d: %w", i, err)
		}
	}
	return nil
}

// DecodeStream reads a CBOR sequence of quantities until the input ends.
func DecodeStream(data []byte) ([]*Quantity, error) {
	dec := NewDecoder(bytes.NewReader(data))
	var out []*Quantity
	for {
		var q Quantity
		err := dec.Decode(&q)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decoding quantity %d: %w", len(out), err)
		}
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("quantity %d: %w", len(out), err)
		}
		out = append(out, &q)
	}
}
