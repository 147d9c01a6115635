package wire

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/caldur/caldur-go/pkg/duration"
)

// encMode is the CBOR encoder mode for duration records.
// Configured for deterministic output with integer keys.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for duration records.
var decMode cbor.DecMode

func init() {
	var err error

	// Configure encoder for deterministic output
	encOpts := cbor.EncOptions{
		Sort:        cbor.SortCanonical, // Deterministic key ordering
		IndefLength: cbor.IndefLengthForbidden,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Configure decoder to reject records the text parser would reject:
	// a repeated key is a repeated unit, an unknown key is an unknown unit.
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		IndefLength:       cbor.IndefLengthForbidden,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Marshal encodes a duration to deterministic CBOR bytes.
func Marshal(d duration.Duration) ([]byte, error) {
	rec := NewRecord(d)
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid duration record: %w", err)
	}
	return encMode.Marshal(rec)
}

// Unmarshal decodes CBOR bytes into a duration.
func Unmarshal(data []byte) (duration.Duration, error) {
	var rec Record
	if err := decMode.Unmarshal(data, &rec); err != nil {
		return duration.Duration{}, fmt.Errorf("decoding duration record: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return duration.Duration{}, fmt.Errorf("invalid duration record: %w", err)
	}
	return rec.Duration(), nil
}

// Encoder writes duration records to a stream.
type Encoder struct {
	enc *cbor.Encoder
}

// NewEncoder creates an encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: encMode.NewEncoder(w)}
}

// Encode writes one duration record.
func (e *Encoder) Encode(d duration.Duration) error {
	rec := NewRecord(d)
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("invalid duration record: %w", err)
	}
	return e.enc.Encode(rec)
}

// Decoder reads duration records from a stream.
type Decoder struct {
	dec *cbor.Decoder
}

// NewDecoder creates a decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: decMode.NewDecoder(r)}
}

// Decode reads the next duration record. It returns io.EOF once the
// stream is exhausted.
func (d *Decoder) Decode() (duration.Duration, error) {
	var rec Record
	if err := d.dec.Decode(&rec); err != nil {
		if err == io.EOF {
			return duration.Duration{}, io.EOF
		}
		return duration.Duration{}, fmt.Errorf("decoding duration record: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return duration.Duration{}, fmt.Errorf("invalid duration record: %w", err)
	}
	return rec.Duration(), nil
}
