package wire

import (
	"fmt"

	"github.com/caldur/caldur-go/pkg/duration"
)

// Record is the integer-keyed CBOR layout of a Duration. Zero fields are
// omitted, so the zero Duration encodes as the empty map.
type Record struct {
	Year        int64 `cbor:"1,keyasint,omitempty"`
	Month       int64 `cbor:"2,keyasint,omitempty"`
	Week        int64 `cbor:"3,keyasint,omitempty"`
	Day         int64 `cbor:"4,keyasint,omitempty"`
	Hour        int64 `cbor:"5,keyasint,omitempty"`
	Minute      int64 `cbor:"6,keyasint,omitempty"`
	Second      int64 `cbor:"7,keyasint,omitempty"`
	Microsecond int64 `cbor:"8,keyasint,omitempty"`
	Precision   uint8 `cbor:"9,keyasint,omitempty"`
}

// NewRecord converts a Duration into its wire layout.
func NewRecord(d duration.Duration) Record {
	return Record{
		Year:        d.Year,
		Month:       d.Month,
		Week:        d.Week,
		Day:         d.Day,
		Hour:        d.Hour,
		Minute:      d.Minute,
		Second:      d.Second,
		Microsecond: d.Microsecond.Value,
		Precision:   d.Microsecond.Precision,
	}
}

// Validate checks wire-level invariants. It runs before encode and after
// decode so malformed records never cross a process boundary.
func (r *Record) Validate() error {
	if r.Precision > duration.MaxPrecision {
		return fmt.Errorf("invalid microsecond precision %d", r.Precision)
	}
	return nil
}

// Duration converts the record back into a value.
func (r *Record) Duration() duration.Duration {
	return duration.Duration{
		Year:   r.Year,
		Month:  r.Month,
		Week:   r.Week,
		Day:    r.Day,
		Hour:   r.Hour,
		Minute: r.Minute,
		Second: r.Second,
		Microsecond: duration.Microsecond{
			Value:     r.Microsecond,
			Precision: r.Precision,
		},
	}
}
