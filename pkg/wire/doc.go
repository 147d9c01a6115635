// Package wire implements the compact binary interchange form for
// durations.
//
// A Duration travels as a CBOR map with small integer keys:
//
//	1-7  year, month, week, day, hour, minute, second (omitted when zero)
//	8    microsecond value (omitted when zero)
//	9    microsecond precision (omitted when zero)
//
// Encoding is deterministic: canonical key order and definite lengths
// only, so equal durations always produce identical bytes and the zero
// duration is the empty map. Decoding is strict and mirrors the text
// parser: duplicate keys and unknown keys are rejected, and the
// precision must be 0 through 6.
//
// Unlike the ISO text form, the wire form carries the microsecond pair
// losslessly, so it is the right choice for storage and replication.
package wire
