package duration

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors with fixed text. Parameterized failures use the typed
// errors below.
var (
	// ErrInvalidDuration reports input that is not an ISO 8601-2 duration
	// string: empty, missing the leading P, or ending with digits that
	// belong to no unit.
	ErrInvalidDuration = errors.New("invalid duration string")

	// ErrTimeDelimiter reports a second T in the same string.
	ErrTimeDelimiter = errors.New("time delimiter was already provided")
)

// DuplicateUnitError reports a unit that appears more than once, such as
// the second year in "P4Y2W3Y".
type DuplicateUnitError struct {
	Unit Unit
}

func (e *DuplicateUnitError) Error() string {
	return e.Unit.String() + " was already provided"
}

// UnexpectedCharacterError reports a character with no meaning at its
// position: a time designator before the T, a date designator after it,
// or a character outside the grammar entirely.
type UnexpectedCharacterError struct {
	Char byte
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character: %c", e.Char)
}

// InvalidValueError reports a number buffer that does not parse for the
// unit whose designator follows it.
type InvalidValueError struct {
	Unit  Unit
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Unit, e.Value)
}

// Parse reads an ISO 8601-2 duration string such as "P1Y2M3DT4H5M6S".
//
// The walk is a single forward pass: digits, minus signs and dots extend
// the pending number buffer; T flips to time mode and discards any
// pending buffer; a designator consumes the buffer into its unit. Each
// unit may be given at most once, and the duplicate check runs before the
// value parse, so "P1Y2Y" reports the repeated year rather than a bad
// value. Only the seconds value may carry a decimal fraction; it lands in
// the microsecond pair at precision 6.
//
// "P" and "PT" parse to the zero Duration.
func Parse(s string) (Duration, error) {
	if len(s) == 0 || s[0] != 'P' {
		return Duration{}, ErrInvalidDuration
	}

	var (
		fields   []Field
		seen     uint16 // bitmask of consumed units
		timePart bool
		start    = 1 // first byte of the pending number buffer
	)

	for i := 1; i < len(s); i++ {
		c := s[i]

		if c >= '0' && c <= '9' || c == '-' || c == '.' {
			continue // extends the buffer s[start:i+1]
		}

		if c == 'T' {
			if timePart {
				return Duration{}, ErrTimeDelimiter
			}
			timePart = true
			start = i + 1
			continue
		}

		unit, ok := designator(c, timePart)
		if !ok {
			return Duration{}, &UnexpectedCharacterError{Char: c}
		}
		if seen&(1<<unit) != 0 {
			return Duration{}, &DuplicateUnitError{Unit: unit}
		}
		seen |= 1 << unit

		buf := s[start:i]
		start = i + 1

		if unit == UnitSecond {
			sec, usec, err := parseSeconds(buf)
			if err != nil {
				return Duration{}, err
			}
			fields = append(fields, Field{Unit: UnitSecond, Value: sec})
			if usec.Value != 0 {
				fields = append(fields, Field{Unit: UnitMicrosecond, Value: usec})
			}
			continue
		}

		v, err := strconv.ParseInt(buf, 10, 64)
		if err != nil {
			return Duration{}, &InvalidValueError{Unit: unit, Value: buf}
		}
		fields = append(fields, Field{Unit: unit, Value: v})
	}

	if start != len(s) {
		// Trailing number with no designator, as in "P3Y2".
		return Duration{}, ErrInvalidDuration
	}

	return New(fields...)
}

// MustParse is Parse for strings known valid at compile time, such as
// package-level defaults. It panics with the parse reason on failure.
func MustParse(s string) Duration {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse duration. reason: %q", err))
	}
	return d
}

// designator maps a designator character to its unit. M means month
// before the time delimiter and minute after it.
func designator(c byte, timePart bool) (Unit, bool) {
	if timePart {
		switch c {
		case 'H':
			return UnitHour, true
		case 'M':
			return UnitMinute, true
		case 'S':
			return UnitSecond, true
		}
		return 0, false
	}
	switch c {
	case 'Y':
		return UnitYear, true
	case 'M':
		return UnitMonth, true
	case 'W':
		return UnitWeek, true
	case 'D':
		return UnitDay, true
	}
	return 0, false
}

// parseSeconds splits a seconds buffer on its decimal point. The whole
// part becomes the second field; the first six fraction digits, right
// padded with zeros, become the microsecond value at precision 6. Digits
// past the sixth are dropped. The split stays in decimal-string space;
// no float conversion is involved. A leading minus applies to both
// parts.
func parseSeconds(buf string) (int64, Microsecond, error) {
	dot := strings.IndexByte(buf, '.')
	if dot < 0 {
		sec, err := strconv.ParseInt(buf, 10, 64)
		if err != nil {
			return 0, Microsecond{}, &InvalidValueError{Unit: UnitSecond, Value: buf}
		}
		return sec, Microsecond{}, nil
	}

	whole, frac := buf[:dot], buf[dot+1:]
	neg := strings.HasPrefix(whole, "-")
	if neg {
		whole = whole[1:]
	}
	if whole == "" || frac == "" || !allDigits(whole) || !allDigits(frac) {
		return 0, Microsecond{}, &InvalidValueError{Unit: UnitSecond, Value: buf}
	}

	sec, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, Microsecond{}, &InvalidValueError{Unit: UnitSecond, Value: buf}
	}

	if len(frac) > MaxPrecision {
		frac = frac[:MaxPrecision]
	}
	var usec int64
	for i := 0; i < len(frac); i++ {
		usec = usec*10 + int64(frac[i]-'0')
	}
	for i := len(frac); i < MaxPrecision; i++ {
		usec *= 10
	}

	if neg {
		sec, usec = -sec, -usec
	}
	if usec == 0 {
		return sec, Microsecond{}, nil
	}
	return sec, Microsecond{Value: usec, Precision: MaxPrecision}, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
