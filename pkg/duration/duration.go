package duration

import (
	"fmt"
)

// MaxPrecision is the largest microsecond precision a Duration can carry.
const MaxPrecision = 6

// Unit identifies a single duration unit field.
type Unit uint8

const (
	// UnitYear is the calendar year field.
	UnitYear Unit = iota + 1

	// UnitMonth is the calendar month field.
	UnitMonth

	// UnitWeek is the week field. A week never normalizes to seven days.
	UnitWeek

	// UnitDay is the day field.
	UnitDay

	// UnitHour is the clock hour field.
	UnitHour

	// UnitMinute is the clock minute field.
	UnitMinute

	// UnitSecond is the clock second field.
	UnitSecond

	// UnitMicrosecond is the sub-second field with its precision.
	UnitMicrosecond
)

// String returns the unit name as it appears in error messages.
func (u Unit) String() string {
	switch u {
	case UnitYear:
		return "year"
	case UnitMonth:
		return "month"
	case UnitWeek:
		return "week"
	case UnitDay:
		return "day"
	case UnitHour:
		return "hour"
	case UnitMinute:
		return "minute"
	case UnitSecond:
		return "second"
	case UnitMicrosecond:
		return "microsecond"
	default:
		return "unknown"
	}
}

// Microsecond is the sub-second component of a Duration.
type Microsecond struct {
	// Value is the signed magnitude in microseconds.
	Value int64

	// Precision is the number of significant fractional digits, 0
	// through 6. It is round-trip metadata, not a scale factor: the
	// value 1000 means 1000 microseconds at any precision.
	Precision uint8
}

// Duration is an amount of calendar and clock time held as named units.
//
// Every field defaults to zero and may independently be negative. The
// zero Duration{} is valid everywhere a duration is accepted. Fields are
// never normalized across units; see the package documentation.
type Duration struct {
	Year   int64
	Month  int64
	Week   int64
	Day    int64
	Hour   int64
	Minute int64
	Second int64

	// Microsecond carries the sub-second part with its stated precision.
	Microsecond Microsecond
}

// Field is a single (unit, value) pair for New. Value must be a built-in
// integer for the seven scalar units and a Microsecond for
// UnitMicrosecond.
type Field struct {
	Unit  Unit
	Value any
}

// New builds a Duration from unit fields, validating each pair. A later
// pair overwrites an earlier one for the same unit. It fails on the first
// unknown unit, non-integer scalar value, or malformed microsecond pair.
//
// Static construction uses composite literals; New is for dynamic
// construction where the unit set is data, such as parsed or decoded
// input.
func New(fields ...Field) (Duration, error) {
	var d Duration
	for _, f := range fields {
		switch f.Unit {
		case UnitMicrosecond:
			ms, ok := f.Value.(Microsecond)
			if !ok || ms.Precision > MaxPrecision {
				return Duration{}, fmt.Errorf("invalid value for microsecond: expected a Microsecond pair with precision 0 through 6, got %v", f.Value)
			}
			d.Microsecond = ms
		case UnitYear, UnitMonth, UnitWeek, UnitDay, UnitHour, UnitMinute, UnitSecond:
			v, ok := toInt64(f.Value)
			if !ok {
				return Duration{}, fmt.Errorf("invalid value for %s: expected an integer, got %T", f.Unit, f.Value)
			}
			d.set(f.Unit, v)
		default:
			return Duration{}, fmt.Errorf("unknown unit %d", uint8(f.Unit))
		}
	}
	return d, nil
}

// set assigns a scalar unit field. The caller has already validated u.
func (d *Duration) set(u Unit, v int64) {
	switch u {
	case UnitYear:
		d.Year = v
	case UnitMonth:
		d.Month = v
	case UnitWeek:
		d.Week = v
	case UnitDay:
		d.Day = v
	case UnitHour:
		d.Hour = v
	case UnitMinute:
		d.Minute = v
	case UnitSecond:
		d.Second = v
	}
}

// Add returns the fieldwise sum of d and other. Each unit is added
// independently and nothing carries between units: adding 40 minutes to
// 30 minutes gives 70 minutes, not 1 hour 10 minutes. The microsecond
// pair keeps the larger of the two precisions.
func (d Duration) Add(other Duration) Duration {
	return Duration{
		Year:   d.Year + other.Year,
		Month:  d.Month + other.Month,
		Week:   d.Week + other.Week,
		Day:    d.Day + other.Day,
		Hour:   d.Hour + other.Hour,
		Minute: d.Minute + other.Minute,
		Second: d.Second + other.Second,
		Microsecond: Microsecond{
			Value:     d.Microsecond.Value + other.Microsecond.Value,
			Precision: max(d.Microsecond.Precision, other.Microsecond.Precision),
		},
	}
}

// Subtract returns d minus other, fieldwise. Individual fields may go
// negative.
func (d Duration) Subtract(other Duration) Duration {
	return d.Add(other.Negate())
}

// Multiply returns d with every unit, including the microsecond value,
// scaled by k. The microsecond precision is unchanged.
func (d Duration) Multiply(k int64) Duration {
	return Duration{
		Year:   d.Year * k,
		Month:  d.Month * k,
		Week:   d.Week * k,
		Day:    d.Day * k,
		Hour:   d.Hour * k,
		Minute: d.Minute * k,
		Second: d.Second * k,
		Microsecond: Microsecond{
			Value:     d.Microsecond.Value * k,
			Precision: d.Microsecond.Precision,
		},
	}
}

// Negate returns d with the sign of every unit flipped. Negate is its own
// inverse.
func (d Duration) Negate() Duration {
	return d.Multiply(-1)
}

// toInt64 widens any built-in integer kind.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}
