package duration

import (
	"strconv"
	"strings"
)

// String renders d in the ISO 8601-2 duration form. Only nonzero fields
// appear, date fields in Y, M, W, D order, then a T and the nonzero time
// fields in H, M, S order. The all-zero Duration renders as "P".
//
// The microsecond pair is not represented; "PT1.5S" parses to second 1
// with microsecond {500000, 6} but renders back as "PT1S". Text is lossy
// on the sub-second part; the wire form is not.
func (d Duration) String() string {
	var sb strings.Builder
	sb.WriteByte('P')

	writeField(&sb, d.Year, 'Y')
	writeField(&sb, d.Month, 'M')
	writeField(&sb, d.Week, 'W')
	writeField(&sb, d.Day, 'D')

	if d.Hour != 0 || d.Minute != 0 || d.Second != 0 {
		sb.WriteByte('T')
		writeField(&sb, d.Hour, 'H')
		writeField(&sb, d.Minute, 'M')
		writeField(&sb, d.Second, 'S')
	}

	return sb.String()
}

// Format renders d in the ISO 8601-2 duration form. It is the function
// form of String.
func Format(d Duration) string {
	return d.String()
}

func writeField(sb *strings.Builder, v int64, designator byte) {
	if v == 0 {
		return
	}
	sb.WriteString(strconv.FormatInt(v, 10))
	sb.WriteByte(designator)
}

// MarshalText implements encoding.TextMarshaler using the String form.
// This lets a Duration pass through encoding/json and friends as a
// quoted ISO string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
