package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/caldur/caldur-go/pkg/duration"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitParseError   = 2
)

// jsonDuration is the structured JSON rendering: the canonical string
// plus every nonzero field.
type jsonDuration struct {
	ISO         string `json:"iso"`
	Year        int64  `json:"year,omitempty"`
	Month       int64  `json:"month,omitempty"`
	Week        int64  `json:"week,omitempty"`
	Day         int64  `json:"day,omitempty"`
	Hour        int64  `json:"hour,omitempty"`
	Minute      int64  `json:"minute,omitempty"`
	Second      int64  `json:"second,omitempty"`
	Microsecond int64  `json:"microsecond,omitempty"`
	Precision   uint8  `json:"precision,omitempty"`
}

// renderDuration writes one duration in the requested output format:
// "iso" (canonical string), "json" (one object per line), or "fields"
// (nonzero fields, one per line).
func renderDuration(w io.Writer, d duration.Duration, format string) error {
	switch format {
	case "iso":
		fmt.Fprintln(w, d.String())

	case "json":
		out := jsonDuration{
			ISO:         d.String(),
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
		data, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))

	case "fields":
		writeFieldLines(w, d)

	default:
		return fmt.Errorf("unknown output format %q (want iso, json, or fields)", format)
	}
	return nil
}

// writeFieldLines prints the nonzero fields, one per line.
func writeFieldLines(w io.Writer, d duration.Duration) {
	fields := []struct {
		unit  duration.Unit
		value int64
	}{
		{duration.UnitYear, d.Year},
		{duration.UnitMonth, d.Month},
		{duration.UnitWeek, d.Week},
		{duration.UnitDay, d.Day},
		{duration.UnitHour, d.Hour},
		{duration.UnitMinute, d.Minute},
		{duration.UnitSecond, d.Second},
	}

	empty := true
	for _, f := range fields {
		if f.value != 0 {
			fmt.Fprintf(w, "  %s: %d\n", f.unit, f.value)
			empty = false
		}
	}
	if d.Microsecond != (duration.Microsecond{}) {
		fmt.Fprintf(w, "  microsecond: %d (precision %d)\n", d.Microsecond.Value, d.Microsecond.Precision)
		empty = false
	}
	if empty {
		fmt.Fprintln(w, "  (zero)")
	}
}
