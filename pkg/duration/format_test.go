package duration

import (
	"encoding/json"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		d    Duration
		want string
	}{
		{Duration{}, "P"},
		{Duration{Year: 1}, "P1Y"},
		{Duration{Month: 2}, "P2M"},
		{Duration{Week: 3}, "P3W"},
		{Duration{Day: 4}, "P4D"},
		{Duration{Hour: 5}, "PT5H"},
		{Duration{Minute: 6}, "PT6M"},
		{Duration{Second: 7}, "PT7S"},
		{Duration{Year: 1, Month: 2, Week: 3, Day: 4, Hour: 5, Minute: 6, Second: 7}, "P1Y2M3W4DT5H6M7S"},
		{Duration{Year: 1, Day: 2}, "P1Y2D"},
		{Duration{Minute: 90}, "PT90M"},
		{Duration{Year: -1}, "P-1Y"},
		{Duration{Year: 1, Day: -2, Minute: 30}, "P1Y-2DT30M"},
		{Duration{Week: 3, Hour: 5, Minute: 3}, "P3WT5H3M"},
		// The microsecond pair never reaches the text form.
		{Duration{Microsecond: Microsecond{Value: 500000, Precision: 6}}, "P"},
		{Duration{Second: 1, Microsecond: Microsecond{Value: 500000, Precision: 6}}, "PT1S"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.d.String(); got != tt.want {
				t.Errorf("String(%+v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormat_MatchesString(t *testing.T) {
	d := Duration{Year: 1, Hour: 2}
	if Format(d) != d.String() {
		t.Errorf("Format = %q, String = %q", Format(d), d.String())
	}
}

func TestRoundTrip_Canonical(t *testing.T) {
	// Canonical strings with whole-second values survive a parse/format
	// round trip unchanged.
	inputs := []string{
		"P",
		"P1Y",
		"P1Y2M3DT4H5M6S",
		"P3WT5H3M",
		"P-1Y2M",
		"PT90M",
		"PT-5H3M",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			d, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", input, err)
			}
			if got := d.String(); got != input {
				t.Errorf("round trip of %q = %q", input, got)
			}
		})
	}
}

func TestMarshalText(t *testing.T) {
	d := Duration{Day: 1, Hour: 12}
	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText returned error: %v", err)
	}
	if string(text) != "P1DT12H" {
		t.Errorf("MarshalText = %q, want %q", text, "P1DT12H")
	}
}

func TestUnmarshalText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("P3WT5H3M")); err != nil {
		t.Fatalf("UnmarshalText returned error: %v", err)
	}
	want := Duration{Week: 3, Hour: 5, Minute: 3}
	if d != want {
		t.Errorf("UnmarshalText = %+v, want %+v", d, want)
	}

	if err := d.UnmarshalText([]byte("nope")); err == nil {
		t.Error("UnmarshalText should reject invalid input")
	}
}

func TestJSONInterop(t *testing.T) {
	type policy struct {
		Retention Duration `json:"retention"`
		Heartbeat Duration `json:"heartbeat"`
	}

	p := policy{
		Retention: Duration{Day: 90},
		Heartbeat: Duration{Second: 30},
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	want := `{"retention":"P90D","heartbeat":"PT30S"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var back policy
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if back != p {
		t.Errorf("round trip = %+v, want %+v", back, p)
	}

	var bad policy
	err = json.Unmarshal([]byte(`{"retention":"90 days"}`), &bad)
	if err == nil {
		t.Error("Unmarshal should reject a non-ISO duration string")
	}
}
