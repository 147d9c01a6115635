package commands

import (
	"strings"
	"testing"

	"github.com/caldur/caldur-go/pkg/duration"
)

func TestEval_Valid(t *testing.T) {
	tests := []struct {
		expr string
		want duration.Duration
	}{
		{"P1D", duration.Duration{Day: 1}},
		{"P1D + PT12H", duration.Duration{Day: 1, Hour: 12}},
		{"P1D - PT12H", duration.Duration{Day: 1, Hour: -12}},
		{"2 * PT6H", duration.Duration{Hour: 12}},
		{"PT6H * 2", duration.Duration{Hour: 12}},
		{"- P1D", duration.Duration{Day: -1}},
		{"- P1D + P3D", duration.Duration{Day: 2}},
		{"P1D + 2 * PT6H - PT30M", duration.Duration{Day: 1, Hour: 12, Minute: -30}},
		{"3 * P1W + P2D", duration.Duration{Week: 3, Day: 2}},
		{"PT0.5S + PT0.5S", duration.Duration{Microsecond: duration.Microsecond{Value: 1000000, Precision: 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Eval(tt.expr, nil)
			if err != nil {
				t.Fatalf("Eval(%q) returned error: %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("Eval(%q) = %+v, want %+v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEval_WithResolver(t *testing.T) {
	backoff := duration.Duration{Second: 1, Microsecond: duration.Microsecond{Value: 500000, Precision: 6}}
	resolve := func(name string) (duration.Duration, bool) {
		if name == "backoff" {
			return backoff, true
		}
		return duration.Duration{}, false
	}

	got, err := Eval("backoff + PT1S", resolve)
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	want := duration.Duration{Second: 2, Microsecond: duration.Microsecond{Value: 500000, Precision: 6}}
	if got != want {
		t.Errorf("Eval = %+v, want %+v", got, want)
	}

	got, err = Eval("2 * backoff", resolve)
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	want = duration.Duration{Second: 2, Microsecond: duration.Microsecond{Value: 1000000, Precision: 6}}
	if got != want {
		t.Errorf("Eval = %+v, want %+v", got, want)
	}
}

func TestEval_LiteralWinsOverName(t *testing.T) {
	// A resolver name that collides with a valid duration string never
	// shadows the literal.
	resolve := func(name string) (duration.Duration, bool) {
		return duration.Duration{Year: 9}, true
	}

	got, err := Eval("P1D", resolve)
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if got != (duration.Duration{Day: 1}) {
		t.Errorf("Eval = %+v, want literal P1D", got)
	}
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		expr    string
		wantErr string
	}{
		{"", "empty expression"},
		{"   ", "empty expression"},
		{"P1D +", "unexpected end of expression"},
		{"-", "unexpected end of expression"},
		{"P1D P2D", `expected + or - before "P2D"`},
		{"x * PT6H", `no integer scalar in term "x * PT6H"`},
		{"1.5 * P1D", `no integer scalar in term "1.5 * P1D"`},
		{"2 * nope", `operand "nope": invalid duration string`},
		{"unknownname", `operand "unknownname": invalid duration string`},
		{"PT1HT + P1D", `operand "PT1HT": time delimiter was already provided`},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := Eval(tt.expr, nil)
			if err == nil {
				t.Fatalf("Eval(%q) should return error", tt.expr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Eval(%q) error = %q, want %q", tt.expr, err.Error(), tt.wantErr)
			}
		})
	}
}
