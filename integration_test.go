package caldur_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/caldur/caldur-go/cmd/caldur/commands"
	"github.com/caldur/caldur-go/cmd/caldur/interactive"
	"github.com/caldur/caldur-go/pkg/duration"
	"github.com/caldur/caldur-go/pkg/parsecache"
	"github.com/caldur/caldur-go/pkg/presets"
	"github.com/caldur/caldur-go/pkg/wire"
)

// TestE2E_ParseMathWire covers the full value pipeline: text in,
// arithmetic, binary out, and back.
func TestE2E_ParseMathWire(t *testing.T) {
	base, err := duration.Parse("P1Y2M3DT4H5M6S")
	if err != nil {
		t.Fatalf("parsing base: %v", err)
	}
	fraction, err := duration.Parse("PT1.5S")
	if err != nil {
		t.Fatalf("parsing fraction: %v", err)
	}

	sum := base.Add(fraction)
	want := duration.Duration{
		Year: 1, Month: 2, Day: 3, Hour: 4, Minute: 5, Second: 7,
		Microsecond: duration.Microsecond{Value: 500000, Precision: 6},
	}
	if sum != want {
		t.Fatalf("sum = %+v, want %+v", sum, want)
	}

	data, err := wire.Marshal(sum)
	if err != nil {
		t.Fatalf("encoding: %v", err)
	}
	decoded, err := wire.Unmarshal(data)
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if decoded != sum {
		t.Errorf("decoded = %+v, want %+v", decoded, sum)
	}

	// The text form drops the microsecond pair; the wire form kept it.
	if got := sum.String(); got != "P1Y2M3DT4H5M7S" {
		t.Errorf("String() = %q", got)
	}
}

// TestE2E_PresetsExpression loads a presets file and evaluates an
// expression mixing file names, builtin names, and literals.
func TestE2E_PresetsExpression(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	content := `
version: 1
durations:
  notice: P3D
  grace: PT36H
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := presets.Load(path)
	if err != nil {
		t.Fatalf("loading presets: %v", err)
	}

	builtin := presets.Builtin()
	resolve := func(name string) (duration.Duration, bool) {
		if d, ok := set.Get(name); ok {
			return d, true
		}
		return builtin.Get(name)
	}

	got, err := commands.Eval("monthly - notice + 2 * grace - PT1H", resolve)
	if err != nil {
		t.Fatalf("evaluating: %v", err)
	}
	want := duration.Duration{Month: 1, Day: -3, Hour: 71}
	if got != want {
		t.Errorf("result = %+v, want %+v", got, want)
	}
}

// TestE2E_SessionSaveReload drives an interactive session, saves its
// variables, and reloads them in a second session.
func TestE2E_SessionSaveReload(t *testing.T) {
	first, err := interactive.NewSession("")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	steps := []string{
		"set sprint = 2 * weekly",
		"set review = sprint - P2D",
	}
	for _, step := range steps {
		if _, err := first.Execute(step); err != nil {
			t.Fatalf("%q: %v", step, err)
		}
	}

	path := filepath.Join(t.TempDir(), "team.yaml")
	if _, err := first.Execute("save " + path); err != nil {
		t.Fatalf("saving: %v", err)
	}

	second, err := interactive.NewSession(path)
	if err != nil {
		t.Fatalf("reloading session: %v", err)
	}
	out, err := second.Execute("calc review + P2D")
	if err != nil {
		t.Fatalf("calc in reloaded session: %v", err)
	}
	if out != "P2W" {
		t.Errorf("calc output = %q, want P2W", out)
	}
}

// TestE2E_CachedParseAgreement checks that cached and direct parsing
// agree, including on failures.
func TestE2E_CachedParseAgreement(t *testing.T) {
	cache := parsecache.NewDefault()

	inputs := []string{"P1Y", "PT1.5S", "P3WT5H3M", "P1Y", "PT1.5S"}
	for _, input := range inputs {
		direct, err := duration.Parse(input)
		if err != nil {
			t.Fatalf("parsing %q: %v", input, err)
		}
		cached, err := cache.Parse(input)
		if err != nil {
			t.Fatalf("cached parsing %q: %v", input, err)
		}
		if cached != direct {
			t.Errorf("%q: cached = %+v, direct = %+v", input, cached, direct)
		}
	}

	if _, err := cache.Parse("P4Y2W3Y"); err == nil {
		t.Error("cached parse should propagate failures")
	}

	hits, misses := cache.Stats()
	if hits != 2 || misses != 4 {
		t.Errorf("stats = %d hits, %d misses; want 2 and 4", hits, misses)
	}
}
