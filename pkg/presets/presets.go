// Package presets loads named duration sets from YAML.
//
// A presets file gives durations stable names so that config-driven
// timeouts, retentions and backoffs live in one place:
//
//	version: 1
//	durations:
//	  retention: P90D
//	  heartbeat: PT30S
//	  backoff: PT1.5S
//
// Values use the ISO 8601-2 duration form understood by the duration
// package. A small builtin set of common calendar durations (daily,
// weekly, monthly, ...) ships with the package; see Builtin.
package presets

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/caldur/caldur-go/pkg/duration"
)

// SchemaVersion is the presets file version this package reads. Files
// without a version field are treated as current.
const SchemaVersion = 1

// Set is a named collection of durations.
type Set struct {
	Version   int
	Durations map[string]duration.Duration
}

// rawSet is the YAML layout before duration strings are parsed.
type rawSet struct {
	Version   int               `yaml:"version"`
	Durations map[string]string `yaml:"durations"`
}

// Parse parses a presets document from YAML bytes. Every duration string
// must parse; the first bad entry fails the whole document.
func Parse(data []byte) (*Set, error) {
	var raw rawSet
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing presets: %w", err)
	}

	if raw.Version != 0 && raw.Version != SchemaVersion {
		return nil, fmt.Errorf("unsupported presets version %d", raw.Version)
	}

	set := &Set{
		Version:   SchemaVersion,
		Durations: make(map[string]duration.Duration, len(raw.Durations)),
	}
	for name, value := range raw.Durations {
		d, err := duration.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("parsing preset %q: %w", name, err)
		}
		set.Durations[name] = d
	}
	return set, nil
}

// Load loads and parses a presets file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Marshal renders the set as presets YAML. It fails if any duration
// carries a microsecond pair, since the text form cannot hold one and
// writing it out would silently drop the fraction.
func (s *Set) Marshal() ([]byte, error) {
	raw := rawSet{
		Version:   SchemaVersion,
		Durations: make(map[string]string, len(s.Durations)),
	}
	for _, name := range s.Names() {
		d := s.Durations[name]
		if d.Microsecond != (duration.Microsecond{}) {
			return nil, fmt.Errorf("preset %q: microsecond pair (%d, precision %d) has no text form",
				name, d.Microsecond.Value, d.Microsecond.Precision)
		}
		raw.Durations[name] = d.String()
	}

	data, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encoding presets: %w", err)
	}
	return data, nil
}

// Save writes the set to path as presets YAML, creating parent
// directories as needed. The result loads back with Load.
func (s *Set) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Get returns the duration stored under name.
func (s *Set) Get(name string) (duration.Duration, bool) {
	d, ok := s.Durations[name]
	return d, ok
}

// Names returns the preset names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.Durations))
	for name := range s.Durations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of presets in the set.
func (s *Set) Len() int {
	return len(s.Durations)
}

//go:embed builtin.yaml
var builtinYAML []byte

var (
	builtinOnce sync.Once
	builtinSet  *Set
)

// Builtin returns the embedded set of common calendar durations, such
// as daily (P1D) and monthly (P1M). The set is parsed once and shared;
// callers must not mutate it.
func Builtin() *Set {
	builtinOnce.Do(func() {
		set, err := Parse(builtinYAML)
		if err != nil {
			panic(fmt.Sprintf("parsing builtin presets: %v", err))
		}
		builtinSet = set
	})
	return builtinSet
}
