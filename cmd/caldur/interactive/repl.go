// Package interactive implements the caldur REPL.
package interactive

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"github.com/caldur/caldur-go/cmd/caldur/commands"
	"github.com/caldur/caldur-go/pkg/duration"
	"github.com/caldur/caldur-go/pkg/parsecache"
	"github.com/caldur/caldur-go/pkg/presets"
)

// Session holds REPL state: loaded presets plus variables defined with
// set. It is independent of the terminal so commands can be tested
// directly through Execute.
type Session struct {
	presets *presets.Set
	vars    map[string]duration.Duration
	cache   *parsecache.Cache
}

// NewSession creates a session, optionally preloading a presets file.
func NewSession(presetsPath string) (*Session, error) {
	s := &Session{
		vars:  make(map[string]duration.Duration),
		cache: parsecache.NewDefault(),
	}
	if presetsPath != "" {
		set, err := presets.Load(presetsPath)
		if err != nil {
			return nil, err
		}
		s.presets = set
	}
	return s, nil
}

// resolve looks up a name for expressions. Session variables shadow
// file presets, which shadow the builtin set.
func (s *Session) resolve(name string) (duration.Duration, bool) {
	if d, ok := s.vars[name]; ok {
		return d, true
	}
	if s.presets != nil {
		if d, ok := s.presets.Get(name); ok {
			return d, true
		}
	}
	return presets.Builtin().Get(name)
}

// Execute runs one REPL line and returns its output. Exit handling
// belongs to the caller.
func (s *Session) Execute(line string) (string, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		return helpText, nil

	case "parse":
		if len(args) != 1 {
			return "", errors.New("usage: parse <duration>")
		}
		d, err := s.cache.Parse(args[0])
		if err != nil {
			return "", err
		}
		return describe(d), nil

	case "calc":
		if len(args) == 0 {
			return "", errors.New("usage: calc <expression>")
		}
		d, err := commands.Eval(strings.Join(args, " "), s.resolve)
		if err != nil {
			return "", err
		}
		return describe(d), nil

	case "set":
		return s.executeSet(args)

	case "save":
		return s.executeSave(args)

	case "list":
		return s.listNames(), nil

	case "stats":
		hits, misses := s.cache.Stats()
		return fmt.Sprintf("parse cache: %d hits, %d misses", hits, misses), nil

	default:
		return "", fmt.Errorf("unknown command %q (try help)", cmd)
	}
}

// executeSet handles "set NAME = EXPR".
func (s *Session) executeSet(args []string) (string, error) {
	if len(args) < 3 || args[1] != "=" {
		return "", errors.New("usage: set <name> = <expression>")
	}

	name := args[0]
	if _, err := duration.Parse(name); err == nil {
		return "", fmt.Errorf("name %q would be read as a duration literal", name)
	}

	d, err := commands.Eval(strings.Join(args[2:], " "), s.resolve)
	if err != nil {
		return "", err
	}

	s.vars[name] = d
	return fmt.Sprintf("%s = %s", name, describe(d)), nil
}

// executeSave writes the session variables to a presets file so a later
// session can reload them with -presets.
func (s *Session) executeSave(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("usage: save <path>")
	}
	if len(s.vars) == 0 {
		return "", errors.New("no variables to save")
	}

	set := &presets.Set{Durations: s.vars}
	if err := set.Save(args[0]); err != nil {
		return "", err
	}
	return fmt.Sprintf("saved %d variables to %s", len(s.vars), args[0]), nil
}

func (s *Session) listNames() string {
	var sb strings.Builder

	if len(s.vars) > 0 {
		names := make([]string, 0, len(s.vars))
		for name := range s.vars {
			names = append(names, name)
		}
		sort.Strings(names)

		sb.WriteString("variables:\n")
		for _, name := range names {
			fmt.Fprintf(&sb, "  %s = %s\n", name, describe(s.vars[name]))
		}
	}

	if s.presets != nil && s.presets.Len() > 0 {
		sb.WriteString("presets:\n")
		for _, name := range s.presets.Names() {
			d, _ := s.presets.Get(name)
			fmt.Fprintf(&sb, "  %s = %s\n", name, describe(d))
		}
	}

	builtin := presets.Builtin()
	sb.WriteString("builtins:\n")
	for _, name := range builtin.Names() {
		d, _ := builtin.Get(name)
		fmt.Fprintf(&sb, "  %s = %s\n", name, describe(d))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// describe renders a duration for REPL output: the canonical string,
// plus the microsecond pair the text form cannot carry.
func describe(d duration.Duration) string {
	s := d.String()
	if d.Microsecond != (duration.Microsecond{}) {
		s += fmt.Sprintf(" [microsecond %d precision %d]", d.Microsecond.Value, d.Microsecond.Precision)
	}
	return s
}

const helpText = `Commands:
  parse <duration>       Parse an ISO duration string
  calc <expression>      Evaluate a duration expression (+, -, integer *)
  set <name> = <expr>    Define a variable for later expressions
  save <path>            Write the variables to a presets file
  list                   Show variables, presets, and builtins
  stats                  Show parse cache statistics
  help                   Show this help
  exit                   Leave the session`

// Run starts the interactive loop. It returns a process exit code.
func Run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	presetsPath := fs.String("presets", "", "Presets YAML file with named durations")
	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, "Usage: caldur repl [-presets file.yaml]")
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	session, err := NewSession(*presetsPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "caldur> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create readline: %v\n", err)
		return 1
	}
	defer rl.Close()

	fmt.Fprintln(rl.Stdout(), "caldur interactive session (help for commands, exit to leave)")

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(rl.Stdout(), "Exiting...")
			return 0
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			return 0
		}

		out, err := session.Execute(input)
		if err != nil {
			fmt.Fprintf(rl.Stderr(), "Error: %v\n", err)
			continue
		}
		if out != "" {
			fmt.Fprintln(rl.Stdout(), out)
		}
	}
}
