package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/caldur/caldur-go/pkg/duration"
	"github.com/caldur/caldur-go/pkg/presets"
)

// CalcOptions configures the calc command.
type CalcOptions struct {
	Presets    string
	Output     string
	Expression string
}

// RunCalc runs the calc command: the arguments form one duration
// expression, evaluated left to right. Builtin names like daily and
// weekly are always usable as operands; with --presets, names from the
// file shadow them.
func RunCalc(args []string, stdout, stderr io.Writer) int {
	opts, err := parseCalcArgs(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printCalcUsage(stdout)
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.Expression == "" {
		fmt.Fprintln(stderr, "Error: no expression given")
		printCalcUsage(stderr)
		return exitCommandError
	}

	var fileSet *presets.Set
	if opts.Presets != "" {
		set, err := presets.Load(opts.Presets)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		fileSet = set
	}

	builtin := presets.Builtin()
	resolve := func(name string) (duration.Duration, bool) {
		if fileSet != nil {
			if d, ok := fileSet.Get(name); ok {
				return d, true
			}
		}
		return builtin.Get(name)
	}

	result, err := Eval(opts.Expression, resolve)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitParseError
	}

	if err := renderDuration(stdout, result, opts.Output); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	return exitSuccess
}

func parseCalcArgs(args []string) (CalcOptions, error) {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	opts := CalcOptions{}

	fs.StringVar(&opts.Presets, "presets", "", "Presets YAML file with named durations")
	fs.StringVar(&opts.Output, "output", "iso", "Output format: iso, json, fields")
	fs.StringVar(&opts.Output, "o", "iso", "Output format (shorthand)")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.Expression = strings.Join(fs.Args(), " ")
	return opts, nil
}

func printCalcUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: caldur calc [options] <expression>

The expression is evaluated left to right. Terms are joined by + or -,
and a term may scale a duration by an integer with *. Operands are ISO
duration strings, builtin names (daily, weekly, monthly, ...), or,
with --presets, names from the presets file.

Options:
  --presets      Presets YAML file with named durations
  -o, --output   Output format: iso, json, fields [default: iso]

Examples:
  caldur calc P1D + PT12H
  caldur calc 2 '*' PT6H - PT30M
  caldur calc 3 '*' weekly
  caldur calc --presets timeouts.yaml backoff + PT1S`)
}
