package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/caldur/caldur-go/pkg/duration"
)

// ParseOptions configures the parse command.
type ParseOptions struct {
	Output string
	Inputs []string
}

// RunParse runs the parse command: each argument is parsed as an ISO
// 8601-2 duration string and printed in the requested format.
func RunParse(args []string, stdout, stderr io.Writer) int {
	opts, err := parseParseArgs(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printParseUsage(stdout)
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if len(opts.Inputs) == 0 {
		fmt.Fprintln(stderr, "Error: no duration strings given")
		printParseUsage(stderr)
		return exitCommandError
	}

	header := len(opts.Inputs) > 1 && opts.Output == "fields"
	for _, input := range opts.Inputs {
		d, err := duration.Parse(input)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", input, err)
			return exitParseError
		}
		if header {
			fmt.Fprintf(stdout, "%s\n", input)
		}
		if err := renderDuration(stdout, d, opts.Output); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
	}

	return exitSuccess
}

func parseParseArgs(args []string) (ParseOptions, error) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	opts := ParseOptions{}

	fs.StringVar(&opts.Output, "output", "iso", "Output format: iso, json, fields")
	fs.StringVar(&opts.Output, "o", "iso", "Output format (shorthand)")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.Inputs = fs.Args()
	return opts, nil
}

func printParseUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: caldur parse [options] <duration>...

Options:
  -o, --output   Output format: iso, json, fields [default: iso]

Examples:
  caldur parse P1Y2M3DT4H5M6S
  caldur parse --output fields P3WT5H3M
  caldur parse --output json PT1.5S P90D`)
}
