package commands

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/caldur/caldur-go/pkg/wire"
)

// DecodeOptions configures the decode command.
type DecodeOptions struct {
	Output string
	Inputs []string
}

// RunDecode runs the decode command: each argument is a hex CBOR wire
// record, decoded and printed in the requested format.
func RunDecode(args []string, stdout, stderr io.Writer) int {
	opts, err := parseDecodeArgs(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printDecodeUsage(stdout)
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if len(opts.Inputs) == 0 {
		fmt.Fprintln(stderr, "Error: no hex records given")
		printDecodeUsage(stderr)
		return exitCommandError
	}

	for _, input := range opts.Inputs {
		data, err := hex.DecodeString(strings.TrimSpace(input))
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", input, err)
			return exitParseError
		}
		d, err := wire.Unmarshal(data)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", input, err)
			return exitParseError
		}
		if err := renderDuration(stdout, d, opts.Output); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
	}

	return exitSuccess
}

func parseDecodeArgs(args []string) (DecodeOptions, error) {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	opts := DecodeOptions{}

	fs.StringVar(&opts.Output, "output", "fields", "Output format: iso, json, fields")
	fs.StringVar(&opts.Output, "o", "fields", "Output format (shorthand)")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.Inputs = fs.Args()
	return opts, nil
}

func printDecodeUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: caldur decode [options] <hex>...

Decodes hex CBOR wire records. The default fields output shows the
microsecond pair, which the ISO text form cannot carry.

Options:
  -o, --output   Output format: iso, json, fields [default: fields]

Examples:
  caldur decode a10101
  caldur decode --output iso a2081903e80904`)
}
