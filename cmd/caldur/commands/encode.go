package commands

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/caldur/caldur-go/pkg/duration"
	"github.com/caldur/caldur-go/pkg/wire"
)

// RunEncode runs the encode command: parse each argument and print its
// CBOR wire record as lowercase hex, one per line.
func RunEncode(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printEncodeUsage(stdout)
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(stderr, "Error: no duration strings given")
		printEncodeUsage(stderr)
		return exitCommandError
	}

	for _, input := range inputs {
		d, err := duration.Parse(input)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", input, err)
			return exitParseError
		}
		data, err := wire.Marshal(d)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", input, err)
			return exitCommandError
		}
		fmt.Fprintln(stdout, hex.EncodeToString(data))
	}

	return exitSuccess
}

func printEncodeUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: caldur encode <duration>...

Parses each duration string and prints its CBOR wire record as hex.
Unlike the text form, the wire record keeps fractional seconds.

Examples:
  caldur encode P1Y
  caldur encode PT1.5S P90D`)
}
