// caldur is a CLI tool for working with ISO 8601-2 calendar durations.
package main

import (
	"fmt"
	"os"

	"github.com/caldur/caldur-go/cmd/caldur/commands"
	"github.com/caldur/caldur-go/cmd/caldur/interactive"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "parse":
		exitCode = commands.RunParse(args, os.Stdout, os.Stderr)
	case "calc":
		exitCode = commands.RunCalc(args, os.Stdout, os.Stderr)
	case "encode":
		exitCode = commands.RunEncode(args, os.Stdout, os.Stderr)
	case "decode":
		exitCode = commands.RunDecode(args, os.Stdout, os.Stderr)
	case "repl":
		exitCode = interactive.Run(args, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("caldur version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`caldur - ISO 8601-2 duration tool

Usage:
  caldur <command> [options] [args...]

Commands:
  parse      Parse duration strings and print their fields
  calc       Evaluate a duration expression (+, -, integer *)
  encode     Encode duration strings as CBOR wire records (hex)
  decode     Decode hex CBOR wire records back to durations
  repl       Interactive session with variables and presets

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  caldur parse P1Y2M3DT4H5M6S
  caldur calc P1D + 2 '*' PT6H
  caldur encode PT1.5S
  caldur repl --presets timeouts.yaml

For command-specific help, run:
  caldur <command> --help`)
}
