package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/caldur/caldur-go/pkg/duration"
)

// Resolver maps a bare name in an expression to a duration. Presets and
// REPL variables plug in here; a nil Resolver leaves names unresolved.
type Resolver func(name string) (duration.Duration, bool)

// Eval evaluates a duration expression left to right:
//
//	expr    := ["-"] term (("+" | "-") term)*
//	term    := int "*" operand | operand "*" int | operand
//	operand := ISO duration string | name
//
// Tokens are separated by whitespace: "P1D + 2 * PT6H - backoff".
func Eval(expr string, resolve Resolver) (duration.Duration, error) {
	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return duration.Duration{}, errors.New("empty expression")
	}

	negateFirst := false
	if tokens[0] == "-" {
		negateFirst = true
		tokens = tokens[1:]
	}

	term, n, err := parseTerm(tokens, resolve)
	if err != nil {
		return duration.Duration{}, err
	}
	if negateFirst {
		term = term.Negate()
	}

	total := term
	i := n
	for i < len(tokens) {
		op := tokens[i]
		if op != "+" && op != "-" {
			return duration.Duration{}, fmt.Errorf("expected + or - before %q", op)
		}
		i++

		term, n, err := parseTerm(tokens[i:], resolve)
		if err != nil {
			return duration.Duration{}, err
		}
		i += n

		if op == "+" {
			total = total.Add(term)
		} else {
			total = total.Subtract(term)
		}
	}

	return total, nil
}

// parseTerm consumes one term from the front of tokens and reports how
// many tokens it used.
func parseTerm(tokens []string, resolve Resolver) (duration.Duration, int, error) {
	if len(tokens) == 0 {
		return duration.Duration{}, 0, errors.New("unexpected end of expression")
	}

	if len(tokens) >= 3 && tokens[1] == "*" {
		if k, err := strconv.ParseInt(tokens[0], 10, 64); err == nil {
			d, err := parseOperand(tokens[2], resolve)
			if err != nil {
				return duration.Duration{}, 0, err
			}
			return d.Multiply(k), 3, nil
		}
		if k, err := strconv.ParseInt(tokens[2], 10, 64); err == nil {
			d, err := parseOperand(tokens[0], resolve)
			if err != nil {
				return duration.Duration{}, 0, err
			}
			return d.Multiply(k), 3, nil
		}
		return duration.Duration{}, 0, fmt.Errorf("no integer scalar in term %q", strings.Join(tokens[:3], " "))
	}

	d, err := parseOperand(tokens[0], resolve)
	if err != nil {
		return duration.Duration{}, 0, err
	}
	return d, 1, nil
}

// parseOperand reads a single operand: an ISO duration string, or a name
// known to the resolver.
func parseOperand(token string, resolve Resolver) (duration.Duration, error) {
	d, perr := duration.Parse(token)
	if perr == nil {
		return d, nil
	}
	if resolve != nil {
		if d, ok := resolve(token); ok {
			return d, nil
		}
	}
	return duration.Duration{}, fmt.Errorf("operand %q: %w", token, perr)
}
