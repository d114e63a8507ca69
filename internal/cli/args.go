// Package cli validates the positional command line of the gate trainer.
package cli

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	"gatetrainer/internal/dataset"
)

// Exit statuses for invalid command lines.
const (
	ExitUsage      = 1
	ExitGate       = 2
	ExitDebug      = 3
	ExitRate       = 4
	ExitIterations = 5
)

// Usage is the one-line synopsis of the positional form.
const Usage = "<gate> <debug> <rate> <iter>"

// ExitError is a validation failure paired with the process exit status it
// maps to.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Cause returns the underlying error.
func (e *ExitError) Cause() error { return e.Err }

// Args are the validated positional inputs.
type Args struct {
	Gate       dataset.Gate
	Debug      bool
	Rate       float64
	Iterations uint64
}

var rateRegexp = regexp.MustCompile(`^[0-9]*\.[0-9]*$`)
var digitsRegexp = regexp.MustCompile(`^[0-9]*$`)

// Parse validates args (without the program name). Debug, rate and
// iterations are checked before the gate.
func Parse(args []string) (Args, error) {
	if len(args) != 4 {
		return Args{}, &ExitError{Code: ExitUsage, Err: errors.Errorf("usage: %s", Usage)}
	}
	var out Args
	var err error
	if out.Debug, err = ParseDebug(args[1]); err != nil {
		return Args{}, &ExitError{Code: ExitDebug, Err: err}
	}
	if out.Rate, err = ParseRate(args[2]); err != nil {
		return Args{}, &ExitError{Code: ExitRate, Err: err}
	}
	if out.Iterations, err = ParseIterations(args[3]); err != nil {
		return Args{}, &ExitError{Code: ExitIterations, Err: err}
	}
	if out.Gate, err = dataset.ParseGate(args[0]); err != nil {
		return Args{}, &ExitError{Code: ExitGate, Err: errors.Wrap(err, "option")}
	}
	return out, nil
}

// ParseDebug accepts exactly "y" or "n".
func ParseDebug(s string) (bool, error) {
	switch s {
	case "y":
		return true, nil
	case "n":
		return false, nil
	}
	return false, invalid("option", s)
}

// ParseRate accepts optional digits, a mandatory '.', then optional digits:
// "1.", "0.25" and ".5" are valid, "1" is not.
func ParseRate(s string) (float64, error) {
	if !rateRegexp.MatchString(s) {
		return 0, invalid("rate", s)
	}
	if s == "." {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "rate %s invalid", s)
	}
	return v, nil
}

// ParseIterations accepts a run of decimal digits. The empty string is 0.
func ParseIterations(s string) (uint64, error) {
	if !digitsRegexp.MatchString(s) {
		return 0, invalid("iterations", s)
	}
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "iterations %s invalid", s)
	}
	return v, nil
}

func invalid(what, s string) error {
	return errors.Errorf("%s %s invalid", what, s)
}
