package dataset

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrUnknownGate is returned by ParseGate for unsupported selectors.
var ErrUnknownGate = errors.New("unknown gate")

// Gate is a two-input Boolean function identified by its selector character.
type Gate rune

// Supported gates.
const (
	Zero Gate = '0'
	And  Gate = '&'
	Not  Gate = '~'
	Xor  Gate = '^'
	Or   Gate = '|'
	Nand Gate = '>'
)

// GateWidth is the number of inputs of every gate.
const GateWidth = 2

// gateInputs lists the truth table rows shared by every gate.
var gateInputs = []float64{
	0, 0,
	0, 1,
	1, 0,
	1, 1,
}

// gateOutputs holds the expected output per row of gateInputs. Not follows
// the second input and ignores the first.
var gateOutputs = map[Gate][]float64{
	Zero: {0, 0, 0, 0},
	And:  {0, 0, 0, 1},
	Not:  {0, 1, 0, 1},
	Xor:  {0, 1, 1, 0},
	Or:   {0, 1, 1, 1},
	Nand: {1, 1, 1, 0},
}

var gateNames = map[Gate]string{
	Zero: "zero",
	And:  "and",
	Not:  "not",
	Xor:  "xor",
	Or:   "or",
	Nand: "nand",
}

// Gates returns every supported gate in selector order.
func Gates() []Gate {
	return []Gate{Zero, And, Not, Xor, Or, Nand}
}

// ParseGate maps a single selector character to its gate.
func ParseGate(s string) (Gate, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, errors.Wrapf(ErrUnknownGate, "%q", s)
	}
	g := Gate(r)
	if _, ok := gateOutputs[g]; !ok {
		return 0, errors.Wrapf(ErrUnknownGate, "%q", s)
	}
	return g, nil
}

// Valid reports whether g is a supported gate.
func (g Gate) Valid() bool {
	_, ok := gateOutputs[g]
	return ok
}

// String returns the gate's name, or the selector for unknown gates.
func (g Gate) String() string {
	if name, ok := gateNames[g]; ok {
		return name
	}
	return string(rune(g))
}

// Dataset returns the gate's truth table.
func (g Gate) Dataset() (*Dataset, error) {
	out, ok := gateOutputs[g]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownGate, "%q", string(rune(g)))
	}
	return New(GateWidth, gateInputs, out)
}
