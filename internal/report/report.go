// Package report prints models, test cases and costs in the console format
// of the gate trainer.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"gatetrainer/internal/dataset"
	"gatetrainer/internal/model"
)

// Reporter writes reports to an io.Writer. The first write error is kept and
// every later call becomes a no-op.
type Reporter struct {
	w   io.Writer
	err error
}

// New returns a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Err returns the first write error, if any.
func (r *Reporter) Err() error {
	return r.err
}

// Model dumps every weight and bias of p under a heading.
func (r *Reporter) Model(name string, p *model.Parameters) {
	r.printf("Model: %s\n", name)
	for i, n := range p.Neurons {
		var b strings.Builder
		fmt.Fprintf(&b, "Neuron %d: [ ", i)
		for j, w := range n.Weights {
			fmt.Fprintf(&b, "w%d: %f, ", j, w)
		}
		fmt.Fprintf(&b, "b: %f ]\n", n.Bias)
		r.printf("%s", b.String())
	}
}

// TestCases prints each example of ds next to the prediction of fwd.
func (r *Reporter) TestCases(p *model.Parameters, ds *dataset.Dataset, fwd model.ForwardFunc) {
	for i := 0; i < ds.Len(); i++ {
		in := ds.Input(i)
		var b strings.Builder
		fmt.Fprintf(&b, "Testcase %d: { ", i)
		for j, v := range in {
			fmt.Fprintf(&b, "in%d: %f, ", j, v)
		}
		fmt.Fprintf(&b, "expected: %f } Model: %f\n", ds.Expected(i), fwd(p, in))
		r.printf("%s", b.String())
	}
}

// Cost prints a single cost value.
func (r *Reporter) Cost(c float64) {
	r.printf("Cost: %f\n", c)
}

func (r *Reporter) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintf(r.w, format, args...); err != nil {
		r.err = errors.Wrap(err, "write report")
	}
}
