package model

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

const (
	// InputWidth is the number of external inputs.
	InputWidth = 2
	// HiddenWidth is the number of hidden units.
	HiddenWidth = 2
	// NeuronCount is the total number of neurons in the network.
	NeuronCount = 3
)

// neuronWidths is the weight count of each neuron, in order: two hidden units
// over the external input and one output unit over the hidden layer.
var neuronWidths = [NeuronCount]int{InputWidth, InputWidth, HiddenWidth}

// ForwardFunc evaluates a network for a single input vector.
type ForwardFunc func(p *Parameters, in []float64) float64

var _ ForwardFunc = Forward

// Parameters is the live, trainable state of the 2-2-1 network.
type Parameters struct {
	Neurons [NeuronCount]Neuron
}

// NewParameters returns correctly shaped, zero-valued parameters.
func NewParameters() *Parameters {
	p := &Parameters{}
	for i, width := range neuronWidths {
		p.Neurons[i] = NewNeuron(width)
	}
	return p
}

// RandomParameters fills every weight and bias with a value drawn from rng in
// [0, 1). Values are drawn neuron by neuron, weights before the bias.
func RandomParameters(rng *rand.Rand) *Parameters {
	p := NewParameters()
	for i := range p.Neurons {
		n := &p.Neurons[i]
		for j := range n.Weights {
			n.Weights[j] = rng.Float64()
		}
		n.Bias = rng.Float64()
	}
	return p
}

// Forward runs the 2-2-1 network on a two element input. The output unit is
// evaluated directly from the hidden activations so that no slice is built.
func Forward(p *Parameters, in []float64) float64 {
	h0 := Evaluate(p.Neurons[0], in)
	h1 := Evaluate(p.Neurons[1], in)
	out := p.Neurons[2]
	if len(out.Weights) != HiddenWidth {
		panic("model: output neuron must have 2 weights")
	}
	return Sigmoid(out.Weights[0]*h0 + out.Weights[1]*h1 + out.Bias)
}

// Validate checks that p has the 2-2-1 shape.
func (p *Parameters) Validate() error {
	if p == nil {
		return errors.New("parameters are nil")
	}
	var widths [NeuronCount]int
	for i, n := range p.Neurons {
		widths[i] = len(n.Weights)
	}
	return checkWidths("parameters", widths)
}

// ParamCount returns the number of trainable scalars.
func (p *Parameters) ParamCount() int {
	count := 0
	for _, n := range p.Neurons {
		count += len(n.Weights) + 1
	}
	return count
}

// Values flattens p: neuron by neuron, weights in order, then the bias.
func (p *Parameters) Values() []float64 {
	out := make([]float64, 0, p.ParamCount())
	for _, n := range p.Neurons {
		out = append(out, n.Weights...)
		out = append(out, n.Bias)
	}
	return out
}

// SetValues is the inverse of Values.
func (p *Parameters) SetValues(values []float64) error {
	if len(values) != p.ParamCount() {
		return errors.Errorf("expected %d values, got %d", p.ParamCount(), len(values))
	}
	k := 0
	for i := range p.Neurons {
		n := &p.Neurons[i]
		k += copy(n.Weights, values[k:])
		n.Bias = values[k]
		k++
	}
	return nil
}

// Clone returns a deep copy of p.
func (p *Parameters) Clone() *Parameters {
	c := &Parameters{}
	for i, n := range p.Neurons {
		c.Neurons[i] = Neuron{
			Weights: append([]float64(nil), n.Weights...),
			Bias:    n.Bias,
		}
	}
	return c
}

// Equal reports whether p and o hold bitwise identical values.
func (p *Parameters) Equal(o *Parameters) bool {
	if o == nil {
		return false
	}
	for i := range p.Neurons {
		a, b := p.Neurons[i], o.Neurons[i]
		if len(a.Weights) != len(b.Weights) || !sameBits(a.Bias, b.Bias) {
			return false
		}
		for j := range a.Weights {
			if !sameBits(a.Weights[j], b.Weights[j]) {
				return false
			}
		}
	}
	return true
}

func sameBits(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}

func checkWidths(kind string, widths [NeuronCount]int) error {
	for i, want := range neuronWidths {
		if widths[i] != want {
			return errors.Errorf("%s: neuron %d has %d weights, want %d", kind, i, widths[i], want)
		}
	}
	return nil
}
