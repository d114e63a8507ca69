package model

import "github.com/pkg/errors"

// Partials holds the cost derivatives for one neuron's weights and bias.
type Partials struct {
	Weights []float64
	Bias    float64
}

// Gradient mirrors the shape of Parameters but holds partial derivatives of
// the cost rather than weights. It is scratch space rewritten on every
// training iteration.
type Gradient struct {
	Neurons [NeuronCount]Partials
}

// NewGradient returns a zeroed gradient shaped like NewParameters.
func NewGradient() *Gradient {
	g := &Gradient{}
	for i, width := range neuronWidths {
		g.Neurons[i] = Partials{Weights: make([]float64, width)}
	}
	return g
}

// Validate checks that g has the 2-2-1 shape.
func (g *Gradient) Validate() error {
	if g == nil {
		return errors.New("gradient is nil")
	}
	var widths [NeuronCount]int
	for i, n := range g.Neurons {
		widths[i] = len(n.Weights)
	}
	return checkWidths("gradient", widths)
}

// Values flattens g in the same order as Parameters.Values.
func (g *Gradient) Values() []float64 {
	var out []float64
	for _, n := range g.Neurons {
		out = append(out, n.Weights...)
		out = append(out, n.Bias)
	}
	return out
}
