package model

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Neuron is a single weighted-sum unit with a bias and a sigmoid activation.
type Neuron struct {
	Weights []float64
	Bias    float64
}

// NewNeuron returns a zeroed neuron that accepts width inputs.
func NewNeuron(width int) Neuron {
	return Neuron{Weights: make([]float64, width)}
}

// Sigmoid is the logistic function 1 / (1 + e^-x).
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Evaluate returns sigmoid(w·in + b). It panics if len(in) differs from the
// neuron's weight count.
func Evaluate(n Neuron, in []float64) float64 {
	return Sigmoid(floats.Dot(n.Weights, in) + n.Bias)
}
