package trainer

import (
	"gonum.org/v1/gonum/floats"

	"gatetrainer/internal/model"
)

// ApplyGradientStep moves every parameter of p against g by rate.
func ApplyGradientStep(p *model.Parameters, g *model.Gradient, rate float64) {
	for i := range p.Neurons {
		n := &p.Neurons[i]
		d := g.Neurons[i]
		floats.AddScaled(n.Weights, -rate, d.Weights)
		n.Bias -= rate * d.Bias
	}
}
