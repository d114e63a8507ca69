package trainer

import (
	"gatetrainer/internal/dataset"
	"gatetrainer/internal/model"
)

// Epsilon is the finite-difference step used by Train callers.
const Epsilon = 1e-1

// EstimateGradient writes a forward-difference estimate of dCost/dparam into
// g for every weight and bias of p. Each parameter is nudged by eps in place
// and restored, so p is bitwise unchanged on return.
func EstimateGradient(p *model.Parameters, g *model.Gradient, eps float64, ds *dataset.Dataset, fwd model.ForwardFunc) {
	base := Cost(p, ds, fwd)
	for i := range p.Neurons {
		n := &p.Neurons[i]
		d := &g.Neurons[i]
		for j := range n.Weights {
			d.Weights[j] = partial(&n.Weights[j], base, eps, p, ds, fwd)
		}
		d.Bias = partial(&n.Bias, base, eps, p, ds, fwd)
	}
}

func partial(param *float64, base, eps float64, p *model.Parameters, ds *dataset.Dataset, fwd model.ForwardFunc) float64 {
	saved := *param
	*param = saved + eps
	c := Cost(p, ds, fwd)
	*param = saved
	return (c - base) / eps
}
