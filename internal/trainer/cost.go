package trainer

import (
	"gatetrainer/internal/dataset"
	"gatetrainer/internal/model"
)

// Cost returns the mean squared error of fwd over ds. It panics on an empty
// dataset.
func Cost(p *model.Parameters, ds *dataset.Dataset, fwd model.ForwardFunc) float64 {
	n := ds.Len()
	if n == 0 {
		panic("trainer: cost of empty dataset")
	}
	total := 0.0
	for i := 0; i < n; i++ {
		diff := fwd(p, ds.Input(i)) - ds.Expected(i)
		total += diff * diff
	}
	return total / float64(n)
}
