package metrics

import "time"

// Window accumulates timing stats across multiple training iterations.
type Window struct {
	iterations int
	compute    time.Duration
	lastCost   float64
}

// Record adds a new measurement to the window.
func (w *Window) Record(computeTime time.Duration, cost float64) {
	w.iterations++
	w.compute += computeTime
	w.lastCost = cost
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{Iterations: w.iterations}
	if w.compute > 0 {
		snap.IterationsPerSec = float64(w.iterations) / w.compute.Seconds()
	}
	if w.iterations > 0 {
		snap.AvgComputeMS = (w.compute.Seconds() * 1000) / float64(w.iterations)
	}
	snap.LastCost = w.lastCost

	w.iterations = 0
	w.compute = 0
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	Iterations       int
	IterationsPerSec float64
	AvgComputeMS     float64
	LastCost         float64
}
