package trainer

import (
	"io"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"gatetrainer/internal/dataset"
	"gatetrainer/internal/metrics"
	"gatetrainer/internal/model"
	"gatetrainer/internal/report"
)

// DebugFunc observes the cost during training. iteration is the zero-based
// index of the step about to be applied; the final report after the last
// step carries the total iteration count.
type DebugFunc func(iteration uint64, cost float64)

// Train runs exactly iterations rounds of gradient estimation followed by a
// descent step. g is overwritten every round. When debug is non-nil it gets
// the pre-step cost of every round and one final cost after the loop.
func Train(p *model.Parameters, g *model.Gradient, ds *dataset.Dataset, fwd model.ForwardFunc,
	rate, eps float64, iterations uint64, debug DebugFunc) {
	for i := uint64(0); i < iterations; i++ {
		EstimateGradient(p, g, eps, ds, fwd)
		if debug != nil {
			debug(i, Cost(p, ds, fwd))
		}
		ApplyGradientStep(p, g, rate)
	}
	if debug != nil {
		debug(iterations, Cost(p, ds, fwd))
	}
}

// RunConfig captures the knobs required by the training run. A zero Seed
// seeds parameter initialisation from the clock.
type RunConfig struct {
	Gate       dataset.Gate
	Rate       float64
	Iterations uint64
	Debug      bool
	Seed       int64
	LogEvery   int
}

// Run trains a fresh model on cfg.Gate, writing the initial and trained
// models, their test cases and (in debug mode) the costs to out. It returns
// the trained parameters.
func Run(cfg RunConfig, out io.Writer) (*model.Parameters, error) {
	if !cfg.Gate.Valid() {
		return nil, errors.Wrapf(dataset.ErrUnknownGate, "trainer: %q", string(rune(cfg.Gate)))
	}
	if math.IsNaN(cfg.Rate) || math.IsInf(cfg.Rate, 0) {
		return nil, errors.Errorf("trainer: rate must be finite (got %v)", cfg.Rate)
	}
	ds, err := cfg.Gate.Dataset()
	if err != nil {
		return nil, errors.Wrap(err, "trainer")
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("gate=%s seed=%d rate=%g iterations=%d", cfg.Gate, seed, cfg.Rate, cfg.Iterations)

	rng := rand.New(rand.NewSource(seed))
	params := model.RandomParameters(rng)
	grad := model.NewGradient()
	if err := checkShapes(params, grad); err != nil {
		return nil, err
	}
	rep := report.New(out)

	rep.Model("Logic Gate", params)
	rep.TestCases(params, ds, model.Forward)

	Train(params, grad, ds, model.Forward, cfg.Rate, Epsilon, cfg.Iterations, observer(cfg, rep))

	rep.Model("Trained Logic Gate", params)
	rep.TestCases(params, ds, model.Forward)
	if err := rep.Err(); err != nil {
		return nil, err
	}
	return params, nil
}

// checkShapes verifies the live model and the gradient buffer before any
// training touches them.
func checkShapes(p *model.Parameters, g *model.Gradient) error {
	if err := p.Validate(); err != nil {
		return errors.Wrap(err, "trainer")
	}
	if err := g.Validate(); err != nil {
		return errors.Wrap(err, "trainer")
	}
	return nil
}

// observer builds the DebugFunc for a run, or nil when neither debug output
// nor progress logging is enabled so that no extra cost is computed.
func observer(cfg RunConfig, rep *report.Reporter) DebugFunc {
	if !cfg.Debug && cfg.LogEvery <= 0 {
		return nil
	}
	var window metrics.Window
	last := time.Now()
	return func(iteration uint64, cost float64) {
		if cfg.Debug {
			rep.Cost(cost)
		}
		if cfg.LogEvery <= 0 || iteration == cfg.Iterations {
			return
		}
		now := time.Now()
		window.Record(now.Sub(last), cost)
		last = now
		if (iteration+1)%uint64(cfg.LogEvery) == 0 {
			snap := window.Snapshot()
			log.Printf("iter=%d iters_per_sec=%.1f compute_ms=%.4f cost=%.6f",
				iteration+1,
				snap.IterationsPerSec,
				snap.AvgComputeMS,
				snap.LastCost,
			)
		}
	}
}
