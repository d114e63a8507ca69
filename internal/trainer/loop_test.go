package trainer

import (
	"bytes"
	"math"
	"math/rand"
	"strings"
	"testing"

	"gatetrainer/internal/dataset"
	"gatetrainer/internal/model"
)

func trainGate(t *testing.T, g dataset.Gate, seed int64, rate float64, iterations uint64) (*model.Parameters, *dataset.Dataset) {
	t.Helper()
	ds := mustGate(t, g)
	p := model.RandomParameters(rand.New(rand.NewSource(seed)))
	Train(p, model.NewGradient(), ds, model.Forward, rate, Epsilon, iterations, nil)
	return p, ds
}

func TestTrainZeroIterationsLeavesModel(t *testing.T) {
	ds := mustGate(t, dataset.And)
	p := model.RandomParameters(rand.New(rand.NewSource(2)))
	before := p.Clone()
	var calls []uint64
	Train(p, model.NewGradient(), ds, model.Forward, 1, Epsilon, 0, func(i uint64, c float64) {
		calls = append(calls, i)
		if c != Cost(before, ds, model.Forward) {
			t.Fatalf("final cost %v does not match initial model", c)
		}
	})
	if !p.Equal(before) {
		t.Fatalf("parameters changed: %v -> %v", before.Values(), p.Values())
	}
	if len(calls) != 1 || calls[0] != 0 {
		t.Fatalf("expected one final report, got %v", calls)
	}
}

func TestTrainReportsPreStepCost(t *testing.T) {
	ds := mustGate(t, dataset.Or)
	p := model.RandomParameters(rand.New(rand.NewSource(4)))
	shadow := p.Clone()
	g := model.NewGradient()
	var costs []float64
	Train(p, g, ds, model.Forward, 0.5, Epsilon, 3, func(i uint64, c float64) {
		if i != uint64(len(costs)) {
			t.Fatalf("report %d carried iteration %d", len(costs), i)
		}
		costs = append(costs, c)
	})
	if len(costs) != 4 {
		t.Fatalf("expected 4 reports, got %d", len(costs))
	}

	shadowGrad := model.NewGradient()
	for i := 0; i < 3; i++ {
		if want := Cost(shadow, ds, model.Forward); costs[i] != want {
			t.Fatalf("report %d = %v, want pre-step cost %v", i, costs[i], want)
		}
		EstimateGradient(shadow, shadowGrad, Epsilon, ds, model.Forward)
		ApplyGradientStep(shadow, shadowGrad, 0.5)
	}
	if !p.Equal(shadow) {
		t.Fatalf("Train diverged from manual loop: %v vs %v", p.Values(), shadow.Values())
	}
	if want := Cost(p, ds, model.Forward); costs[3] != want {
		t.Fatalf("final report = %v, want %v", costs[3], want)
	}
}

func TestTrainImprovesAndCost(t *testing.T) {
	ds := mustGate(t, dataset.And)
	improved := 0
	const runs = 9
	for seed := int64(1); seed <= runs; seed++ {
		p := model.RandomParameters(rand.New(rand.NewSource(seed)))
		start := Cost(p, ds, model.Forward)
		Train(p, model.NewGradient(), ds, model.Forward, 0.1, Epsilon, 10000, nil)
		if Cost(p, ds, model.Forward) < start {
			improved++
		}
	}
	if improved <= runs/2 {
		t.Fatalf("cost improved for only %d of %d initialisations", improved, runs)
	}
}

func TestTrainAndGate(t *testing.T) {
	p, _ := trainGate(t, dataset.And, 1, 1.0, 100000)
	if out := model.Forward(p, []float64{1, 1}); out <= 0.9 {
		t.Fatalf("AND(1,1) = %v, want > 0.9", out)
	}
	if out := model.Forward(p, []float64{0, 0}); out >= 0.1 {
		t.Fatalf("AND(0,0) = %v, want < 0.1", out)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("trained model shape: %v", err)
	}
}

func TestTrainNotGate(t *testing.T) {
	p, ds := trainGate(t, dataset.Not, 1, 1.0, 100000)
	for i := 0; i < ds.Len(); i++ {
		out := model.Forward(p, ds.Input(i))
		if math.Abs(out-ds.Expected(i)) >= 0.1 {
			t.Fatalf("NOT%v = %v, want %v", ds.Input(i), out, ds.Expected(i))
		}
	}
}

func TestRunWritesReports(t *testing.T) {
	buf := &bytes.Buffer{}
	p, err := Run(RunConfig{
		Gate:       dataset.Nand,
		Rate:       1,
		Iterations: 3,
		Debug:      true,
		Seed:       7,
		LogEvery:   2,
	}, buf)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("shape: %v", err)
	}
	out := buf.String()
	if got := strings.Count(out, "Cost: "); got != 4 {
		t.Fatalf("expected 4 cost lines, got %d:\n%s", got, out)
	}
	if got := strings.Count(out, "Testcase "); got != 8 {
		t.Fatalf("expected 8 test case lines, got %d:\n%s", got, out)
	}
	if !strings.HasPrefix(out, "Model: Logic Gate\n") || !strings.Contains(out, "Model: Trained Logic Gate\n") {
		t.Fatalf("missing model headings:\n%s", out)
	}
}

func TestRunIsReproducibleWithSeed(t *testing.T) {
	cfg := RunConfig{Gate: dataset.Xor, Rate: 0.5, Iterations: 50, Seed: 99}
	a, err := Run(cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := Run(cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("same seed produced different models: %v vs %v", a.Values(), b.Values())
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	if _, err := Run(RunConfig{Gate: dataset.Gate('x'), Rate: 1}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown gate")
	}
	if _, err := Run(RunConfig{Gate: dataset.And, Rate: math.NaN()}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for NaN rate")
	}
}

func TestCheckShapes(t *testing.T) {
	if err := checkShapes(model.NewParameters(), model.NewGradient()); err != nil {
		t.Fatalf("fresh buffers: %v", err)
	}
	p := model.NewParameters()
	p.Neurons[0].Weights = p.Neurons[0].Weights[:1]
	if err := checkShapes(p, model.NewGradient()); err == nil {
		t.Fatal("expected error for narrow hidden neuron")
	}
	g := model.NewGradient()
	g.Neurons[2].Weights = append(g.Neurons[2].Weights, 0)
	if err := checkShapes(model.NewParameters(), g); err == nil {
		t.Fatal("expected error for wide gradient output")
	}
}
