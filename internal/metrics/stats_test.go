package metrics

import (
	"math"
	"testing"
	"time"
)

func TestWindowSnapshot(t *testing.T) {
	var w Window
	w.Record(20*time.Millisecond, 0.25)
	w.Record(30*time.Millisecond, 0.125)
	snap := w.Snapshot()
	if snap.Iterations != 2 {
		t.Fatalf("expected 2 iterations, got %d", snap.Iterations)
	}
	if math.Abs(snap.IterationsPerSec-40) > 1e-9 {
		t.Fatalf("unexpected throughput %.2f", snap.IterationsPerSec)
	}
	if math.Abs(snap.AvgComputeMS-25) > 1e-9 {
		t.Fatalf("unexpected avg compute %.2f", snap.AvgComputeMS)
	}
	if w.iterations != 0 || w.compute != 0 {
		t.Fatalf("window was not reset")
	}
	if snap.LastCost != 0.125 {
		t.Fatalf("expected last cost 0.125, got %.3f", snap.LastCost)
	}
}

func TestEmptyWindowSnapshot(t *testing.T) {
	var w Window
	snap := w.Snapshot()
	if snap.IterationsPerSec != 0 || snap.AvgComputeMS != 0 {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}
