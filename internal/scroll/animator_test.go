package scroll

import (
	"math"
	"testing"
)

func TestAnimatorSettlesOnTarget(t *testing.T) {
	a := NewAnimator(DefaultFPS, DefaultFrequency, DefaultDamping)
	a.Start(0, 1200)
	if !a.Running() {
		t.Fatalf("expected animation to be running")
	}

	var positions []float64
	for i := 0; i < 1000; i++ {
		pos, done := a.Step()
		positions = append(positions, pos)
		if done {
			break
		}
	}
	if a.Running() {
		t.Fatalf("animation did not settle")
	}
	if last := positions[len(positions)-1]; last != 1200 {
		t.Fatalf("expected final position 1200, got %v", last)
	}
	if len(positions) < 3 {
		t.Fatalf("expected several intermediate frames, got %d", len(positions))
	}
	if first := positions[0]; first <= 0 || first >= 1200 {
		t.Fatalf("expected first frame strictly between endpoints, got %v", first)
	}
}

func TestAnimatorHasNoLargeJumps(t *testing.T) {
	a := NewAnimator(DefaultFPS, DefaultFrequency, DefaultDamping)
	a.Start(0, 1000)
	prev := 0.0
	for {
		pos, done := a.Step()
		if math.Abs(pos-prev) >= 1000 {
			t.Fatalf("frame jumped from %v to %v", prev, pos)
		}
		prev = pos
		if done {
			break
		}
	}
}

func TestAnimatorStartAtTargetIsDone(t *testing.T) {
	a := NewAnimator(30, DefaultFrequency, DefaultDamping)
	a.Start(400, 400)
	if a.Running() {
		t.Fatalf("expected no animation when already at target")
	}
	pos, done := a.Step()
	if !done || pos != 400 {
		t.Fatalf("expected settled at 400, got %v (done=%v)", pos, done)
	}
}

func TestAnimatorStopInvalidatesGeneration(t *testing.T) {
	a := NewAnimator(0, DefaultFrequency, DefaultDamping)
	if a.Interval() <= 0 {
		t.Fatalf("expected a positive frame interval")
	}
	gen := a.Start(0, 500)
	a.Stop()
	if a.Running() {
		t.Fatalf("expected animation stopped")
	}
	if a.Generation() == gen {
		t.Fatalf("expected generation to advance after stop")
	}
	next := a.Start(0, 100)
	if next == gen || a.Target() != 100 {
		t.Fatalf("unexpected generation or target after restart")
	}
}
