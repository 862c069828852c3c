package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepPacing(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now

	if !fs.ShouldStep() {
		t.Fatal("first call should fire")
	}
	if fs.ShouldStep() {
		t.Fatal("no time passed, should not fire")
	}
	clock.advance(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a step should not fire")
	}
	clock.advance(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full step should fire")
	}

	clock.advance(300 * time.Millisecond)
	fired := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			fired++
		}
	}
	if fired != 3 {
		t.Fatalf("expected 3 catch-up ticks, got %d", fired)
	}
}

func TestFixedStepSetTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != 60 {
		t.Fatalf("non-positive TPS should default to 60, got %d", fs.TPS())
	}
	fs.SetTPS(25)
	if fs.TPS() != 25 || fs.step != 40*time.Millisecond {
		t.Fatalf("unexpected rate %d / %v", fs.TPS(), fs.step)
	}
}
