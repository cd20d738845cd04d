package certainmap_test

import (
	"testing"

	. "github.com/ihciah/certain-map"
)

func TestGuard_Advance(t *testing.T) {
	var g Guard
	e1 := g.Acquire()
	g.Check(e1)

	e2 := g.Advance(e1)
	if e2 == e1 {
		t.Fatalf("expected a new epoch, got %d twice", e1)
	}
	g.Check(e2)
	expectPanic(t, ErrStaleHandler, func() { g.Check(e1) })
	expectPanic(t, ErrStaleHandler, func() { g.Advance(e1) })
}

func TestGuard_AcquireInvalidates(t *testing.T) {
	var g Guard
	e1 := g.Acquire()
	g.Acquire()
	expectPanic(t, ErrStaleHandler, func() { g.Check(e1) })
}

func TestGuard_ZeroEpochIsStale(t *testing.T) {
	var g Guard
	g.Acquire()
	expectPanic(t, ErrStaleHandler, func() { g.Check(0) })
}
