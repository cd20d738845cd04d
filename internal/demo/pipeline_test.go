package demo

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	certainmap "github.com/ihciah/certain-map"
)

func TestPipeline_Calc(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.InfoLevel)
	svc := NewCalcPipeline(zap.New(core))

	store := NewCalc()
	got, err := svc.Call(ctx, 2, store.Handler())
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != 6 {
		t.Errorf("expected (2+1)*2 = 6, got %d", got)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["before_add"] != uint8(2) || fields["before_mul"] != uint8(3) {
		t.Errorf("expected before_add=2 before_mul=3, got %v", fields)
	}
}

func TestPipeline_WithStore(t *testing.T) {
	svc := WithStore[*Calc, CalcEmpty]{New: NewCalc, Inner: NewCalcPipeline(nil)}
	got, err := svc.Call(context.Background(), 2)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != 6 {
		t.Errorf("expected 6, got %d", got)
	}
}

func TestPipeline_Forking(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	got, err := NewForkingPipeline(zap.New(core)).Call(context.Background(), 2)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != 12 {
		t.Errorf("expected 6+6 = 12, got %d", got)
	}
	if n := logs.Len(); n != 2 {
		t.Errorf("expected the inner pipeline to run twice, got %d", n)
	}
}

func TestPipeline_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewForkingPipeline(nil).Call(ctx, 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

// openConn stores a fresh connection in the handler's conn slot and leaves
// it there.
type openConn struct {
	opened *[]*Conn
}

func (s openConn) Call(ctx context.Context, n uint8, h MetaEmpty) (uint8, error) {
	c := NewConn("db")
	*s.opened = append(*s.opened, c)
	SetMetaConn(h, c)
	return n, nil
}

func TestPipeline_StoresDropLeftovers(t *testing.T) {
	var opened []*Conn
	svc := WithStore[*Meta, MetaEmpty]{
		New:   NewMeta,
		Inner: openConn{opened: &opened},
	}
	if _, err := svc.Call(context.Background(), 1); err != nil {
		t.Fatalf("Call: %v", err)
	}
	if len(opened) != 1 || opened[0].Closed != 1 {
		t.Errorf("expected the store's conn dropped once, got %d conns, closed=%d", len(opened), opened[0].Closed)
	}
}

func TestPipeline_ForksDropLeftovers(t *testing.T) {
	var opened []*Conn
	svc := WithStore[*Meta, MetaEmpty]{
		New: NewMeta,
		Inner: Twice[MetaEmpty, *Meta, MetaState[certainmap.Vacant, certainmap.Vacant, certainmap.Vacant], MetaEmpty]{
			Next: openConn{opened: &opened},
		},
	}
	if _, err := svc.Call(context.Background(), 1); err != nil {
		t.Fatalf("Call: %v", err)
	}
	if len(opened) != 2 {
		t.Fatalf("expected 2 forks to open a conn each, got %d", len(opened))
	}
	for i, c := range opened {
		if c.Closed != 1 {
			t.Errorf("fork %d: expected conn dropped exactly once, got %d", i, c.Closed)
		}
	}
}
