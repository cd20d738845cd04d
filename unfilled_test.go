package certainmap_test

import (
	"testing"

	. "github.com/ihciah/certain-map"
)

func TestLookup(t *testing.T) {
	var vacant Vacant
	if p, ok := Lookup[int](&vacant); ok || p != nil {
		t.Errorf("expected vacant lookup to miss, got %v %v", p, ok)
	}

	filled := Filled[int]{Value: 3}
	p, ok := Lookup[int](&filled)
	if !ok || *p != 3 {
		t.Fatalf("expected 3, got %v %v", p, ok)
	}
	*p = 4
	if filled.Value != 4 {
		t.Errorf("expected pointer into the slot, got %d", filled.Value)
	}
}

func TestCloneSlot(t *testing.T) {
	dropped := 0
	got := CloneSlot[resource](Filled[resource]{Value: resource{id: 1, dropped: &dropped}})
	if got.Value.id != 101 {
		t.Errorf("expected cloned id 101, got %d", got.Value.id)
	}
	if v := CloneSlot[resource](Vacant{}); v != (Vacant{}) {
		t.Errorf("expected vacant to stay vacant, got %v", v)
	}
}
