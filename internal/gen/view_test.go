package gen

import (
	"testing"

	"github.com/ihciah/certain-map/internal/model"
)

func TestBuildMap_Prefilled(t *testing.T) {
	m := model.NewMapConfig("Meta", model.Prefilled).AddSlot("name", "string").AddSlot("age", "uint8")
	v := buildMap(m)

	if v.Params != "S0, S1 certainmap.State" {
		t.Errorf("Params = %q", v.Params)
	}
	if v.FullArgs != "certainmap.Occupied, certainmap.Occupied" {
		t.Errorf("FullArgs = %q", v.FullArgs)
	}
	age := v.Slots[1]
	if age.Rest != "S0 certainmap.State" {
		t.Errorf("Rest = %q", age.Rest)
	}
	if age.VacantArgs != "S0, certainmap.Vacant" || age.FilledArgs != "S0, certainmap.Occupied" {
		t.Errorf("slot args = %q / %q", age.VacantArgs, age.FilledArgs)
	}
}

func TestBuildMap_Unfilled(t *testing.T) {
	m := model.NewMapConfig("Record", model.Unfilled).AddSlot("name", "string").AddSlot("age", "uint8")
	v := buildMap(m)

	if v.Params != "S0 certainmap.Maybe[string], S1 certainmap.Maybe[uint8]" {
		t.Errorf("Params = %q", v.Params)
	}
	name := v.Slots[0]
	if name.Rest != "S1 certainmap.Maybe[uint8]" {
		t.Errorf("Rest = %q", name.Rest)
	}
	if name.FilledArgs != "certainmap.Filled[string], S1" {
		t.Errorf("FilledArgs = %q", name.FilledArgs)
	}
	if len(name.Others) != 1 || name.Others[0] != "age" {
		t.Errorf("Others = %v", name.Others)
	}
}

func TestBuildMap_SingleSlot(t *testing.T) {
	v := buildMap(model.NewMapConfig("Solo", model.Prefilled).AddSlot("x", "int"))
	if v.Slots[0].Rest != "" {
		t.Errorf("expected no remaining type parameters, got %q", v.Slots[0].Rest)
	}
	if len(v.Slots[0].Others) != 0 {
		t.Errorf("expected no other slots, got %v", v.Slots[0].Others)
	}
}
