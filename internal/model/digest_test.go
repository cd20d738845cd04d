package model

import "testing"

const calcDigest = "b0f9b663c95e1f5b"

func TestDigest(t *testing.T) {
	d1, err := Digest(validFile())
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if len(d1) != 16 {
		t.Errorf("expected 16 hex chars, got %q", d1)
	}

	d2, _ := Digest(validFile())
	if d1 != d2 {
		t.Errorf("expected deterministic digest, got %s and %s", d1, d2)
	}

	f := validFile()
	f.Maps[0].Slots[0], f.Maps[0].Slots[1] = f.Maps[0].Slots[1], f.Maps[0].Slots[0]
	d3, _ := Digest(f)
	if d3 == d1 {
		t.Error("expected slot order to change the digest")
	}
}

func TestDigest_Known(t *testing.T) {
	f := NewFile("demo",
		NewMapConfig("Calc", Prefilled).
			WithEmpty("CalcEmpty").
			WithFull("CalcFull").
			WithFork().
			AddSlot("raw_before_add", "uint8").
			AddSlot("raw_before_mul", "uint8"),
	)
	got, err := Digest(f)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if got != calcDigest {
		t.Errorf("Digest() = %s, want %s", got, calcDigest)
	}
}
