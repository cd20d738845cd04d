package certainmap_test

import (
	"errors"
	"strings"
	"testing"

	. "github.com/ihciah/certain-map"
)

func TestIsOccupied(t *testing.T) {
	if IsOccupied[Vacant]() {
		t.Error("expected Vacant to report false")
	}
	if !IsOccupied[Occupied]() {
		t.Error("expected Occupied to report true")
	}
}

func TestCheckCell(t *testing.T) {
	tests := []struct {
		name    string
		check   func() error
		wantErr bool
		detail  string
	}{
		{"occupied live", func() error { return CheckCell[Occupied]("a", true) }, false, ""},
		{"vacant empty", func() error { return CheckCell[Vacant]("a", false) }, false, ""},
		{"occupied empty", func() error { return CheckCell[Occupied]("a", false) }, true, "cell is empty"},
		{"vacant live", func() error { return CheckCell[Vacant]("a", true) }, true, "cell holds a value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check()
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckCell() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrStateMismatch) {
				t.Errorf("expected ErrStateMismatch, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.detail) {
				t.Errorf("expected %q in %q", tt.detail, err.Error())
			}
		})
	}
}
