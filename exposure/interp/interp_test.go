package interp

import (
	"math"
	"testing"
)

func TestNewTableErrors(t *testing.T) {
	cases := []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{"empty", nil, nil},
		{"length mismatch", []float64{1, 2}, []float64{1}},
		{"decreasing", []float64{2, 1}, []float64{0, 1}},
		{"duplicate", []float64{1, 1, 2}, []float64{0, 0.5, 1}},
	}
	for _, tc := range cases {
		if _, err := NewTable(tc.xs, tc.ys); err == nil {
			t.Errorf("NewTable(%s): expected error, got nil", tc.name)
		}
	}
}

func TestAtSamplePoints(t *testing.T) {
	tbl, err := NewTable([]float64{0, 1, 3}, []float64{10, 20, 40})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	for _, tc := range []struct{ x, want float64 }{
		{0, 10},
		{1, 20},
		{3, 40},
	} {
		if got := tbl.At(tc.x); got != tc.want {
			t.Errorf("At(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestAtInterpolates(t *testing.T) {
	tbl, err := NewTable([]float64{0, 1, 2}, []float64{0, 0.5, 1})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	for _, tc := range []struct{ x, want float64 }{
		{0.5, 0.25},
		{1.5, 0.75},
		{0.25, 0.125},
	} {
		if got := tbl.At(tc.x); math.Abs(got-tc.want) > 1e-15 {
			t.Errorf("At(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestAtClamps(t *testing.T) {
	tbl, err := NewTable([]float64{-1, 1}, []float64{0.25, 0.75})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	if got := tbl.At(-100); got != 0.25 {
		t.Errorf("At(-100) = %v, want 0.25", got)
	}
	if got := tbl.At(100); got != 0.75 {
		t.Errorf("At(100) = %v, want 0.75", got)
	}
}

func TestAtSinglePoint(t *testing.T) {
	tbl, err := NewTable([]float64{5}, []float64{1})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	for _, x := range []float64{-10, 5, 10} {
		if got := tbl.At(x); got != 1 {
			t.Errorf("At(%v) = %v, want 1", x, got)
		}
	}
}

func TestMap(t *testing.T) {
	tbl, err := NewTable([]float64{0, 1}, []float64{0, 1})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	src := []float64{-1, 0, 0.25, 0.5, 1, 2}
	dst := make([]float64, len(src))
	tbl.Map(dst, src)
	want := []float64{0, 0, 0.25, 0.5, 1, 1}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("Map: dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestMapShortDst(t *testing.T) {
	tbl, err := NewTable([]float64{0, 1}, []float64{0, 1})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	dst := make([]float64, 2)
	tbl.Map(dst, []float64{0.5, 0.5, 0.5})
	if dst[0] != 0.5 || dst[1] != 0.5 {
		t.Errorf("Map with short dst: got %v", dst)
	}
}
