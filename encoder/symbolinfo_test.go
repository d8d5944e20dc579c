package encoder

import "testing"

func TestFindSymbolSize(t *testing.T) {
	tests := []struct {
		dataWords int
		request   SizeIdx
		want      SizeIdx
	}{
		{0, SizeShapeAuto, 0},
		{3, SizeShapeAuto, 0},
		{4, SizeShapeAuto, 1},
		{1558, SizeShapeAuto, 23},
		{1559, SizeShapeAuto, SizeIdxUndefined},
		{6, SizeSquareAuto, 2},
		{6, SizeRectAuto, 25},
		{50, SizeRectAuto, SizeIdxUndefined},
		{5, SizeIdx(1), 1},
		{6, SizeIdx(1), SizeIdxUndefined},
		{3, SizeIdx(99), SizeIdxUndefined},
	}
	for _, tc := range tests {
		if got := FindSymbolSize(tc.dataWords, tc.request); got != tc.want {
			t.Errorf("FindSymbolSize(%d, %d) = %d, want %d", tc.dataWords, tc.request, got, tc.want)
		}
	}
}

func TestSymbolTableShape(t *testing.T) {
	if len(symbols) != 30 {
		t.Fatalf("table has %d entries", len(symbols))
	}
	prev := 0
	for i, si := range symbols[:symbolSquareCount] {
		if si.Rectangular {
			t.Errorf("square entry %d marked rectangular", i)
		}
		if si.DataCapacity <= prev {
			t.Errorf("square capacities not ascending at %d", i)
		}
		prev = si.DataCapacity
		if si.MatrixWidth != si.MatrixHeight {
			t.Errorf("square entry %d is %dx%d", i, si.MatrixWidth, si.MatrixHeight)
		}
	}
	for i, si := range symbols[symbolSquareCount:] {
		if !si.Rectangular {
			t.Errorf("rect entry %d not marked rectangular", i)
		}
	}
}

func TestSymbolDataWords(t *testing.T) {
	if got := SymbolDataWords(0); got != 3 {
		t.Errorf("smallest symbol holds %d", got)
	}
	if got := SymbolDataWords(SizeIdxUndefined); got != 0 {
		t.Errorf("undefined size holds %d", got)
	}
}
