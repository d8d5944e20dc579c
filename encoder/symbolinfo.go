// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

// SizeIdx identifies an entry of the symbol size table, or requests an
// automatic selection.
type SizeIdx int

const (
	// SizeIdxUndefined means no symbol size; FindSymbolSize returns it when
	// nothing fits.
	SizeIdxUndefined SizeIdx = -1
	// SizeShapeAuto selects the smallest symbol of any shape.
	SizeShapeAuto SizeIdx = -2
	// SizeSquareAuto selects the smallest square symbol.
	SizeSquareAuto SizeIdx = -3
	// SizeRectAuto selects the smallest rectangular symbol.
	SizeRectAuto SizeIdx = -4
)

// SymbolInfo describes a single Data Matrix ECC-200 symbol size.
type SymbolInfo struct {
	Rectangular           bool
	DataCapacity          int // number of data codewords
	ErrorCodewords        int // total number of EC codewords
	MatrixWidth           int // symbol width in modules (including finder patterns)
	MatrixHeight          int // symbol height in modules (including finder patterns)
	DataRegionSizeRows    int // number of data rows per data region
	DataRegionSizeColumns int // number of data columns per data region
}

// TotalCodewords returns data + error correction codewords.
func (si *SymbolInfo) TotalCodewords() int {
	return si.DataCapacity + si.ErrorCodewords
}

// symbols is the full list of ECC-200 symbol sizes: the 24 square sizes in
// ascending capacity, then the 6 rectangular sizes. Derived from ISO/IEC
// 16022 Table 7.
var symbols = []SymbolInfo{
	{false, 3, 5, 10, 10, 8, 8},
	{false, 5, 7, 12, 12, 10, 10},
	{false, 8, 10, 14, 14, 12, 12},
	{false, 12, 12, 16, 16, 14, 14},
	{false, 18, 14, 18, 18, 16, 16},
	{false, 22, 18, 20, 20, 18, 18},
	{false, 30, 20, 22, 22, 20, 20},
	{false, 36, 24, 24, 24, 22, 22},
	{false, 44, 28, 26, 26, 24, 24},
	{false, 62, 36, 32, 32, 14, 14},
	{false, 86, 42, 36, 36, 16, 16},
	{false, 114, 48, 40, 40, 18, 18},
	{false, 144, 56, 44, 44, 20, 20},
	{false, 174, 68, 48, 48, 22, 22},
	{false, 204, 84, 52, 52, 24, 24},
	{false, 280, 112, 64, 64, 14, 14},
	{false, 368, 144, 72, 72, 16, 16},
	{false, 456, 192, 80, 80, 18, 18},
	{false, 576, 224, 88, 88, 20, 20},
	{false, 696, 272, 96, 96, 22, 22},
	{false, 816, 336, 104, 104, 24, 24},
	{false, 1050, 408, 120, 120, 18, 18},
	{false, 1304, 496, 132, 132, 20, 20},
	{false, 1558, 620, 144, 144, 22, 22},

	{true, 5, 7, 18, 8, 6, 16},
	{true, 10, 11, 32, 8, 6, 14},
	{true, 16, 14, 26, 12, 10, 24},
	{true, 22, 18, 36, 12, 10, 16},
	{true, 32, 24, 36, 16, 14, 16},
	{true, 49, 28, 48, 16, 14, 22},
}

const symbolSquareCount = 24

// Symbol returns the SymbolInfo for a concrete size index, or nil.
func Symbol(sizeIdx SizeIdx) *SymbolInfo {
	if sizeIdx < 0 || int(sizeIdx) >= len(symbols) {
		return nil
	}
	return &symbols[sizeIdx]
}

// SymbolDataWords returns the data codeword capacity of a concrete size
// index, or 0 for anything else.
func SymbolDataWords(sizeIdx SizeIdx) int {
	si := Symbol(sizeIdx)
	if si == nil {
		return 0
	}
	return si.DataCapacity
}

// FindSymbolSize finds the smallest symbol able to hold the given number of
// data codewords. request restricts the search to one of the automatic
// selections or validates a concrete size index. Returns SizeIdxUndefined
// when nothing fits.
func FindSymbolSize(dataWords int, request SizeIdx) SizeIdx {
	var beg, end int
	switch request {
	case SizeShapeAuto:
		beg, end = 0, len(symbols)
	case SizeSquareAuto:
		beg, end = 0, symbolSquareCount
	case SizeRectAuto:
		beg, end = symbolSquareCount, len(symbols)
	default:
		if Symbol(request) == nil {
			return SizeIdxUndefined
		}
		if symbols[request].DataCapacity < dataWords {
			return SizeIdxUndefined
		}
		return request
	}

	for i := beg; i < end; i++ {
		if symbols[i].DataCapacity >= dataWords {
			return SizeIdx(i)
		}
	}
	return SizeIdxUndefined
}
