// Copyright 2008, 2009 Mike Laughton in part, and the libdmtx Authors in part.
// Use of this source code is governed by a Simplified BSD license that can
// be found in the LICENSE file.

// Ported from the libdmtx C library.

package encoder

import (
	"fmt"

	dmtxgo "github.com/ericlevine/dmtxgo"
)

// C40, Text and X12 share one packing engine: three scheme values (0-39)
// pack into the 16-bit integer 1600*v0 + 40*v1 + v2 + 1, emitted as two
// codewords. Only the per-byte value tables differ.

// pushCTXValues appends the scheme values for one input byte. A byte maps to
// one value, a shift pair, or three or four values for upper-shifted
// extended ASCII.
// It reports false for bytes the scheme cannot represent (X12 only).
func pushCTXValues(values []byte, b byte, scheme Scheme) ([]byte, bool) {
	if scheme == SchemeX12 {
		switch {
		case b == 13:
			return append(values, 0), true
		case b == 42:
			return append(values, 1), true
		case b == 62:
			return append(values, 2), true
		case b == 32:
			return append(values, 3), true
		case b >= '0' && b <= '9':
			return append(values, b-44), true
		case b >= 'A' && b <= 'Z':
			return append(values, b-51), true
		}
		return values, false
	}

	// Extended ASCII: upper shift, then the value sequence of b-128.
	if b >= 128 {
		values = append(values, ctxShift2, ctxUpperShift)
		return pushCTXValues(values, b-128, scheme)
	}

	switch {
	case b <= 31:
		return append(values, ctxShift1, b), true
	case b == 32:
		return append(values, 3), true
	case b <= 47:
		return append(values, ctxShift2, b-33), true
	case b <= 57:
		return append(values, b-44), true
	case b <= 64:
		return append(values, ctxShift2, b-43), true
	}

	if scheme == SchemeC40 {
		switch {
		case b <= 90:
			return append(values, b-51), true
		case b <= 95:
			return append(values, ctxShift2, b-69), true
		}
		return append(values, ctxShift3, b-96), true
	}

	// Text swaps the upper- and lowercase banks of C40.
	switch {
	case b <= 90:
		return append(values, ctxShift3, b-64), true
	case b <= 95:
		return append(values, ctxShift2, b-69), true
	case b == 96:
		return append(values, ctxShift3, 0), true
	case b <= 122:
		return append(values, b-83), true
	}
	return append(values, ctxShift3, b-96), true
}

// encodeNextChunkCTX consumes input until a triplet boundary: values buffer
// up and every complete group of three is packed and emitted. Leftover
// values can only remain when the input runs out mid-triplet, which hands
// off to the partial end-of-symbol logic.
func encodeNextChunkCTX(s *EncodeStream, sizeIdxRequest SizeIdx) {
	var storage [6]byte
	values := storage[:0]
	var produced []int // values pushed per consumed byte, for rollback

	for s.inputHasNext() {
		inputValue := s.inputAdvanceNext()
		if !s.encoding() {
			return
		}

		before := len(values)
		var ok bool
		values, ok = pushCTXValues(values, inputValue, s.currentScheme)
		if !ok {
			s.markInvalid(fmt.Errorf("%v value %d: %w", s.currentScheme, inputValue, dmtxgo.ErrUnsupportedChar))
			return
		}
		produced = append(produced, len(values)-before)

		for len(values) >= 3 {
			appendValuesCTX(s, values[0], values[1], values[2])
			if !s.encoding() {
				return
			}
			n := copy(values, values[3:])
			values = values[:n]
		}

		if len(values) == 0 {
			return
		}
	}

	if len(values) > 0 {
		completeIfDonePartialCTX(s, values, produced, sizeIdxRequest)
	}
}

func appendValuesCTX(s *EncodeStream, v0, v1, v2 byte) {
	if !s.requireScheme(SchemeC40, SchemeText, SchemeX12) {
		return
	}
	pairValue := 1600*int(v0) + 40*int(v1) + int(v2) + 1
	s.outputChainAppend(byte(pairValue / 256))
	if !s.encoding() {
		return
	}
	s.outputChainAppend(byte(pairValue % 256))
	if !s.encoding() {
		return
	}
	s.chainValueCount += 3
}

// appendUnlatchCTX emits the unlatch codeword. Unlatching is only legal on a
// triplet boundary.
func appendUnlatchCTX(s *EncodeStream) {
	if !s.requireScheme(SchemeC40, SchemeText, SchemeX12) {
		return
	}
	if s.chainValueCount%3 != 0 {
		s.markInvalid(fmt.Errorf("%v: %w", s.currentScheme, dmtxgo.ErrIllegalUnlatch))
		return
	}
	s.outputChainAppend(unlatchCTX)
	if !s.encoding() {
		return
	}
	s.chainValueCount++
}

// completeIfDoneCTX finishes a chain that ended exactly on a triplet
// boundary: either the symbol is already full, or the chain unlatches and
// ASCII pads the remainder.
func completeIfDoneCTX(s *EncodeStream, sizeIdxRequest SizeIdx) {
	if s.status == statusComplete {
		return
	}
	if s.inputHasNext() {
		return
	}

	sizeIdx := FindSymbolSize(len(s.output), sizeIdxRequest)
	if sizeIdx == SizeIdxUndefined {
		s.markInvalid(fmt.Errorf("%d codewords: %w", len(s.output), dmtxgo.ErrSymbolOverflow))
		return
	}
	if remainingSymbolCapacity(len(s.output), sizeIdx) == 0 {
		s.markComplete(sizeIdx)
		return
	}

	encodeChangeScheme(s, SchemeASCII, unlatchExplicit)
	if !s.encoding() {
		return
	}
	completeIfDoneAscii(s, sizeIdxRequest)
}

// completeIfDonePartialCTX handles end of input with one or two values still
// buffered. In C40 and Text, when the symbol has exactly two codewords left
// and two values remain, a shift 1 pads the final triplet and the decoder
// discards it (X12 has no shifts, so value 0 there would decode as CR). In
// every other case the values' source bytes are rolled back and the tail is
// re-encoded in ASCII: without an unlatch when a single ASCII codeword lands
// in the symbol's final position, otherwise after an explicit unlatch.
func completeIfDonePartialCTX(s *EncodeStream, values []byte, produced []int, sizeIdxRequest SizeIdx) {
	if !s.encoding() {
		return
	}

	sizeIdx := FindSymbolSize(len(s.output), sizeIdxRequest)
	if sizeIdx == SizeIdxUndefined {
		s.markInvalid(fmt.Errorf("%d codewords: %w", len(s.output), dmtxgo.ErrSymbolOverflow))
		return
	}
	symbolRemaining := remainingSymbolCapacity(len(s.output), sizeIdx)

	if len(values) == 2 && symbolRemaining == 2 && s.currentScheme != SchemeX12 {
		appendValuesCTX(s, values[0], values[1], ctxShift1)
		if !s.encoding() {
			return
		}
		s.markComplete(sizeIdx)
		return
	}

	// Roll back whole input bytes until they cover the leftover values. When
	// a byte's expansion straddled a triplet boundary the covered excess is
	// made a multiple of three and that many emitted triplets are removed,
	// so the chain stays on a triplet boundary.
	rollback, covered := 0, 0
	for covered < len(values) || (covered-len(values))%3 != 0 {
		rollback++
		covered += produced[len(produced)-rollback]
	}
	for i := 0; i < (covered-len(values))/3; i++ {
		s.outputChainRemoveLast()
		s.outputChainRemoveLast()
		if !s.encoding() {
			return
		}
		s.chainValueCount -= 3
	}
	s.inputNext -= rollback

	var scratch [3]byte
	if tmp, ok := encodeTmpRemainingInAscii(s, scratch[:]); ok && len(tmp) == 1 {
		sizeIdx = FindSymbolSize(len(s.output)+1, sizeIdxRequest)
		if sizeIdx != SizeIdxUndefined && remainingSymbolCapacity(len(s.output), sizeIdx) == 1 {
			encodeChangeScheme(s, SchemeASCII, unlatchImplicit)
			if !s.encoding() {
				return
			}
			appendValueAscii(s, tmp[0])
			if !s.encoding() {
				return
			}
			s.inputNext = len(s.input)
			s.markComplete(sizeIdx)
			return
		}
	}

	encodeChangeScheme(s, SchemeASCII, unlatchExplicit)
	if !s.encoding() {
		return
	}
	for s.inputHasNext() {
		encodeNextChunkAscii(s)
		if !s.encoding() {
			return
		}
	}
	completeIfDoneAscii(s, sizeIdxRequest)
}
