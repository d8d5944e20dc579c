// Copyright 2008, 2009 Mike Laughton in part, and the libdmtx Authors in part.
// Use of this source code is governed by a Simplified BSD license that can
// be found in the LICENSE file.

// Ported from the libdmtx C library.

package encoder

import (
	"fmt"

	dmtxgo "github.com/ericlevine/dmtxgo"
)

// encodeNextChunkAscii consumes one input byte, or two when both are
// decimal digits:
//
//   - digit pair d1 d2: single codeword 10*d1 + d2 + 130
//   - byte 0-127: codeword value + 1
//   - byte 128-255: upper shift (235) then value - 127
func encodeNextChunkAscii(s *EncodeStream) {
	if !s.inputHasNext() {
		return
	}
	v0 := s.inputAdvanceNext()
	if !s.encoding() {
		return
	}

	if isDigit(v0) && s.inputHasNext() && isDigit(s.inputPeekNext()) {
		v1 := s.inputAdvanceNext()
		if !s.encoding() {
			return
		}
		appendValueAscii(s, 10*(v0-'0')+(v1-'0')+130)
		return
	}

	if v0 < 128 {
		appendValueAscii(s, v0+1)
	} else {
		appendValueAscii(s, asciiUpperShift)
		if !s.encoding() {
			return
		}
		appendValueAscii(s, v0-127)
	}
}

func appendValueAscii(s *EncodeStream, value byte) {
	if !s.requireScheme(SchemeASCII) {
		return
	}
	s.outputChainAppend(value)
	if !s.encoding() {
		return
	}
	s.chainValueCount++
}

// completeIfDoneAscii resolves the symbol size and pads out the remaining
// capacity once the input is exhausted.
func completeIfDoneAscii(s *EncodeStream, sizeIdxRequest SizeIdx) {
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
	padRemainingInAscii(s, sizeIdx)
	if !s.encoding() {
		return
	}
	s.markComplete(sizeIdx)
}

// padRemainingInAscii fills the symbol's unused capacity. The first pad
// codeword is the literal pad value; every later one is randomized by its
// 1-based position so repeated content yields distinct pad runs.
func padRemainingInAscii(s *EncodeStream, sizeIdx SizeIdx) {
	if !s.requireScheme(SchemeASCII) {
		return
	}
	symbolRemaining := remainingSymbolCapacity(len(s.output), sizeIdx)

	if symbolRemaining > 0 {
		appendValueAscii(s, asciiPad)
		if !s.encoding() {
			return
		}
		symbolRemaining--
	}
	for symbolRemaining > 0 {
		appendValueAscii(s, randomize253State(asciiPad, len(s.output)+1))
		if !s.encoding() {
			return
		}
		symbolRemaining--
	}
}

// encodeTmpRemainingInAscii re-encodes the remaining input as ASCII into the
// bounded scratch buffer without touching the real stream. It reports
// whether the remainder fit cleanly; overflow or any other failure on the
// shadow stream reads as "does not fit".
func encodeTmpRemainingInAscii(s *EncodeStream, storage []byte) ([]byte, bool) {
	tmp := *s
	tmp.currentScheme = SchemeASCII
	tmp.output = storage[:0]
	tmp.outputMax = cap(storage)
	tmp.chainWordCount = 0
	tmp.chainValueCount = 0

	for tmp.inputHasNext() {
		encodeNextChunkAscii(&tmp)
		if !tmp.encoding() {
			return nil, false
		}
	}
	return tmp.output, true
}

// randomize253State is the pad codeword obfuscation: offset the value by a
// position-seeded pseudo-random number, wrapping within [0,254].
func randomize253State(codeword byte, position int) byte {
	pseudoRandom := (149*position)%253 + 1
	tmp := int(codeword) + pseudoRandom
	if tmp > 254 {
		tmp -= 254
	}
	return byte(tmp)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
