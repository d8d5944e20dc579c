// Copyright 2008, 2009 Mike Laughton in part, and the libdmtx Authors in part.
// Use of this source code is governed by a Simplified BSD license that can
// be found in the LICENSE file.

// Ported from the libdmtx C library.

package encoder

import (
	"fmt"

	dmtxgo "github.com/ericlevine/dmtxgo"
)

// encodeNextChunkBase256 consumes one input byte.
func encodeNextChunkBase256(s *EncodeStream) {
	if !s.inputHasNext() {
		return
	}
	value := s.inputAdvanceNext()
	if !s.encoding() {
		return
	}
	appendValueBase256(s, value)
}

// appendValueBase256 emits one payload byte, randomized by its 1-based
// output position, and refreshes the chain's length header, whose value and
// possibly width change with every appended byte.
func appendValueBase256(s *EncodeStream, value byte) {
	if !s.requireScheme(SchemeBase256) {
		return
	}
	s.outputChainAppend(randomize255State(value, len(s.output)+1))
	if !s.encoding() {
		return
	}
	s.chainValueCount++
	updateBase256ChainHeader(s, SizeIdxUndefined)
}

// completeIfDoneBase256 finishes the chain once the input is exhausted. A
// two-byte header collapses to the single zero-valued "runs to the end of
// the symbol" form when that exactly fills a symbol, gaining one payload
// codeword; otherwise the chain ends implicitly and ASCII pads the
// remainder.
func completeIfDoneBase256(s *EncodeStream, sizeIdxRequest SizeIdx) {
	if s.status == statusComplete {
		return
	}
	if s.inputHasNext() {
		return
	}

	headerByteCount := s.chainWordCount - s.chainValueCount
	if headerByteCount != 1 && headerByteCount != 2 {
		s.markFatal(fmt.Errorf("%w: base256 header is %d bytes", dmtxgo.ErrInternal, headerByteCount))
		return
	}

	if headerByteCount == 2 {
		outputLength := len(s.output) - 1
		sizeIdx := FindSymbolSize(outputLength, sizeIdxRequest)
		if sizeIdx != SizeIdxUndefined && remainingSymbolCapacity(outputLength, sizeIdx) == 0 {
			updateBase256ChainHeader(s, sizeIdx)
			if !s.encoding() {
				return
			}
			s.markComplete(sizeIdx)
			return
		}
	}

	encodeChangeScheme(s, SchemeASCII, unlatchImplicit)
	if !s.encoding() {
		return
	}
	completeIfDoneAscii(s, sizeIdxRequest)
}

// updateBase256ChainHeader rewrites the chain's length header. The header
// occupies the first one or two chain positions: a single byte holds
// lengths up to 249, two bytes hold 250*(h0-249)+h1, and the perfect-fit
// form is a single zero byte meaning the chain runs to the symbol's end.
// Header bytes are not scheme values, so inserting or removing one leaves
// the value count alone.
func updateBase256ChainHeader(s *EncodeStream, perfectSizeIdx SizeIdx) {
	outputLength := s.chainValueCount
	headerIndex := len(s.output) - s.chainWordCount
	headerByteCount := s.chainWordCount - s.chainValueCount
	perfectFit := perfectSizeIdx != SizeIdxUndefined

	if perfectFit && SymbolDataWords(perfectSizeIdx) != len(s.output)-1 {
		s.markFatal(fmt.Errorf("%w: perfect-fit length mismatch", dmtxgo.ErrInternal))
		return
	}

	// Resize the header first; values are rewritten below.
	if headerByteCount == 1 && !perfectFit && outputLength > 249 {
		base256ChainInsertHeaderByte(s)
		if !s.encoding() {
			return
		}
		headerByteCount++
	} else if headerByteCount == 2 && perfectFit {
		base256ChainRemoveHeaderByte(s)
		if !s.encoding() {
			return
		}
		headerByteCount--
	}

	switch {
	case perfectFit:
		s.outputSet(headerIndex, randomize255State(0, headerIndex+1))
	case headerByteCount == 1:
		s.outputSet(headerIndex, randomize255State(byte(outputLength), headerIndex+1))
	default:
		s.outputSet(headerIndex, randomize255State(byte(outputLength/250+249), headerIndex+1))
		if !s.encoding() {
			return
		}
		s.outputSet(headerIndex+1, randomize255State(byte(outputLength%250), headerIndex+2))
	}
}

// base256ChainInsertHeaderByte widens the header to two bytes. Every payload
// byte moves one position later, and randomization is position-dependent, so
// each moved byte is unmasked for its old position and remasked for its new
// one. The header positions are left for the caller to rewrite.
func base256ChainInsertHeaderByte(s *EncodeStream) {
	headerIndex := len(s.output) - s.chainWordCount
	s.outputChainAppend(0)
	if !s.encoding() {
		return
	}
	for i := len(s.output) - 1; i > headerIndex+1; i-- {
		v := unRandomize255State(s.output[i-1], i)
		s.output[i] = randomize255State(v, i+1)
	}
}

// base256ChainRemoveHeaderByte narrows the header to one byte, shifting the
// payload a position earlier with the inverse remasking.
func base256ChainRemoveHeaderByte(s *EncodeStream) {
	headerIndex := len(s.output) - s.chainWordCount
	for i := headerIndex + 1; i < len(s.output)-1; i++ {
		v := unRandomize255State(s.output[i+1], i+2)
		s.output[i] = randomize255State(v, i+1)
	}
	s.outputChainRemoveLast()
}

// randomize255State is the Base 256 obfuscation: offset the value by a
// position-seeded pseudo-random number, wrapping within a byte.
func randomize255State(value byte, position int) byte {
	pseudoRandom := (149*position)%255 + 1
	tmp := int(value) + pseudoRandom
	if tmp <= 255 {
		return byte(tmp)
	}
	return byte(tmp - 256)
}

// unRandomize255State inverts randomize255State at the same position.
func unRandomize255State(value byte, position int) byte {
	tmp := int(value) - ((149*position)%255 + 1)
	if tmp < 0 {
		tmp += 256
	}
	return byte(tmp)
}
