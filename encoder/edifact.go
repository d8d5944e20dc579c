// Copyright 2008, 2009 Mike Laughton in part, and the libdmtx Authors in part.
// Use of this source code is governed by a Simplified BSD license that can
// be found in the LICENSE file.

// Ported from the libdmtx C library.

package encoder

import (
	"fmt"

	dmtxgo "github.com/ericlevine/dmtxgo"
)

// appendValueEdifact packs one 6-bit value into the output. Four values
// occupy three bytes; the position within the group follows from the chain
// value count, and a value off a byte boundary rewrites the partial last
// byte before appending the spillover.
func appendValueEdifact(s *EncodeStream, value byte) {
	if !s.requireScheme(SchemeEDIFACT) {
		return
	}
	if value < 31 || value > 94 {
		s.markInvalid(fmt.Errorf("EDIFACT value %d: %w", value, dmtxgo.ErrUnsupportedChar))
		return
	}

	edifactValue := (value & 0x3f) << 2

	switch s.chainValueCount % 4 {
	case 0:
		s.outputChainAppend(edifactValue)
	case 1:
		previous := s.outputChainRemoveLast()
		if !s.encoding() {
			return
		}
		s.outputChainAppend(previous | (edifactValue >> 6))
		if !s.encoding() {
			return
		}
		s.outputChainAppend(edifactValue << 2)
	case 2:
		previous := s.outputChainRemoveLast()
		if !s.encoding() {
			return
		}
		s.outputChainAppend(previous | (edifactValue >> 4))
		if !s.encoding() {
			return
		}
		s.outputChainAppend(edifactValue << 4)
	case 3:
		previous := s.outputChainRemoveLast()
		if !s.encoding() {
			return
		}
		s.outputChainAppend(previous | (edifactValue >> 2))
	}
	if !s.encoding() {
		return
	}
	s.chainValueCount++
}

// encodeNextChunkEdifact consumes one input byte. On a clean four-value
// boundary it first checks whether the rest of the input belongs in the
// symbol's final codewords as ASCII, which ends the chain without an
// unlatch. A message whose ASCII form takes at most two codewords and, after
// the latch, lands in a symbol with at most two codewords left therefore
// never packs a value at all.
func encodeNextChunkEdifact(s *EncodeStream, sizeIdxRequest SizeIdx) {
	if !s.inputHasNext() {
		return
	}
	if s.chainValueCount%4 == 0 {
		if tryAsciiTailEdifact(s, sizeIdxRequest) || !s.encoding() {
			return
		}
	}
	value := s.inputAdvanceNext()
	if !s.encoding() {
		return
	}
	appendValueEdifact(s, value)
}

// completeIfDoneEdifact finishes the chain once the input is exhausted.
// On a clean boundary with at most two codewords of symbol left the chain
// ends implicitly (pads only); otherwise the unlatch value is packed and
// ASCII pads the remainder.
func completeIfDoneEdifact(s *EncodeStream, sizeIdxRequest SizeIdx) {
	if s.status == statusComplete {
		return
	}
	if s.inputHasNext() {
		return
	}

	if s.chainValueCount%4 == 0 {
		if tryAsciiTailEdifact(s, sizeIdxRequest) || !s.encoding() {
			return
		}
	}

	encodeChangeScheme(s, SchemeASCII, unlatchExplicit)
	if !s.encoding() {
		return
	}
	completeIfDoneAscii(s, sizeIdxRequest)
}

// tryAsciiTailEdifact probes whether the remaining input, re-encoded as
// ASCII, lands in the symbol's final one or two codewords. The decoder
// processes the last two codewords of a symbol as ASCII without requiring
// an unlatch, so the fit must leave at most two codewords of capacity.
// Returns true when it completed the stream.
func tryAsciiTailEdifact(s *EncodeStream, sizeIdxRequest SizeIdx) bool {
	var scratch [3]byte
	tmp, ok := encodeTmpRemainingInAscii(s, scratch[:])
	if !ok || len(tmp) > 2 {
		return false
	}

	sizeIdx := FindSymbolSize(len(s.output)+len(tmp), sizeIdxRequest)
	if sizeIdx == SizeIdxUndefined {
		return false
	}
	symbolRemaining := remainingSymbolCapacity(len(s.output), sizeIdx)
	if symbolRemaining > 2 || len(tmp) > symbolRemaining {
		return false
	}

	encodeChangeScheme(s, SchemeASCII, unlatchImplicit)
	if !s.encoding() {
		return true
	}
	for _, cw := range tmp {
		appendValueAscii(s, cw)
		if !s.encoding() {
			return true
		}
	}
	s.inputNext = len(s.input)
	padRemainingInAscii(s, sizeIdx)
	if !s.encoding() {
		return true
	}
	s.markComplete(sizeIdx)
	return true
}
