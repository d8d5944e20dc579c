// Copyright 2008, 2009 Mike Laughton in part, and the libdmtx Authors in part.
// Use of this source code is governed by a Simplified BSD license that can
// be found in the LICENSE file.

// Ported from the libdmtx C library.

// Package encoder implements Data Matrix (ECC-200) high-level encoding: the
// transformation of a byte message into the data codeword stream defined by
// ISO/IEC 16022, under a single caller-chosen encodation scheme.
package encoder

import (
	"fmt"

	dmtxgo "github.com/ericlevine/dmtxgo"
)

// Special codeword values in ASCII mode.
const (
	asciiUpperShift = 235 // shifts to upper 128 characters
	asciiPad        = 129 // padding codeword
)

// Latch and unlatch codewords.
const (
	latchToC40     = 230
	latchToBase256 = 231
	latchToX12     = 238
	latchToText    = 239
	latchToEDIFACT = 240
	unlatchCTX     = 254 // unlatch from C40/Text/X12 back to ASCII
	unlatchEDIFACT = 31  // 6-bit value, packed like any other EDIFACT value
)

// C40/Text/X12 shift values.
const (
	ctxShift1     = 0
	ctxShift2     = 1
	ctxShift3     = 2
	ctxUpperShift = 30 // within the shift 2 set
)

type unlatchType int

const (
	// unlatchExplicit emits the scheme's unlatch sequence on exit.
	unlatchExplicit unlatchType = iota
	// unlatchImplicit exits without one; the end-of-symbol context lets the
	// decoder infer the scheme change.
	unlatchImplicit
)

// Encode encodes input under the target scheme, selecting the smallest
// symbol of any shape.
func Encode(input []byte, targetScheme Scheme) ([]byte, SizeIdx, error) {
	return EncodeSingleScheme(input, targetScheme, SizeShapeAuto)
}

// EncodeSingleScheme encodes input under the target scheme into the data
// codewords of the requested symbol size. sizeIdxRequest is either an
// explicit size index or one of the automatic selections. It returns the
// finalized codewords, whose length always equals the resolved symbol's
// data capacity, and the resolved size index.
func EncodeSingleScheme(input []byte, targetScheme Scheme, sizeIdxRequest SizeIdx) ([]byte, SizeIdx, error) {
	s := newEncodeStream(input)

	if s.currentScheme != SchemeASCII {
		s.markFatal(fmt.Errorf("%w: encode must start in ASCII", dmtxgo.ErrInternal))
	}

	for s.status == statusEncoding {
		encodeNextChunk(s, targetScheme, sizeIdxRequest)
	}

	if s.status != statusComplete || s.inputHasNext() {
		reason := s.reason
		if reason == nil {
			reason = dmtxgo.ErrInternal
		}
		return nil, SizeIdxUndefined, fmt.Errorf("encoder: %w", reason)
	}
	return s.output, s.sizeIdx, nil
}

// encodeNextChunk encodes the smallest atomic group of values the target
// scheme allows, latching to the target scheme first if necessary.
func encodeNextChunk(s *EncodeStream, targetScheme Scheme, sizeIdxRequest SizeIdx) {
	if s.currentScheme != targetScheme {
		encodeChangeScheme(s, targetScheme, unlatchExplicit)
		if !s.encoding() {
			return
		}
	}

	switch s.currentScheme {
	case SchemeASCII:
		encodeNextChunkAscii(s)
		if !s.encoding() {
			return
		}
		completeIfDoneAscii(s, sizeIdxRequest)
	case SchemeC40, SchemeText, SchemeX12:
		encodeNextChunkCTX(s, sizeIdxRequest)
		if !s.encoding() {
			return
		}
		completeIfDoneCTX(s, sizeIdxRequest)
	case SchemeEDIFACT:
		encodeNextChunkEdifact(s, sizeIdxRequest)
		if !s.encoding() {
			return
		}
		completeIfDoneEdifact(s, sizeIdxRequest)
	case SchemeBase256:
		encodeNextChunkBase256(s)
		if !s.encoding() {
			return
		}
		completeIfDoneBase256(s, sizeIdxRequest)
	default:
		s.markFatal(fmt.Errorf("%w: unknown scheme %v", dmtxgo.ErrInternal, s.currentScheme))
	}
}

// encodeChangeScheme exits the current scheme and latches to the target.
// Every transition passes through ASCII: unlatches live in the scheme being
// exited, latches in the ASCII stream between them. The chain counters reset
// here, so a chain is exactly the run of codewords since the latest latch.
func encodeChangeScheme(s *EncodeStream, targetScheme Scheme, unlatch unlatchType) {
	switch s.currentScheme {
	case SchemeC40, SchemeText, SchemeX12:
		if unlatch == unlatchExplicit {
			appendUnlatchCTX(s)
			if !s.encoding() {
				return
			}
		}
	case SchemeEDIFACT:
		if unlatch == unlatchExplicit {
			appendValueEdifact(s, unlatchEDIFACT)
			if !s.encoding() {
				return
			}
		}
	}
	s.currentScheme = SchemeASCII

	if targetScheme != SchemeASCII {
		switch targetScheme {
		case SchemeC40:
			appendValueAscii(s, latchToC40)
		case SchemeText:
			appendValueAscii(s, latchToText)
		case SchemeX12:
			appendValueAscii(s, latchToX12)
		case SchemeEDIFACT:
			appendValueAscii(s, latchToEDIFACT)
		case SchemeBase256:
			appendValueAscii(s, latchToBase256)
		default:
			s.markFatal(fmt.Errorf("%w: unknown scheme %v", dmtxgo.ErrInternal, targetScheme))
		}
		if !s.encoding() {
			return
		}
	}
	s.currentScheme = targetScheme

	s.chainWordCount = 0
	s.chainValueCount = 0

	// A Base 256 chain always starts with a length header; seed it with a
	// placeholder and write its real (randomized) value right away.
	if targetScheme == SchemeBase256 {
		s.outputChainAppend(0)
		if !s.encoding() {
			return
		}
		updateBase256ChainHeader(s, SizeIdxUndefined)
	}
}

// remainingSymbolCapacity returns the number of unused data codewords the
// symbol would have at the given output length.
func remainingSymbolCapacity(outputLength int, sizeIdx SizeIdx) int {
	return SymbolDataWords(sizeIdx) - outputLength
}
