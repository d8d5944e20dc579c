// Copyright 2008, 2009 Mike Laughton in part, and the libdmtx Authors in part.
// Use of this source code is governed by a Simplified BSD license that can
// be found in the LICENSE file.

// Ported from the libdmtx C library.

package encoder

import (
	"fmt"

	dmtxgo "github.com/ericlevine/dmtxgo"
)

// Scheme identifies a Data Matrix encodation scheme.
type Scheme int

const (
	SchemeASCII Scheme = iota
	SchemeC40
	SchemeText
	SchemeX12
	SchemeEDIFACT
	SchemeBase256
)

func (s Scheme) String() string {
	switch s {
	case SchemeASCII:
		return "ASCII"
	case SchemeC40:
		return "C40"
	case SchemeText:
		return "Text"
	case SchemeX12:
		return "X12"
	case SchemeEDIFACT:
		return "EDIFACT"
	case SchemeBase256:
		return "Base256"
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// ParseScheme returns the Scheme with the given name (case-sensitive, as printed by
// Scheme.String).
func ParseScheme(name string) (Scheme, error) {
	for sc := SchemeASCII; sc <= SchemeBase256; sc++ {
		if sc.String() == name {
			return sc, nil
		}
	}
	return 0, fmt.Errorf("encoder: unknown scheme %q", name)
}

type status int

const (
	statusEncoding status = iota
	statusComplete
	statusInvalid
	statusFatal
)

// EncodeStream carries the mutable state of a single encode: the input
// cursor, the output codewords, the active scheme and the counters for the
// current chain (the run of codewords since the most recent latch).
//
// Every operation that can change the status must be followed by an encoding
// check before further work; once the stream leaves the encoding state it is
// never mutated again.
type EncodeStream struct {
	input     []byte
	inputNext int

	output    []byte
	outputMax int // bound for scratch streams; 0 means unbounded

	currentScheme Scheme

	chainWordCount  int // output bytes in the current chain
	chainValueCount int // scheme values in the current chain

	status  status
	reason  error
	sizeIdx SizeIdx
}

func newEncodeStream(input []byte) *EncodeStream {
	return &EncodeStream{
		input:         input,
		currentScheme: SchemeASCII,
		status:        statusEncoding,
		sizeIdx:       SizeIdxUndefined,
	}
}

func (s *EncodeStream) encoding() bool {
	return s.status == statusEncoding
}

func (s *EncodeStream) markComplete(sizeIdx SizeIdx) {
	if s.status != statusEncoding {
		return
	}
	s.status = statusComplete
	s.sizeIdx = sizeIdx
}

func (s *EncodeStream) markInvalid(reason error) {
	if s.status != statusEncoding {
		return
	}
	s.status = statusInvalid
	s.reason = reason
}

func (s *EncodeStream) markFatal(reason error) {
	if s.status != statusEncoding {
		return
	}
	s.status = statusFatal
	s.reason = reason
}

// requireScheme marks the stream fatal unless the current scheme is one of
// the given schemes. Scheme handlers call this on entry.
func (s *EncodeStream) requireScheme(schemes ...Scheme) bool {
	for _, sc := range schemes {
		if s.currentScheme == sc {
			return true
		}
	}
	s.markFatal(fmt.Errorf("%w: %v handler called in %v", dmtxgo.ErrInternal, schemes[0], s.currentScheme))
	return false
}

func (s *EncodeStream) inputHasNext() bool {
	return s.inputNext < len(s.input)
}

func (s *EncodeStream) inputPeekNext() byte {
	if !s.inputHasNext() {
		s.markFatal(fmt.Errorf("%w: peek past end of input", dmtxgo.ErrInternal))
		return 0
	}
	return s.input[s.inputNext]
}

func (s *EncodeStream) inputAdvanceNext() byte {
	v := s.inputPeekNext()
	if !s.encoding() {
		return 0
	}
	s.inputNext++
	return v
}

// outputChainAppend appends one codeword to the output and accounts for it
// in the current chain.
func (s *EncodeStream) outputChainAppend(value byte) {
	if s.outputMax > 0 && len(s.output) >= s.outputMax {
		s.markFatal(fmt.Errorf("%w: output capacity exceeded", dmtxgo.ErrInternal))
		return
	}
	s.output = append(s.output, value)
	s.chainWordCount++
}

// outputChainRemoveLast removes and returns the most recent codeword. Only
// codewords of the current chain may be removed.
func (s *EncodeStream) outputChainRemoveLast() byte {
	if len(s.output) == 0 || s.chainWordCount == 0 {
		s.markFatal(fmt.Errorf("%w: remove from empty chain", dmtxgo.ErrInternal))
		return 0
	}
	v := s.output[len(s.output)-1]
	s.output = s.output[:len(s.output)-1]
	s.chainWordCount--
	return v
}

// outputSet overwrites the codeword at index. Used for the Base 256 header
// bytes; the header resize helpers rewrite shifted payload bytes directly.
func (s *EncodeStream) outputSet(index int, value byte) {
	if index < 0 || index >= len(s.output) {
		s.markFatal(fmt.Errorf("%w: output index %d out of range", dmtxgo.ErrInternal, index))
		return
	}
	s.output[index] = value
}
