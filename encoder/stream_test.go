package encoder

import (
	"errors"
	"testing"

	dmtxgo "github.com/ericlevine/dmtxgo"
)

func TestStreamPrimitives(t *testing.T) {
	s := newEncodeStream([]byte("ab"))

	if !s.inputHasNext() || s.inputPeekNext() != 'a' {
		t.Fatal("fresh stream should peek the first byte")
	}
	if s.inputAdvanceNext() != 'a' || s.inputNext != 1 {
		t.Fatal("advance should consume one byte")
	}

	s.outputChainAppend(10)
	s.outputChainAppend(20)
	if s.chainWordCount != 2 {
		t.Fatalf("chain word count = %d", s.chainWordCount)
	}
	if v := s.outputChainRemoveLast(); v != 20 || s.chainWordCount != 1 {
		t.Fatalf("remove last = %d, count %d", v, s.chainWordCount)
	}
	s.outputSet(0, 99)
	if s.output[0] != 99 {
		t.Fatal("outputSet did not overwrite")
	}
	if !s.encoding() {
		t.Fatalf("stream left encoding: %v", s.reason)
	}
}

func TestStreamFatalOnMisuse(t *testing.T) {
	s := newEncodeStream(nil)
	s.inputPeekNext()
	if s.status != statusFatal || !errors.Is(s.reason, dmtxgo.ErrInternal) {
		t.Fatal("peek past end should be fatal")
	}

	s = newEncodeStream(nil)
	s.outputChainRemoveLast()
	if s.status != statusFatal {
		t.Fatal("remove from empty chain should be fatal")
	}

	s = newEncodeStream(nil)
	s.outputSet(3, 1)
	if s.status != statusFatal {
		t.Fatal("out-of-range set should be fatal")
	}

	// handlers reject being called in the wrong scheme
	s = newEncodeStream(nil)
	appendValueEdifact(s, 65)
	if s.status != statusFatal {
		t.Fatal("EDIFACT append in ASCII scheme should be fatal")
	}
}

func TestUnlatchOffBoundaryIsInvalid(t *testing.T) {
	s := newEncodeStream(nil)
	s.currentScheme = SchemeC40
	s.chainValueCount = 1
	appendUnlatchCTX(s)
	if s.status != statusInvalid || !errors.Is(s.reason, dmtxgo.ErrIllegalUnlatch) {
		t.Fatalf("status %v, reason %v", s.status, s.reason)
	}
}

func TestStatusIsSticky(t *testing.T) {
	s := newEncodeStream(nil)
	s.markInvalid(dmtxgo.ErrUnsupportedChar)
	s.markComplete(0)
	s.markFatal(dmtxgo.ErrInternal)
	if s.status != statusInvalid || !errors.Is(s.reason, dmtxgo.ErrUnsupportedChar) {
		t.Fatal("first terminal status should win")
	}
}
