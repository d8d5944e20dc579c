package dmtxgo

import "errors"

var (
	// ErrUnsupportedChar is returned when an input byte cannot be represented
	// in the target encodation scheme.
	ErrUnsupportedChar = errors.New("character unsupported by scheme")

	// ErrSymbolOverflow is returned when no symbol size can hold the encoded data.
	ErrSymbolOverflow = errors.New("data too large for symbol")

	// ErrIllegalUnlatch is returned when a scheme exit is attempted off a
	// codeword boundary.
	ErrIllegalUnlatch = errors.New("unlatch off codeword boundary")

	// ErrFormat is returned when codewords cannot be decoded due to format issues.
	ErrFormat = errors.New("format error")

	// ErrInternal indicates an encoder contract violation.
	ErrInternal = errors.New("internal encoder error")
)
