// Package decoder implements decoding of Data Matrix (ECC-200) data
// codewords back into the original byte message. It consumes the codeword
// stream produced by the encoder subpackage, after error correction has
// already been applied.
package decoder

import (
	dmtxgo "github.com/ericlevine/dmtxgo"
)

// Data Matrix encoding modes.
const (
	modeASCII   = iota // default start mode
	modeC40            // C40 encoding
	modeText           // Text encoding
	modeX12            // ANSI X12 encoding
	modeEDIFACT        // EDIFACT encoding
	modeBase256        // Base 256 encoding
	modePad            // padding reached — stop
)

// c40TextShift2 maps shift 2 values 0-26 to their characters. 27 = FNC1,
// 28-29 reserved, 30 = upper shift, all handled in code.
var c40TextShift2 = [27]byte{
	'!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
	':', ';', '<', '=', '>', '?', '@', '[', '\\', ']', '^', '_',
}

// Decode decodes the data codewords of a Data Matrix symbol into the
// original bytes.
func Decode(codewords []byte) ([]byte, error) {
	out := []byte{}
	mode := modeASCII
	pos := 0

	for pos < len(codewords) {
		var err error
		switch mode {
		case modeASCII:
			mode, err = decodeASCII(&out, codewords, &pos)
		case modeC40:
			mode, err = decodeC40Text(&out, codewords, &pos, false)
		case modeText:
			mode, err = decodeC40Text(&out, codewords, &pos, true)
		case modeX12:
			mode, err = decodeAnsiX12(&out, codewords, &pos)
		case modeEDIFACT:
			mode, err = decodeEdifact(&out, codewords, &pos)
		case modeBase256:
			mode, err = decodeBase256(&out, codewords, &pos)
		}
		if err != nil {
			return nil, err
		}
		if mode == modePad {
			break
		}
	}
	return out, nil
}

// decodeASCII processes codewords in ASCII mode until a mode latch or the
// end of the data.
func decodeASCII(out *[]byte, codewords []byte, pos *int) (int, error) {
	for *pos < len(codewords) {
		cw := int(codewords[*pos])
		*pos++

		switch {
		case cw == 0:
			return 0, dmtxgo.ErrFormat
		case cw <= 128:
			// data value + 1
			*out = append(*out, byte(cw-1))
		case cw == 129:
			return modePad, nil
		case cw <= 229:
			// digit pair: 130 encodes "00", 229 encodes "99"
			pair := cw - 130
			*out = append(*out, byte('0'+pair/10), byte('0'+pair%10))
		case cw == 230:
			return modeC40, nil
		case cw == 231:
			return modeBase256, nil
		case cw == 232:
			// FNC1
			*out = append(*out, 0x1D)
		case cw == 233:
			// Structured Append: skip the 2 identifier codewords
			*pos += 2
		case cw == 235:
			// upper shift: next value + 128
			if *pos >= len(codewords) {
				return 0, dmtxgo.ErrFormat
			}
			*out = append(*out, codewords[*pos]-1+128)
			*pos++
		case cw == 238:
			return modeX12, nil
		case cw == 239:
			return modeText, nil
		case cw == 240:
			return modeEDIFACT, nil
		default:
			// 234 (reader programming), 236/237 (macros), 241 (ECI) and the
			// unused range 242-255 carry no message bytes here
		}
	}
	return modeASCII, nil
}

// decodeC40Text decodes C40 (basic set: space, 0-9, A-Z) or Text (basic
// set: space, 0-9, a-z) codeword pairs. A single trailing codeword is an
// ASCII value after an implicit unlatch.
func decodeC40Text(out *[]byte, codewords []byte, pos *int, textMode bool) (int, error) {
	shift := 0
	upperShift := false

	for *pos < len(codewords)-1 {
		c1 := int(codewords[*pos])
		*pos++
		if c1 == 254 {
			return modeASCII, nil
		}
		c2 := int(codewords[*pos])
		*pos++

		v := c1*256 + c2 - 1
		triplet := [3]int{v / 1600, (v / 40) % 40, v % 40}

		for _, cVal := range triplet {
			switch shift {
			case 0:
				switch {
				case cVal < 3:
					shift = cVal + 1
				case cVal == 3:
					upperShift = appendShifted(out, ' ', upperShift)
				case cVal <= 13:
					upperShift = appendShifted(out, byte('0'+cVal-4), upperShift)
				case textMode:
					upperShift = appendShifted(out, byte('a'+cVal-14), upperShift)
				default:
					upperShift = appendShifted(out, byte('A'+cVal-14), upperShift)
				}
			case 1:
				// shift 1 set: ASCII 0-31
				upperShift = appendShifted(out, byte(cVal), upperShift)
				shift = 0
			case 2:
				switch {
				case cVal < 27:
					upperShift = appendShifted(out, c40TextShift2[cVal], upperShift)
				case cVal == 27:
					upperShift = appendShifted(out, 0x1D, upperShift)
				case cVal == 30:
					upperShift = true
				}
				// 28, 29 and 31 are reserved
				shift = 0
			case 3:
				// shift 3 set: the other-case letter bank plus ` { | } ~ DEL
				ch := byte(96 + cVal)
				if textMode && cVal >= 1 && cVal <= 26 {
					ch = byte(64 + cVal)
				}
				upperShift = appendShifted(out, ch, upperShift)
				shift = 0
			}
		}
	}
	return modeASCII, nil
}

// appendShifted appends ch, adding 128 when an upper shift is pending, and
// returns the cleared upper shift state.
func appendShifted(out *[]byte, ch byte, upperShift bool) bool {
	if upperShift {
		ch += 128
	}
	*out = append(*out, ch)
	return false
}

// decodeAnsiX12 decodes X12 codeword pairs (basic set: CR, *, >, space,
// 0-9, A-Z).
func decodeAnsiX12(out *[]byte, codewords []byte, pos *int) (int, error) {
	for *pos < len(codewords)-1 {
		c1 := int(codewords[*pos])
		*pos++
		if c1 == 254 {
			return modeASCII, nil
		}
		c2 := int(codewords[*pos])
		*pos++

		v := c1*256 + c2 - 1
		triplet := [3]int{v / 1600, (v / 40) % 40, v % 40}

		for _, cVal := range triplet {
			switch {
			case cVal == 0:
				*out = append(*out, '\r')
			case cVal == 1:
				*out = append(*out, '*')
			case cVal == 2:
				*out = append(*out, '>')
			case cVal == 3:
				*out = append(*out, ' ')
			case cVal >= 4 && cVal <= 13:
				*out = append(*out, byte('0'+cVal-4))
			case cVal >= 14 && cVal <= 39:
				*out = append(*out, byte('A'+cVal-14))
			}
		}
	}
	return modeASCII, nil
}

// decodeEdifact unpacks 6-bit EDIFACT values, three codewords per group of
// four. The final two codewords of the symbol are always processed as
// ASCII, so the scheme change there needs no unlatch; an explicit unlatch
// value resumes ASCII at the next codeword boundary.
func decodeEdifact(out *[]byte, codewords []byte, pos *int) (int, error) {
	for {
		if len(codewords)-*pos <= 2 {
			return modeASCII, nil
		}

		b1 := codewords[*pos]
		b2 := codewords[*pos+1]
		b3 := codewords[*pos+2]
		values := [4]byte{
			b1 >> 2,
			(b1&0x03)<<4 | b2>>4,
			(b2&0x0F)<<2 | b3>>6,
			b3 & 0x3F,
		}

		for i, ev := range values {
			if ev == 31 {
				// skip the remainder of the codeword holding the unlatch
				*pos += (6*(i+1) + 7) / 8
				return modeASCII, nil
			}
			ch := ev
			if ch&0x20 == 0 {
				ch |= 0x40
			}
			*out = append(*out, ch)
		}
		*pos += 3
	}
}

// decodeBase256 reads the randomized one- or two-byte length header and the
// randomized payload. A zero header means the payload runs to the end of
// the symbol.
func decodeBase256(out *[]byte, codewords []byte, pos *int) (int, error) {
	if *pos >= len(codewords) {
		return 0, dmtxgo.ErrFormat
	}

	d1 := int(unRandomize255State(codewords[*pos], *pos+1))
	*pos++

	var count int
	switch {
	case d1 == 0:
		count = len(codewords) - *pos
	case d1 < 250:
		count = d1
	default:
		if *pos >= len(codewords) {
			return 0, dmtxgo.ErrFormat
		}
		d2 := int(unRandomize255State(codewords[*pos], *pos+1))
		*pos++
		count = 250*(d1-249) + d2
	}

	if *pos+count > len(codewords) {
		return 0, dmtxgo.ErrFormat
	}
	for i := 0; i < count; i++ {
		*out = append(*out, unRandomize255State(codewords[*pos], *pos+1))
		*pos++
	}
	return modeASCII, nil
}

// unRandomize255State removes the Base 256 masking from a codeword at its
// 1-based position in the data stream.
func unRandomize255State(value byte, position int) byte {
	tmp := int(value) - ((149*position)%255 + 1)
	if tmp < 0 {
		tmp += 256
	}
	return byte(tmp)
}
