package decoder

import (
	"bytes"
	"errors"
	"testing"

	dmtxgo "github.com/ericlevine/dmtxgo"
)

func TestDecodeASCII(t *testing.T) {
	tests := []struct {
		name      string
		codewords []byte
		want      string
	}{
		{"values", []byte{66, 98, 33}, "Aa "},
		{"digit pair", []byte{142, 164, 186}, "123456"},
		{"pad stops", []byte{66, 129, 70, 220}, "A"},
		{"upper shift", []byte{235, 1, 129}, "\x80"},
		{"fnc1", []byte{232, 66}, "\x1DA"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.codewords)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDecodeZeroCodewordInvalid(t *testing.T) {
	_, err := Decode([]byte{0})
	if !errors.Is(err, dmtxgo.ErrFormat) {
		t.Fatalf("got %v", err)
	}
}

func TestDecodeC40(t *testing.T) {
	tests := []struct {
		name      string
		codewords []byte
		want      string
	}{
		{"basic triplet", []byte{230, 91, 11}, "AIM"},
		{"unlatch then ascii", []byte{230, 91, 11, 254, 66}, "AIMA"},
		{"trailing shift discarded", []byte{230, 89, 217}, "AB"},
		{"single trailing codeword is ascii", []byte{230, 91, 11, 89}, "AIMX"},
		{"upper shift pair", []byte{230, 10, 255}, "\xC1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.codewords)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDecodeText(t *testing.T) {
	got, err := Decode([]byte{239, 91, 11})
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "aim" {
		t.Errorf("got %q", got)
	}
}

func TestDecodeX12(t *testing.T) {
	got, err := Decode([]byte{238, 89, 233, 254, 63})
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "ABC>" {
		t.Errorf("got %q", got)
	}
}

func TestDecodeEdifact(t *testing.T) {
	tests := []struct {
		name      string
		codewords []byte
		want      string
	}{
		{"full group", []byte{240, 4, 32, 196, 70}, "ABCDE"},
		{"unlatch mid group", []byte{240, 4, 32, 196, 20, 103, 192, 129}, "ABCDEF"},
		{"ascii tail without unlatch", []byte{240, 66, 129}, "A"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.codewords)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDecodeBase256(t *testing.T) {
	got, err := Decode([]byte{231, 47, 34, 185, 79})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("abc")) {
		t.Errorf("got %q", got)
	}

	// truncated payload
	if _, err := Decode([]byte{231, 47, 34}); !errors.Is(err, dmtxgo.ErrFormat) {
		t.Fatalf("got %v", err)
	}
}

func TestUnRandomize255State(t *testing.T) {
	for pos := 1; pos < 300; pos++ {
		for _, v := range []byte{0, 1, 128, 254, 255} {
			masked := byte(int(v) + (149*pos)%255 + 1)
			if got := unRandomize255State(masked, pos); got != v {
				t.Fatalf("pos %d value %d: got %d", pos, v, got)
			}
		}
	}
}
