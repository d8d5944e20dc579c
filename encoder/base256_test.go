package encoder

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ericlevine/dmtxgo/decoder"
)

func testPattern(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i * 151)
	}
	return data
}

// The length header switches from one byte to two when the chain passes 249
// payload bytes.
func TestBase256HeaderWidth(t *testing.T) {
	t.Run("249 stays single", func(t *testing.T) {
		cw, _, err := EncodeSingleScheme(testPattern(249), SchemeBase256, SizeShapeAuto)
		require.NoError(t, err)
		assert.EqualValues(t, 249, unRandomize255State(cw[1], 2))
		assert.EqualValues(t, 231, cw[0])

		decoded, err := decoder.Decode(cw)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(testPattern(249), decoded))
	})

	t.Run("250 grows to two", func(t *testing.T) {
		cw, _, err := EncodeSingleScheme(testPattern(250), SchemeBase256, SizeShapeAuto)
		require.NoError(t, err)
		assert.EqualValues(t, 250, unRandomize255State(cw[1], 2)) // 250/250 + 249
		assert.EqualValues(t, 0, unRandomize255State(cw[2], 3))   // 250 mod 250

		decoded, err := decoder.Decode(cw)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(testPattern(250), decoded))
	})
}

func TestBase256TwoByteHeader(t *testing.T) {
	input := testPattern(255)
	cw, sizeIdx, err := EncodeSingleScheme(input, SchemeBase256, SizeShapeAuto)
	require.NoError(t, err)

	// latch + 2 header bytes + 255 payload bytes, padded into the 64x64 symbol
	assert.Equal(t, SizeIdx(15), sizeIdx)
	assert.Equal(t, 280, len(cw))
	assert.EqualValues(t, 231, cw[0])
	assert.EqualValues(t, 250, unRandomize255State(cw[1], 2))
	assert.EqualValues(t, 5, unRandomize255State(cw[2], 3))

	decoded, err := decoder.Decode(cw)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(input, decoded))
}

// A chain that would fill the symbol save for its second header byte
// collapses to the single zero-valued header, meaning "runs to the end of
// the symbol", and gains that codeword for payload.
func TestBase256PerfectFit(t *testing.T) {
	input := testPattern(278) // 1 latch + 1 header + 278 payload = 280 = 64x64 capacity
	cw, sizeIdx, err := EncodeSingleScheme(input, SchemeBase256, SizeShapeAuto)
	require.NoError(t, err)

	assert.Equal(t, SizeIdx(15), sizeIdx)
	assert.Equal(t, 280, len(cw))
	assert.EqualValues(t, 0, unRandomize255State(cw[1], 2))

	decoded, err := decoder.Decode(cw)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(input, decoded))
}

func TestRandomize255Inverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Byte().Draw(t, "v")
		pos := rapid.IntRange(1, 4096).Draw(t, "pos")
		assert.Equal(t, v, unRandomize255State(randomize255State(v, pos), pos))
		assert.Equal(t, v, randomize255State(unRandomize255State(v, pos), pos))
	})
}
