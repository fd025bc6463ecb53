package compress

import (
	"bytes"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/modularhistory/histdate/format"
)

// datePayload mimics a timeline payload: many 14-byte dates sharing sentinel bytes.
func datePayload(n int) []byte {
	buf := make([]byte, 0, n*14)
	for i := range n {
		buf = append(buf,
			byte(1800+i%200), byte((1800+i%200)>>8), // year
			byte(1+i%12), 1, 0, 0, 0, 0, // month, day, hour, minute, second, reserved
			0, 0, 0, 0, // microsecond
			0, 0, // zone
		)
	}

	return buf
}

func allCodecs(t *testing.T) []Codec {
	t.Helper()

	codecs := make([]Codec, 0, 4)
	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.Equal(t, ct, codec.Type())
		codecs = append(codecs, codec)
	}

	return codecs
}

func TestCodecs_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	random := make([]byte, 4096)
	rng.Read(random)

	inputs := map[string][]byte{
		"empty":    {},
		"single":   datePayload(1),
		"dates":    datePayload(1000),
		"random":   random,
		"tiny":     {0x42},
		"literals": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, 1),
	}

	for _, codec := range allCodecs(t) {
		for name, input := range inputs {
			t.Run(codec.Type().String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(input)
				require.NoError(t, err)

				out, err := codec.Decompress(compressed, len(input))
				require.NoError(t, err)
				require.Len(t, out, len(input))
				if len(input) > 0 {
					require.Equal(t, input, out)
				}
			})
		}
	}
}

func TestCodecs_ShrinkDatePayload(t *testing.T) {
	input := datePayload(2000)
	for _, codec := range allCodecs(t) {
		if codec.Type() == format.CompressionNone {
			continue
		}
		compressed, err := codec.Compress(input)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(input)/2, codec.Type().String())
	}
}

func TestCodecs_SizeMismatch(t *testing.T) {
	input := datePayload(50)
	for _, codec := range allCodecs(t) {
		t.Run(codec.Type().String(), func(t *testing.T) {
			compressed, err := codec.Compress(input)
			require.NoError(t, err)

			_, err = codec.Decompress(compressed, len(input)+1)
			require.Error(t, err)

			_, err = codec.Decompress(compressed, -1)
			require.ErrorIs(t, err, ErrSizeMismatch)
		})
	}
}

func TestCodecs_CorruptInput(t *testing.T) {
	garbage := []byte{0xFF, 0xFE, 0xFD, 0xFC, 0xFB, 0xFA, 0xF9, 0xF8}
	for _, codec := range allCodecs(t) {
		if codec.Type() == format.CompressionNone {
			continue
		}
		_, err := codec.Decompress(garbage, 1000)
		require.Error(t, err, codec.Type().String())
	}
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0x7))
	require.Error(t, err)
}

func TestCodecs_Concurrent(t *testing.T) {
	input := datePayload(300)
	for _, codec := range allCodecs(t) {
		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				compressed, err := codec.Compress(input)
				require.NoError(t, err)
				out, err := codec.Decompress(compressed, len(input))
				require.NoError(t, err)
				require.Equal(t, input, out)
			}()
		}
		wg.Wait()
	}
}

func TestLiteralBlock(t *testing.T) {
	for _, n := range []int{1, 14, 15, 16, 269, 270, 1000} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i * 7)
		}

		out, err := NewLZ4Compressor().Decompress(literalBlock(data), n)
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, data, out)
	}
}
