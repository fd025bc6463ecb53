package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/modularhistory/histdate/endian"
	"github.com/modularhistory/histdate/errs"
	"github.com/modularhistory/histdate/internal/hash"
)

func TestKeyNames_RoundTrip(t *testing.T) {
	keys := []string{"fall-of-rome", "", "Œuvre d'art", "moon-landing"}

	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		data, err := EncodeKeyNames(keys, engine)
		require.NoError(t, err)

		got, n, err := DecodeKeyNames(data, engine)
		require.NoError(t, err)
		require.Equal(t, keys, got)
		require.Equal(t, len(data), n)
	}
}

func TestDecodeKeyNames_Truncated(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	data, err := EncodeKeyNames([]string{"alpha", "beta"}, engine)
	require.NoError(t, err)

	for _, cut := range []int{0, 1, 3, len(data) - 1} {
		_, _, err := DecodeKeyNames(data[:cut], engine)
		require.ErrorIs(t, err, errs.ErrInvalidNamesPayload, "cut at %d", cut)
	}
}

func TestEncodeKeyNames_KeyTooLong(t *testing.T) {
	_, err := EncodeKeyNames([]string{string(make([]byte, 70000))}, endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrInvalidKeyLength)
}

func TestVerifyKeyHashes(t *testing.T) {
	keys := []string{"a", "b"}
	ids := []uint64{hash.ID("a"), hash.ID("b")}
	require.NoError(t, VerifyKeyHashes(keys, ids, hash.ID))

	require.ErrorIs(t, VerifyKeyHashes(keys, ids[:1], hash.ID), errs.ErrInvalidNamesCount)

	ids[1] = 42
	require.ErrorIs(t, VerifyKeyHashes(keys, ids, hash.ID), errs.ErrHashMismatch)
}
