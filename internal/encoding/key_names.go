package encoding

import (
	"fmt"
	"math"

	"github.com/modularhistory/histdate/endian"
	"github.com/modularhistory/histdate/errs"
)

// EncodeKeyNames encodes entry keys as a length-prefixed list.
// Format: [Count: uint16] [Len1: uint16][Key1: UTF-8] [Len2: uint16][Key2: UTF-8] ...
//
// Keys are written in index order, so keys[i] belongs to the i-th index entry.
func EncodeKeyNames(keys []string, engine endian.EndianEngine) ([]byte, error) {
	if len(keys) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d keys", errs.ErrTooManyEntries, len(keys))
	}

	totalSize := 2
	for _, key := range keys {
		if len(key) > math.MaxUint16 {
			return nil, fmt.Errorf("%w: key of %d bytes", errs.ErrInvalidKeyLength, len(key))
		}
		totalSize += 2 + len(key)
	}

	buf := make([]byte, 0, totalSize)
	buf = engine.AppendUint16(buf, uint16(len(keys))) //nolint: gosec
	for _, key := range keys {
		buf = engine.AppendUint16(buf, uint16(len(key))) //nolint: gosec
		buf = append(buf, key...)
	}

	return buf, nil
}

// DecodeKeyNames decodes a payload written by EncodeKeyNames and returns the keys and
// the number of bytes consumed.
func DecodeKeyNames(data []byte, engine endian.EndianEngine) ([]string, int, error) {
	if len(data) < 2 {
		return nil, 0, fmt.Errorf("%w: cannot read key count (have %d bytes)", errs.ErrInvalidNamesPayload, len(data))
	}

	count := int(engine.Uint16(data))
	offset := 2

	keys := make([]string, count)
	for i := range count {
		if len(data) < offset+2 {
			return nil, 0, fmt.Errorf("%w: cannot read length of key %d at offset %d", errs.ErrInvalidNamesPayload, i, offset)
		}
		keyLen := int(engine.Uint16(data[offset:]))
		offset += 2

		if len(data) < offset+keyLen {
			return nil, 0, fmt.Errorf("%w: key %d needs %d bytes at offset %d, have %d",
				errs.ErrInvalidNamesPayload, i, keyLen, offset, len(data))
		}
		keys[i] = string(data[offset : offset+keyLen])
		offset += keyLen
	}

	return keys, offset, nil
}

// VerifyKeyHashes checks that hashFunc(keys[i]) equals ids[i] for every entry.
func VerifyKeyHashes(keys []string, ids []uint64, hashFunc func(string) uint64) error {
	if len(keys) != len(ids) {
		return fmt.Errorf("%w: %d keys for %d entries", errs.ErrInvalidNamesCount, len(keys), len(ids))
	}

	for i, key := range keys {
		if want := hashFunc(key); want != ids[i] {
			return fmt.Errorf("%w: key %q at index %d: expected 0x%016x, got 0x%016x",
				errs.ErrHashMismatch, key, i, want, ids[i])
		}
	}

	return nil
}
