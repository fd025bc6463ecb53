package section

import (
	"fmt"

	"github.com/modularhistory/histdate/endian"
	"github.com/modularhistory/histdate/errs"
)

// IndexEntry describes one dated entry of a timeline blob.
//
// On disk Offset is the delta from the previous entry's payload offset; the first entry
// stores its absolute offset. After parsing, the decoder accumulates the deltas so that
// Offset holds the absolute offset in the uncompressed payload.
type IndexEntry struct {
	// EntryID is the caller-supplied ID or the xxHash64 of the entry key.
	EntryID uint64
	// Offset is the payload offset of the entry's binary date.
	Offset int
	// Precision is the histdate.Precision of the entry's date.
	Precision uint8
	// Era is the histdate.Era of the entry's date.
	Era uint8
}

// WriteToSlice writes the entry at offset in data and returns the next write position.
// The caller must have converted Offset to a delta.
func (e *IndexEntry) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint64(data[offset:offset+8], e.EntryID)
	engine.PutUint32(data[offset+8:offset+12], uint32(e.Offset)) //nolint: gosec
	data[offset+12] = e.Precision
	data[offset+13] = e.Era
	data[offset+14] = 0
	data[offset+15] = 0

	return offset + IndexEntrySize
}

// Bytes returns the serialized entry.
func (e *IndexEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [IndexEntrySize]byte
	e.WriteToSlice(b[:], 0, engine)

	return b[:]
}

// ParseIndexEntry parses an IndexEntry from the first IndexEntrySize bytes of data.
// The returned Offset is still a delta.
func ParseIndexEntry(data []byte, engine endian.EndianEngine) (IndexEntry, error) {
	if len(data) < IndexEntrySize {
		return IndexEntry{}, fmt.Errorf("%w: %d bytes", errs.ErrInvalidIndexEntrySize, len(data))
	}

	return IndexEntry{
		EntryID:   engine.Uint64(data[0:8]),
		Offset:    int(engine.Uint32(data[8:12])),
		Precision: data[12],
		Era:       data[13],
	}, nil
}
