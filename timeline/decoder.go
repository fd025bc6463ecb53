package timeline

import (
	"fmt"

	"github.com/modularhistory/histdate"
	"github.com/modularhistory/histdate/compress"
	"github.com/modularhistory/histdate/endian"
	"github.com/modularhistory/histdate/errs"
	ienc "github.com/modularhistory/histdate/internal/encoding"
	"github.com/modularhistory/histdate/internal/hash"
	"github.com/modularhistory/histdate/section"
)

// Decoder decodes a timeline blob.
//
// Note: The Decoder is NOT thread-safe. The returned Timeline is immutable and safe for
// concurrent use.
type Decoder struct {
	data   []byte
	engine endian.EndianEngine
	header section.Header
}

// NewDecoder validates the header of data and prepares it for decoding.
func NewDecoder(data []byte) (*Decoder, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		data:   data,
		engine: header.Flag.EndianEngine(),
		header: header,
	}, nil
}

// Decode is shorthand for NewDecoder followed by Decode.
func Decode(data []byte) (Timeline, error) {
	decoder, err := NewDecoder(data)
	if err != nil {
		return Timeline{}, err
	}

	return decoder.Decode()
}

// Header returns the parsed blob header.
func (d *Decoder) Header() section.Header {
	return d.header
}

// Decode validates the blob layout, decompresses the date payload and rebuilds the
// entries and their lookup maps.
func (d *Decoder) Decode() (Timeline, error) {
	count := int(d.header.EntryCount)
	if count == 0 || count > section.MaxEntryCount {
		return Timeline{}, fmt.Errorf("%w: entry count %d", errs.ErrInvalidHeaderFlags, count)
	}

	indexOffset := int(d.header.IndexOffset)
	payloadOffset := int(d.header.PayloadOffset)

	keys, err := d.parseKeyNames(indexOffset)
	if err != nil {
		return Timeline{}, err
	}

	if payloadOffset != indexOffset+count*section.IndexEntrySize || payloadOffset > len(d.data) {
		return Timeline{}, fmt.Errorf("%w: %d", errs.ErrInvalidPayloadOffset, payloadOffset)
	}

	payload, err := d.decompressPayload(payloadOffset)
	if err != nil {
		return Timeline{}, err
	}

	indexEntries, ids, err := d.parseIndexEntries(indexOffset, count, len(payload))
	if err != nil {
		return Timeline{}, err
	}

	if keys != nil {
		if err := ienc.VerifyKeyHashes(keys, ids, hash.ID); err != nil {
			return Timeline{}, fmt.Errorf("key name verification failed: %w", err)
		}
	}

	return d.buildTimeline(indexEntries, keys, payload)
}

func (d *Decoder) parseKeyNames(indexOffset int) ([]string, error) {
	if !d.header.Flag.HasKeyNames() {
		if indexOffset != section.IndexOffsetOffset {
			return nil, fmt.Errorf("%w: %d without key names", errs.ErrInvalidIndexOffset, indexOffset)
		}

		return nil, nil
	}

	if indexOffset < section.HeaderSize || indexOffset > len(d.data) {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidIndexOffset, indexOffset)
	}

	keys, n, err := ienc.DecodeKeyNames(d.data[section.HeaderSize:indexOffset], d.engine)
	if err != nil {
		return nil, err
	}
	if section.HeaderSize+n != indexOffset {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidNamesPayload, indexOffset-section.HeaderSize-n)
	}

	return keys, nil
}

func (d *Decoder) decompressPayload(payloadOffset int) ([]byte, error) {
	codec, err := compress.GetCodec(d.header.Flag.Compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidHeaderFlags, err)
	}

	payload, err := codec.Decompress(d.data[payloadOffset:], int(d.header.PayloadSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress date payload: %w", err)
	}

	if sum := hash.Checksum(payload); sum != d.header.Checksum {
		return nil, fmt.Errorf("%w: got 0x%016x, want 0x%016x", errs.ErrChecksumMismatch, sum, d.header.Checksum)
	}

	return payload, nil
}

// parseIndexEntries reads the index and converts delta offsets to absolute offsets.
func (d *Decoder) parseIndexEntries(indexOffset, count, payloadSize int) ([]section.IndexEntry, []uint64, error) {
	entries := make([]section.IndexEntry, count)
	ids := make([]uint64, count)

	offset := 0
	for i := range count {
		start := indexOffset + i*section.IndexEntrySize
		entry, err := section.ParseIndexEntry(d.data[start:start+section.IndexEntrySize], d.engine)
		if err != nil {
			return nil, nil, err
		}

		offset += entry.Offset
		if offset+histdate.BinarySize > payloadSize {
			return nil, nil, fmt.Errorf("%w: entry %d at %d, payload is %d bytes",
				errs.ErrOffsetOutOfRange, i, offset, payloadSize)
		}
		entry.Offset = offset

		entries[i] = entry
		ids[i] = entry.EntryID
	}

	return entries, ids, nil
}

func (d *Decoder) buildTimeline(indexEntries []section.IndexEntry, keys []string, payload []byte) (Timeline, error) {
	refYear := int(d.header.ReferenceYear)
	tl := Timeline{
		referenceYear: refYear,
		compression:   d.header.Flag.Compression,
		entries:       make([]Entry, len(indexEntries)),
		byID:          make(map[uint64]int, len(indexEntries)),
	}
	if keys != nil {
		tl.byKey = make(map[string]int, len(keys))
	}

	for i, ie := range indexEntries {
		dt, err := histdate.DecodeBinary(payload[ie.Offset:ie.Offset+histdate.BinarySize], d.engine)
		if err != nil {
			return Timeline{}, fmt.Errorf("entry %d: %w", i, err)
		}
		if uint8(dt.Precision()) != ie.Precision || uint8(dt.Era()) != ie.Era {
			return Timeline{}, fmt.Errorf("%w: entry %d", errs.ErrIndexMismatch, i)
		}

		entry := Entry{ID: ie.EntryID, Date: dt, Position: dt.TimelinePosition(refYear)}
		if i > 0 && entry.Position < tl.entries[i-1].Position {
			return Timeline{}, fmt.Errorf("%w: entry %d", errs.ErrEntriesNotSorted, i)
		}

		if keys != nil {
			entry.Key = keys[i]
			tl.byKey[entry.Key] = i
		}
		if _, exists := tl.byID[entry.ID]; !exists {
			tl.byID[entry.ID] = i
		}
		tl.entries[i] = entry
	}

	return tl, nil
}
