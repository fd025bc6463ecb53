package section

import (
	"encoding/binary"
	"fmt"

	"github.com/modularhistory/histdate/errs"
	"github.com/modularhistory/histdate/format"
)

// Header is the fixed-size header at the start of a timeline blob.
type Header struct {
	// Flag packs magic number, options and payload compression.
	Flag Flag // byte offset 0-3
	// EntryCount is the number of entries in the blob.
	EntryCount uint32 // byte offset 4-7
	// ReferenceYear is the present year the entries were ordered against.
	ReferenceYear int32 // byte offset 8-11
	// IndexOffset is the byte offset of the index, after the optional key names payload.
	IndexOffset uint32 // byte offset 12-15
	// PayloadOffset is the byte offset of the date payload, after the index.
	PayloadOffset uint32 // byte offset 16-19
	// PayloadSize is the length of the date payload before compression.
	PayloadSize uint32 // byte offset 20-23
	// Checksum is the xxHash64 of the date payload before compression.
	Checksum uint64 // byte offset 24-31
}

// NewHeader creates a header for the given reference year.
// The counts, offsets and checksum are set when the encoder finishes.
func NewHeader(referenceYear int32) *Header {
	return &Header{
		Flag:          NewFlag(),
		ReferenceYear: referenceYear,
		IndexOffset:   IndexOffsetOffset,
	}
}

// Parse parses the header from exactly HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.Compression = format.CompressionType(data[2])
	if err := h.Flag.Validate(); err != nil {
		return err
	}
	if data[3] != 0 {
		return fmt.Errorf("%w: reserved byte set", errs.ErrInvalidHeaderFlags)
	}

	engine := h.Flag.EndianEngine()
	h.EntryCount = engine.Uint32(data[4:8])
	h.ReferenceYear = int32(engine.Uint32(data[8:12])) //nolint: gosec
	h.IndexOffset = engine.Uint32(data[12:16])
	h.PayloadOffset = engine.Uint32(data[16:20])
	h.PayloadSize = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	return nil
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.WriteToSlice(b)

	return b
}

// WriteToSlice writes the header into the first HeaderSize bytes of data.
func (h *Header) WriteToSlice(data []byte) {
	engine := h.Flag.EndianEngine()

	binary.LittleEndian.PutUint16(data[0:2], h.Flag.Options)
	data[2] = uint8(h.Flag.Compression)
	data[3] = 0
	engine.PutUint32(data[4:8], h.EntryCount)
	engine.PutUint32(data[8:12], uint32(h.ReferenceYear)) //nolint: gosec
	engine.PutUint32(data[12:16], h.IndexOffset)
	engine.PutUint32(data[16:20], h.PayloadOffset)
	engine.PutUint32(data[20:24], h.PayloadSize)
	engine.PutUint64(data[24:32], h.Checksum)
}

// ParseHeader parses a Header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
