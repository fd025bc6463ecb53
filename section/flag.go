package section

import (
	"fmt"

	"github.com/modularhistory/histdate/endian"
	"github.com/modularhistory/histdate/errs"
	"github.com/modularhistory/histdate/format"
)

// Flag is the packed first word of the header.
type Flag struct {
	// Options packs the magic number, the byte order and the key names bit.
	// Bit 1 is the endianness, 0 means little-endian and 1 means big-endian.
	// Bit 2 is set when the key names payload is present.
	// Bits 0 and 3 are reserved and must be 0.
	Options uint16

	// Compression is the compression type of the date payload.
	Compression format.CompressionType
}

// NewFlag returns a little-endian, uncompressed flag without key names.
func NewFlag() Flag {
	return Flag{
		Options:     MagicTimelineV1,
		Compression: format.CompressionNone,
	}
}

// HasKeyNames reports whether the key names payload is present.
func (f Flag) HasKeyNames() bool {
	return f.Options&KeyNamesMask != 0
}

// SetHasKeyNames sets or clears the key names bit.
func (f *Flag) SetHasKeyNames(enabled bool) {
	if enabled {
		f.Options |= KeyNamesMask
	} else {
		f.Options &^= KeyNamesMask
	}
}

// IsLittleEndian reports whether the blob is little-endian.
func (f Flag) IsLittleEndian() bool {
	return f.Options&EndiannessMask == 0
}

// IsBigEndian reports whether the blob is big-endian.
func (f Flag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// WithLittleEndian selects little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian selects big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// MagicNumber returns the magic number bits of Options.
func (f Flag) MagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Validate checks the magic number, the reserved bits and the compression type.
func (f Flag) Validate() error {
	if f.MagicNumber() != MagicTimelineV1 {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, f.MagicNumber())
	}

	if f.Options&ReservedMask != 0 {
		return fmt.Errorf("%w: reserved option bits set", errs.ErrInvalidHeaderFlags)
	}

	if !f.Compression.IsValid() {
		return fmt.Errorf("%w: compression 0x%02x", errs.ErrInvalidHeaderFlags, uint8(f.Compression))
	}

	return nil
}

// EndianEngine returns the engine for the selected byte order.
func (f Flag) EndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
