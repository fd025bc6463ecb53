package timeline

import (
	"fmt"

	"github.com/modularhistory/histdate"
	"github.com/modularhistory/histdate/compress"
	"github.com/modularhistory/histdate/endian"
	"github.com/modularhistory/histdate/errs"
	"github.com/modularhistory/histdate/format"
	"github.com/modularhistory/histdate/internal/options"
	"github.com/modularhistory/histdate/section"
)

// initialEntryCapacity is the initial capacity of the pending entries slice.
const initialEntryCapacity = 16

// EncoderConfig holds the settings of an Encoder.
type EncoderConfig struct {
	header   *section.Header
	codec    compress.Codec
	engine   endian.EndianEngine
	keyNames bool
}

// NewEncoderConfig returns the default configuration: little-endian, uncompressed,
// ordered against the current year.
func NewEncoderConfig() *EncoderConfig {
	header := section.NewHeader(int32(histdate.CurrentYear())) //nolint: gosec

	return &EncoderConfig{
		header: header,
		codec:  compress.NewNoOpCompressor(),
		engine: header.Flag.EndianEngine(),
	}
}

// ReferenceYear returns the year entries are ordered against.
func (c *EncoderConfig) ReferenceYear() int {
	return int(c.header.ReferenceYear)
}

// Compression returns the payload compression type.
func (c *EncoderConfig) Compression() format.CompressionType {
	return c.header.Flag.Compression
}

func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	codec, err := compress.GetCodec(comp)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidCompression, err)
	}

	c.header.Flag.Compression = comp
	c.codec = codec

	return nil
}

func (c *EncoderConfig) setEndianness(bigEndian bool) {
	if bigEndian {
		c.header.Flag.WithBigEndian()
	} else {
		c.header.Flag.WithLittleEndian()
	}
	c.engine = c.header.Flag.EndianEngine()
}

// EncoderOption configures an EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression sets the compression of the date payload. The default is none.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithLittleEndian selects little-endian byte order. It is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianness(false)
	})
}

// WithBigEndian selects big-endian byte order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianness(true)
	})
}

// WithReferenceYear sets the present year used to order entries and stored in the blob.
// Fixing it makes encoding reproducible; the default is the current year.
func WithReferenceYear(year int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if year < 1 || year > 9999 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidReferenceYr, year)
		}
		c.header.ReferenceYear = int32(year) //nolint: gosec

		return nil
	})
}

// WithKeyNames stores entry keys in the blob even without a hash collision, so that
// decoded entries carry their keys.
func WithKeyNames() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.keyNames = true
	})
}
