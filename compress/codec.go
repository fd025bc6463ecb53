// Package compress implements the payload codecs of timeline blobs.
//
// The date payload of a timeline is a run of fixed-width binary dates. Dates that share a
// precision share most of their sentinel bytes, so general-purpose compressors shrink it
// well:
//   - None: no compression
//   - Zstd: best ratio; klauspost/compress, or valyala/gozstd when built with the
//     "gozstd" tag and cgo
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// The uncompressed size is stored in the blob header, so every Decompress call receives
// it and verifies the result against it.
//
// All codecs are stateless values backed by pooled encoders and are safe for concurrent use.
package compress

import (
	"errors"
	"fmt"

	"github.com/modularhistory/histdate/format"
)

// ErrSizeMismatch indicates a payload that did not decompress to the recorded size.
var ErrSizeMismatch = errors.New("decompressed size mismatch")

// maxRawSize bounds decompression buffers for corrupted size fields.
const maxRawSize = 256 * 1024 * 1024

// Codec compresses and decompresses timeline payloads.
type Codec interface {
	// Type returns the compression type recorded in blob headers.
	Type() format.CompressionType

	// Compress returns the compressed form of data. The input is not modified; the
	// result may alias it for CompressionNone.
	Compress(data []byte) ([]byte, error)

	// Decompress restores a payload whose uncompressed length is rawSize.
	Decompress(data []byte, rawSize int) ([]byte, error)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

func checkRawSize(rawSize int) error {
	if rawSize < 0 || rawSize > maxRawSize {
		return fmt.Errorf("%w: raw size %d out of range", ErrSizeMismatch, rawSize)
	}

	return nil
}

func verifySize(c Codec, out []byte, rawSize int) ([]byte, error) {
	if len(out) != rawSize {
		return nil, fmt.Errorf("%w: %s payload is %d bytes, want %d", ErrSizeMismatch, c.Type(), len(out), rawSize)
	}

	return out, nil
}
