package compress

import "github.com/modularhistory/histdate/format"

// ZstdCompressor compresses payloads with Zstandard. It gives the smallest blobs and
// suits timelines that are written once and cached or shipped over the network.
//
// The implementation is selected at build time, see zstd_pure.go and zstd_cgo.go.
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor returns the Zstandard codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

func (c ZstdCompressor) Type() format.CompressionType {
	return format.CompressionZstd
}
