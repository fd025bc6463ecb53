package section

import "math"

const (
	// Bit masks of the Options field
	EndiannessMask  = 0x0002 // Mask for endianness bit (bit 1)
	KeyNamesMask    = 0x0004 // Mask for key names payload bit (bit 2)
	ReservedMask    = 0x0009 // Mask for reserved bits (bits 0 and 3)
	MagicNumberMask = 0xFFF0 // Mask for magic number (bits 4-15)

	MagicTimelineV1 = 0xEC10 // MagicTimelineV1 is the version 1 magic number of timeline blobs.
)

const (
	HeaderSize        = 32             // fixed header size in bytes
	IndexEntrySize    = 16             // fixed index entry size in bytes
	IndexOffsetOffset = HeaderSize     // byte offset where the index starts when no names payload is present
	MaxEntryCount     = math.MaxUint16 // maximum number of entries in one timeline
	MaxOffset         = math.MaxUint32 // maximum payload offset
)
