// Package section defines the binary layout of timeline blobs.
//
// A timeline blob has fixed-size sections followed by the date payload:
//
//	┌──────────────────────────────────────────────┐
//	│ Header (32 bytes)                            │
//	├──────────────────────────────────────────────┤
//	│ Key names payload (optional)                 │
//	│  - present on hash collision or on request   │
//	├──────────────────────────────────────────────┤
//	│ Index (N × 16 bytes)                         │
//	├──────────────────────────────────────────────┤
//	│ Date payload (compressed binary dates)       │
//	└──────────────────────────────────────────────┘
//
// Header:
//
//	Bytes  | Field          | Type   | Description
//	-------|----------------|--------|------------------------------------------
//	0-1    | Options        | uint16 | magic (bits 4-15), endianness, names bit
//	2      | Compression    | uint8  | payload compression
//	3      | Reserved       | uint8  | must be 0
//	4-7    | EntryCount     | uint32 | number of index entries
//	8-11   | ReferenceYear  | int32  | present year used to order entries
//	12-15  | IndexOffset    | uint32 | byte offset of the index
//	16-19  | PayloadOffset  | uint32 | byte offset of the date payload
//	20-23  | PayloadSize    | uint32 | uncompressed payload length
//	24-31  | Checksum       | uint64 | xxHash64 of the uncompressed payload
//
// The Options field is always little-endian so the byte order bit can be read before
// anything else; every other field uses the byte order it selects.
//
// Index entry:
//
//	Bytes  | Field      | Type   | Description
//	-------|------------|--------|------------------------------------------
//	0-7    | EntryID    | uint64 | caller ID or xxHash64 of the entry key
//	8-11   | Offset     | uint32 | delta from the previous entry's payload offset
//	12     | Precision  | uint8  | precision of the date
//	13     | Era        | uint8  | era of the date
//	14-15  | Reserved   | uint16 | must be 0
package section
