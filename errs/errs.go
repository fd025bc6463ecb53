// Package errs defines the sentinel errors returned by histdate packages.
//
// Callers should match errors with errors.Is, since most errors are wrapped with
// additional context before being returned.
package errs

import "errors"

// Date construction and parsing errors.
var (
	// ErrInvalidDate indicates calendar fields outside the representable range.
	ErrInvalidDate = errors.New("invalid date")
	// ErrParse indicates a string that is not a supported ISO-8601 date/time.
	ErrParse = errors.New("cannot parse ISO-8601 date/time")
	// ErrInvalidMagnitude indicates a BCE magnitude that cannot be encoded.
	ErrInvalidMagnitude = errors.New("invalid BCE magnitude")
	// ErrInvalidPrecision indicates a precision that the era cannot carry.
	ErrInvalidPrecision = errors.New("invalid precision")
	// ErrInvalidBinarySize indicates a binary date of the wrong length.
	ErrInvalidBinarySize = errors.New("invalid binary date size")
)

// Timeline encoding errors.
var (
	ErrEmptyKey            = errors.New("entry key must not be empty")
	ErrInvalidEntryID      = errors.New("entry ID must not be zero")
	ErrDuplicateKey        = errors.New("duplicate entry key")
	ErrHashCollision       = errors.New("entry ID hash collision")
	ErrMixedIdentifierMode = errors.New("cannot mix key and ID entries in one timeline")
	ErrNoEntriesAdded      = errors.New("no entries added")
	ErrTooManyEntries      = errors.New("too many entries")
	ErrInvalidKeyLength    = errors.New("entry key too long")
	ErrInvalidCompression  = errors.New("invalid compression type")
	ErrInvalidReferenceYr  = errors.New("invalid reference year")
	ErrEncoderFinished     = errors.New("encoder already finished")
)

// Timeline decoding errors.
var (
	ErrInvalidHeaderSize     = errors.New("invalid header size")
	ErrInvalidMagicNumber    = errors.New("invalid magic number")
	ErrInvalidHeaderFlags    = errors.New("invalid header flags")
	ErrInvalidIndexOffset    = errors.New("invalid index offset")
	ErrInvalidPayloadOffset  = errors.New("invalid payload offset")
	ErrInvalidIndexEntrySize = errors.New("invalid index entry size")
	ErrInvalidNamesPayload   = errors.New("invalid entry names payload")
	ErrInvalidNamesCount     = errors.New("entry names count does not match entry count")
	ErrHashMismatch          = errors.New("entry name hash mismatch")
	ErrOffsetOutOfRange      = errors.New("payload offset out of range")
	ErrChecksumMismatch      = errors.New("payload checksum mismatch")
	ErrIndexMismatch         = errors.New("index entry does not match payload")
	ErrEntriesNotSorted      = errors.New("entries are not in timeline order")
)
