// Package hash derives timeline entry IDs from entry keys.
package hash

import "github.com/cespare/xxhash/v2"

// ID returns the xxHash64 of key, used as the entry ID of keyed timeline entries.
func ID(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Checksum returns the xxHash64 of a timeline payload.
func Checksum(payload []byte) uint64 {
	return xxhash.Sum64(payload)
}
