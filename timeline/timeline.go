// Package timeline stores dated entries in a compact, chronologically ordered binary blob.
//
// Entries are identified either by string keys, hashed to 64-bit IDs with xxHash64, or by
// caller-supplied IDs. The Encoder orders entries by their position on the timeline
// relative to a reference year (see histdate.DateTime.TimelinePosition). BCE positions
// count from a fixed 2000-year offset rather than the reference year, so the earliest
// common era years can sort before the last BCE years:
//
//	enc, _ := timeline.NewEncoder(timeline.WithCompression(format.CompressionZstd))
//	_ = enc.Add("lascaux", lascaux)
//	_ = enc.Add("hastings", hastings)
//	data, _ := enc.Finish()
//
//	tl, _ := timeline.Decode(data)
//	for _, entry := range tl.All() {
//	    fmt.Println(entry.Date)
//	}
//
// The blob layout is described in package section.
package timeline

import (
	"iter"
	"sort"

	"github.com/modularhistory/histdate"
	"github.com/modularhistory/histdate/format"
	"github.com/modularhistory/histdate/internal/hash"
)

// Entry is one decoded timeline entry.
type Entry struct {
	// ID is the caller-supplied ID or the hash of Key.
	ID uint64
	// Key is the entry key when the blob stores key names, empty otherwise.
	Key string
	// Date is the entry date.
	Date histdate.DateTime
	// Position is the timeline position of Date against the blob's reference year.
	Position float64
}

// Timeline is a decoded, immutable timeline.
type Timeline struct {
	referenceYear int
	compression   format.CompressionType
	entries       []Entry
	byID          map[uint64]int
	byKey         map[string]int
}

// Len returns the number of entries.
func (t Timeline) Len() int {
	return len(t.entries)
}

// ReferenceYear returns the present year the entries were ordered against.
func (t Timeline) ReferenceYear() int {
	return t.referenceYear
}

// Compression returns the compression the blob was stored with.
func (t Timeline) Compression() format.CompressionType {
	return t.compression
}

// HasKeyNames reports whether entries carry their keys.
func (t Timeline) HasKeyNames() bool {
	return t.byKey != nil
}

// Has reports whether an entry with the given key exists.
//
// Without stored key names the lookup goes through the key hash.
func (t Timeline) Has(key string) bool {
	_, ok := t.indexOfKey(key)
	return ok
}

// HasID reports whether an entry with the given ID exists.
func (t Timeline) HasID(id uint64) bool {
	_, ok := t.byID[id]
	return ok
}

// Get returns the entry with the given key.
func (t Timeline) Get(key string) (Entry, bool) {
	i, ok := t.indexOfKey(key)
	if !ok {
		return Entry{}, false
	}

	return t.entries[i], true
}

// GetID returns the entry with the given ID. If several keys share the ID, the earliest
// entry is returned.
func (t Timeline) GetID(id uint64) (Entry, bool) {
	i, ok := t.byID[id]
	if !ok {
		return Entry{}, false
	}

	return t.entries[i], true
}

// At returns the i-th entry in chronological order.
func (t Timeline) At(i int) Entry {
	return t.entries[i]
}

// All iterates over the entries in chronological order.
func (t Timeline) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, entry := range t.entries {
			if !yield(i, entry) {
				return
			}
		}
	}
}

// Between iterates over the entries whose timeline position lies in [from, to].
func (t Timeline) Between(from, to float64) iter.Seq2[int, Entry] {
	start := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Position >= from
	})

	return func(yield func(int, Entry) bool) {
		for i := start; i < len(t.entries) && t.entries[i].Position <= to; i++ {
			if !yield(i, t.entries[i]) {
				return
			}
		}
	}
}

// IDs returns the entry IDs in chronological order.
func (t Timeline) IDs() []uint64 {
	ids := make([]uint64, len(t.entries))
	for i, entry := range t.entries {
		ids[i] = entry.ID
	}

	return ids
}

func (t Timeline) indexOfKey(key string) (int, bool) {
	if t.byKey != nil {
		i, ok := t.byKey[key]
		return i, ok
	}

	i, ok := t.byID[hash.ID(key)]

	return i, ok
}
