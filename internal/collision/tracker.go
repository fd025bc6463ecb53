// Package collision detects duplicate entries and key hash collisions while a timeline
// is being encoded.
package collision

import (
	"fmt"

	"github.com/modularhistory/histdate/errs"
)

// Tracker tracks the IDs and keys added to a timeline encoder.
//
// Two different keys hashing to the same ID are not an error: the tracker records the
// collision and the encoder stores the key names so that decoders can tell the entries
// apart. Adding the same key or caller ID twice is an error.
type Tracker struct {
	ids          map[uint64]struct{}
	keys         map[string]struct{}
	hasCollision bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		ids:  make(map[uint64]struct{}),
		keys: make(map[string]struct{}),
	}
}

// TrackID tracks a caller-supplied entry ID.
// Without a key there is nothing to disambiguate with, so a repeated ID is a collision.
func (t *Tracker) TrackID(id uint64) error {
	if _, exists := t.ids[id]; exists {
		return fmt.Errorf("%w: 0x%016x", errs.ErrHashCollision, id)
	}
	t.ids[id] = struct{}{}

	return nil
}

// TrackKey tracks an entry key and its hashed ID.
func (t *Tracker) TrackKey(key string, id uint64) error {
	if key == "" {
		return errs.ErrEmptyKey
	}

	if _, exists := t.keys[key]; exists {
		return fmt.Errorf("%w: %q", errs.ErrDuplicateKey, key)
	}

	if _, exists := t.ids[id]; exists {
		t.hasCollision = true
	}

	t.keys[key] = struct{}{}
	t.ids[id] = struct{}{}

	return nil
}

// HasCollision reports whether two tracked keys share an ID.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Count returns the number of tracked entries.
func (t *Tracker) Count() int {
	if len(t.keys) > 0 {
		return len(t.keys)
	}

	return len(t.ids)
}

// Reset clears all tracked entries and the collision state.
func (t *Tracker) Reset() {
	clear(t.ids)
	clear(t.keys)
	t.hasCollision = false
}
