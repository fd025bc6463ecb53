package timeline

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/modularhistory/histdate"
	"github.com/modularhistory/histdate/errs"
	"github.com/modularhistory/histdate/internal/collision"
	ienc "github.com/modularhistory/histdate/internal/encoding"
	"github.com/modularhistory/histdate/internal/hash"
	"github.com/modularhistory/histdate/internal/options"
	"github.com/modularhistory/histdate/internal/pool"
	"github.com/modularhistory/histdate/section"
)

// identifierMode defines how entries are identified. It is locked by the first entry.
type identifierMode uint8

const (
	// modeUndefined indicates no entries have been added yet.
	modeUndefined identifierMode = iota

	// modeUserID indicates the caller supplies entry IDs via AddID. Duplicate IDs are
	// errors and no key names are stored.
	modeUserID

	// modeKeyManaged indicates entries are added by key via Add. Keys are hashed to IDs,
	// and key names are stored when two keys collide.
	modeKeyManaged
)

type pendingEntry struct {
	id       uint64
	key      string
	date     histdate.DateTime
	position float64
}

// Encoder builds a timeline blob from dated entries.
//
// Note: The Encoder is NOT thread-safe and NOT reusable. After Finish, a new encoder
// must be created.
type Encoder struct {
	*EncoderConfig

	entries  []pendingEntry
	tracker  *collision.Tracker
	mode     identifierMode
	finished bool
}

// NewEncoder creates an encoder configured by opts.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := NewEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Encoder{
		EncoderConfig: config,
		entries:       make([]pendingEntry, 0, initialEntryCapacity),
		tracker:       collision.NewTracker(),
	}, nil
}

// Add adds a dated entry identified by key.
//
// Returns errs.ErrEmptyKey, errs.ErrDuplicateKey, errs.ErrInvalidKeyLength,
// errs.ErrMixedIdentifierMode after AddID, errs.ErrInvalidDate for a zero date, or
// errs.ErrTooManyEntries.
func (e *Encoder) Add(key string, dt histdate.DateTime) error {
	if err := e.checkAdd(modeKeyManaged, dt); err != nil {
		return err
	}
	if len(key) > math.MaxUint16 {
		return fmt.Errorf("%w: key of %d bytes", errs.ErrInvalidKeyLength, len(key))
	}

	id := hash.ID(key)
	if err := e.tracker.TrackKey(key, id); err != nil {
		return err
	}

	e.mode = modeKeyManaged
	e.entries = append(e.entries, pendingEntry{id: id, key: key, date: dt})

	return nil
}

// AddID adds a dated entry identified by a caller-supplied, non-zero ID.
//
// Returns errs.ErrInvalidEntryID, errs.ErrHashCollision for a repeated ID,
// errs.ErrMixedIdentifierMode after Add, errs.ErrInvalidDate for a zero date, or
// errs.ErrTooManyEntries.
func (e *Encoder) AddID(id uint64, dt histdate.DateTime) error {
	if err := e.checkAdd(modeUserID, dt); err != nil {
		return err
	}
	if id == 0 {
		return errs.ErrInvalidEntryID
	}

	if err := e.tracker.TrackID(id); err != nil {
		return err
	}

	e.mode = modeUserID
	e.entries = append(e.entries, pendingEntry{id: id, date: dt})

	return nil
}

func (e *Encoder) checkAdd(mode identifierMode, dt histdate.DateTime) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if e.mode != modeUndefined && e.mode != mode {
		return errs.ErrMixedIdentifierMode
	}
	if dt.IsZero() {
		return fmt.Errorf("%w: zero DateTime", errs.ErrInvalidDate)
	}
	if len(e.entries) >= section.MaxEntryCount {
		return fmt.Errorf("%w: limit is %d", errs.ErrTooManyEntries, section.MaxEntryCount)
	}

	return nil
}

// Len returns the number of entries added so far.
func (e *Encoder) Len() int {
	return len(e.entries)
}

// Finish orders the entries chronologically and returns the encoded blob.
//
// Entries are ordered by timeline position against the reference year; entries at the
// same position keep a stable order by ID, then by key.
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	if len(e.entries) == 0 {
		return nil, errs.ErrNoEntriesAdded
	}
	e.finished = true

	refYear := e.ReferenceYear()
	for i := range e.entries {
		e.entries[i].position = e.entries[i].date.TimelinePosition(refYear)
	}
	slices.SortStableFunc(e.entries, func(a, b pendingEntry) int {
		return cmp.Or(
			cmp.Compare(a.position, b.position),
			a.date.Time().Compare(b.date.Time()),
			cmp.Compare(a.id, b.id),
			cmp.Compare(a.key, b.key),
		)
	})

	header := *e.header
	header.EntryCount = uint32(len(e.entries)) //nolint: gosec

	var namesPayload []byte
	if e.mode == modeKeyManaged && (e.keyNames || e.tracker.HasCollision()) {
		keys := make([]string, len(e.entries))
		for i, entry := range e.entries {
			keys[i] = entry.key
		}

		var err error
		namesPayload, err = ienc.EncodeKeyNames(keys, e.engine)
		if err != nil {
			return nil, fmt.Errorf("failed to encode key names: %w", err)
		}
		header.Flag.SetHasKeyNames(true)
		header.IndexOffset = uint32(section.HeaderSize + len(namesPayload)) //nolint: gosec
	}

	raw := pool.GetTimelineBuffer()
	defer pool.PutTimelineBuffer(raw)
	raw.Grow(len(e.entries) * histdate.BinarySize)

	indexEntries := make([]section.IndexEntry, len(e.entries))
	lastOffset := 0
	for i, entry := range e.entries {
		offset := raw.Len()
		raw.B = entry.date.AppendBinary(raw.B, e.engine)

		indexEntries[i] = section.IndexEntry{
			EntryID:   entry.id,
			Offset:    offset - lastOffset,
			Precision: uint8(entry.date.Precision()),
			Era:       uint8(entry.date.Era()),
		}
		lastOffset = offset
	}

	header.PayloadSize = uint32(raw.Len()) //nolint: gosec
	header.Checksum = hash.Checksum(raw.Bytes())

	payload, err := e.codec.Compress(raw.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress date payload: %w", err)
	}

	indexSize := section.IndexEntrySize * len(indexEntries)
	header.PayloadOffset = header.IndexOffset + uint32(indexSize) //nolint: gosec

	blobSize := section.HeaderSize + len(namesPayload) + indexSize + len(payload)
	if uint64(blobSize) > section.MaxOffset {
		return nil, fmt.Errorf("%w: blob of %d bytes", errs.ErrTooManyEntries, blobSize)
	}

	blob := make([]byte, blobSize)
	header.WriteToSlice(blob)
	offset := section.HeaderSize
	offset += copy(blob[offset:], namesPayload)
	for i := range indexEntries {
		offset = indexEntries[i].WriteToSlice(blob, offset, e.engine)
	}
	copy(blob[offset:], payload)

	return blob, nil
}
