package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/modularhistory/histdate/errs"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Zero(t, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTracker_TrackKey(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.TrackKey("battle-of-hastings", 0x1234567890abcdef))
	require.NoError(t, tracker.TrackKey("magna-carta", 0xfedcba0987654321))
	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTracker_TrackKey_Errors(t *testing.T) {
	tracker := NewTracker()

	require.ErrorIs(t, tracker.TrackKey("", 1), errs.ErrEmptyKey)

	require.NoError(t, tracker.TrackKey("magna-carta", 1))
	require.ErrorIs(t, tracker.TrackKey("magna-carta", 1), errs.ErrDuplicateKey)
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_TrackKey_Collision(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.TrackKey("first", 0xABCD))
	require.NoError(t, tracker.TrackKey("second", 0xABCD))
	require.True(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())
}

func TestTracker_TrackID(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.TrackID(7))
	require.NoError(t, tracker.TrackID(8))
	require.ErrorIs(t, tracker.TrackID(7), errs.ErrHashCollision)
	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.TrackKey("a", 1))
	require.NoError(t, tracker.TrackKey("b", 1))

	tracker.Reset()
	require.Zero(t, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.NoError(t, tracker.TrackKey("a", 1))
}
