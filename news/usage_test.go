package news

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageTrackerBudget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")
	tracker := NewUsageTracker(path, 2)

	assert.True(t, tracker.CanRequest())
	assert.Equal(t, 2, tracker.Remaining())

	tracker.Record()
	assert.True(t, tracker.CanRequest())

	tracker.Record()
	assert.False(t, tracker.CanRequest())
	assert.Equal(t, 0, tracker.Remaining())
}

func TestUsageTrackerPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")

	first := NewUsageTracker(path, 1)
	first.Record()
	require.False(t, first.CanRequest())

	// A fresh tracker on the same file sees the spent budget
	second := NewUsageTracker(path, 1)
	assert.False(t, second.CanRequest())
}

func TestUsageTrackerDailyReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")
	tracker := NewUsageTracker(path, 1)

	tracker.Record()
	require.False(t, tracker.CanRequest())

	// Two days later the daily counter is back to zero
	tracker.now = func() time.Time { return time.Now().Add(48 * time.Hour) }
	assert.True(t, tracker.CanRequest())
	assert.Equal(t, 1, tracker.Remaining())
}

func TestUsageTrackerCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	tracker := NewUsageTracker(path, 5)
	assert.True(t, tracker.CanRequest())
	assert.Equal(t, 5, tracker.Remaining())
}
