package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youcisla/streamsub/internal/models"
)

func summaries(ids ...string) []models.StreamSummary {
	out := make([]models.StreamSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.StreamSummary{ID: id, Platform: models.PlatformTwitch})
	}
	return out
}

func TestGetMissingKey(t *testing.T) {
	c := New(8)

	_, ok := c.Get("TWITCH|")
	assert.False(t, ok)
}

func TestSetAndGet(t *testing.T) {
	c := New(8)
	c.Set("TWITCH|", summaries("a", "b"), 30*time.Second)

	data, ok := c.Get("TWITCH|")
	require.True(t, ok)
	require.Len(t, data, 2)
	assert.Equal(t, "a", data[0].ID)
}

func TestExpiredEntryBehavesLikeMiss(t *testing.T) {
	now := time.Now()
	c := New(8)
	c.SetClock(func() time.Time { return now })

	c.Set("key", summaries("a"), 30*time.Second)

	// Still live just inside the TTL.
	now = now.Add(29 * time.Second)
	_, ok := c.Get("key")
	assert.True(t, ok)

	// Gone just past it, indistinguishable from never-cached.
	now = now.Add(2 * time.Second)
	_, ok = c.Get("key")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestSetReplacesPreviousEntry(t *testing.T) {
	c := New(8)
	c.Set("key", summaries("old"), 30*time.Second)

	before, ok := c.Get("key")
	require.True(t, ok)

	c.Set("key", summaries("new-1", "new-2"), 30*time.Second)

	after, ok := c.Get("key")
	require.True(t, ok)
	assert.Len(t, after, 2)

	// The slice handed out earlier is an immutable snapshot; the write must
	// not have mutated it in place.
	require.Len(t, before, 1)
	assert.Equal(t, "old", before[0].ID)
}

func TestCapacityEvictsOldest(t *testing.T) {
	c := New(2)
	c.Set("a", summaries("a"), time.Minute)
	c.Set("b", summaries("b"), time.Minute)
	c.Set("c", summaries("c"), time.Minute)

	_, ok := c.Get("a")
	assert.False(t, ok, "oldest key should have been evicted")
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestCleanExpired(t *testing.T) {
	now := time.Now()
	c := New(8)
	c.SetClock(func() time.Time { return now })

	c.Set("short", summaries("a"), 10*time.Second)
	c.Set("long", summaries("b"), 10*time.Minute)

	now = now.Add(time.Minute)
	c.CleanExpired()

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("long")
	assert.True(t, ok)
}
