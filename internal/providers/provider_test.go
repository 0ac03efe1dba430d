package providers

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youcisla/streamsub/internal/constants"
	"github.com/youcisla/streamsub/internal/models"
	"github.com/youcisla/streamsub/internal/store"
	"github.com/youcisla/streamsub/pkg/logger"
)

type fakeStore struct {
	streams  []store.LiveStream
	creators map[string]store.Creator
	handles  map[string]string
	listErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		creators: make(map[string]store.Creator),
		handles:  make(map[string]string),
	}
}

func (f *fakeStore) ListLive(platform models.Platform, category string, limit int) ([]store.LiveStream, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.streams, nil
}

func (f *fakeStore) ReplaceLive(platform models.Platform, streams []store.LiveStream) error {
	f.streams = streams
	return nil
}

func (f *fakeStore) GetCreator(id string) (*store.Creator, error) {
	if creator, ok := f.creators[id]; ok {
		return &creator, nil
	}
	return nil, nil
}

func (f *fakeStore) PutCreator(creator store.Creator) error {
	f.creators[creator.ID] = creator
	return nil
}

func (f *fakeStore) GetHandle(creatorID string, platform models.Platform) (string, error) {
	return f.handles[creatorID+"|"+string(platform)], nil
}

func (f *fakeStore) PutHandle(creatorID string, platform models.Platform, handle string) error {
	f.handles[creatorID+"|"+string(platform)] = handle
	return nil
}

func (f *fakeStore) Close() error { return nil }

func TestFetchMapsStoreRows(t *testing.T) {
	started := time.Now()
	st := newFakeStore()
	st.streams = []store.LiveStream{{
		ID:           "live-1",
		StreamerID:   "c1",
		Title:        "speedrun",
		ViewerCount:  300,
		StartedAt:    &started,
		ThumbnailURL: "https://cdn/thumb.jpg",
		Category:     "Zelda",
	}}
	st.creators["c1"] = store.Creator{ID: "c1", DisplayName: "Runner", Username: "runner", AvatarURL: "https://cdn/avatar.jpg"}
	st.handles["c1|TWITCH"] = "runner"

	streams, err := NewTwitch(st, logger.New()).FetchTrendingStreams(FetchOptions{Limit: 10})

	require.NoError(t, err)
	require.Len(t, streams, 1)
	s := streams[0]
	assert.Equal(t, "live-1", s.ID)
	assert.Equal(t, models.PlatformTwitch, s.Platform)
	assert.Equal(t, 300, s.ViewerCount)
	assert.Equal(t, "https://cdn/thumb.jpg", s.Thumbnail)
	assert.Equal(t, "https://www.twitch.tv/runner", s.URL)
	assert.Equal(t, "Runner", s.Creator.DisplayName)
}

func TestMissingTitleGetsPlaceholder(t *testing.T) {
	st := newFakeStore()
	st.streams = []store.LiveStream{{ID: "live-1", StreamerID: "c1"}}

	streams, err := NewTwitch(st, logger.New()).FetchTrendingStreams(FetchOptions{Limit: 10})

	require.NoError(t, err)
	require.Len(t, streams, 1)
	assert.Equal(t, constants.UntitledStream, streams[0].Title)
}

func TestThumbnailFallsBackToCreatorAvatar(t *testing.T) {
	st := newFakeStore()
	st.streams = []store.LiveStream{{ID: "live-1", StreamerID: "c1"}}
	st.creators["c1"] = store.Creator{ID: "c1", AvatarURL: "https://cdn/avatar.jpg"}

	streams, err := NewKick(st, logger.New()).FetchTrendingStreams(FetchOptions{Limit: 10})

	require.NoError(t, err)
	require.Len(t, streams, 1)
	assert.Equal(t, "https://cdn/avatar.jpg", streams[0].Thumbnail)
}

func TestThumbnailEmptyWhenNoAvatarEither(t *testing.T) {
	st := newFakeStore()
	st.streams = []store.LiveStream{{ID: "live-1", StreamerID: "c1"}}

	streams, err := NewKick(st, logger.New()).FetchTrendingStreams(FetchOptions{Limit: 10})

	require.NoError(t, err)
	require.Len(t, streams, 1)
	assert.Empty(t, streams[0].Thumbnail)
}

func TestWatchURLFallsBackToProfileLink(t *testing.T) {
	st := newFakeStore()
	st.streams = []store.LiveStream{{ID: "live-1", StreamerID: "c1"}}

	streams, err := NewYouTube(st, logger.New()).FetchTrendingStreams(FetchOptions{Limit: 10})

	require.NoError(t, err)
	require.Len(t, streams, 1)
	assert.Equal(t, fallbackProfileURL+"c1", streams[0].URL)
}

func TestTikTokHandleAtSignStripped(t *testing.T) {
	st := newFakeStore()
	st.streams = []store.LiveStream{{ID: "live-1", StreamerID: "c1"}}
	st.handles["c1|TIKTOK"] = "@dancer"

	streams, err := NewTikTok(st, logger.New()).FetchTrendingStreams(FetchOptions{Limit: 10})

	require.NoError(t, err)
	require.Len(t, streams, 1)
	assert.Equal(t, "https://www.tiktok.com/@dancer/live", streams[0].URL)
}

func TestKickWatchURL(t *testing.T) {
	st := newFakeStore()
	st.streams = []store.LiveStream{{ID: "live-1", StreamerID: "c1"}}
	st.handles["c1|KICK"] = "gamer"

	streams, err := NewKick(st, logger.New()).FetchTrendingStreams(FetchOptions{Limit: 10})

	require.NoError(t, err)
	require.Len(t, streams, 1)
	assert.Equal(t, "https://kick.com/gamer", streams[0].URL)
}

func TestStoreFailureYieldsEmptyResultNotError(t *testing.T) {
	st := newFakeStore()
	st.listErr = errors.New("store unavailable")

	streams, err := NewTwitch(st, logger.New()).FetchTrendingStreams(FetchOptions{Limit: 10})

	require.NoError(t, err)
	assert.Empty(t, streams)
}

func TestNegativeViewerCountClampedToZero(t *testing.T) {
	st := newFakeStore()
	st.streams = []store.LiveStream{{ID: "live-1", StreamerID: "c1", ViewerCount: -7}}

	streams, err := NewTwitch(st, logger.New()).FetchTrendingStreams(FetchOptions{Limit: 10})

	require.NoError(t, err)
	require.Len(t, streams, 1)
	assert.Equal(t, 0, streams[0].ViewerCount)
}
