package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/nicklaw5/helix/v2"

	"github.com/youcisla/streamsub/internal/models"
	"github.com/youcisla/streamsub/internal/store"
)

// TwitchFetcher pulls the top live streams from the Helix API.
type TwitchFetcher struct {
	client *helix.Client
}

// NewTwitchFetcher creates a Helix-backed fetcher using app credentials.
func NewTwitchFetcher(clientID, appAccessToken string) (*TwitchFetcher, error) {
	client, err := helix.NewClient(&helix.Options{
		ClientID:       clientID,
		AppAccessToken: appAccessToken,
	})
	if err != nil {
		return nil, fmt.Errorf("helix: NewClient: %w", err)
	}
	return &TwitchFetcher{client: client}, nil
}

func (f *TwitchFetcher) Platform() models.Platform {
	return models.PlatformTwitch
}

// FetchLive returns the most-watched live streams on Twitch.
func (f *TwitchFetcher) FetchLive(ctx context.Context, limit int) (*PlatformSnapshot, error) {
	if limit > 100 {
		limit = 100 // helix page cap
	}

	resp, err := f.client.GetStreams(&helix.StreamsParams{First: limit})
	if err != nil {
		return nil, fmt.Errorf("helix: GetStreams: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("helix: GetStreams failed (%d: %s) %s",
			resp.StatusCode, resp.Error, resp.ErrorMessage)
	}

	snapshot := &PlatformSnapshot{Handles: make(map[string]string)}
	for _, s := range resp.Data.Streams {
		creatorID := "twitch:" + s.UserID

		rec := store.LiveStream{
			ID:           s.ID,
			StreamerID:   creatorID,
			Platform:     models.PlatformTwitch,
			Title:        s.Title,
			ViewerCount:  s.ViewerCount,
			ThumbnailURL: expandThumbnail(s.ThumbnailURL),
			Category:     s.GameName,
		}
		if !s.StartedAt.IsZero() {
			started := s.StartedAt
			rec.StartedAt = &started
		}

		snapshot.Streams = append(snapshot.Streams, rec)
		snapshot.Creators = append(snapshot.Creators, store.Creator{
			ID:          creatorID,
			DisplayName: s.UserName,
			Username:    s.UserLogin,
		})
		snapshot.Handles[creatorID] = s.UserLogin
	}

	return snapshot, nil
}

// Helix thumbnail URLs carry size placeholders.
func expandThumbnail(url string) string {
	r := strings.NewReplacer("{width}", "640", "{height}", "360")
	return r.Replace(url)
}
