package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	kicksdk "github.com/glichtv/kick-sdk"
	"github.com/glichtv/kick-sdk/optional"

	"github.com/youcisla/streamsub/internal/models"
	"github.com/youcisla/streamsub/internal/store"
)

// KickFetcher pulls the current livestream list from the Kick public API.
type KickFetcher struct {
	client *kicksdk.Client
}

// NewKickFetcher creates a Kick-SDK-backed fetcher.
func NewKickFetcher(accessToken string) (*KickFetcher, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("kick access token is empty")
	}

	client := kicksdk.NewClient(
		kicksdk.WithAccessTokens(kicksdk.AccessTokens{
			UserAccessToken: accessToken,
		}),
	)
	return &KickFetcher{client: client}, nil
}

func (f *KickFetcher) Platform() models.Platform {
	return models.PlatformKick
}

// FetchLive returns currently-live Kick broadcasts.
func (f *KickFetcher) FetchLive(ctx context.Context, limit int) (*PlatformSnapshot, error) {
	resp, err := f.client.Livestreams().GetLivestreams(ctx, kicksdk.GetLivestreamsInput{
		Limit: optional.From(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("kick: GetLivestreams: %w", err)
	}

	snapshot := &PlatformSnapshot{Handles: make(map[string]string)}
	for _, live := range resp.Payload {
		creatorID := "kick:" + strconv.Itoa(live.BroadcasterUserID)

		rec := store.LiveStream{
			ID:           strconv.Itoa(live.ChannelID),
			StreamerID:   creatorID,
			Platform:     models.PlatformKick,
			Title:        live.StreamTitle,
			ViewerCount:  live.ViewerCount,
			ThumbnailURL: live.Thumbnail,
			Category:     live.Category.Name,
		}
		if started := parseKickTime(live.StartedAt); started != nil {
			rec.StartedAt = started
		}

		snapshot.Streams = append(snapshot.Streams, rec)
		snapshot.Creators = append(snapshot.Creators, store.Creator{
			ID:       creatorID,
			Username: live.Slug,
		})
		snapshot.Handles[creatorID] = live.Slug
	}

	return snapshot, nil
}

// parseKickTime tolerates the timestamp formats the Kick API has been seen
// returning; unknown formats yield nil rather than a bogus epoch.
func parseKickTime(raw string) *time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
