package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/youcisla/streamsub/internal/constants"
	"github.com/youcisla/streamsub/internal/models"
	"github.com/youcisla/streamsub/internal/store"
	"github.com/youcisla/streamsub/pkg/httputil"
)

const youtubeAPIBase = "https://www.googleapis.com/youtube/v3"

// YouTubeFetcher pulls currently-live broadcasts from the YouTube Data API.
// There is no Go SDK in use here; the two-step search + videos dance is done
// with a plain HTTP client.
type YouTubeFetcher struct {
	apiKey     string
	httpClient *http.Client
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

type youtubeVideosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			ChannelID    string `json:"channelId"`
			ChannelTitle string `json:"channelTitle"`
			Title        string `json:"title"`
			CategoryID   string `json:"categoryId"`
			Thumbnails   struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		LiveStreamingDetails struct {
			ActualStartTime   string `json:"actualStartTime"`
			ConcurrentViewers string `json:"concurrentViewers"`
		} `json:"liveStreamingDetails"`
	} `json:"items"`
}

// NewYouTubeFetcher creates a Data-API-backed fetcher.
func NewYouTubeFetcher(apiKey string) (*YouTubeFetcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube api key is empty")
	}
	return &YouTubeFetcher{
		apiKey:     apiKey,
		httpClient: httputil.NewHTTPClient(constants.PlatformRequestTimeout),
	}, nil
}

func (f *YouTubeFetcher) Platform() models.Platform {
	return models.PlatformYouTube
}

// FetchLive returns the most-watched live broadcasts on YouTube.
func (f *YouTubeFetcher) FetchLive(ctx context.Context, limit int) (*PlatformSnapshot, error) {
	if limit > 50 {
		limit = 50 // search page cap
	}

	videoIDs, err := f.searchLive(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(videoIDs) == 0 {
		return &PlatformSnapshot{Handles: map[string]string{}}, nil
	}

	return f.fetchDetails(ctx, videoIDs)
}

func (f *YouTubeFetcher) searchLive(ctx context.Context, limit int) ([]string, error) {
	query := url.Values{}
	query.Set("part", "id")
	query.Set("type", "video")
	query.Set("eventType", "live")
	query.Set("order", "viewCount")
	query.Set("maxResults", strconv.Itoa(limit))
	query.Set("key", f.apiKey)

	var resp youtubeSearchResponse
	if err := httputil.GetJSON(ctx, f.httpClient, youtubeAPIBase+"/search?"+query.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("youtube: live search failed: %w", err)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	return ids, nil
}

func (f *YouTubeFetcher) fetchDetails(ctx context.Context, videoIDs []string) (*PlatformSnapshot, error) {
	query := url.Values{}
	query.Set("part", "snippet,liveStreamingDetails")
	query.Set("id", strings.Join(videoIDs, ","))
	query.Set("key", f.apiKey)

	var resp youtubeVideosResponse
	if err := httputil.GetJSON(ctx, f.httpClient, youtubeAPIBase+"/videos?"+query.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("youtube: video details failed: %w", err)
	}

	snapshot := &PlatformSnapshot{Handles: make(map[string]string)}
	for _, item := range resp.Items {
		creatorID := "youtube:" + item.Snippet.ChannelID

		viewers, _ := strconv.Atoi(item.LiveStreamingDetails.ConcurrentViewers)
		rec := store.LiveStream{
			ID:           item.ID,
			StreamerID:   creatorID,
			Platform:     models.PlatformYouTube,
			Title:        item.Snippet.Title,
			ViewerCount:  viewers,
			ThumbnailURL: item.Snippet.Thumbnails.High.URL,
		}
		if t, err := time.Parse(time.RFC3339, item.LiveStreamingDetails.ActualStartTime); err == nil {
			rec.StartedAt = &t
		}

		snapshot.Streams = append(snapshot.Streams, rec)
		snapshot.Creators = append(snapshot.Creators, store.Creator{
			ID:          creatorID,
			DisplayName: item.Snippet.ChannelTitle,
		})
	}

	return snapshot, nil
}
