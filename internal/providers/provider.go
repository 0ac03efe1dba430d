// Package providers contains the per-platform trending stream providers.
//
// Every provider exposes one capability: fetch currently-live streams from
// the live-status store and map them into normalized summaries. A provider
// absorbs its own failures; the aggregator re-sorts whatever comes back, so
// ordering within a single provider's result is best-effort.
package providers

import (
	"github.com/youcisla/streamsub/internal/constants"
	"github.com/youcisla/streamsub/internal/models"
	"github.com/youcisla/streamsub/internal/store"
	"github.com/youcisla/streamsub/pkg/logger"
)

// FetchOptions narrows a provider fetch. Limit is clamped by the caller
// before it reaches the provider.
type FetchOptions struct {
	Limit    int
	Category string
}

// StreamProvider is the single capability each platform exposes.
type StreamProvider interface {
	Platform() models.Platform
	FetchTrendingStreams(opts FetchOptions) ([]models.StreamSummary, error)
}

// Generic profile link used when a creator has no linked handle on the
// stream's platform.
const fallbackProfileURL = "https://streamsub.app/creators/"

type liveProvider struct {
	platform models.Platform
	store    store.Store
	logger   logger.Logger
	watchURL func(handle string) string
}

func (p *liveProvider) Platform() models.Platform {
	return p.platform
}

// FetchTrendingStreams reads the platform's live records and maps them into
// summaries. Store failures are logged and surface as an empty result so one
// platform's outage never blocks the others.
func (p *liveProvider) FetchTrendingStreams(opts FetchOptions) ([]models.StreamSummary, error) {
	rows, err := p.store.ListLive(p.platform, opts.Category, opts.Limit)
	if err != nil {
		p.logger.Warnf("[%sProvider] live-status lookup failed: %v", p.platform, err)
		return []models.StreamSummary{}, nil
	}

	summaries := make([]models.StreamSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, p.mapStream(row))
	}
	return summaries, nil
}

func (p *liveProvider) mapStream(row store.LiveStream) models.StreamSummary {
	summary := models.StreamSummary{
		ID:          row.ID,
		StreamerID:  row.StreamerID,
		Title:       row.Title,
		Platform:    p.platform,
		ViewerCount: row.ViewerCount,
		StartedAt:   row.StartedAt,
		Thumbnail:   row.ThumbnailURL,
		Category:    row.Category,
		Creator:     models.CreatorSummary{ID: row.StreamerID},
	}
	if summary.Title == "" {
		summary.Title = constants.UntitledStream
	}
	if summary.ViewerCount < 0 {
		summary.ViewerCount = 0
	}

	creator, err := p.store.GetCreator(row.StreamerID)
	if err != nil {
		p.logger.Debugf("[%sProvider] creator lookup failed for %s: %v", p.platform, row.StreamerID, err)
	}
	if creator != nil {
		summary.Creator = models.CreatorSummary{
			ID:          creator.ID,
			DisplayName: creator.DisplayName,
			Username:    creator.Username,
			AvatarURL:   creator.AvatarURL,
		}
		if summary.Thumbnail == "" {
			summary.Thumbnail = creator.AvatarURL
		}
	}

	summary.URL = p.buildWatchURL(row.StreamerID)
	return summary
}

// buildWatchURL derives the deep link from the creator's linked handle on
// this platform, falling back to the generic profile page.
func (p *liveProvider) buildWatchURL(creatorID string) string {
	handle, err := p.store.GetHandle(creatorID, p.platform)
	if err != nil {
		p.logger.Debugf("[%sProvider] handle lookup failed for %s: %v", p.platform, creatorID, err)
	}
	if handle == "" {
		return fallbackProfileURL + creatorID
	}
	return p.watchURL(handle)
}
