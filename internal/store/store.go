// Package store persists live-status records and the linked-account directory.
//
// The trending providers read from it; the background poller writes to it.
package store

import (
	"time"

	"github.com/youcisla/streamsub/internal/models"
)

// LiveStream is one currently-live broadcast as recorded for a platform.
type LiveStream struct {
	ID           string
	StreamerID   string
	Platform     models.Platform
	Title        string
	ViewerCount  int
	StartedAt    *time.Time
	ThumbnailURL string
	Category     string
	UpdatedAt    time.Time
}

// Creator is the profile of the account owning one or more broadcasts.
type Creator struct {
	ID          string
	DisplayName string
	Username    string
	AvatarURL   string
}

// Store defines the persistence operations used by providers and the poller.
type Store interface {
	// ListLive returns currently-live records for a platform, optionally
	// filtered by category (case-insensitive), ordered by viewer count
	// descending then start time descending, capped at limit.
	ListLive(platform models.Platform, category string, limit int) ([]LiveStream, error)
	// ReplaceLive atomically replaces a platform's entire live set.
	ReplaceLive(platform models.Platform, streams []LiveStream) error
	// GetCreator returns the creator profile, or nil when unknown.
	GetCreator(id string) (*Creator, error)
	// PutCreator upserts a creator profile.
	PutCreator(creator Creator) error
	// GetHandle returns the creator's linked handle on a platform, or ""
	// when no account is linked.
	GetHandle(creatorID string, platform models.Platform) (string, error)
	// PutHandle records a creator's handle for a platform.
	PutHandle(creatorID string, platform models.Platform, handle string) error
	// Close releases the underlying database.
	Close() error
}
