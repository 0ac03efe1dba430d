// Package models defines the normalized data structures of the trending feed.
package models

import (
	"strings"
	"time"
)

// Platform identifies the upstream source of a live broadcast.
type Platform string

const (
	PlatformTwitch  Platform = "TWITCH"
	PlatformYouTube Platform = "YOUTUBE"
	PlatformKick    Platform = "KICK"
	PlatformTikTok  Platform = "TIKTOK"
)

// AllPlatforms lists every platform known to the service, in a stable order.
var AllPlatforms = []Platform{
	PlatformTwitch,
	PlatformYouTube,
	PlatformKick,
	PlatformTikTok,
}

// ParsePlatform normalizes a client-supplied platform token.
// Unrecognized tokens yield ok=false and are dropped by the caller.
func ParsePlatform(token string) (Platform, bool) {
	switch Platform(strings.ToUpper(strings.TrimSpace(token))) {
	case PlatformTwitch:
		return PlatformTwitch, true
	case PlatformYouTube:
		return PlatformYouTube, true
	case PlatformKick:
		return PlatformKick, true
	case PlatformTikTok:
		return PlatformTikTok, true
	}
	return "", false
}

// CreatorSummary is the embedded view of the creator owning a broadcast.
type CreatorSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName,omitempty"`
	Username    string `json:"username,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

// StreamSummary is a normalized, platform-agnostic view of one live broadcast.
type StreamSummary struct {
	ID          string
	StreamerID  string
	Title       string
	Platform    Platform
	ViewerCount int
	StartedAt   *time.Time
	Thumbnail   string
	URL         string
	Category    string
	Creator     CreatorSummary
}

// DedupKey identifies the slot a summary occupies in the deduplicated set.
// One creator may be live on several platforms at once; each pair is distinct.
func (s StreamSummary) DedupKey() string {
	return s.StreamerID + "|" + string(s.Platform)
}
