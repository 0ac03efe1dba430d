package models

import "time"

// APIStream is the transport form of a StreamSummary. Timestamps are rendered
// as RFC 3339 strings and optional fields are omitted rather than null.
type APIStream struct {
	ID          string         `json:"id"`
	StreamerID  string         `json:"streamerId"`
	Title       string         `json:"title"`
	Platform    Platform       `json:"platform"`
	ViewerCount int            `json:"viewerCount"`
	StartedAt   *string        `json:"startedAt,omitempty"`
	Thumbnail   *string        `json:"thumbnail,omitempty"`
	URL         string         `json:"url"`
	Category    *string        `json:"category,omitempty"`
	Creator     CreatorSummary `json:"creator"`
}

// TrendingMeta carries pagination metadata for a trending page.
type TrendingMeta struct {
	Total      int     `json:"total"`
	HasMore    bool    `json:"hasMore"`
	NextCursor *string `json:"nextCursor,omitempty"`
}

// TrendingResponse is the body of GET /streams/trending.
type TrendingResponse struct {
	Items []APIStream  `json:"items"`
	Meta  TrendingMeta `json:"meta"`
}

// ToAPI converts a StreamSummary to its transport form.
func (s StreamSummary) ToAPI() APIStream {
	out := APIStream{
		ID:          s.ID,
		StreamerID:  s.StreamerID,
		Title:       s.Title,
		Platform:    s.Platform,
		ViewerCount: s.ViewerCount,
		URL:         s.URL,
		Creator:     s.Creator,
	}
	if s.StartedAt != nil {
		started := s.StartedAt.UTC().Format(time.RFC3339)
		out.StartedAt = &started
	}
	if s.Thumbnail != "" {
		thumb := s.Thumbnail
		out.Thumbnail = &thumb
	}
	if s.Category != "" {
		category := s.Category
		out.Category = &category
	}
	return out
}
