package providers

import (
	"github.com/youcisla/streamsub/internal/models"
	"github.com/youcisla/streamsub/internal/store"
	"github.com/youcisla/streamsub/pkg/logger"
)

const twitchWatchURL = "https://www.twitch.tv/"

// NewTwitch creates the Twitch trending provider.
func NewTwitch(st store.Store, log logger.Logger) StreamProvider {
	return &liveProvider{
		platform: models.PlatformTwitch,
		store:    st,
		logger:   log,
		watchURL: func(handle string) string {
			return twitchWatchURL + handle
		},
	}
}
