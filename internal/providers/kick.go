package providers

import (
	"github.com/youcisla/streamsub/internal/models"
	"github.com/youcisla/streamsub/internal/store"
	"github.com/youcisla/streamsub/pkg/logger"
)

const kickWatchURL = "https://kick.com/"

// NewKick creates the Kick trending provider.
func NewKick(st store.Store, log logger.Logger) StreamProvider {
	return &liveProvider{
		platform: models.PlatformKick,
		store:    st,
		logger:   log,
		watchURL: func(handle string) string {
			return kickWatchURL + handle
		},
	}
}
