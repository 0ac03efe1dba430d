package providers

import (
	"strings"

	"github.com/youcisla/streamsub/internal/models"
	"github.com/youcisla/streamsub/internal/store"
	"github.com/youcisla/streamsub/pkg/logger"
)

// NewYouTube creates the YouTube trending provider. Handles are stored bare;
// the deep link targets the channel's /live redirect.
func NewYouTube(st store.Store, log logger.Logger) StreamProvider {
	return &liveProvider{
		platform: models.PlatformYouTube,
		store:    st,
		logger:   log,
		watchURL: func(handle string) string {
			return "https://www.youtube.com/@" + strings.TrimPrefix(handle, "@") + "/live"
		},
	}
}
