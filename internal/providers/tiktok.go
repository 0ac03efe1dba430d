package providers

import (
	"strings"

	"github.com/youcisla/streamsub/internal/models"
	"github.com/youcisla/streamsub/internal/store"
	"github.com/youcisla/streamsub/pkg/logger"
)

// NewTikTok creates the TikTok trending provider. TikTok handles are stored
// with their leading @; the URL template supplies its own.
func NewTikTok(st store.Store, log logger.Logger) StreamProvider {
	return &liveProvider{
		platform: models.PlatformTikTok,
		store:    st,
		logger:   log,
		watchURL: func(handle string) string {
			return "https://www.tiktok.com/@" + strings.TrimPrefix(handle, "@") + "/live"
		},
	}
}
