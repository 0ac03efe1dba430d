package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/youcisla/streamsub/internal/services"
)

// handleTrending serves GET /streams/trending.
//
// Every input is normalized rather than rejected: a garbage limit falls back
// to the default, a malformed cursor resets to the first page and unknown
// platform tokens are dropped. The endpoint answers 200 with a structurally
// valid page even when every upstream platform is down.
func (h *Handler) handleTrending(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		limit = 0
	}

	opts := services.TrendingOptions{
		Limit:     limit,
		Cursor:    c.Query("cursor"),
		Category:  c.Query("category"),
		Platforms: parsePlatformTokens(c.QueryArray("platforms")),
	}

	c.JSON(http.StatusOK, h.services.Trending.GetTrendingStreams(opts))
}

// parsePlatformTokens accepts both repeated query values and comma-separated
// lists, e.g. ?platforms=twitch&platforms=kick and ?platforms=twitch,kick.
func parsePlatformTokens(values []string) []string {
	var tokens []string
	for _, value := range values {
		for _, token := range strings.Split(value, ",") {
			if token = strings.TrimSpace(token); token != "" {
				tokens = append(tokens, token)
			}
		}
	}
	return tokens
}
