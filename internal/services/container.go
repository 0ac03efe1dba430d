// Package services holds the application services and their wiring.
package services

import (
	"github.com/youcisla/streamsub/internal/cache"
	"github.com/youcisla/streamsub/internal/store"
	"github.com/youcisla/streamsub/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	Trending *TrendingService
	Cache    *cache.TrendingCache
	Store    store.Store
	Poller   *Poller
	Logger   logger.Logger
}
