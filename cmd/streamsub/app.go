package main

import (
	"github.com/youcisla/streamsub/internal/cache"
	"github.com/youcisla/streamsub/internal/config"
	"github.com/youcisla/streamsub/internal/constants"
	"github.com/youcisla/streamsub/internal/handlers"
	"github.com/youcisla/streamsub/internal/providers"
	"github.com/youcisla/streamsub/internal/services"
	"github.com/youcisla/streamsub/internal/store"
	"github.com/youcisla/streamsub/pkg/logger"
)

var (
	Logger           logger.Logger
	Store            store.Store
	serviceContainer *services.Container
	handler          *handlers.Handler
)

func InitializeLogger() {
	Logger = logger.New()
}

func InitializeStore(cfg *config.Config) {
	var err error
	Store, err = store.NewBolt(cfg.DatabasePath)
	if err != nil {
		Logger.Fatalf("failed to initialize live-status store: %v", err)
	}
	Logger.Infof("[App] live-status store opened at %s", cfg.DatabasePath)
}

func InitializeServices(cfg *config.Config) {
	trendingCache := cache.New(constants.TrendingCacheCapacity)

	// Provider order fixes the fan-out order; selection is purely by
	// platform tag.
	streamProviders := []providers.StreamProvider{
		providers.NewTwitch(Store, Logger),
		providers.NewYouTube(Store, Logger),
		providers.NewKick(Store, Logger),
		providers.NewTikTok(Store, Logger),
	}

	trending := services.NewTrendingService(streamProviders, trendingCache, Logger)
	poller := services.NewPoller(Store, buildFetchers(cfg), Logger)

	serviceContainer = &services.Container{
		Trending: trending,
		Cache:    trendingCache,
		Store:    Store,
		Poller:   poller,
		Logger:   Logger,
	}

	handler = handlers.New(serviceContainer)

	Logger.Infof("[App] services initialized with %d providers", len(streamProviders))
}

// buildFetchers creates a poll client for every platform with credentials.
// Platforms without credentials are skipped; their providers still serve
// whatever the store already holds.
func buildFetchers(cfg *config.Config) []services.PlatformFetcher {
	var fetchers []services.PlatformFetcher

	if cfg.TwitchClientID != "" && cfg.TwitchAppToken != "" {
		fetcher, err := services.NewTwitchFetcher(cfg.TwitchClientID, cfg.TwitchAppToken)
		if err != nil {
			Logger.Warnf("[App] twitch poller disabled: %v", err)
		} else {
			fetchers = append(fetchers, fetcher)
		}
	}

	if cfg.KickAccessToken != "" {
		fetcher, err := services.NewKickFetcher(cfg.KickAccessToken)
		if err != nil {
			Logger.Warnf("[App] kick poller disabled: %v", err)
		} else {
			fetchers = append(fetchers, fetcher)
		}
	}

	if cfg.YouTubeAPIKey != "" {
		fetcher, err := services.NewYouTubeFetcher(cfg.YouTubeAPIKey)
		if err != nil {
			Logger.Warnf("[App] youtube poller disabled: %v", err)
		} else {
			fetchers = append(fetchers, fetcher)
		}
	}

	if len(fetchers) == 0 {
		Logger.Warnf("[App] no platform credentials configured, live-status polling disabled")
	}
	return fetchers
}
