package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/youcisla/streamsub/internal/constants"
	"github.com/youcisla/streamsub/internal/metrics"
	"github.com/youcisla/streamsub/internal/models"
	"github.com/youcisla/streamsub/internal/store"
	"github.com/youcisla/streamsub/pkg/logger"
	"github.com/youcisla/streamsub/pkg/ratelimiter"
)

// PlatformSnapshot is one platform's view of who is live right now, together
// with the creator profiles and linked handles discovered along the way.
type PlatformSnapshot struct {
	Streams  []store.LiveStream
	Creators []store.Creator
	Handles  map[string]string // creator id -> platform handle
}

// PlatformFetcher pulls the current live set from one upstream platform API.
type PlatformFetcher interface {
	Platform() models.Platform
	FetchLive(ctx context.Context, limit int) (*PlatformSnapshot, error)
}

// Poller refreshes the live-status store from the upstream platforms on a
// fixed cadence. A platform whose fetch fails keeps its previous records;
// stale data beats no data for a discovery feed.
type Poller struct {
	store    store.Store
	fetchers []PlatformFetcher
	limiter  *ratelimiter.TokenBucket
	logger   logger.Logger
	cron     *cron.Cron
}

// NewPoller creates a poller over the given platform fetchers.
func NewPoller(st store.Store, fetchers []PlatformFetcher, log logger.Logger) *Poller {
	return &Poller{
		store:    st,
		fetchers: fetchers,
		limiter:  ratelimiter.NewTokenBucket(constants.PollRateBurst, constants.PollRateLimit),
		logger:   log,
		cron:     cron.New(),
	}
}

// Start schedules the poll loop and triggers an immediate first refresh.
func (p *Poller) Start() error {
	if _, err := p.cron.AddFunc(constants.PollCronSpec, p.RunOnce); err != nil {
		return fmt.Errorf("failed to schedule poll job: %w", err)
	}
	p.cron.Start()
	go p.RunOnce()
	return nil
}

// Stop halts the schedule and waits for a running cycle to finish.
func (p *Poller) Stop() {
	<-p.cron.Stop().Done()
}

// RunOnce refreshes every platform's live set sequentially.
func (p *Poller) RunOnce() {
	runID := uuid.NewString()[:8]
	p.logger.Debugf("[Poller] cycle %s started", runID)

	for _, fetcher := range p.fetchers {
		p.limiter.Wait()
		p.refreshPlatform(runID, fetcher)
	}
}

func (p *Poller) refreshPlatform(runID string, fetcher PlatformFetcher) {
	platform := fetcher.Platform()

	ctx, cancel := context.WithTimeout(context.Background(), constants.PlatformRequestTimeout)
	defer cancel()

	snapshot, err := fetcher.FetchLive(ctx, constants.PollFetchSize)
	if err != nil {
		metrics.PollCycles.WithLabelValues(string(platform), "error").Inc()
		p.logger.Warnf("[Poller] cycle %s: %s fetch failed, keeping previous live set: %v", runID, platform, err)
		return
	}

	for _, creator := range snapshot.Creators {
		if err := p.store.PutCreator(creator); err != nil {
			p.logger.Warnf("[Poller] cycle %s: failed to store creator %s: %v", runID, creator.ID, err)
		}
	}
	for creatorID, handle := range snapshot.Handles {
		if err := p.store.PutHandle(creatorID, platform, handle); err != nil {
			p.logger.Warnf("[Poller] cycle %s: failed to store handle for %s: %v", runID, creatorID, err)
		}
	}
	if err := p.store.ReplaceLive(platform, snapshot.Streams); err != nil {
		metrics.PollCycles.WithLabelValues(string(platform), "error").Inc()
		p.logger.Errorf("[Poller] cycle %s: failed to replace %s live set: %v", runID, platform, err)
		return
	}

	metrics.PollCycles.WithLabelValues(string(platform), "ok").Inc()
	p.logger.Infof("[Poller] cycle %s: %s refreshed with %d live streams", runID, platform, len(snapshot.Streams))
}
