package services

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/youcisla/streamsub/internal/cache"
	"github.com/youcisla/streamsub/internal/constants"
	"github.com/youcisla/streamsub/internal/cursor"
	"github.com/youcisla/streamsub/internal/metrics"
	"github.com/youcisla/streamsub/internal/models"
	"github.com/youcisla/streamsub/internal/providers"
	"github.com/youcisla/streamsub/pkg/logger"
)

// TrendingOptions are the raw, unvalidated inputs of a trending request.
type TrendingOptions struct {
	Limit     int
	Cursor    string
	Category  string
	Platforms []string
}

// TrendingService merges live streams from every applicable platform provider
// into one ranked, paginated feed. It never returns an error: provider
// failures degrade to partial or empty pages and malformed cursors reset to
// the first page. A degraded feed beats a failed one on a discovery surface.
type TrendingService struct {
	providers []providers.StreamProvider
	cache     cache.Cache
	logger    logger.Logger
}

// NewTrendingService wires the ordered provider collection and the
// aggregation cache into a trending service.
func NewTrendingService(provs []providers.StreamProvider, c cache.Cache, log logger.Logger) *TrendingService {
	return &TrendingService{
		providers: provs,
		cache:     c,
		logger:    log,
	}
}

// GetTrendingStreams serves one page of the trending feed.
func (s *TrendingService) GetTrendingStreams(opts TrendingOptions) models.TrendingResponse {
	limit := normalizeLimit(opts.Limit)
	offset := cursor.Decode(opts.Cursor)
	category := strings.TrimSpace(opts.Category)

	applicable, filterGiven := s.selectProviders(opts.Platforms)
	if filterGiven && len(applicable) == 0 {
		return emptyPage()
	}

	key := cacheKey(applicable, category)

	ranked, hit := s.cache.Get(key)
	if hit {
		metrics.TrendingCacheHits.Inc()
	} else {
		metrics.TrendingCacheMisses.Inc()
		ranked = s.fanOut(applicable, category, limit+offset+constants.FetchPadding)
		s.cache.Set(key, ranked, constants.TrendingCacheTTL)
	}

	return paginate(ranked, offset, limit)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		return constants.MaxLimit
	}
	return limit
}

// selectProviders resolves the platform filter against the provider
// collection. Unrecognized tokens are dropped; filterGiven reports whether
// any tokens were supplied at all, so that a filter matching nothing known
// can short-circuit instead of falling back to every platform.
func (s *TrendingService) selectProviders(tokens []string) (applicable []providers.StreamProvider, filterGiven bool) {
	if len(tokens) == 0 {
		return s.providers, false
	}

	wanted := make(map[models.Platform]bool, len(tokens))
	for _, token := range tokens {
		if platform, ok := models.ParsePlatform(token); ok {
			wanted[platform] = true
		}
	}

	for _, p := range s.providers {
		if wanted[p.Platform()] {
			applicable = append(applicable, p)
		}
	}
	return applicable, true
}

// cacheKey derives the canonical key for a filter combination: the sorted
// platform tags plus the lower-cased category.
func cacheKey(applicable []providers.StreamProvider, category string) string {
	tags := make([]string, 0, len(applicable))
	for _, p := range applicable {
		tags = append(tags, string(p.Platform()))
	}
	sort.Strings(tags)
	return strings.Join(tags, ",") + "|" + strings.ToLower(category)
}

// fanOut queries every applicable provider concurrently and waits for all of
// them to settle. Fulfilled results are merged; a failing provider is
// excluded without affecting the rest. Only when the entire fan-out comes
// back empty-handed is a single warning logged.
func (s *TrendingService) fanOut(applicable []providers.StreamProvider, category string, fetchLimit int) []models.StreamSummary {
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		collected []models.StreamSummary
		failures  int
	)

	opts := providers.FetchOptions{Limit: fetchLimit, Category: category}

	for _, p := range applicable {
		wg.Add(1)
		go func(p providers.StreamProvider) {
			defer wg.Done()

			streams, err := p.FetchTrendingStreams(opts)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures++
				metrics.ProviderFailures.WithLabelValues(string(p.Platform())).Inc()
				s.logger.Debugf("[TrendingService] %s provider failed: %v", p.Platform(), err)
				return
			}
			collected = append(collected, streams...)
		}(p)
	}
	wg.Wait()

	if len(applicable) > 0 && failures == len(applicable) {
		s.logger.Warnf("[TrendingService] all %d providers failed, serving empty feed", failures)
	}

	return rank(deduplicate(collected))
}

// deduplicate collapses entries sharing a (streamerId, platform) slot,
// keeping the higher viewer count and breaking ties with the later start.
func deduplicate(streams []models.StreamSummary) []models.StreamSummary {
	best := make(map[string]models.StreamSummary, len(streams))
	order := make([]string, 0, len(streams))

	for _, stream := range streams {
		key := stream.DedupKey()
		current, seen := best[key]
		if !seen {
			best[key] = stream
			order = append(order, key)
			continue
		}
		if beats(stream, current) {
			best[key] = stream
		}
	}

	result := make([]models.StreamSummary, 0, len(best))
	for _, key := range order {
		result = append(result, best[key])
	}
	return result
}

func beats(candidate, current models.StreamSummary) bool {
	if candidate.ViewerCount != current.ViewerCount {
		return candidate.ViewerCount > current.ViewerCount
	}
	return startedAt(candidate).After(startedAt(current))
}

// rank orders by viewer count descending, ties broken by later start time.
func rank(streams []models.StreamSummary) []models.StreamSummary {
	sort.SliceStable(streams, func(i, j int) bool {
		if streams[i].ViewerCount != streams[j].ViewerCount {
			return streams[i].ViewerCount > streams[j].ViewerCount
		}
		return startedAt(streams[i]).After(startedAt(streams[j]))
	})
	return streams
}

func startedAt(s models.StreamSummary) time.Time {
	if s.StartedAt == nil {
		return time.Time{}
	}
	return *s.StartedAt
}

// paginate slices [offset, offset+limit) out of the ranked list and builds
// the page metadata.
func paginate(ranked []models.StreamSummary, offset, limit int) models.TrendingResponse {
	total := len(ranked)

	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	items := make([]models.APIStream, 0, end-start)
	for _, stream := range ranked[start:end] {
		items = append(items, stream.ToAPI())
	}

	meta := models.TrendingMeta{
		Total:   total,
		HasMore: total > offset+limit,
	}
	if meta.HasMore {
		next := cursor.Encode(offset + limit)
		meta.NextCursor = &next
	}

	return models.TrendingResponse{Items: items, Meta: meta}
}

func emptyPage() models.TrendingResponse {
	return models.TrendingResponse{
		Items: []models.APIStream{},
		Meta:  models.TrendingMeta{Total: 0, HasMore: false},
	}
}
