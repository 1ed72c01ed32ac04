package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dexscreener"
	"dexscreener/internal/config"
	"dexscreener/internal/metrics"
	"dexscreener/internal/pkg/utils"
	"dexscreener/internal/port"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// pairService implements the PairService interface. It serves lookups from a
// TTL cache and throttles everything that goes upstream with a shared rate
// limiter, so the service as a whole stays under the documented request-rate
// ceiling no matter how it is called.
type pairService struct {
	logger  *zap.Logger
	cfg     *config.Config
	source  port.PairSource
	cache   *cache.Cache
	limiter *rate.Limiter
}

// NewPairService creates a new instance of PairService.
func NewPairService(logger *zap.Logger, cfg *config.Config, source port.PairSource) port.PairService {
	ttl := time.Duration(cfg.PairService.CacheTTLSeconds) * time.Second

	rpm := cfg.PairService.RequestsPerMinute
	if rpm <= 0 {
		rpm = 300
	}
	interval := time.Minute / time.Duration(rpm)

	return &pairService{
		logger:  logger.Named("PairService"),
		cfg:     cfg,
		source:  source,
		cache:   cache.New(ttl, 10*time.Minute),
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// PairsByPairAddress returns the pairs listed under one pair contract
// address, from cache when fresh.
func (s *pairService) PairsByPairAddress(ctx context.Context, chainID, pairAddress string) ([]dexscreener.TradingPair, error) {
	key := cacheKey("pair", chainID, pairAddress)
	if pairs, ok := s.cachedPairs(key); ok {
		return pairs, nil
	}

	pairs, err := s.fetch(ctx, "pairs_by_pair", func(ctx context.Context) ([]dexscreener.TradingPair, error) {
		return s.source.GetPairsByPairAddress(ctx, chainID, pairAddress)
	})
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, pairs, cache.DefaultExpiration)
	return pairs, nil
}

// PairsByTokenAddress returns every pair that includes the given token, from
// cache when fresh.
func (s *pairService) PairsByTokenAddress(ctx context.Context, chainID, tokenAddress string) ([]dexscreener.TradingPair, error) {
	key := cacheKey("token", chainID, tokenAddress)
	if pairs, ok := s.cachedPairs(key); ok {
		return pairs, nil
	}

	pairs, err := s.fetch(ctx, "pairs_by_token", func(ctx context.Context) ([]dexscreener.TradingPair, error) {
		return s.source.GetPairsByTokenAddress(ctx, chainID, tokenAddress)
	})
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, pairs, cache.DefaultExpiration)
	return pairs, nil
}

// Search returns pairs matching a free-text query, from cache when fresh.
func (s *pairService) Search(ctx context.Context, query string) ([]dexscreener.TradingPair, error) {
	key := cacheKey("search", "", query)
	if pairs, ok := s.cachedPairs(key); ok {
		return pairs, nil
	}

	pairs, err := s.fetch(ctx, "search", func(ctx context.Context) ([]dexscreener.TradingPair, error) {
		return s.source.SearchPairs(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, pairs, cache.DefaultExpiration)
	return pairs, nil
}

// WarmTrackedTokens fetches pairs for every configured network's token list
// in batches and fills the cache, so the first callers after startup are
// served without an upstream round trip. Batch failures are logged and skipped
// rather than aborting the remaining batches.
func (s *pairService) WarmTrackedTokens(ctx context.Context) error {
	s.logger.Info("Starting to warm tracked token pairs...")

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.cfg.PairService.WarmConcurrency)

	batchCount := 0
	for _, network := range s.cfg.Networks {
		if network.DEXScreenerID == "" {
			s.logger.Warn("Skipping network without a DEX Screener chain ID", zap.String("network", network.Name))
			continue
		}

		addresses := utils.NormalizeAddresses(network.TokenAddresses)
		if len(addresses) == 0 {
			continue
		}

		for _, batch := range utils.BatchStrings(addresses, s.cfg.PairService.MaxTokensPerBatchRequest) {
			chainID := network.DEXScreenerID
			currentBatch := batch
			batchCount++

			eg.Go(func() error {
				pairs, err := s.fetch(egCtx, "pairs_by_tokens", func(ctx context.Context) ([]dexscreener.TradingPair, error) {
					return s.source.GetPairsByTokenAddresses(ctx, chainID, currentBatch)
				})
				if err != nil {
					s.logger.Error("Failed to warm token batch",
						zap.String("dexChainID", chainID),
						zap.Strings("tokenAddresses", currentBatch),
						zap.Error(err))
					return nil
				}
				s.cacheBatchByToken(chainID, currentBatch, pairs)
				return nil
			})
		}
	}

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("warming tracked token pairs: %w", err)
	}
	s.logger.Info("Finished warming tracked token pairs", zap.Int("batches", batchCount))
	return nil
}

// cacheBatchByToken groups the fetched pairs by base token address and stores
// each requested token's slice under its own key. Tokens the API returned
// nothing for are cached empty, so repeat lookups do not hammer upstream.
func (s *pairService) cacheBatchByToken(chainID string, requested []string, pairs []dexscreener.TradingPair) {
	pairsByToken := make(map[string][]dexscreener.TradingPair)
	for _, pair := range pairs {
		base := strings.ToLower(pair.BaseToken.Address)
		pairsByToken[base] = append(pairsByToken[base], pair)
	}

	for _, address := range requested {
		key := cacheKey("token", chainID, address)
		s.cache.Set(key, pairsByToken[strings.ToLower(address)], cache.DefaultExpiration)
	}

	s.logger.Debug("Cached token batch",
		zap.String("dexChainID", chainID),
		zap.Int("tokenCount", len(requested)),
		zap.Int("pairCount", len(pairs)))
}

func (s *pairService) cachedPairs(key string) ([]dexscreener.TradingPair, bool) {
	value, found := s.cache.Get(key)
	if !found {
		metrics.CacheEvents.WithLabelValues("miss").Inc()
		return nil, false
	}
	pairs, ok := value.([]dexscreener.TradingPair)
	if !ok {
		s.logger.Warn("Cache entry has unexpected type", zap.String("cacheKey", key), zap.Any("value", value))
		metrics.CacheEvents.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.CacheEvents.WithLabelValues("hit").Inc()
	return pairs, true
}

// fetch funnels every upstream call through the shared rate limiter and
// records request metrics.
func (s *pairService) fetch(ctx context.Context, operation string, call func(context.Context) ([]dexscreener.TradingPair, error)) ([]dexscreener.TradingPair, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for a request slot: %w", err)
	}

	start := time.Now()
	pairs, err := call(ctx)
	metrics.UpstreamRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(operation, "error").Inc()
		s.logger.Error("DEX Screener request failed", zap.String("operation", operation), zap.Error(err))
		return nil, err
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(operation, "success").Inc()
	return pairs, nil
}

// cacheKey builds a cache key from the lookup kind, chain and value. Values
// are lower-cased so differently-cased spellings share one entry.
func cacheKey(kind, chainID, value string) string {
	return fmt.Sprintf("%s_%s_%s", kind, chainID, strings.ToLower(value))
}
