package port

import (
	"context"

	"dexscreener"
)

// PairSource is the slice of the DEX Screener client the pair service
// consumes. *dexscreener.Client satisfies it.
type PairSource interface {
	GetPairsByPairAddress(ctx context.Context, chainID, pairAddress string) ([]dexscreener.TradingPair, error)
	GetPairsByTokenAddress(ctx context.Context, chainID, tokenAddress string) ([]dexscreener.TradingPair, error)
	GetPairsByTokenAddresses(ctx context.Context, chainID string, tokenAddresses []string) ([]dexscreener.TradingPair, error)
	SearchPairs(ctx context.Context, query string) ([]dexscreener.TradingPair, error)
}

// PairService is the cached, throttled lookup surface the REST API serves
// from.
type PairService interface {
	PairsByPairAddress(ctx context.Context, chainID, pairAddress string) ([]dexscreener.TradingPair, error)
	PairsByTokenAddress(ctx context.Context, chainID, tokenAddress string) ([]dexscreener.TradingPair, error)
	Search(ctx context.Context, query string) ([]dexscreener.TradingPair, error)
	WarmTrackedTokens(ctx context.Context) error
}
