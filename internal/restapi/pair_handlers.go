package restapi

import (
	"errors"
	"net/http"

	"dexscreener"
	"dexscreener/internal/config"
	"dexscreener/internal/pkg/utils"
	"dexscreener/internal/port"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// pairsResponse is the body every successful pair lookup returns.
type pairsResponse struct {
	Pairs []dexscreener.TradingPair `json:"pairs"`
}

// PairHandler serves the pair lookup endpoints.
type PairHandler struct {
	service   port.PairService
	logger    *zap.Logger
	evmChains map[string]bool
}

// NewPairHandler creates a new instance of PairHandler. Chains configured
// with kind "evm" get their addresses hex-validated before a request goes
// upstream.
func NewPairHandler(service port.PairService, cfg *config.Config, logger *zap.Logger) *PairHandler {
	evmChains := make(map[string]bool)
	for _, network := range cfg.Networks {
		if network.Kind == "evm" && network.DEXScreenerID != "" {
			evmChains[network.DEXScreenerID] = true
		}
	}
	return &PairHandler{
		service:   service,
		logger:    logger.Named("PairHandler"),
		evmChains: evmChains,
	}
}

// GetPairsByPairAddressHandler handles GET /api/v1/pairs/:chain/:pairAddress.
func (h *PairHandler) GetPairsByPairAddressHandler(c *gin.Context) {
	chain := c.Param("chain")
	pairAddress := c.Param("pairAddress")
	if !h.validAddress(chain, pairAddress) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid EVM address"})
		return
	}

	pairs, err := h.service.PairsByPairAddress(c.Request.Context(), chain, pairAddress)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, pairsResponse{Pairs: pairs})
}

// GetPairsByTokenAddressHandler handles GET /api/v1/tokens/:chain/:tokenAddress.
func (h *PairHandler) GetPairsByTokenAddressHandler(c *gin.Context) {
	chain := c.Param("chain")
	tokenAddress := c.Param("tokenAddress")
	if !h.validAddress(chain, tokenAddress) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid EVM address"})
		return
	}

	pairs, err := h.service.PairsByTokenAddress(c.Request.Context(), chain, tokenAddress)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, pairsResponse{Pairs: pairs})
}

// SearchHandler handles GET /api/v1/search?q=...
func (h *PairHandler) SearchHandler(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	pairs, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, pairsResponse{Pairs: pairs})
}

// validAddress rejects malformed hex addresses on EVM chains. Non-EVM chains
// (Solana and friends) pass through untouched since their address formats are
// case-sensitive and chain-specific.
func (h *PairHandler) validAddress(chain, address string) bool {
	if !h.evmChains[chain] {
		return true
	}
	return utils.IsValidEVMAddress(address)
}

// renderError maps client errors onto HTTP responses. Upstream API errors
// keep their original status code and message.
func (h *PairHandler) renderError(c *gin.Context, err error) {
	var apiErr *dexscreener.APIError
	if errors.As(err, &apiErr) {
		h.logger.Warn("DEX Screener rejected the request",
			zap.Int("status", apiErr.StatusCode),
			zap.String("code", apiErr.Code),
			zap.String("message", apiErr.Message))
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
		return
	}

	if errors.Is(err, dexscreener.ErrTooManyAddresses) || errors.Is(err, dexscreener.ErrInvalidArgument) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var transportErr *dexscreener.TransportError
	var decodeErr *dexscreener.DecodeError
	if errors.As(err, &transportErr) || errors.As(err, &decodeErr) {
		h.logger.Error("DEX Screener is unreachable or returned garbage", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream unavailable"})
		return
	}

	h.logger.Error("Unexpected error while serving pairs", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
