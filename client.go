package dexscreener

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// DefaultBaseURL is the production API host used when no WithBaseURL option
// is given.
const DefaultBaseURL = "https://api.dexscreener.com"

// MaxAddressesPerRequest is the largest number of token addresses the batch
// endpoint accepts in a single call.
const MaxAddressesPerRequest = 30

const defaultRequestTimeout = 10 * time.Second

// Client talks to the DEX Screener HTTP API. It holds no per-call state and
// is safe for concurrent use. Construct instances with New; the zero value is
// not usable.
//
// The client never retries, caches or throttles. The documented request-rate
// ceiling (300 requests per minute) is the caller's to respect.
type Client struct {
	httpClient *fasthttp.Client
	baseURL    string
	timeout    time.Duration
	logger     *zap.Logger
}

// Option configures a Client created by New.
type Option func(*Client)

// WithBaseURL points the client at a different API host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the request timeout used when the caller's context carries
// no deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient substitutes the underlying fasthttp client.
func WithHTTPClient(httpClient *fasthttp.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger attaches a logger for request-level debug diagnostics. Failures
// are always returned to the caller whether or not a logger is set.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger.Named("DEXScreenerClient")
	}
}

// New creates a Client for the production API, with a 10 second default
// timeout and no logging. Options override the base URL, timeout, transport
// and logger.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &fasthttp.Client{},
		baseURL:    DefaultBaseURL,
		timeout:    defaultRequestTimeout,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetPairsByPairAddress fetches the pairs listed under one pair contract
// address on the given chain.
func (c *Client) GetPairsByPairAddress(ctx context.Context, chainID, pairAddress string) ([]TradingPair, error) {
	requestURL := fmt.Sprintf("%s/latest/dex/pairs/%s/%s", c.baseURL, chainID, pairAddress)
	return c.getEnvelope(ctx, requestURL)
}

// GetPairsByTokenAddress fetches every pair that includes the given token on
// the given chain.
func (c *Client) GetPairsByTokenAddress(ctx context.Context, chainID, tokenAddress string) ([]TradingPair, error) {
	requestURL := fmt.Sprintf("%s/token-pairs/v1/%s/%s", c.baseURL, chainID, tokenAddress)
	return c.getArray(ctx, requestURL)
}

// GetPairsByTokenAddresses fetches pairs for up to MaxAddressesPerRequest
// tokens in one call. Longer lists fail with ErrTooManyAddresses and an empty
// list fails with ErrInvalidArgument, both before any request is made.
func (c *Client) GetPairsByTokenAddresses(ctx context.Context, chainID string, tokenAddresses []string) ([]TradingPair, error) {
	if len(tokenAddresses) == 0 {
		return nil, fmt.Errorf("token addresses list is empty: %w", ErrInvalidArgument)
	}
	if len(tokenAddresses) > MaxAddressesPerRequest {
		return nil, fmt.Errorf("%d token addresses exceeds the batch limit of %d: %w",
			len(tokenAddresses), MaxAddressesPerRequest, ErrTooManyAddresses)
	}
	requestURL := fmt.Sprintf("%s/tokens/v1/%s/%s", c.baseURL, chainID, strings.Join(tokenAddresses, ","))
	return c.getArray(ctx, requestURL)
}

// SearchPairs fetches pairs matching a free-text query such as "SOL/USDC".
func (c *Client) SearchPairs(ctx context.Context, query string) ([]TradingPair, error) {
	requestURL := fmt.Sprintf("%s/latest/dex/search?q=%s", c.baseURL, url.QueryEscape(query))
	return c.getEnvelope(ctx, requestURL)
}

// getEnvelope fetches and decodes an object-enveloped response.
func (c *Client) getEnvelope(ctx context.Context, requestURL string) ([]TradingPair, error) {
	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}
	var envelope pairsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.logger.Error("Failed to unmarshal DEX Screener response",
			zap.String("url", requestURL),
			zap.ByteString("responseBody", body),
			zap.Error(err))
		return nil, &DecodeError{URL: requestURL, Err: err}
	}
	return envelope.Pairs, nil
}

// getArray fetches and decodes a bare-array response.
func (c *Client) getArray(ctx context.Context, requestURL string) ([]TradingPair, error) {
	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}
	var pairs []TradingPair
	if err := json.Unmarshal(body, &pairs); err != nil {
		c.logger.Error("Failed to unmarshal DEX Screener response",
			zap.String("url", requestURL),
			zap.ByteString("responseBody", body),
			zap.Error(err))
		return nil, &DecodeError{URL: requestURL, Err: err}
	}
	return pairs, nil
}

// get issues the GET and returns the body on a 2xx status. A non-success
// status is decoded into APIError; transport failures surface as
// TransportError.
func (c *Client) get(ctx context.Context, requestURL string) ([]byte, error) {
	c.logger.Debug("Requesting pairs from DEX Screener", zap.String("url", requestURL))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetContentTypeBytes([]byte("application/json"))

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
			c.logger.Error("Failed to execute request to DEX Screener", zap.String("url", requestURL), zap.Error(err))
			return nil, &TransportError{URL: requestURL, Err: err}
		}
	} else {
		if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
			c.logger.Error("Failed to execute request to DEX Screener (with default timeout)", zap.String("url", requestURL), zap.Error(err))
			return nil, &TransportError{URL: requestURL, Err: err}
		}
	}

	statusCode := resp.StatusCode()
	// The response body is pooled with the fasthttp response, copy it out.
	body := append([]byte(nil), resp.Body()...)

	if statusCode < fasthttp.StatusOK || statusCode >= fasthttp.StatusMultipleChoices {
		var failure apiErrorBody
		if err := json.Unmarshal(body, &failure); err != nil {
			c.logger.Error("DEX Screener API request failed with an undecodable body",
				zap.String("url", requestURL),
				zap.Int("statusCode", statusCode),
				zap.ByteString("responseBody", body),
				zap.Error(err))
			return nil, &DecodeError{URL: requestURL, Err: err}
		}
		c.logger.Error("DEX Screener API request failed",
			zap.String("url", requestURL),
			zap.Int("statusCode", statusCode),
			zap.String("code", failure.Code),
			zap.String("message", failure.Message))
		return nil, &APIError{StatusCode: statusCode, Code: failure.Code, Message: failure.Message}
	}

	c.logger.Debug("DEX Screener request succeeded",
		zap.String("url", requestURL),
		zap.Int("statusCode", statusCode),
		zap.Int("bodyBytes", len(body)))
	return body, nil
}
