// Package dexscreener provides a typed client for the DEX Screener HTTP API.
//
// The API reports trading-pair data for decentralized exchanges across many
// chains. Its responses encode numbers sometimes as JSON numbers and
// sometimes as strings, omit optional fields or send them as empty strings,
// and mix two timestamp encodings. The types in this package absorb those
// quirks during decoding, so callers only ever see canonical Go values.
//
// Construct a Client with New and call one of the four lookup operations:
//
//	client := dexscreener.New()
//	pairs, err := client.SearchPairs(ctx, "SOL/USDC")
//	if err != nil {
//		// handle err
//	}
//	for _, pair := range pairs {
//		fmt.Println(pair.PairAddress, pair.PriceNative.Float64())
//	}
//
// Every operation returns pairs in the order the API sent them, together
// with an error the caller can inspect with errors.Is and errors.As:
// TransportError for network failures, APIError for non-success statuses,
// DecodeError for schema mismatches, and the ErrTooManyAddresses and
// ErrInvalidArgument sentinels for argument checks that run before any
// request is made.
//
// The client performs no retries, caching or rate limiting. The documented
// ceilings (300 requests per minute, 30 addresses per batch call) are the
// caller's to respect; only the batch cap is checked locally because the API
// rejects larger requests anyway.
package dexscreener
