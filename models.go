package dexscreener

import "fmt"

// TokenInfo identifies one side of a trading pair. A token has no identity
// beyond its address within a chain.
type TokenInfo struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// TransactionCounts holds buy and sell counts for one time window.
type TransactionCounts struct {
	Buys  int64 `json:"buys"`
	Sells int64 `json:"sells"`
}

// PairTransactions holds transaction counts for the four fixed windows the
// API aggregates over.
type PairTransactions struct {
	M5  TransactionCounts `json:"m5"`
	H1  TransactionCounts `json:"h1"`
	H6  TransactionCounts `json:"h6"`
	H24 TransactionCounts `json:"h24"`
}

// WindowFloats holds one float metric for the four fixed windows. A window
// missing from the response stays 0.
type WindowFloats struct {
	M5  FloatValue `json:"m5"`
	H1  FloatValue `json:"h1"`
	H6  FloatValue `json:"h6"`
	H24 FloatValue `json:"h24"`
}

// Liquidity describes the pooled reserves backing a pair. The USD valuation
// is optional on the wire; the base and quote amounts are always present and
// decoding fails when either is missing or unparseable.
type Liquidity struct {
	USD   OptionalFloat `json:"usd"`
	Base  FloatValue    `json:"base"`
	Quote FloatValue    `json:"quote"`
}

func (l *Liquidity) UnmarshalJSON(data []byte) error {
	type liquidity Liquidity
	aux := struct {
		*liquidity
		Base  *FloatValue `json:"base"`
		Quote *FloatValue `json:"quote"`
	}{liquidity: (*liquidity)(l)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Base == nil {
		return fmt.Errorf("liquidity: missing required field %q", "base")
	}
	if aux.Quote == nil {
		return fmt.Errorf("liquidity: missing required field %q", "quote")
	}
	l.Base, l.Quote = *aux.Base, *aux.Quote
	return nil
}

// TradingPair is the central aggregate every operation returns: one
// base/quote combination on a specific exchange and chain with its price,
// activity and liquidity figures. Field names mirror the wire format
// exactly. Values are not mutated after decoding.
type TradingPair struct {
	ChainID       string           `json:"chainId"`
	DexID         string           `json:"dexId"`
	URL           string           `json:"url"`
	PairAddress   string           `json:"pairAddress"`
	Labels        []string         `json:"labels,omitempty"`
	BaseToken     TokenInfo        `json:"baseToken"`
	QuoteToken    TokenInfo        `json:"quoteToken"`
	PriceNative   FloatValue       `json:"priceNative"`
	PriceUsd      OptionalFloat    `json:"priceUsd"`
	Txns          PairTransactions `json:"txns"`
	Volume        WindowFloats     `json:"volume"`
	PriceChange   WindowFloats     `json:"priceChange"`
	Liquidity     *Liquidity       `json:"liquidity,omitempty"`
	Fdv           OptionalFloat    `json:"fdv"`
	MarketCap     OptionalFloat    `json:"marketCap"`
	PairCreatedAt OptionalTime     `json:"pairCreatedAt"`
}

func (p *TradingPair) UnmarshalJSON(data []byte) error {
	type tradingPair TradingPair
	aux := struct {
		*tradingPair
		PriceNative *FloatValue `json:"priceNative"`
	}{tradingPair: (*tradingPair)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.PriceNative == nil {
		return fmt.Errorf("trading pair: missing required field %q", "priceNative")
	}
	p.PriceNative = *aux.PriceNative
	return nil
}

// pairsEnvelope is the wire shape of the object-enveloped endpoints. The
// bare-array endpoints skip it and return []TradingPair directly.
type pairsEnvelope struct {
	SchemaVersion string        `json:"schemaVersion"`
	Pairs         []TradingPair `json:"pairs"`
}
