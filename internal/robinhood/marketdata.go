package robinhood

import (
	"github.com/shopspring/decimal"

	"rhcrypto/internal/domain"
)

const (
	bestBidAskPath     = "/api/v1/crypto/marketdata/best_bid_ask/"
	estimatedPricePath = "/api/v1/crypto/marketdata/estimated_price/"
)

// GetBestBidAsk fetches current best bid/ask quotes, optionally filtered
// by symbols (e.g. "BTC-USD").
func (c *Client) GetBestBidAsk(symbols ...string) (domain.QuotePage, error) {
	var q query
	q.addAll("symbol", symbols)

	var out domain.QuotePage
	err := c.getJSON(bestBidAskPath+q.String(), &out)
	return out, err
}

// GetEstimatedPrice fetches the estimated execution price for a quantity
// of symbol. side is "bid", "ask" or "both".
func (c *Client) GetEstimatedPrice(symbol, side string, quantity decimal.Decimal) (domain.QuotePage, error) {
	var q query
	q.add("symbol", symbol)
	q.add("side", side)
	q.add("quantity", quantity.String())

	var out domain.QuotePage
	err := c.getJSON(estimatedPricePath+q.String(), &out)
	return out, err
}
