package robinhood

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"rhcrypto/internal/domain"
)

const (
	tradingPairsPath = "/api/v1/crypto/trading/trading_pairs/"
	ordersPath       = "/api/v1/crypto/trading/orders/"
)

// GetTradingPairs fetches tradable pairs, optionally filtered by symbols.
func (c *Client) GetTradingPairs(symbols ...string) (domain.TradingPairPage, error) {
	var q query
	q.addAll("symbol", symbols)

	var out domain.TradingPairPage
	err := c.getJSON(tradingPairsPath+q.String(), &out)
	return out, err
}

// GetOrders lists orders matching filter. A zero filter lists everything.
func (c *Client) GetOrders(filter domain.OrderFilter) (domain.OrderPage, error) {
	var q query
	q.add("symbol", filter.Symbol)
	q.add("side", filter.Side)
	q.add("state", filter.State)
	q.add("type", filter.Type)
	q.add("created_at_start", filter.CreatedAtStart)
	q.add("created_at_end", filter.CreatedAtEnd)
	q.add("updated_at_start", filter.UpdatedAtStart)
	q.add("updated_at_end", filter.UpdatedAtEnd)
	if filter.Limit > 0 {
		q.add("limit", strconv.Itoa(filter.Limit))
	}
	q.add("cursor", filter.Cursor)

	var out domain.OrderPage
	err := c.getJSON(ordersPath+q.String(), &out)
	return out, err
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(id string) (domain.Order, error) {
	var out domain.Order
	err := c.getJSON(ordersPath+url.PathEscape(id)+"/", &out)
	return out, err
}

// PlaceOrder submits a new order and returns the created order record.
func (c *Client) PlaceOrder(req domain.OrderRequest) (domain.Order, error) {
	var out domain.Order
	err := c.postJSON(ordersPath, req, &out)
	return out, err
}

// CancelOrder requests cancellation of an open order. The service replies
// with a confirmation message, returned raw.
func (c *Client) CancelOrder(id string) (json.RawMessage, error) {
	return c.APIRequest(http.MethodPost, ordersPath+url.PathEscape(id)+"/cancel/", nil)
}
