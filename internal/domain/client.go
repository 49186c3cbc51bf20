package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// TradingClient is the authenticated API surface commands depend on.
type TradingClient interface {
	// APIRequest performs one signed call and returns the raw JSON payload.
	// method is GET or POST; path starts with "/" and includes any query
	// string; body, when non-nil, is marshalled to compact JSON.
	APIRequest(method, path string, body any) (json.RawMessage, error)

	GetAccount() (Account, error)
	GetHoldings(assetCodes ...string) (HoldingsPage, error)

	GetBestBidAsk(symbols ...string) (QuotePage, error)
	GetEstimatedPrice(symbol, side string, quantity decimal.Decimal) (QuotePage, error)

	GetTradingPairs(symbols ...string) (TradingPairPage, error)
	GetOrders(filter OrderFilter) (OrderPage, error)
	GetOrder(id string) (Order, error)
	PlaceOrder(req OrderRequest) (Order, error)
	CancelOrder(id string) (json.RawMessage, error)
}
