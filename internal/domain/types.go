package domain

import "github.com/shopspring/decimal"

// Account is the crypto trading account attached to the API key.
type Account struct {
	AccountNumber       string          `json:"account_number"`
	Status              string          `json:"status"`
	BuyingPower         decimal.Decimal `json:"buying_power"`
	BuyingPowerCurrency string          `json:"buying_power_currency"`
}

// Holding is one asset balance on the account.
type Holding struct {
	AccountNumber             string          `json:"account_number"`
	AssetCode                 string          `json:"asset_code"`
	TotalQuantity             decimal.Decimal `json:"total_quantity"`
	QuantityAvailableForTrade decimal.Decimal `json:"quantity_available_for_trading"`
}

// HoldingsPage is a cursor-paginated list of holdings.
type HoldingsPage struct {
	Next     *string   `json:"next"`
	Previous *string   `json:"previous"`
	Results  []Holding `json:"results"`
}

// Quote is a best bid/ask or estimated price entry for one symbol.
type Quote struct {
	Symbol                   string          `json:"symbol"`
	Side                     string          `json:"side,omitempty"`
	Price                    decimal.Decimal `json:"price"`
	Quantity                 decimal.Decimal `json:"quantity,omitempty"`
	BidInclusiveOfSellSpread decimal.Decimal `json:"bid_inclusive_of_sell_spread,omitempty"`
	AskInclusiveOfBuySpread  decimal.Decimal `json:"ask_inclusive_of_buy_spread,omitempty"`
	Timestamp                string          `json:"timestamp,omitempty"`
	UpdatedAt                string          `json:"updated_at,omitempty"`
}

// QuotePage wraps the market data endpoints' result lists.
type QuotePage struct {
	Results []Quote `json:"results"`
}

// TradingPair describes one tradable symbol and its order size bounds.
type TradingPair struct {
	Symbol         string          `json:"symbol"`
	AssetCode      string          `json:"asset_code"`
	QuoteCode      string          `json:"quote_code"`
	AssetIncrement decimal.Decimal `json:"asset_increment"`
	QuoteIncrement decimal.Decimal `json:"quote_increment"`
	MinOrderSize   decimal.Decimal `json:"min_order_size"`
	MaxOrderSize   decimal.Decimal `json:"max_order_size"`
	Status         string          `json:"status"`
}

// TradingPairPage is a cursor-paginated list of trading pairs.
type TradingPairPage struct {
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []TradingPair `json:"results"`
}

// Order sides and types as the service spells them.
const (
	SideBuy  = "buy"
	SideSell = "sell"

	OrderTypeMarket    = "market"
	OrderTypeLimit     = "limit"
	OrderTypeStopLoss  = "stop_loss"
	OrderTypeStopLimit = "stop_limit"
)

// Order is an order record as returned by the service.
type Order struct {
	ID                  string           `json:"id"`
	AccountNumber       string           `json:"account_number"`
	Symbol              string           `json:"symbol"`
	ClientOrderID       string           `json:"client_order_id"`
	Side                string           `json:"side"`
	Type                string           `json:"type"`
	State               string           `json:"state"`
	AveragePrice        *decimal.Decimal `json:"average_price"`
	FilledAssetQuantity decimal.Decimal  `json:"filled_asset_quantity"`
	CreatedAt           string           `json:"created_at"`
	UpdatedAt           string           `json:"updated_at"`

	MarketOrderConfig    *MarketOrderConfig    `json:"market_order_config,omitempty"`
	LimitOrderConfig     *LimitOrderConfig     `json:"limit_order_config,omitempty"`
	StopLossOrderConfig  *StopLossOrderConfig  `json:"stop_loss_order_config,omitempty"`
	StopLimitOrderConfig *StopLimitOrderConfig `json:"stop_limit_order_config,omitempty"`
}

// OrderPage is a cursor-paginated list of orders.
type OrderPage struct {
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Order `json:"results"`
}

// MarketOrderConfig executes immediately at the best available price.
type MarketOrderConfig struct {
	AssetQuantity decimal.Decimal `json:"asset_quantity"`
}

// LimitOrderConfig executes at LimitPrice or better.
type LimitOrderConfig struct {
	AssetQuantity decimal.Decimal `json:"asset_quantity"`
	LimitPrice    decimal.Decimal `json:"limit_price"`
	TimeInForce   string          `json:"time_in_force,omitempty"`
}

// StopLossOrderConfig becomes a market order once StopPrice trades.
type StopLossOrderConfig struct {
	AssetQuantity decimal.Decimal `json:"asset_quantity"`
	StopPrice     decimal.Decimal `json:"stop_price"`
	TimeInForce   string          `json:"time_in_force,omitempty"`
}

// StopLimitOrderConfig becomes a limit order once StopPrice trades.
type StopLimitOrderConfig struct {
	AssetQuantity decimal.Decimal `json:"asset_quantity"`
	LimitPrice    decimal.Decimal `json:"limit_price"`
	StopPrice     decimal.Decimal `json:"stop_price"`
	TimeInForce   string          `json:"time_in_force,omitempty"`
}

// OrderRequest is the body of a place-order call. Exactly one of the
// config fields must be set, and it must match Type: the service expects
// the config under a "<type>_order_config" key.
type OrderRequest struct {
	ClientOrderID string `json:"client_order_id"`
	Side          string `json:"side"`
	Type          string `json:"type"`
	Symbol        string `json:"symbol"`

	MarketOrderConfig    *MarketOrderConfig    `json:"market_order_config,omitempty"`
	LimitOrderConfig     *LimitOrderConfig     `json:"limit_order_config,omitempty"`
	StopLossOrderConfig  *StopLossOrderConfig  `json:"stop_loss_order_config,omitempty"`
	StopLimitOrderConfig *StopLimitOrderConfig `json:"stop_limit_order_config,omitempty"`
}

// OrderFilter narrows an order listing. Zero values are omitted from the
// query string.
type OrderFilter struct {
	Symbol         string
	Side           string
	State          string
	Type           string
	CreatedAtStart string
	CreatedAtEnd   string
	UpdatedAtStart string
	UpdatedAtEnd   string
	Limit          int
	Cursor         string
}
