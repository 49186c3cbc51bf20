package robinhood

import "rhcrypto/internal/domain"

const (
	accountsPath = "/api/v1/crypto/trading/accounts/"
	holdingsPath = "/api/v1/crypto/trading/holdings/"
)

// GetAccount fetches the trading account attached to the API key.
func (c *Client) GetAccount() (domain.Account, error) {
	var out domain.Account
	err := c.getJSON(accountsPath, &out)
	return out, err
}

// GetHoldings fetches asset balances, optionally filtered by asset codes.
// No codes means no filter: all holdings are returned.
func (c *Client) GetHoldings(assetCodes ...string) (domain.HoldingsPage, error) {
	var q query
	q.addAll("asset_code", assetCodes)

	var out domain.HoldingsPage
	err := c.getJSON(holdingsPath+q.String(), &out)
	return out, err
}
