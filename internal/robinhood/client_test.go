package robinhood_test

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"rhcrypto/internal/domain"
	"rhcrypto/internal/robinhood"
)

const (
	testAPIKey    = "rh-api-0000"
	testTimestamp = 1700000000

	// Signature of "rh-api-00001700000000/api/v1/crypto/trading/accounts/GET"
	// under the seed 00 01 .. 1f, checked against an RFC 8032 reference
	// implementation. Regression anchor for the canonical message format.
	goldenSignature = "OYgyDSsKZ7QxYmeEYAcdeekDCWwSZ2TyYlEiZjkJbx5WzQ7/TIfVffclpQlGtJNboRKwpyExmIIQcAsrIPj7AA=="
)

func testKey(t *testing.T) ed25519.PrivateKey {
	t.Helper()
	seed := make([]byte, domain.SeedBytes)
	for i := range seed {
		seed[i] = byte(i)
	}
	return ed25519.NewKeyFromSeed(seed)
}

// newTestClient starts a server around handler and returns a client whose
// clock is pinned to testTimestamp.
func newTestClient(t *testing.T, handler http.HandlerFunc) *robinhood.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return robinhood.New(robinhood.Config{
		Credentials: domain.Credentials{APIKey: testAPIKey, PrivateKey: testKey(t)},
		BaseURL:     srv.URL,
		Now:         func() time.Time { return time.Unix(testTimestamp, 0) },
	})
}

func TestGetAccount_SignsAndSetsHeaders(t *testing.T) {
	var got http.Header
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		gotPath = r.URL.Path
		io.WriteString(w, `{"account_number":"A1","status":"active","buying_power":"12.50","buying_power_currency":"USD"}`)
	})

	acct, err := c.GetAccount()
	if err != nil {
		t.Fatalf("GetAccount: %v", err)
	}
	if gotPath != "/api/v1/crypto/trading/accounts/" {
		t.Fatalf("request path %q", gotPath)
	}
	if got.Get("x-api-key") != testAPIKey {
		t.Fatalf("x-api-key %q", got.Get("x-api-key"))
	}
	if got.Get("x-timestamp") != "1700000000" {
		t.Fatalf("x-timestamp %q", got.Get("x-timestamp"))
	}
	if got.Get("x-signature") != goldenSignature {
		t.Fatalf("x-signature mismatch:\n got  %s\n want %s", got.Get("x-signature"), goldenSignature)
	}
	if got.Get("Content-Type") != "application/json" {
		t.Fatalf("Content-Type %q", got.Get("Content-Type"))
	}

	if acct.AccountNumber != "A1" {
		t.Fatalf("account number %q", acct.AccountNumber)
	}
	if !acct.BuyingPower.Equal(decimal.RequireFromString("12.50")) {
		t.Fatalf("buying power %s", acct.BuyingPower)
	}
}

func TestGetHoldings_QueryShapes(t *testing.T) {
	var rawQueries []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQueries = append(rawQueries, r.URL.RawQuery)
		io.WriteString(w, `{"next":null,"previous":null,"results":[]}`)
	})

	if _, err := c.GetHoldings(); err != nil {
		t.Fatalf("GetHoldings(): %v", err)
	}
	if _, err := c.GetHoldings("BTC", "ETH"); err != nil {
		t.Fatalf("GetHoldings(BTC, ETH): %v", err)
	}

	if rawQueries[0] != "" {
		t.Fatalf("unfiltered holdings sent query %q, want none", rawQueries[0])
	}
	if rawQueries[1] != "asset_code=BTC&asset_code=ETH" {
		t.Fatalf("filtered holdings query %q", rawQueries[1])
	}
}

func TestPlaceOrder_SignedBodyEqualsSentBody(t *testing.T) {
	var sentBody []byte
	var sig string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		sentBody, _ = io.ReadAll(r.Body)
		sig = r.Header.Get("x-signature")
		io.WriteString(w, `{"id":"o1","state":"open"}`)
	})

	order, err := c.PlaceOrder(domain.OrderRequest{
		ClientOrderID: "11111111-2222-3333-4444-555555555555",
		Side:          domain.SideBuy,
		Type:          domain.OrderTypeMarket,
		Symbol:        "BTC-USD",
		MarketOrderConfig: &domain.MarketOrderConfig{
			AssetQuantity: decimal.RequireFromString("0.0001"),
		},
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if order.ID != "o1" {
		t.Fatalf("order id %q", order.ID)
	}

	// The signature must cover exactly the bytes that went on the wire.
	msg := []byte(testAPIKey + "1700000000" + "/api/v1/crypto/trading/orders/" + "POST" + string(sentBody))
	sigBytes, err := base64.StdEncoding.DecodeString(sig)
	if err != nil {
		t.Fatalf("decode signature: %v", err)
	}
	pub := testKey(t).Public().(ed25519.PublicKey)
	if !ed25519.Verify(pub, msg, sigBytes) {
		t.Fatal("signature does not verify over the sent body")
	}
}

func TestAPIRequest_NonSuccessStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, `{"type":"validation_error"}`)
	})

	_, err := c.GetAccount()
	var apiErr *robinhood.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Fatalf("status %d", apiErr.StatusCode)
	}
	if string(apiErr.Body) != `{"type":"validation_error"}` {
		t.Fatalf("body %q", apiErr.Body)
	}
}

func TestAPIRequest_MalformedJSONOnSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>not json</html>")
	})

	_, err := c.APIRequest(http.MethodGet, "/api/v1/crypto/trading/accounts/", nil)
	var fmtErr *robinhood.ResponseFormatError
	if !errors.As(err, &fmtErr) {
		t.Fatalf("want ResponseFormatError, got %T: %v", err, err)
	}
}

func TestAPIRequest_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // nothing is listening any more

	c := robinhood.New(robinhood.Config{
		Credentials: domain.Credentials{APIKey: testAPIKey, PrivateKey: testKey(t)},
		BaseURL:     url,
	})
	_, err := c.GetAccount()
	var connErr *robinhood.ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("want ConnectionError, got %T: %v", err, err)
	}
}

func TestAPIRequest_RejectsUnsupportedMethod(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request should be sent")
	})
	if _, err := c.APIRequest(http.MethodDelete, "/x", nil); err == nil {
		t.Fatal("expected error for DELETE")
	}
}

func TestGetOrders_FilterQuery(t *testing.T) {
	var rawQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		io.WriteString(w, `{"next":null,"previous":null,"results":[]}`)
	})

	_, err := c.GetOrders(domain.OrderFilter{
		Symbol: "BTC-USD",
		Side:   domain.SideSell,
		State:  "open",
		Limit:  10,
	})
	if err != nil {
		t.Fatalf("GetOrders: %v", err)
	}
	if rawQuery != "symbol=BTC-USD&side=sell&state=open&limit=10" {
		t.Fatalf("filter query %q", rawQuery)
	}
}
