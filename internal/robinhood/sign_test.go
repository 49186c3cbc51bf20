package robinhood

import (
	"bytes"
	"testing"
)

func TestSigningMessage_ExactConcatenation(t *testing.T) {
	got := signingMessage("rh-api-0000", 1700000000, "/api/v1/crypto/trading/accounts/", "GET", "")
	want := []byte("rh-api-00001700000000/api/v1/crypto/trading/accounts/GET")
	if !bytes.Equal(got, want) {
		t.Fatalf("signing message mismatch:\n got  %q\n want %q", got, want)
	}
}

func TestSigningMessage_BodyAppendedLast(t *testing.T) {
	body := `{"client_order_id":"abc","side":"buy"}`
	got := signingMessage("key", 42, "/orders/", "POST", body)
	want := []byte("key42/orders/POST" + body)
	if !bytes.Equal(got, want) {
		t.Fatalf("signing message mismatch:\n got  %q\n want %q", got, want)
	}
}

func TestQuery_OrderAndEscaping(t *testing.T) {
	var q query
	if got := q.String(); got != "" {
		t.Fatalf("empty query rendered %q, want empty string", got)
	}

	q.addAll("asset_code", []string{"BTC", "ETH"})
	if got, want := q.String(), "?asset_code=BTC&asset_code=ETH"; got != want {
		t.Fatalf("query %q, want %q", got, want)
	}

	var q2 query
	q2.add("symbol", "BTC-USD")
	q2.add("state", "") // empty values are dropped
	q2.add("cursor", "a b")
	if got, want := q2.String(), "?symbol=BTC-USD&cursor=a+b"; got != want {
		t.Fatalf("query %q, want %q", got, want)
	}
}
