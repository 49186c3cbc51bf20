package robinhood

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"rhcrypto/internal/crypto"
	"rhcrypto/internal/domain"
)

// DefaultBaseURL is the production trading API endpoint.
const DefaultBaseURL = "https://trading.robinhood.com"

// defaultTimeout bounds each request; the API rejects signatures whose
// timestamp is more than ~30s old, so there is no point waiting longer.
const defaultTimeout = 10 * time.Second

// Config carries the wiring for a Client. Credentials is required; every
// other field has a default.
type Config struct {
	Credentials domain.Credentials
	BaseURL     string             // default DefaultBaseURL
	HTTP        *http.Client       // default: 10s timeout client
	Now         func() time.Time   // default time.Now; injectable for tests
	Logger      logrus.FieldLogger // default logrus standard logger
}

// Client performs authenticated calls against the trading API. It is
// stateless beyond its credentials; each call is one signed request.
type Client struct {
	apiKey  string
	priv    ed25519.PrivateKey
	baseURL string
	http    *http.Client
	now     func() time.Time
	log     logrus.FieldLogger
}

var _ domain.TradingClient = (*Client)(nil)

// New builds a Client from cfg, filling in defaults.
func New(cfg Config) *Client {
	c := &Client{
		apiKey:  cfg.Credentials.APIKey,
		priv:    cfg.Credentials.PrivateKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    cfg.HTTP,
		now:     cfg.Now,
		log:     cfg.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: defaultTimeout}
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.log == nil {
		c.log = logrus.StandardLogger()
	}
	return c
}

// APIRequest signs and performs one request and returns the raw JSON
// payload. body, when non-nil, is marshalled to compact JSON; the exact
// string that is signed is the string that is sent.
func (c *Client) APIRequest(method, path string, body any) (json.RawMessage, error) {
	if method != http.MethodGet && method != http.MethodPost {
		return nil, fmt.Errorf("unsupported method %q", method)
	}

	var payload string
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		payload = string(b)
	}

	timestamp := c.now().UTC().Unix()
	signature := crypto.B64(crypto.Sign(c.priv, signingMessage(c.apiKey, timestamp, path, method, payload)))

	var rd io.Reader
	if payload != "" {
		rd = strings.NewReader(payload)
	}
	req, err := http.NewRequest(method, c.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("x-timestamp", strconv.FormatInt(timestamp, 10))
	req.Header.Set("x-signature", signature)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	c.log.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("api request")

	if resp.StatusCode/100 != 2 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: respBody}
	}
	var raw json.RawMessage
	if err := json.Unmarshal(respBody, &raw); err != nil {
		return nil, &ResponseFormatError{Err: err, Body: respBody}
	}
	return raw, nil
}

// getJSON performs a GET and decodes the payload into out.
func (c *Client) getJSON(path string, out any) error {
	raw, err := c.APIRequest(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

// postJSON performs a POST with in as the body and decodes into out when
// out is non-nil.
func (c *Client) postJSON(path string, in, out any) error {
	raw, err := c.APIRequest(http.MethodPost, path, in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(raw, out)
}

func decode(raw json.RawMessage, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return &ResponseFormatError{Err: err, Body: raw}
	}
	return nil
}
