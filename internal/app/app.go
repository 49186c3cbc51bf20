package app

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"rhcrypto/internal/domain"
	"rhcrypto/internal/keystore"
	"rhcrypto/internal/robinhood"
)

// App is the dependency graph shared by all subcommands.
type App struct {
	cfg    Config
	Keys   *keystore.FileStore
	Logger *logrus.Logger

	client domain.TradingClient
}

// New constructs the app from cfg. No credentials are loaded yet.
func New(cfg Config, logger *logrus.Logger) *App {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &App{
		cfg:    cfg,
		Keys:   keystore.New(cfg.Home),
		Logger: logger,
	}
}

// Client resolves credentials and returns the trading client, building it
// on first use. Returns a ConfigError when credentials are missing or
// malformed.
func (a *App) Client() (domain.TradingClient, error) {
	if a.client != nil {
		return a.client, nil
	}
	creds, err := a.loadCredentials()
	if err != nil {
		return nil, err
	}

	var hc *http.Client
	if a.cfg.Timeout > 0 {
		hc = &http.Client{Timeout: a.cfg.Timeout}
	}
	a.client = robinhood.New(robinhood.Config{
		Credentials: creds,
		BaseURL:     a.cfg.BaseURL,
		HTTP:        hc,
		Logger:      a.Logger,
	})
	return a.client, nil
}
