package app

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"rhcrypto/internal/crypto"
	"rhcrypto/internal/domain"
)

// Environment variables the client credentials come from, with the
// prefixed forms accepted as fallbacks.
const (
	EnvAPIKey          = "API_KEY"
	EnvPrivateKey      = "BASE64_PRIVATE_KEY"
	envAPIKeyPrefixed  = "ROBINHOOD_API_KEY"
	envPrivKeyPrefixed = "ROBINHOOD_BASE64_PRIVATE_KEY"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string        // config directory, e.g. $HOME/.rhcrypto
	EnvFile    string        // optional .env path; default looks for ./.env
	BaseURL    string        // trading API base URL; empty means production
	Timeout    time.Duration // per-request timeout; zero means the client default
	Passphrase string        // unlocks the keystore when env credentials are absent
}

// ConfigError is a missing or malformed credential/configuration problem
// detected before any network call.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return "config error: " + e.Reason + ": " + e.Err.Error()
	}
	return "config error: " + e.Reason
}

func (e *ConfigError) Unwrap() error { return e.Err }

// loadCredentials resolves credentials from the environment, falling back
// to the keystore.
func (a *App) loadCredentials() (domain.Credentials, error) {
	// Seed the environment from a .env file when one exists; a missing
	// file is not an error.
	if a.cfg.EnvFile != "" {
		_ = godotenv.Load(a.cfg.EnvFile)
	} else {
		_ = godotenv.Load()
	}

	apiKey := firstEnv(EnvAPIKey, envAPIKeyPrefixed)
	privB64 := firstEnv(EnvPrivateKey, envPrivKeyPrefixed)

	switch {
	case apiKey != "" && privB64 != "":
		priv, err := crypto.SeedFromBase64(privB64)
		if err != nil {
			return domain.Credentials{}, &ConfigError{Reason: EnvPrivateKey + " is malformed", Err: err}
		}
		return domain.Credentials{APIKey: apiKey, PrivateKey: priv}, nil
	case apiKey != "":
		return domain.Credentials{}, &ConfigError{Reason: EnvPrivateKey + " is not set"}
	case privB64 != "":
		return domain.Credentials{}, &ConfigError{Reason: EnvAPIKey + " is not set"}
	}

	if a.Keys.Exists() {
		if a.cfg.Passphrase == "" {
			return domain.Credentials{}, &ConfigError{Reason: "passphrase required to unlock saved credentials (-p)"}
		}
		creds, err := a.Keys.Load(a.cfg.Passphrase)
		if err != nil {
			return domain.Credentials{}, &ConfigError{Reason: "load saved credentials", Err: err}
		}
		return creds, nil
	}

	return domain.Credentials{}, &ConfigError{
		Reason: EnvAPIKey + " and " + EnvPrivateKey + " are not set and no saved credentials exist",
	}
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}
