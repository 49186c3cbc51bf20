package app_test

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"testing"

	"rhcrypto/internal/app"
	"rhcrypto/internal/domain"
	"rhcrypto/internal/keystore"
)

func clearCredentialEnv(t *testing.T) {
	t.Helper()
	for _, n := range []string{"API_KEY", "BASE64_PRIVATE_KEY", "ROBINHOOD_API_KEY", "ROBINHOOD_BASE64_PRIVATE_KEY"} {
		t.Setenv(n, "")
	}
}

func seedB64() string {
	seed := make([]byte, domain.SeedBytes)
	for i := range seed {
		seed[i] = byte(i)
	}
	return base64.StdEncoding.EncodeToString(seed)
}

func TestClient_FromEnvironment(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("API_KEY", "rh-api-env")
	t.Setenv("BASE64_PRIVATE_KEY", seedB64())

	a := app.New(app.Config{Home: t.TempDir(), EnvFile: "does-not-exist.env"}, nil)
	if _, err := a.Client(); err != nil {
		t.Fatalf("Client: %v", err)
	}
}

func TestClient_MissingCredentials(t *testing.T) {
	clearCredentialEnv(t)

	a := app.New(app.Config{Home: t.TempDir(), EnvFile: "does-not-exist.env"}, nil)
	_, err := a.Client()
	var cfgErr *app.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("want ConfigError, got %T: %v", err, err)
	}
}

func TestClient_MalformedSeed(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("API_KEY", "rh-api-env")
	t.Setenv("BASE64_PRIVATE_KEY", base64.StdEncoding.EncodeToString([]byte("too short")))

	a := app.New(app.Config{Home: t.TempDir(), EnvFile: "does-not-exist.env"}, nil)
	_, err := a.Client()
	var cfgErr *app.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("want ConfigError, got %T: %v", err, err)
	}
}

func TestClient_PartialEnvIsAnError(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("API_KEY", "rh-api-env")

	a := app.New(app.Config{Home: t.TempDir(), EnvFile: "does-not-exist.env"}, nil)
	var cfgErr *app.ConfigError
	if _, err := a.Client(); !errors.As(err, &cfgErr) {
		t.Fatalf("want ConfigError, got %T: %v", err, err)
	}
}

func TestClient_FallsBackToKeystore(t *testing.T) {
	clearCredentialEnv(t)
	home := t.TempDir()

	seed := make([]byte, domain.SeedBytes)
	creds := domain.Credentials{APIKey: "rh-api-stored", PrivateKey: ed25519.NewKeyFromSeed(seed)}
	if err := keystore.New(home).Save("pw", creds); err != nil {
		t.Fatalf("seed keystore: %v", err)
	}

	// Without the passphrase the keystore stays locked.
	a := app.New(app.Config{Home: home, EnvFile: "does-not-exist.env"}, nil)
	var cfgErr *app.ConfigError
	if _, err := a.Client(); !errors.As(err, &cfgErr) {
		t.Fatalf("want ConfigError without passphrase, got %v", err)
	}

	a = app.New(app.Config{Home: home, EnvFile: "does-not-exist.env", Passphrase: "pw"}, nil)
	if _, err := a.Client(); err != nil {
		t.Fatalf("Client with passphrase: %v", err)
	}
}
