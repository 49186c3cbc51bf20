package keystore

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"rhcrypto/internal/crypto"
	"rhcrypto/internal/domain"
	"rhcrypto/internal/util/memzero"
)

const (
	fileName  = "credentials.json"
	keyBytes  = 32
	saltBytes = 16
)

// FileStore keeps one encrypted credential set under home.
type FileStore struct {
	home string
}

// New returns a store rooted at home. The directory must already exist.
func New(home string) *FileStore { return &FileStore{home: home} }

// envelope is the on-disk format; all fields are standard base64.
type envelope struct {
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

// payload is the plaintext inside the envelope. The private key is kept in
// the same base64 seed form the environment variable uses.
type payload struct {
	APIKey           string `json:"api_key"`
	Base64PrivateKey string `json:"base64_private_key"`
}

func (s *FileStore) path() string { return filepath.Join(s.home, fileName) }

// Exists reports whether a credential file has been saved.
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.path())
	return err == nil
}

// Save encrypts creds under passphrase and writes the credential file,
// replacing any previous one.
func (s *FileStore) Save(passphrase string, creds domain.Credentials) error {
	if passphrase == "" {
		return errors.New("passphrase required")
	}

	plain, err := json.Marshal(payload{
		APIKey:           creds.APIKey,
		Base64PrivateKey: crypto.B64(creds.PrivateKey.Seed()),
	})
	if err != nil {
		return err
	}
	defer memzero.Zero(plain)

	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return err
	}
	kek := deriveKEK(passphrase, salt)
	defer memzero.Zero(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return err
	}
	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return err
	}
	ct := aead.Seal(nil, nonce, plain, nil)

	blob, err := json.MarshalIndent(envelope{
		Salt:       crypto.B64(salt),
		Nonce:      crypto.B64(nonce),
		Ciphertext: crypto.B64(ct),
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), blob, 0o600)
}

// Load decrypts the credential file with passphrase.
func (s *FileStore) Load(passphrase string) (domain.Credentials, error) {
	var creds domain.Credentials

	blob, err := os.ReadFile(s.path())
	if err != nil {
		return creds, err
	}
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return creds, fmt.Errorf("parse credential file: %w", err)
	}

	salt, err := crypto.FromB64(env.Salt)
	if err != nil {
		return creds, fmt.Errorf("parse credential file: %w", err)
	}
	nonce, err := crypto.FromB64(env.Nonce)
	if err != nil {
		return creds, fmt.Errorf("parse credential file: %w", err)
	}
	ct, err := crypto.FromB64(env.Ciphertext)
	if err != nil {
		return creds, fmt.Errorf("parse credential file: %w", err)
	}

	kek := deriveKEK(passphrase, salt)
	defer memzero.Zero(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return creds, err
	}
	plain, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return creds, errors.New("decrypt credentials: wrong passphrase or corrupt file")
	}
	defer memzero.Zero(plain)

	var p payload
	if err := json.Unmarshal(plain, &p); err != nil {
		return creds, fmt.Errorf("parse credential file: %w", err)
	}
	priv, err := crypto.SeedFromBase64(p.Base64PrivateKey)
	if err != nil {
		return creds, err
	}
	creds.APIKey = p.APIKey
	creds.PrivateKey = priv
	return creds, nil
}

// deriveKEK stretches the passphrase with Argon2id.
func deriveKEK(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, 1, 1<<16, 8, keyBytes)
}
