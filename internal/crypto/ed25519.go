package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"rhcrypto/internal/domain"
)

// GenerateKeypair returns a fresh Ed25519 keypair, both halves
// base64-encoded. The private half is the 32-byte seed, not the expanded
// 64-byte key; that is the format the service takes back as
// BASE64_PRIVATE_KEY.
func GenerateKeypair() (domain.Keypair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return domain.Keypair{}, err
	}
	return domain.Keypair{
		PublicKeyB64:  B64(pub),
		PrivateKeyB64: B64(priv.Seed()),
	}, nil
}

// SeedFromBase64 decodes a base64 private key and expands it into a
// signing key. The decoded seed must be exactly 32 bytes.
func SeedFromBase64(s string) (ed25519.PrivateKey, error) {
	seed, err := FromB64(s)
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	if len(seed) != domain.SeedBytes {
		return nil, fmt.Errorf("private key seed is %d bytes, want %d", len(seed), domain.SeedBytes)
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

// Sign signs msg with priv and returns the signature.
func Sign(priv ed25519.PrivateKey, msg []byte) []byte {
	return ed25519.Sign(priv, msg)
}

// Verify reports whether sig is a valid signature of msg under pub.
func Verify(pub ed25519.PublicKey, msg, sig []byte) bool {
	return ed25519.Verify(pub, msg, sig)
}
