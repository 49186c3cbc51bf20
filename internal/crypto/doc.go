// Package crypto wraps the Ed25519 operations rhcrypto needs.
//
// Contents
//
//   - Keypair generation in the base64 seed format the credential portal
//     expects (GenerateKeypair)
//   - Seed decoding and validation for keys loaded from configuration
//     (SeedFromBase64)
//   - Signing and verification over canonical request messages
//     (Sign, Verify)
//   - Standard base64 encoding helpers (B64, FromB64)
//
// The primitive itself is stdlib crypto/ed25519; this package only fixes
// the encodings and seed handling around it.
package crypto
