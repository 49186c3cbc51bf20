// Package app wires configuration, credentials and the trading client for
// the CLI.
//
// Credentials resolve in a fixed order: process environment (optionally
// seeded from a .env file), then the encrypted keystore under the config
// home. Environment always wins, so automation that exports API_KEY and
// BASE64_PRIVATE_KEY never touches the keystore. Resolution happens lazily
// when a command first asks for a client; generate-keys never needs one.
package app
