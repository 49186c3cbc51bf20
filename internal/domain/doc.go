// Package domain holds the shared types of rhcrypto.
//
// Contents
//
//   - Credentials and Keypair, the key material loaded at startup and the
//     artifact generate-keys produces
//   - Typed models for the trading API surface (accounts, holdings,
//     market data quotes, trading pairs, orders)
//   - TradingClient, the interface commands talk to
//
// Monetary quantities are decimal.Decimal; the service serialises them as
// JSON strings and decimal round-trips them without float loss.
package domain
