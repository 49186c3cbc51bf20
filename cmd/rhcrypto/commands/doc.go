// Package commands defines the rhcrypto CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - generate-keys     Generate and print a fresh Ed25519 keypair
//   - save-credentials  Store API credentials encrypted under --home
//   - test-connection   Fetch the trading account to validate credentials
//   - view-holdings     Print holdings, optionally filtered by asset code
//   - best-bid-ask      Print current best bid/ask quotes
//   - estimated-price   Print the estimated execution price for a quantity
//   - trading-pairs     Print tradable pairs
//   - orders            List orders with optional filters
//   - order             Print one order by id
//   - place-order       Submit a new order
//   - cancel-order      Request cancellation of an open order
//
// # Implementation
//
// The root command builds the shared app context (keystore, logger,
// lazily-constructed trading client) before any subcommand runs.
// Credentials are only resolved by commands that actually call the API.
// Results print as indented JSON on stdout; errors go to stderr and the
// process exits non-zero.
package commands
