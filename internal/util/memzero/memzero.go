// Package memzero provides best-effort wiping of secret byte slices.
package memzero

// Zero overwrites b with zeros so key material does not linger in memory
// longer than needed. Best effort only: the runtime may already have
// copied the bytes elsewhere.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
