package zwc

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// newNonce returns n cryptographically random bytes drawn from a
// freshly seeded ChaCha20 keystream. It is used only to mint AEAD
// nonces; no generator state is retained across calls.
func newNonce(n int) ([]byte, error) {
	var key [chacha20.KeySize]byte
	var seed [chacha20.NonceSize]byte
	if _, err := rand.Read(key[:]); err != nil {
		return nil, fmt.Errorf("zwc: seeding nonce generator: %w", err)
	}
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("zwc: seeding nonce generator: %w", err)
	}

	stream, err := chacha20.NewUnauthenticatedCipher(key[:], seed[:])
	if err != nil {
		return nil, fmt.Errorf("zwc: seeding nonce generator: %w", err)
	}

	out := make([]byte, n)
	stream.XORKeyStream(out, out)
	return out, nil
}
