package zwc

import (
	"crypto/cipher"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/poly1305"
)

// deriveAEAD derives a 32-byte ChaCha20-Poly1305 key from an arbitrary,
// non-empty passphrase and returns a ready-to-use AEAD.
//
// This is NOT a password-based KDF: the passphrase is simply cycled to
// fill a 32-byte Poly1305 key, the passphrase is MACed with it, and the
// 16-byte tag is doubled to 32 bytes. It is weak (biased by key
// repetition, no work factor) and is kept only so artifacts camouflaged
// by earlier versions of this codec remain decodable. Replacing it
// would be a wire-format-breaking change requiring a new trailer byte
// to signal KDF version.
func deriveAEAD(passphrase []byte) (cipher.AEAD, error) {
	var macKey [32]byte
	for i := range macKey {
		macKey[i] = passphrase[i%len(passphrase)]
	}

	var tag [16]byte
	poly1305.Sum(&tag, passphrase, &macKey)

	var aeadKey [32]byte
	copy(aeadKey[:16], tag[:])
	copy(aeadKey[16:], tag[:])

	return chacha20poly1305.New(aeadKey[:])
}
