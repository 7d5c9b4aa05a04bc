// Package zwc hides binary payloads inside ordinary-looking text by
// encoding them as runs of zero-width Unicode characters interleaved
// with a visible "dummy" cover string.
//
// # Overview
//
// The codec works in layers:
//
//   - A fixed six-code-point alphabet maps one byte to a sequence of
//     zero-width characters (Block, see alphabet.go).
//   - A pattern-compression layer substitutes the two most common
//     4-bit nibble patterns in the payload with single "shortcut"
//     characters, shrinking each block that contains one of them from
//     four characters to two or three (see compression.go).
//   - Camouflage composes Brotli pre-compression, optional
//     ChaCha20-Poly1305 encryption, the ZWC codec, and interleaving
//     into a cover string, and its inverse (see camouflage.go).
//
// # When to Use zwc
//
// zwc is for hiding small-to-medium payloads inside text that a
// casual reader, or a renderer that collapses zero-width characters,
// will not inspect at the code-point level. It is not a
// cryptographic steganography scheme: its secrecy depends entirely on
// nobody looking at the raw code points.
//
// # Basic Usage
//
//	camouflaged, err := zwc.Camouflage([]byte("hello"), "cover text here", nil, nil)
//	if err != nil {
//		// handle error
//	}
//	payload, err := zwc.Decamouflage(camouflaged, nil)
//
// With a passphrase, the payload is ChaCha20-Poly1305 encrypted before
// encoding:
//
//	key := "correct horse battery staple"
//	camouflaged, err := zwc.Camouflage(payload, "cover text here", &key, nil)
//	recovered, err := zwc.Decamouflage(camouflaged, &key)
//
// # Non-goals
//
// zwc is not a random-access format (it is stream-oriented,
// front-to-back), and it is not size-optimal: the alphabet is chosen
// to render as nothing in most viewers, not for density.
package zwc
