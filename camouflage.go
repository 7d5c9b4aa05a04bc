package zwc

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
)

// DefaultCompressionLevel is the Brotli quality used by Camouflage when
// no explicit level is given.
const DefaultCompressionLevel = 10

// trailerLen is the number of value characters appended after the
// payload stream to carry the Compression setting.
const trailerLen = 4

// Camouflage hides payload inside dummy, returning a string whose
// visible characters are exactly dummy and whose zero-width
// characters, read in order, are the encoded (and optionally
// encrypted) payload followed by a 4-character trailer carrying the
// Compression setting.
//
// Brotli pre-compresses the payload at compressionLevel (default
// DefaultCompressionLevel when nil). If key is non-nil, the compressed
// payload is ChaCha20-Poly1305 encrypted under a key derived from it
// (see deriveAEAD) before being ZWC-encoded. dummy must contain at
// least one ASCII space when payload is non-empty, or Camouflage fails
// with ErrNoSpaces.
func Camouflage(payload []byte, dummy string, key *string, compressionLevel *int) (string, error) {
	level := DefaultCompressionLevel
	if compressionLevel != nil {
		level = *compressionLevel
	}

	buf, err := brotliCompress(payload, level)
	if err != nil {
		return "", fmt.Errorf("zwc: brotli: %w", err)
	}

	if key != nil {
		aead, err := deriveAEAD([]byte(*key))
		if err != nil {
			return "", fmt.Errorf("zwc: key derivation: %w", err)
		}
		nonce, err := newNonce(aead.NonceSize())
		if err != nil {
			return "", err
		}
		ciphertext := aead.Seal(buf[:0], nonce, buf, nil)
		buf = append(ciphertext, nonce...)
	}

	c := OptimalCompression(buf)
	stream := EncodeCompress(buf, c)

	var out strings.Builder
	out.Grow(len(dummy) + len(stream) + trailerLen)

	pos := 0
	inserted := false
	for _, ch := range dummy {
		out.WriteRune(ch)
		if !inserted && ch == ' ' {
			for _, r := range stream[pos:] {
				out.WriteRune(r)
			}
			pos = len(stream)

			out.WriteRune(valueChar(c.P0 & 0b11))
			out.WriteRune(valueChar((c.P0 >> 2) & 0b11))
			out.WriteRune(valueChar(c.P1 & 0b11))
			out.WriteRune(valueChar((c.P1 >> 2) & 0b11))
			inserted = true
		}
	}

	if !inserted {
		return "", ErrNoSpaces
	}
	return out.String(), nil
}

// Decamouflage recovers the payload hidden in camouflaged by Camouflage.
// key must match (or both be nil for) the key used to camouflage it.
// A wrong key, or a key given for an unencrypted payload, surfaces as
// an AEAD authentication failure; a nil key for an encrypted payload
// passes the ciphertext to Brotli and surfaces as a Brotli decode error.
func Decamouflage(camouflaged string, key *string) ([]byte, error) {
	z := make([]rune, 0, len(camouflaged))
	for _, r := range camouflaged {
		if IsZWC(r) {
			z = append(z, r)
		}
	}

	if len(z) < trailerLen {
		return nil, ErrInvalidPayload
	}

	body := z[:len(z)-trailerLen]
	trailer := z[len(z)-trailerLen:]

	t0, err := value(trailer[0])
	if err != nil {
		return nil, err
	}
	t1, err := value(trailer[1])
	if err != nil {
		return nil, err
	}
	t2, err := value(trailer[2])
	if err != nil {
		return nil, err
	}
	t3, err := value(trailer[3])
	if err != nil {
		return nil, err
	}

	p0 := t0 | (t1 << 2)
	p1 := t2 | (t3 << 2)
	c, err := NewCompression(p0, p1)
	if err != nil {
		return nil, err
	}

	buf, err := DecodeDecompress(body, c)
	if err != nil {
		return nil, err
	}

	if key != nil {
		aead, err := deriveAEAD([]byte(*key))
		if err != nil {
			return nil, fmt.Errorf("zwc: key derivation: %w", err)
		}
		nonceSize := aead.NonceSize()
		if len(buf) < nonceSize {
			return nil, fmt.Errorf("zwc: decrypting: %w", ErrInvalidPayload)
		}
		ciphertext, nonce := buf[:len(buf)-nonceSize], buf[len(buf)-nonceSize:]
		buf, err = aead.Open(ciphertext[:0], nonce, ciphertext, nil)
		if err != nil {
			return nil, fmt.Errorf("zwc: decrypting: %w", err)
		}
	}

	payload, err := brotliDecompress(buf)
	if err != nil {
		return nil, fmt.Errorf("zwc: brotli: %w", err)
	}
	return payload, nil
}

// brotliCompress compresses data at the given Brotli quality. Only the
// quality is set: the brotli package's writer has no size-hint option,
// so no size hint is passed to the encoder.
func brotliCompress(data []byte, quality int) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, quality)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func brotliDecompress(data []byte) ([]byte, error) {
	r := brotli.NewReader(bytes.NewReader(data))
	return io.ReadAll(r)
}
