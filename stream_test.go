package zwc

import (
	"errors"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data := []byte{0, 1, 42, 127, 200, 255}
	encoded := Encode(data)
	if len(encoded) != len(data)*4 {
		t.Fatalf("len(encoded) = %d, want %d", len(encoded), len(data)*4)
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(decoded) != string(data) {
		t.Fatalf("Decode(Encode(data)) = %v, want %v", decoded, data)
	}
}

func TestDecodeEmpty(t *testing.T) {
	decoded, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil): %v", err)
	}
	if len(decoded) != 0 {
		t.Fatalf("Decode(nil) = %v, want empty", decoded)
	}
}

func TestDecodeIncompleteBlock(t *testing.T) {
	for k := 1; k <= 3; k++ {
		runes := make([]rune, k)
		for i := range runes {
			runes[i] = alphabet[0]
		}
		_, err := Decode(runes)
		var ib *IncompleteBlockError
		if !errors.As(err, &ib) {
			t.Fatalf("Decode(%d chars): got %v, want IncompleteBlockError", k, err)
		}
		if ib.Len != k {
			t.Fatalf("Decode(%d chars): IncompleteBlockError.Len = %d, want %d", k, ib.Len, k)
		}
	}
}

func TestDecodeInvalidCharacter(t *testing.T) {
	runes := []rune{alphabet[0], alphabet[0], 'x', alphabet[0]}
	_, err := Decode(runes)
	var ic *InvalidCharacterError
	if !errors.As(err, &ic) {
		t.Fatalf("Decode: got %v, want InvalidCharacterError", err)
	}
}

func TestEncodeCompressDecodeDecompressRoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	c := OptimalCompression(data)
	encoded := EncodeCompress(data, c)
	decoded, err := DecodeDecompress(encoded, c)
	if err != nil {
		t.Fatalf("DecodeDecompress: %v", err)
	}
	if string(decoded) != string(data) {
		t.Fatalf("DecodeDecompress(EncodeCompress(data)) = %q, want %q", decoded, data)
	}
}

func TestEncodeCompressDecodeDecompressAllBytes(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	for _, c := range []Compression{{0, 1}, {0, 0}, {15, 14}, {7, 7}} {
		encoded := EncodeCompress(data, c)
		decoded, err := DecodeDecompress(encoded, c)
		if err != nil {
			t.Fatalf("c=%+v: DecodeDecompress: %v", c, err)
		}
		if string(decoded) != string(data) {
			t.Fatalf("c=%+v: round trip mismatch", c)
		}
	}
}

func TestDecodeDecompressTruncated(t *testing.T) {
	c := Compression{P0: 0, P1: 1}
	encoded := EncodeCompress([]byte{0x23}, c) // neither nibble is 0 or 1: 4 chars
	if len(encoded) != 4 {
		t.Fatalf("expected 4-character block, got %d", len(encoded))
	}
	_, err := DecodeDecompress(encoded[:2], c)
	var ib *IncompleteBlockError
	if !errors.As(err, &ib) {
		t.Fatalf("expected IncompleteBlockError, got %v", err)
	}
}
