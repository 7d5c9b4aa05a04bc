package zwc

import "testing"

func TestLegacyRoundTripAllBytes(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	encoded := LegacyEncode(data)
	if len(encoded) != len(data)*3 {
		t.Fatalf("len(encoded) = %d, want %d", len(encoded), len(data)*3)
	}
	decoded, err := LegacyDecode(encoded)
	if err != nil {
		t.Fatalf("LegacyDecode: %v", err)
	}
	if string(decoded) != string(data) {
		t.Fatalf("LegacyDecode(LegacyEncode(data)) mismatch")
	}
}

func TestLegacyDecodeInvalidCharacter(t *testing.T) {
	runes := []rune{legacyAlphabet[0], 'x', legacyAlphabet[0]}
	_, err := LegacyDecode(runes)
	if err == nil {
		t.Fatalf("expected error")
	}
	lerr, ok := err.(*LegacyDecodeError)
	if !ok {
		t.Fatalf("got %T, want *LegacyDecodeError", err)
	}
	if lerr.Character != 'x' || lerr.Position != 1 {
		t.Fatalf("got %+v, want Character='x' Position=1", lerr)
	}
}

func TestLegacyDecodeIncompleteBlock(t *testing.T) {
	runes := []rune{legacyAlphabet[0]}
	_, err := LegacyDecode(runes)
	lerr, ok := err.(*LegacyDecodeError)
	if !ok {
		t.Fatalf("got %T, want *LegacyDecodeError", err)
	}
	if lerr.IncompleteLen != 1 {
		t.Fatalf("IncompleteLen = %d, want 1", lerr.IncompleteLen)
	}
}
