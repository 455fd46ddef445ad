package chego

import "testing"

// TestHuffmanCodesPrefixFree verifies the defining property of the code
// table: no destination-index code is a prefix of another, so decoding
// never needs lookahead.
func TestHuffmanCodesPrefixFree(t *testing.T) {
	for i, a := range destIndexCodes {
		if a == "" {
			t.Fatalf("index %d has no code", i)
		}
		for j, b := range destIndexCodes {
			if i == j {
				continue
			}
			if len(a) <= len(b) && b[:len(a)] == a {
				t.Fatalf("code for %d (%q) is a prefix of code for %d (%q)", i, a, j, b)
			}
		}
	}
}

// TestHuffmanLowIndicesGetShortCodes checks that the frequency table
// actually pays off: the most common index must not carry a longer code
// than the rarest.
func TestHuffmanLowIndicesGetShortCodes(t *testing.T) {
	shortest := destIndexCodes[0]
	longest := destIndexCodes[len(destIndexCodes)-1]
	if len(shortest) > len(longest) {
		t.Fatalf("code for index 0 (%q) is longer than for index %d (%q)",
			shortest, len(destIndexCodes)-1, longest)
	}
}

func TestHuffmanDecodeRoundTrip(t *testing.T) {
	indices := []int{0, 0, 3, 1, 17, 0, 31, 2}

	w := NewBitWriter()
	for _, idx := range indices {
		w.WriteCode(destIndexCodes[idx])
	}

	r := NewBitReader(w.Bytes())
	for i, want := range indices {
		got, ok := decodeIndex(destIndexTree, r)
		if !ok || got != want {
			t.Fatalf("decode #%d = %d, %v, want %d, true", i, got, ok, want)
		}
	}
}

func BenchmarkBuildHuffmanTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buildHuffmanTree(destIndexFrequencies)
	}
}
