package chego

import "testing"

// TestStartingPositionMoves checks move generation and check status from
// the standard starting position.
func TestStartingPositionMoves(t *testing.T) {
	s, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", StartFEN, err)
	}

	gen := s.Generator()

	if got := gen.Generate(B1); got != EmptyMask.With(A3).With(C3) {
		t.Fatalf("generate(B1) = %s, want {A3, C3}", got.String())
	}
	if got := gen.Generate(E2); got != EmptyMask.With(E3).With(E4) {
		t.Fatalf("generate(E2) = %s, want {E3, E4}", got.String())
	}
	if gen.IsCheck() {
		t.Fatal("starting position should not be check")
	}
	if !gen.HasAnyMoves() {
		t.Fatal("starting position should have moves")
	}
}

// TestEnPassantOnlyMove exercises a pawn whose forward push is blocked but
// which has a legal en-passant capture.
func TestEnPassantOnlyMove(t *testing.T) {
	fen := "2r2k1r/p1p3b1/1p1p1n2/3PppBp/2P5/2N2N2/PP2QPPP/R3K2R w - e6 0 1"
	s, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	got := s.Generator().Generate(D5)
	want := E6.Mask()
	if got != want {
		t.Fatalf("generate(D5) = %s, want {E6}", got.String())
	}
}

// TestPromotionCaptureSAN checks the combined capture-and-promotion
// rendering, "dxc8=N".
func TestPromotionCaptureSAN(t *testing.T) {
	fen := "2r2k1r/p1pPp1b1/1p1p1n2/5pBp/2P5/2N1PN2/PP2QPPP/R3K2R w - - 0 1"
	s, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	got := s.Notation(D7, C8, Knight)
	if got != "dxc8=N" {
		t.Fatalf("Notation = %q, want %q", got, "dxc8=N")
	}
}

// TestCastlingSAN checks castling notation for both the king-target square
// and the Chess960 king-onto-rook square.
func TestCastlingSAN(t *testing.T) {
	fen := "r2qkb1r/pbp1p3/1pnp1n2/1B3pBp/2PP4/2N1PN2/PP2QPPP/R3K2R w KQkq - 0 1"
	s, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	cases := []struct {
		dest Square
		want string
	}{
		{A1, "O-O-O"},
		{C1, "O-O-O"},
		{H1, "O-O"},
		{G1, "O-O"},
	}
	for _, tc := range cases {
		if got := s.Notation(E1, tc.dest, NoPiece); got != tc.want {
			t.Fatalf("Notation(E1, %s) = %q, want %q", tc.dest, got, tc.want)
		}
	}
}

// TestBishopCaptureSAN checks a plain piece capture with no disambiguation
// needed.
func TestBishopCaptureSAN(t *testing.T) {
	fen := "r2qkb1r/pbp1p2p/1pnp1n2/1B3pB1/2PP4/4PN2/PP3PPP/RN1QK2R w KQkq - 0 1"
	s, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	got := s.Notation(B5, C6, NoPiece)
	if got != "Bxc6" {
		t.Fatalf("Notation(B5, C6) = %q, want %q", got, "Bxc6")
	}
}

// TestDefaultRoundTrip checks that the default state serializes to the
// canonical starting-position FEN and parses back unchanged.
func TestDefaultRoundTrip(t *testing.T) {
	s := NewDefaultBoardState()
	got := SerializeFEN(s)
	if got != StartFEN {
		t.Fatalf("SerializeFEN(default) = %q, want %q", got, StartFEN)
	}

	reparsed, err := ParseFEN(got)
	if err != nil {
		t.Fatalf("ParseFEN round-trip: %v", err)
	}
	if reparsed.Position.Masks != s.Position.Masks {
		t.Fatal("round-tripped position masks differ")
	}
}
