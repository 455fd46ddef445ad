package chego

import "testing"

func TestUCIQuietMove(t *testing.T) {
	var s BoardState
	if got := s.UCI(E2, E4, NoPiece); got != "e2e4" {
		t.Fatalf("UCI(e2,e4,-) = %q, want %q", got, "e2e4")
	}
}

func TestUCIPromotionAlwaysLowercase(t *testing.T) {
	var s BoardState
	if got := s.UCI(E7, E8, Queen); got != "e7e8q" {
		t.Fatalf("UCI(e7,e8,Q) = %q, want %q", got, "e7e8q")
	}
	if got := s.UCI(B2, A1, Knight); got != "b2a1n" {
		t.Fatalf("UCI(b2,a1,N) = %q, want %q", got, "b2a1n")
	}
}
