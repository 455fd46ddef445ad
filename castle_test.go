package chego

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCastleRightsHeldInitially(t *testing.T) {
	cr := NewCastleRights()
	for _, c := range [2]Color{ColorWhite, ColorBlack} {
		for _, dir := range [2]CastleDir{CastleKingside, CastleQueenside} {
			if !cr.Held(c, dir) {
				t.Fatalf("%s %d should be held on a fresh game", c, dir)
			}
		}
	}
}

func TestNoCastleRightsNeverHeld(t *testing.T) {
	cr := NoCastleRights()
	for _, c := range [2]Color{ColorWhite, ColorBlack} {
		for _, dir := range [2]CastleDir{CastleKingside, CastleQueenside} {
			if cr.Held(c, dir) {
				t.Fatalf("%s %d should never be held", c, dir)
			}
			if cr.HasCastle(c, 1, dir) {
				t.Fatalf("%s %d should not be held at turn 1", c, dir)
			}
		}
	}
}

// TestLoseDoesNotOverwriteEarlierLoss covers the "never regained" contract:
// a second Lose call at a later turn must not move the recorded loss turn.
// The right is held through the turn it is lost on, and not held from the
// following turn onward.
func TestLoseDoesNotOverwriteEarlierLoss(t *testing.T) {
	cr := NewCastleRights()
	cr.Lose(ColorWhite, CastleKingside, 5)
	cr.Lose(ColorWhite, CastleKingside, 10)

	if !cr.HasCastle(ColorWhite, 4, CastleKingside) {
		t.Fatal("right should still be held before the loss turn")
	}
	if !cr.HasCastle(ColorWhite, 5, CastleKingside) {
		t.Fatal("right should still be held through the loss turn itself")
	}
	if cr.HasCastle(ColorWhite, 6, CastleKingside) {
		t.Fatal("right should be lost from the turn after the recorded (earlier) loss turn")
	}
}

// TestIndexRestoresLaterLoss covers the Index snapshot: a loss recorded
// after the queried turn must read back as still held.
func TestIndexRestoresLaterLoss(t *testing.T) {
	cr := NewCastleRights()
	cr.Lose(ColorWhite, CastleKingside, 10)

	snapshot := cr.Index(5)
	require.True(t, snapshot.Held(ColorWhite, CastleKingside),
		"a loss at turn 10 should not yet apply to the turn-5 snapshot")
	require.Equal(t, NewCastleRights(), snapshot,
		"the turn-5 snapshot should read as a fresh set of rights")

	snapshotAfter := cr.Index(10)
	require.False(t, snapshotAfter.Held(ColorWhite, CastleKingside),
		"a loss at turn 10 should apply to the turn-10 snapshot")
}

func TestCastleRightsFENClassical(t *testing.T) {
	cr := NewCastleRights()
	if got := cr.FEN(); got != "KQkq" {
		t.Fatalf("FEN() = %q, want %q", got, "KQkq")
	}

	cr.Lose(ColorWhite, CastleQueenside, 1)
	if got := cr.FEN(); got != "Kkq" {
		t.Fatalf("FEN() after losing white queenside = %q, want %q", got, "Kkq")
	}

	cr2 := NoCastleRights()
	if got := cr2.FEN(); got != "-" {
		t.Fatalf("FEN() with nothing held = %q, want %q", got, "-")
	}
}

// TestQueensideBlockMaskUsesQueensideRook checks that the queenside block
// mask consults the queenside rook square, never the kingside one: an
// occupied b-file square must block a queenside castle.
func TestQueensideBlockMaskUsesQueensideRook(t *testing.T) {
	cr := NewCastleRights()
	block := cr.BlockMask(E1, ColorWhite, CastleQueenside)
	if !block.Has(B1) {
		t.Fatalf("BlockMask(queenside) = %v, must include B1", block)
	}
	if !block.Has(C1) || !block.Has(D1) {
		t.Fatalf("BlockMask(queenside) = %v, must include C1 and D1", block)
	}
	if block.Has(E1) || block.Has(A1) {
		t.Fatalf("BlockMask(queenside) = %v, must not include the king or rook's own squares", block)
	}
}

func TestCheckMaskCoversKingPath(t *testing.T) {
	cr := NewCastleRights()
	mask := cr.CheckMask(E1, ColorWhite, CastleKingside)
	want := EmptyMask.With(F1).With(G1)
	if mask != want {
		t.Fatalf("CheckMask(kingside) = %v, want %v", mask, want)
	}
}

func TestIsShredderDetection(t *testing.T) {
	classical := NewCastleRights()
	if classical.IsShredder() {
		t.Fatal("classical A/H rook files should not be Shredder")
	}

	chess960 := CastleRights{KingsideFile: FileG, QueensideFile: FileB, whiteLost: [2]int16{-1, -1}, blackLost: [2]int16{-1, -1}}
	if !chess960.IsShredder() {
		t.Fatal("non-A/H rook files should be detected as Shredder")
	}
}
