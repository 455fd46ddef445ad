package chego

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChessGamePlayAppendsHistoryAndReturnsSAN(t *testing.T) {
	g := NewChessGame()

	san := g.Play(E2, E4, NoPiece)
	require.Equal(t, "e4", san)
	require.Len(t, g.History, 2)
	require.Equal(t, ColorBlack, g.Latest.Turn)

	san = g.Play(E7, E5, NoPiece)
	require.Equal(t, "e5", san)
	require.Len(t, g.History, 3)
	require.Equal(t, ColorWhite, g.Latest.Turn)
}

// TestForkLeavesOriginalUntouched covers Fork's independence contract: a
// move played on the fork must not appear in the original game's history.
func TestForkLeavesOriginalUntouched(t *testing.T) {
	g := NewChessGame()
	g.Play(E2, E4, NoPiece)
	g.Play(E7, E5, NoPiece)
	g.Play(G1, F3, NoPiece)

	fork := g.Fork(1)
	require.Len(t, fork.History, 2)
	require.Equal(t, g.History[:2], fork.History)

	fork.Play(B8, C6, NoPiece)
	require.Len(t, fork.History, 3)
	require.Len(t, g.History, 4, "playing on the fork must not mutate the original game's history")

	require.Equal(t, g.Initial.Position.Masks, fork.Initial.Position.Masks)
}

func TestClearAfterTruncatesHistory(t *testing.T) {
	g := NewChessGame()
	g.Play(E2, E4, NoPiece)
	g.Play(E7, E5, NoPiece)
	g.Play(G1, F3, NoPiece)

	g.ClearAfter(1)
	require.Len(t, g.History, 2)
	require.Equal(t, g.History[1], g.Latest.Position)
	require.Equal(t, ColorBlack, g.Latest.Turn)
}

// TestStateAtIndexReconstructsTurnAndFullmoves covers turnAtIndex and
// fullmovesAtIndex for a game starting from the default position.
func TestStateAtIndexReconstructsTurnAndFullmoves(t *testing.T) {
	g := NewChessGame()
	g.Play(E2, E4, NoPiece) // ply 1: black to move, still fullmove 1
	g.Play(E7, E5, NoPiece) // ply 2: white to move, fullmove 2
	g.Play(G1, F3, NoPiece) // ply 3: black to move, fullmove 2

	s0 := g.StateAtIndex(0)
	require.Equal(t, ColorWhite, s0.Turn)
	require.EqualValues(t, 1, s0.Fullmoves)

	s1 := g.StateAtIndex(1)
	require.Equal(t, ColorBlack, s1.Turn)
	require.EqualValues(t, 1, s1.Fullmoves)

	s2 := g.StateAtIndex(2)
	require.Equal(t, ColorWhite, s2.Turn)
	require.EqualValues(t, 2, s2.Fullmoves)

	s3 := g.StateAtIndex(3)
	require.Equal(t, ColorBlack, s3.Turn)
	require.EqualValues(t, 2, s3.Fullmoves)
}

// TestThreefoldRepetitionDetected shuffles knights back to the starting
// configuration twice, reaching the starting piece arrangement a third
// time (the initial position counts as the first occurrence).
func TestThreefoldRepetitionDetected(t *testing.T) {
	g := NewChessGame()
	shuffle := [][2]Square{
		{G1, F3}, {G8, F6}, {F3, G1}, {F6, G8},
		{G1, F3}, {G8, F6}, {F3, G1}, {F6, G8},
	}

	for i, mv := range shuffle {
		g.Play(mv[0], mv[1], NoPiece)
		if i < len(shuffle)-1 {
			require.False(t, g.IsDrawByRepetition(), "should not yet be a draw at ply %d", i+1)
		}
	}

	require.True(t, g.IsDrawByRepetition())
}

// TestRepetitionPruningStopsAtIrreversibleMove ensures a position that
// merely resembles an earlier one in piece and pawn count, but places a
// pawn on a different square, is not mistaken for a repetition.
func TestRepetitionPruningStopsAtIrreversibleMove(t *testing.T) {
	g := NewChessGame()
	g.Play(E2, E4, NoPiece)
	g.Play(G1, F3, NoPiece)
	g.Play(F3, G1, NoPiece)

	require.False(t, g.IsDrawByRepetition())
}
