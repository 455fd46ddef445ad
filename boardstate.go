/*
boardstate.go ties a Position together with the metadata the move generator
and notation layers need but the piece placement alone cannot supply: whose
turn it is, what castling rights remain, and the current fullmove number.
*/
package chego

// BoardState is a complete, self-sufficient chess position: everything a
// FEN string encodes.
type BoardState struct {
	Position  Position
	Castle    CastleRights
	Fullmoves uint16
	Turn      Color
}

// NewDefaultBoardState returns the standard starting position, white to
// move, full castling rights, fullmove 1.
func NewDefaultBoardState() BoardState {
	return BoardState{
		Position:  NewDefaultPosition(),
		Castle:    NewCastleRights(),
		Fullmoves: 1,
		Turn:      ColorWhite,
	}
}

// Generator returns a MoveGenerator precomputed for the side to move in s.
func (s *BoardState) Generator() *MoveGenerator {
	return NewMoveGenerator(&s.Position, &s.Castle, s.Turn, s.Fullmoves)
}

// MoveRequiresPromotion reports whether moving the piece on from to dest
// would require a promotion piece to be supplied to PlayUnchecked: a pawn
// reaching the back rank belonging to the side not on move.
func (s *BoardState) MoveRequiresPromotion(from, dest Square) bool {
	color, piece, ok := s.Position.PieceAt(from)
	if !ok || piece != Pawn {
		return false
	}
	return dest.Rank() == color.Opposite().BackRank()
}

// PlayUnchecked applies the move from -> dest to s and returns the
// resulting state, without checking that the move is legal (callers are
// expected to have obtained dest from a MoveGenerator). promote names the
// piece a pawn reaching the back rank becomes; pass NoPiece for any other
// move. Handles captures, en-passant captures, castling (including the
// Chess960 king-onto-own-rook notation) and the associated castle-rights
// and halfmove-clock bookkeeping.
func (s BoardState) PlayUnchecked(from, dest Square, promote Piece) BoardState {
	next := s
	pos := &next.Position

	color, piece, ok := pos.PieceAt(from)
	if !ok {
		// Unvalidated input. Moving nothing does nothing.
		return next
	}
	_, _, hasCapture := pos.PieceAt(dest)

	castleDir, isCastle := castleDirOf(&s.Castle, piece, color, dest, s.Fullmoves)
	isEnPassant := piece == Pawn && dest == pos.EnPassant && !hasCapture

	switch {
	case isCastle:
		kingTarget, rookTarget := next.Castle.TargetSquares(color, castleDir)
		rookFrom := next.Castle.RookSquare(color, castleDir)

		pos.remove(from)
		pos.remove(rookFrom)
		pos.set(kingTarget, King, color)
		pos.set(rookTarget, Rook, color)

	case isEnPassant:
		captureSq := NewSquare(dest.File(), from.Rank())
		pos.remove(from)
		pos.remove(captureSq)
		pos.set(dest, Pawn, color)

	default:
		pos.remove(from)
		placed := piece
		if piece == Pawn && promote != NoPiece && dest.Rank() == color.Opposite().BackRank() {
			placed = promote
		}
		pos.set(dest, placed, color)
	}

	next.updateCastleRights(from, dest, piece, color)
	next.updateEnPassant(from, dest, piece, color)
	if isCastle {
		next.Position.Halfmoves++
	} else {
		next.updateHalfmoves(piece, hasCapture || isEnPassant)
	}

	if color == ColorBlack {
		next.Fullmoves++
	}
	next.Turn = color.Opposite()

	return next
}

// castleDirOf reports which direction, if any, a king move to dest
// represents: either the classical two-square king target or the
// Chess960 king-onto-own-rook notation, using castle as it stood before
// this move (the right must still have been held going into the move).
func castleDirOf(castle *CastleRights, piece Piece, color Color, dest Square, fullmoves uint16) (CastleDir, bool) {
	if piece != King {
		return 0, false
	}
	for _, dir := range [2]CastleDir{CastleKingside, CastleQueenside} {
		if !castle.HasCastle(color, fullmoves, dir) {
			continue
		}
		kingTarget, _ := castle.TargetSquares(color, dir)
		if dest == kingTarget || dest == castle.RookSquare(color, dir) {
			return dir, true
		}
	}
	return 0, false
}

// updateCastleRights records any castling rights lost as a side effect of
// this move: the king moving, or a rook moving off its own home square.
func (s *BoardState) updateCastleRights(from, dest Square, piece Piece, color Color) {
	if piece == King {
		s.Castle.Lose(color, CastleKingside, s.Fullmoves)
		s.Castle.Lose(color, CastleQueenside, s.Fullmoves)
		return
	}
	if piece != Rook {
		return
	}
	for _, dir := range [2]CastleDir{CastleKingside, CastleQueenside} {
		if from == s.Castle.RookSquare(color, dir) {
			s.Castle.Lose(color, dir, s.Fullmoves)
		}
	}
}

// updateEnPassant sets the en-passant target left behind by a pawn double
// push, or clears it for every other move.
func (s *BoardState) updateEnPassant(from, dest Square, piece Piece, color Color) {
	if piece == Pawn && (int(dest.Rank())-int(from.Rank()) == 2 || int(dest.Rank())-int(from.Rank()) == -2) {
		s.Position.EnPassant = from.WithRank(Rank((int(from.Rank()) + int(dest.Rank())) / 2))
		return
	}
	s.Position.EnPassant = NoSquare
}

// updateHalfmoves resets the clock on a pawn move or any capture,
// otherwise advances it.
func (s *BoardState) updateHalfmoves(piece Piece, capture bool) {
	if piece == Pawn || capture {
		s.Position.Halfmoves = 0
		return
	}
	s.Position.Halfmoves++
}
