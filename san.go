/*
san.go renders moves in Standard Algebraic Notation. Disambiguation uses
the source file (or, if the files match, the rank) when one other piece of
the same kind reaches the destination, and the full source square when two
or more do; it does not shorten that case to a file or rank even where one
would be enough, as section 8.2.3 of the PGN standard would:
https://ia802908.us.archive.org/26/items/pgn-standard-1994-03-12/PGN_standard_1994-03-12.txt
*/
package chego

import "strings"

// Notation renders the move from -> dest (with promote, or NoPiece for a
// non-promoting move) as SAN, as played from s. The move is assumed legal;
// callers obtain dest from a MoveGenerator built from s. Piece letters take
// the mover's case (uppercase for white, lowercase for black), except the
// king's prefix, which is always a literal 'K'.
func (s BoardState) Notation(from, dest Square, promote Piece) string {
	color, piece, _ := s.Position.PieceAt(from)

	if dir, ok := castleDirOf(&s.Castle, piece, color, dest, s.Fullmoves); ok {
		if dir == CastleQueenside {
			return "O-O-O"
		}
		return "O-O"
	}

	_, _, isCapture := s.Position.PieceAt(dest)
	isCapture = isCapture || (piece == Pawn && dest == s.Position.EnPassant)

	var b strings.Builder
	switch piece {
	case Pawn:
	case King:
		b.WriteByte('K')
	default:
		b.WriteByte(piece.ID(color))
		b.WriteString(s.disambiguate(from, dest, piece, color))
	}

	if isCapture {
		if piece == Pawn {
			b.WriteByte(from.File().charLower())
		}
		b.WriteByte('x')
	}

	b.WriteString(dest.String())

	if promote != NoPiece {
		b.WriteByte('=')
		b.WriteByte(promote.ID(color))
	}

	return b.String()
}

// disambiguate returns the prefix needed to distinguish the moving piece
// from any other of the same type and color that could also reach dest:
// empty if none can, the file letter or rank digit if exactly one other
// piece conflicts and differs from from by that axis, or the full source
// square if more than one other piece conflicts.
func (s BoardState) disambiguate(from, dest Square, piece Piece, color Color) string {
	others := s.Position.PiecesThatSee(dest, piece, color).Without(from)
	if others.IsEmpty() {
		return ""
	}

	if others.Count() == 1 {
		other, _ := others.First()
		if other.File() != from.File() {
			return string(from.File().charLower())
		}
		return string(from.Rank().char())
	}

	return from.String()
}
