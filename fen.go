/*
fen.go implements conversions between Forsyth-Edwards Notation (FEN) strings
and BoardState values, in both the classical and Shredder (Chess960) castling
conventions. Parsing treats the FEN string as attacker-controlled input and
returns a typed error rather than panicking.
*/
package chego

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors identifying which FEN field failed to parse. Wrap one of
// these with fmt.Errorf("%w: ...", ...) and compare with errors.Is.
var (
	ErrMissingInfo  = errors.New("chego: fen string must have exactly 6 space-separated fields")
	ErrBadPosition  = errors.New("chego: malformed piece placement field")
	ErrBadTurn      = errors.New("chego: malformed active color field")
	ErrBadCastle    = errors.New("chego: malformed castling rights field")
	ErrBadEnPassant = errors.New("chego: malformed en passant target field")
	ErrBadHalfmoves = errors.New("chego: malformed halfmove clock field")
	ErrBadFullmoves = errors.New("chego: malformed fullmove number field")
	ErrMissingKings = errors.New("chego: shredder castling rights require a king on each side")
)

// StartFEN is the FEN string of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a six-field FEN string into a BoardState. The castling
// field is auto-detected as classical ("KQkq"-style) or Shredder (rook-file)
// notation; Shredder notation requires that the board field already places
// a king of each castling letter's colour.
func ParseFEN(fen string) (BoardState, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return BoardState{}, fmt.Errorf("%w: got %d", ErrMissingInfo, len(fields))
	}

	pos, err := parseBoardField(fields[0])
	if err != nil {
		return BoardState{}, err
	}

	turn, err := parseTurnField(fields[1])
	if err != nil {
		return BoardState{}, err
	}

	castle, err := parseCastleField(fields[2], &pos)
	if err != nil {
		return BoardState{}, err
	}

	ep, err := parseEnPassantField(fields[3])
	if err != nil {
		return BoardState{}, err
	}
	pos.EnPassant = ep

	halfmoves, err := strconv.Atoi(fields[4])
	if err != nil || halfmoves < 0 || halfmoves > 50 {
		return BoardState{}, fmt.Errorf("%w: %q", ErrBadHalfmoves, fields[4])
	}
	pos.Halfmoves = uint8(halfmoves)

	fullmoves, err := strconv.ParseUint(fields[5], 10, 16)
	if err != nil || fullmoves == 0 {
		return BoardState{}, fmt.Errorf("%w: %q", ErrBadFullmoves, fields[5])
	}

	return BoardState{
		Position:  pos,
		Castle:    castle,
		Fullmoves: uint16(fullmoves),
		Turn:      turn,
	}, nil
}

// SerializeFEN renders s as a FEN string, using Shredder castling notation
// whenever the castle rights' rook files deviate from the classical A/H
// layout.
func SerializeFEN(s BoardState) string {
	ep := "-"
	if s.Position.EnPassant != NoSquare {
		ep = s.Position.EnPassant.String()
	}

	return fmt.Sprintf("%s %c %s %s %d %d",
		s.Position.BoardFEN(),
		s.Turn.Char(),
		s.Castle.FEN(),
		ep,
		s.Position.Halfmoves,
		s.Fullmoves,
	)
}

func parseTurnField(field string) (Color, error) {
	switch field {
	case "w":
		return ColorWhite, nil
	case "b":
		return ColorBlack, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadTurn, field)
	}
}

func parseBoardField(field string) (Position, error) {
	var pos Position
	pos.EnPassant = NoSquare

	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return Position{}, fmt.Errorf("%w: expected 8 ranks separated by '/', got %d", ErrBadPosition, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := 0

		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]

			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}

			if file >= 8 {
				return Position{}, fmt.Errorf("%w: rank %d overflows the board", ErrBadPosition, rank+1)
			}

			piece, ok := PieceFromID(ch)
			if !ok {
				return Position{}, fmt.Errorf("%w: unknown piece letter %q", ErrBadPosition, string(ch))
			}

			f, _ := TryFile(file)
			pos.set(NewSquare(f, rank), piece, ColorOfChar(ch))
			file++
		}

		if file != 8 {
			return Position{}, fmt.Errorf("%w: rank %d does not cover all 8 files", ErrBadPosition, rank+1)
		}
	}

	return pos, nil
}

// parseCastleField parses the third FEN field. Letters restricted to
// 'K'/'Q'/'k'/'q' are classical notation; any other letter is read as a
// Shredder rook-start file, disambiguated against each side's king file
// already placed on the board.
func parseCastleField(field string, pos *Position) (CastleRights, error) {
	if field == "-" {
		return NoCastleRights(), nil
	}

	cr := NoCastleRights()

	var kingFile [2]File
	var hasKing [2]bool
	for _, c := range [2]Color{ColorWhite, ColorBlack} {
		if sq, ok := pos.Kings().And(pos.ColorMask(c)).First(); ok {
			kingFile[c] = sq.File()
			hasKing[c] = true
		}
	}

	for i := 0; i < len(field); i++ {
		ch := field[i]
		c := ColorOfChar(ch)

		upper := ch
		if ch >= 'a' && ch <= 'z' {
			upper -= 'a' - 'A'
		}

		switch upper {
		case 'K':
			cr.KingsideFile = FileH
			cr.Give(c, CastleKingside)
		case 'Q':
			cr.QueensideFile = FileA
			cr.Give(c, CastleQueenside)
		default:
			file, ok := FileFromChar(ch)
			if !ok {
				return CastleRights{}, fmt.Errorf("%w: %q", ErrBadCastle, field)
			}
			if !hasKing[c] {
				return CastleRights{}, fmt.Errorf("%w: %s", ErrMissingKings, c)
			}
			if file > kingFile[c] {
				cr.KingsideFile = file
				cr.Give(c, CastleKingside)
			} else {
				cr.QueensideFile = file
				cr.Give(c, CastleQueenside)
			}
		}
	}

	return cr, nil
}

func parseEnPassantField(field string) (Square, error) {
	if field == "-" {
		return NoSquare, nil
	}
	sq, ok := SquareFromString(field)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadEnPassant, field)
	}
	return sq, nil
}
