package chego

// CastleDir distinguishes the two castling directions.
type CastleDir uint8

const (
	CastleKingside CastleDir = iota
	CastleQueenside
)

// char returns the lowercase FEN castling letter for the direction.
func (d CastleDir) char() byte {
	if d == CastleQueenside {
		return 'q'
	}
	return 'k'
}

// CastleRights tracks, for each colour and direction, the fullmove number
// at which that right was lost. A negative value means the right is still
// held. Play never restores a lost right; Index rewinds to an earlier
// point in the game's history, and Give sets a right as held outright.
type CastleRights struct {
	// KingsideFile and QueensideFile are the starting files of the two
	// rooks, shared by both colours. Classical chess uses H and A;
	// Chess960/Shredder positions may use any pair of distinct files.
	KingsideFile  File
	QueensideFile File

	// whiteLost and blackLost hold [kingside, queenside] loss turns.
	whiteLost [2]int16
	blackLost [2]int16
}

// NewCastleRights returns classical castling rights (rooks on A and H,
// nothing lost yet) for a freshly-started game.
func NewCastleRights() CastleRights {
	return CastleRights{
		KingsideFile:  FileH,
		QueensideFile: FileA,
		whiteLost:     [2]int16{-1, -1},
		blackLost:     [2]int16{-1, -1},
	}
}

// NoCastleRights returns a CastleRights value with nothing ever held, as
// if both sides started the game having already lost every right. The
// loss turn is recorded as 0 rather than a maximal sentinel: fullmove
// numbers are always >= 1 (see BoardState's invariant), so HasCastle's
// "turn <= lost" test is false for every turn that can actually occur,
// which is exactly "never held" without needing a separate comparison
// direction for this case.
func NoCastleRights() CastleRights {
	return CastleRights{
		KingsideFile:  FileH,
		QueensideFile: FileA,
		whiteLost:     [2]int16{0, 0},
		blackLost:     [2]int16{0, 0},
	}
}

// rights returns the (kingside, queenside) loss turns for c.
func (cr *CastleRights) rights(c Color) [2]int16 {
	if c == ColorWhite {
		return cr.whiteLost
	}
	return cr.blackLost
}

// HasCastle reports whether c still holds the right to castle dir at the
// given fullmove number.
func (cr *CastleRights) HasCastle(c Color, turn uint16, dir CastleDir) bool {
	lost := cr.rights(c)[dir]
	return lost < 0 || int16(turn) <= lost
}

// Held reports whether c currently holds the right to castle dir, without
// reference to any particular fullmove (equivalent to HasCastle queried at
// the furthest possible turn, but without the int16 overflow a literal
// max-uint16 turn would hit).
func (cr *CastleRights) Held(c Color, dir CastleDir) bool {
	return cr.rights(c)[dir] < 0
}

// RookSquare returns the square the rook for c/dir starts the game on.
func (cr *CastleRights) RookSquare(c Color, dir CastleDir) Square {
	file := cr.KingsideFile
	if dir == CastleQueenside {
		file = cr.QueensideFile
	}
	return NewSquare(file, c.BackRank())
}

// TargetSquares returns the squares the king and rook land on when
// castling dir for colour c: G/F for kingside, C/D for queenside.
func (cr *CastleRights) TargetSquares(c Color, dir CastleDir) (king, rook Square) {
	if dir == CastleQueenside {
		return NewSquare(FileC, c.BackRank()), NewSquare(FileD, c.BackRank())
	}
	return NewSquare(FileG, c.BackRank()), NewSquare(FileF, c.BackRank())
}

// CheckMask returns the squares that must be free of enemy attack for c
// to castle dir: the king's start-to-target path plus the target itself.
// If any of these squares is defended by the opponent, castling through
// or into check is forbidden.
func (cr *CastleRights) CheckMask(king Square, c Color, dir CastleDir) Bitmask {
	kingTarget, _ := cr.TargetSquares(c, dir)
	return Between[king][kingTarget].With(kingTarget)
}

// BlockMask returns the squares that must be empty for c to castle dir:
// the open stretch between the king and its target, the open stretch
// between the rook and its target, and both target squares, excluding
// the king and rook's own starting squares (which never block
// themselves). The queenside variant must read the queenside rook
// square here, not the kingside one, or an occupied b-file square would
// never block a queenside castle.
func (cr *CastleRights) BlockMask(king Square, c Color, dir CastleDir) Bitmask {
	rook := cr.RookSquare(c, dir)
	kingTarget, rookTarget := cr.TargetSquares(c, dir)

	return EmptyMask.
		Or(Between[king][kingTarget]).
		Or(Between[rook][rookTarget]).
		With(kingTarget).
		With(rookTarget).
		Without(king).
		Without(rook)
}

// CastlePlayMask returns the squares a player can move the king onto to
// request castling dir: the king's target square and the rook's own
// starting square (dragging the king onto its own rook, as in Chess960
// notation, also expresses the intent).
func (cr *CastleRights) CastlePlayMask(c Color, dir CastleDir) Bitmask {
	kingTarget, _ := cr.TargetSquares(c, dir)
	return kingTarget.Mask().With(cr.RookSquare(c, dir))
}

// Lose records that c has lost the right to castle dir as of turn, if it
// had not already been lost (earlier losses are never overwritten).
func (cr *CastleRights) Lose(c Color, dir CastleDir, turn uint16) {
	lost := &cr.whiteLost
	if c == ColorBlack {
		lost = &cr.blackLost
	}
	if lost[dir] < 0 {
		lost[dir] = int16(turn)
	}
}

// Give grants c the right to castle dir, clearing any recorded loss.
func (cr *CastleRights) Give(c Color, dir CastleDir) {
	lost := &cr.whiteLost
	if c == ColorBlack {
		lost = &cr.blackLost
	}
	lost[dir] = -1
}

// Index returns the CastleRights as they stood at the given fullmove:
// any right lost strictly after that move is restored, since from that
// move's perspective the loss had not yet happened.
func (cr *CastleRights) Index(fullmoves uint16) CastleRights {
	result := *cr
	t := int16(fullmoves)

	for dir := 0; dir < 2; dir++ {
		if t < result.whiteLost[dir] {
			result.whiteLost[dir] = -1
		}
		if t < result.blackLost[dir] {
			result.blackLost[dir] = -1
		}
	}

	return result
}

// LostAllCastle reports whether c holds no castling rights at all.
func (cr *CastleRights) LostAllCastle(c Color) bool {
	return !cr.Held(c, CastleKingside) && !cr.Held(c, CastleQueenside)
}

// IsShredder reports whether the rook files deviate from the classical
// A/H layout, in which case castling serialises as Shredder-FEN.
func (cr *CastleRights) IsShredder() bool {
	return cr.KingsideFile != FileH || cr.QueensideFile != FileA
}

// dirChar returns the FEN letter for c castling dir, uppercase for white.
// Classical layouts use 'k'/'q'; Shredder layouts use the rook's file
// letter instead.
func (cr *CastleRights) dirChar(c Color, dir CastleDir) byte {
	var ch byte
	if cr.IsShredder() {
		ch = cr.RookSquare(c, dir).File().charLower()
	} else {
		ch = dir.char()
	}
	if c == ColorWhite {
		return ch - ('a' - 'A')
	}
	return ch
}

// FEN renders the castling field of a FEN string: "-" if neither side
// holds any right, otherwise one letter per (colour, direction) still
// held, white before black, kingside before queenside — the classical
// "KQkq" ordering.
func (cr *CastleRights) FEN() string {
	if cr.LostAllCastle(ColorWhite) && cr.LostAllCastle(ColorBlack) {
		return "-"
	}

	out := make([]byte, 0, 4)
	for _, c := range [2]Color{ColorWhite, ColorBlack} {
		for _, dir := range [2]CastleDir{CastleKingside, CastleQueenside} {
			if cr.Held(c, dir) {
				out = append(out, cr.dirChar(c, dir))
			}
		}
	}

	return string(out)
}
