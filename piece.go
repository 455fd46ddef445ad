package chego

// Piece identifies a chess piece type, independent of color. The values
// double as indices 2..7 into a Position's bitboard array (offset by 2).
type Piece int8

const (
	Pawn Piece = iota
	King
	Rook
	Knight
	Bishop
	Queen
	// NoPiece marks the absence of a promotion piece in a move: "play this
	// move as a plain pawn advance, not a promotion."
	NoPiece Piece = -1
)

// id returns the lowercase FEN letter for the piece.
func (p Piece) id() byte {
	switch p {
	case Pawn:
		return 'p'
	case King:
		return 'k'
	case Rook:
		return 'r'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	default:
		return 'q'
	}
}

// ID returns the FEN letter for the piece, uppercased for white.
func (p Piece) ID(c Color) byte {
	id := p.id()
	if c == ColorWhite {
		return id - ('a' - 'A')
	}
	return id
}

// PieceFromID converts a FEN piece letter (either case) to a Piece.
func PieceFromID(ch byte) (Piece, bool) {
	switch ch | 0x20 { // lowercase, ASCII letters only.
	case 'p':
		return Pawn, true
	case 'k':
		return King, true
	case 'r':
		return Rook, true
	case 'n':
		return Knight, true
	case 'b':
		return Bishop, true
	case 'q':
		return Queen, true
	default:
		return 0, false
	}
}

// IsSlider reports whether the piece slides along rays (rook, bishop,
// or queen), as opposed to jumping to fixed offsets.
func (p Piece) IsSlider() bool {
	return p == Rook || p == Bishop || p == Queen
}

// slidingAttacks returns the full, blocker-free ray union for a sliding
// piece standing on sq.
func (p Piece) slidingAttacks(sq Square) Bitmask {
	switch p {
	case Bishop:
		return BishopAttacks[sq]
	case Rook:
		return RookAttacks[sq]
	default:
		return QueenAttacks[sq]
	}
}

// RelevantSquares returns the capture squares for a piece of this type
// standing on sq, ignoring blockers for non-sliders and returning the
// full ray union for sliders (callers intersect with actual blockers
// themselves, see Moves).
func (p Piece) RelevantSquares(sq Square, c Color) Bitmask {
	switch p {
	case Pawn:
		if c == ColorWhite {
			return WhitePawnAttacks[sq]
		}
		return BlackPawnAttacks[sq]
	case King:
		return KingAttacks[sq]
	case Knight:
		return KnightAttacks[sq]
	default:
		return p.slidingAttacks(sq)
	}
}

type directionEdge struct {
	edge    Square
	nearest func(Bitmask) (Square, bool) // Bitmask.First or Bitmask.Last
}

// edges returns, for each direction this piece type can move in, the
// board edge reached by walking that way from sq and the function
// (First or Last) that finds the nearest blocker along that direction.
func (p Piece) edges(sq Square) []directionEdge {
	all := []directionEdge{
		{sq.WithFile(FileA), Bitmask.Last},  // left,  -x
		{sq.WithFile(FileH), Bitmask.First}, // right, +x
		{sq.WithRank(Rank1), Bitmask.Last},  // down,  -y
		{sq.WithRank(Rank8), Bitmask.First}, // up,    +y
		{sq.DiagEdge(1, 1), Bitmask.First},  // up-right
		{sq.DiagEdge(-1, -1), Bitmask.Last}, // down-left
		{sq.DiagEdge(1, -1), Bitmask.Last},  // down-right: +x -y
		{sq.DiagEdge(-1, 1), Bitmask.First}, // up-left:    -x +y
	}

	switch p {
	case Rook:
		return all[0:4]
	case Bishop:
		return all[4:8]
	default:
		return all
	}
}

// Moves returns (captureMask, pushMask) for a piece of this type at sq
// given the full occupancy and the mover's color. Sliders return their
// full legal attack set (including the nearest blocker itself, a
// potential capture) in captureMask and an empty pushMask, since a
// slider's pushes and captures coincide. Pawns split capture squares
// from non-capturing forward pushes, accounting for blockers on both
// the single and double advance.
func (p Piece) Moves(sq Square, occupied Bitmask, c Color) (captureMask, pushMask Bitmask) {
	if p.IsSlider() {
		mask := p.slidingAttacks(sq)
		for _, e := range p.edges(sq) {
			between := Between[sq][e.edge]
			blocking := between.And(occupied)
			if nearest, ok := e.nearest(blocking); ok {
				// Cut the ray short: everything strictly between the
				// blocker and the edge (plus the edge itself) is no
				// longer reachable. The blocker square itself stays in
				// mask as a potential capture.
				mask = mask.AndNot(Between[nearest][e.edge]).Without(e.edge)
			}
		}
		return mask, EmptyMask
	}

	captureMask = p.RelevantSquares(sq, c)

	if p != Pawn {
		return captureMask, EmptyMask
	}

	moves := WhitePawnMoves[sq]
	if c == ColorBlack {
		moves = BlackPawnMoves[sq]
	}

	one, ok := sq.TryOffset(0, c.PawnDir())
	if ok {
		if occupied.Has(one) {
			moves = moves.Without(one)
		}

		if two, ok := one.TryOffset(0, c.PawnDir()); ok {
			if !moves.Has(one) || occupied.Has(one) || occupied.Has(two) {
				moves = moves.Without(two)
			}
		}
	}

	return captureMask, moves
}
