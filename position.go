/*
position.go defines the Position structure: the placement of every piece on
the board, the en-passant target square, and the halfmove clock. It also
implements the diff/apply algebra used to turn one Position into another, a
contract consumed by animation layers rather than by move generation itself.
*/
package chego

// Mask indices into Position.Masks.
const (
	maskWhite = 0
	maskBlack = 1
	// Piece-type masks start at index 2; Piece values 0..5 offset by 2.
	maskPieceBase = 2
)

// Position stores the placement of every piece on the board.
type Position struct {
	// Masks[0] = white occupancy, Masks[1] = black occupancy,
	// Masks[2..7] = piece-type occupancy, indexed by Piece+2.
	Masks [8]Bitmask
	// EnPassant is the capture target square left by the last double
	// pawn push, or NoSquare if none is available.
	EnPassant Square
	// Halfmoves counts plies since the last pawn move or capture.
	Halfmoves uint8
}

// NewDefaultPosition returns the standard chess starting position.
func NewDefaultPosition() Position {
	return Position{
		Masks: [8]Bitmask{
			EmptyMask.WithRank(Rank1).WithRank(Rank2),
			EmptyMask.WithRank(Rank8).WithRank(Rank7),
			EmptyMask.WithRank(Rank2).WithRank(Rank7),
			EmptyMask.With(E1).With(E8),
			EmptyMask.With(A1).With(A8).With(H1).With(H8),
			EmptyMask.With(B1).With(B8).With(G1).With(G8),
			EmptyMask.With(C1).With(C8).With(F1).With(F8),
			EmptyMask.With(D1).With(D8),
		},
		EnPassant: NoSquare,
		Halfmoves: 0,
	}
}

func (p *Position) White() Bitmask { return p.Masks[maskWhite] }
func (p *Position) Black() Bitmask { return p.Masks[maskBlack] }
func (p *Position) Pawns() Bitmask { return p.Masks[maskPieceBase+Pawn] }
func (p *Position) Kings() Bitmask { return p.Masks[maskPieceBase+King] }
func (p *Position) Rooks() Bitmask { return p.Masks[maskPieceBase+Rook] }
func (p *Position) Knights() Bitmask { return p.Masks[maskPieceBase+Knight] }
func (p *Position) Bishops() Bitmask { return p.Masks[maskPieceBase+Bishop] }
func (p *Position) Queens() Bitmask { return p.Masks[maskPieceBase+Queen] }

// ColorMask returns the occupancy mask for c.
func (p *Position) ColorMask(c Color) Bitmask {
	if c == ColorWhite {
		return p.White()
	}
	return p.Black()
}

// PieceMask returns the occupancy mask for a piece type, agnostic of color.
func (p *Position) PieceMask(piece Piece) Bitmask {
	return p.Masks[maskPieceBase+piece]
}

// Occupied returns every occupied square, of any color.
func (p *Position) Occupied() Bitmask {
	return p.White().Or(p.Black())
}

// Count returns the total number of pieces on the board.
func (p *Position) Count() int {
	return p.White().Count() + p.Black().Count()
}

// DiagonalSliders returns the bishops and queens of color c.
func (p *Position) DiagonalSliders(c Color) Bitmask {
	return p.Queens().Or(p.Bishops()).And(p.ColorMask(c))
}

// OrthogonalSliders returns the rooks and queens of color c.
func (p *Position) OrthogonalSliders(c Color) Bitmask {
	return p.Queens().Or(p.Rooks()).And(p.ColorMask(c))
}

// ColorOf reports the color of the piece on sq, if any.
func (p *Position) ColorOf(sq Square) (Color, bool) {
	if p.White().Has(sq) {
		return ColorWhite, true
	}
	if p.Black().Has(sq) {
		return ColorBlack, true
	}
	return 0, false
}

// PieceAt returns the color and type of the piece on sq, if any.
func (p *Position) PieceAt(sq Square) (Color, Piece, bool) {
	for i := Pawn; i <= Queen; i++ {
		if p.Masks[maskPieceBase+i].Has(sq) {
			c, ok := p.ColorOf(sq)
			if !ok {
				return 0, 0, false
			}
			return c, i, true
		}
	}
	return 0, 0, false
}

// eachPiece calls fn for every (piece, mask) pair, agnostic of color.
func (p *Position) eachPiece(fn func(Piece, Bitmask)) {
	for i := Pawn; i <= Queen; i++ {
		fn(i, p.Masks[maskPieceBase+i])
	}
}

// PiecesThatSee returns every other piece of the given type/color whose
// attack set reaches sq given the current occupancy, with no piece
// blocking the line between them. Used for SAN disambiguation.
func (p *Position) PiecesThatSee(sq Square, piece Piece, c Color) Bitmask {
	var result Bitmask
	occupied := p.Occupied()

	// Every table except the pawns' is symmetric: a knight attacks sq from
	// exactly the squares a knight on sq attacks. Pawn attacks point the
	// other way, so the squares a pawn of color c attacks sq from are the
	// ones a pawn of the opposite color standing on sq would attack.
	seen := piece.RelevantSquares(sq, c)
	if piece == Pawn {
		seen = piece.RelevantSquares(sq, c.Opposite())
	}

	candidates := seen.And(p.PieceMask(piece)).And(p.ColorMask(c))
	for _, candidate := range candidates.Squares() {
		if !Between[sq][candidate].Intersects(occupied) {
			result = result.With(candidate)
		}
	}

	return result
}

// ToCharGrid renders the position as an 8x8 grid of FEN piece letters
// (space for empty squares), rank 8 first.
func (p *Position) ToCharGrid() [8][8]byte {
	var grid [8][8]byte
	for r := range grid {
		for f := range grid[r] {
			grid[r][f] = ' '
		}
	}

	p.eachPiece(func(piece Piece, mask Bitmask) {
		for _, c := range [2]Color{ColorWhite, ColorBlack} {
			id := piece.ID(c)
			for _, sq := range mask.And(p.ColorMask(c)).Squares() {
				grid[7-int(sq.Rank())][int(sq.File())] = id
			}
		}
	})

	return grid
}

// BoardFEN renders only the first (piece-placement) field of a FEN string.
func (p *Position) BoardFEN() string {
	grid := p.ToCharGrid()

	out := make([]byte, 0, 72)
	for rank, row := range grid {
		var empties int
		for _, id := range row {
			if id == ' ' {
				empties++
				continue
			}
			if empties != 0 {
				out = append(out, '0'+byte(empties))
				empties = 0
			}
			out = append(out, id)
		}
		if empties != 0 {
			out = append(out, '0'+byte(empties))
		}
		if rank != 7 {
			out = append(out, '/')
		}
	}

	return string(out)
}

// remove clears the piece on sq from every mask, returning what was there.
func (p *Position) remove(sq Square) (Color, Piece, bool) {
	c, ok := p.ColorOf(sq)
	if !ok {
		return 0, 0, false
	}

	p.Masks[c].Remove(sq)

	for i := Pawn; i <= Queen; i++ {
		if p.Masks[maskPieceBase+i].Has(sq) {
			p.Masks[maskPieceBase+i].Remove(sq)
			return c, i, true
		}
	}

	return 0, 0, false
}

// set places piece/color on sq, displacing and returning whatever was
// there beforehand.
func (p *Position) set(sq Square, piece Piece, c Color) (Color, Piece, bool) {
	displacedColor, displacedPiece, displaced := p.remove(sq)

	p.Masks[c].Set(sq)
	p.Masks[maskPieceBase+piece].Set(sq)

	return displacedColor, displacedPiece, displaced
}

// ChangeKind distinguishes the three edit primitives of the diff algebra.
type ChangeKind uint8

const (
	ChangeRemove ChangeKind = iota
	ChangeMove
	ChangeAdd
)

// BoardChange is a single edit in the diff/apply algebra between two
// Positions: removing a piece, sliding one between squares, or adding one.
type BoardChange struct {
	Kind  ChangeKind
	From  Square
	To    Square
	Piece Piece
	Color Color
}

// priority orders changes so Removes apply before Moves before Adds: an
// animation that adds a piece before clearing its destination would
// flash the captured piece back into existence.
func (c BoardChange) priority() int {
	switch c.Kind {
	case ChangeRemove:
		return 0
	case ChangeMove:
		return 1
	default:
		return 2
	}
}

// Apply performs a single change on the position.
func (p *Position) Apply(c BoardChange) {
	switch c.Kind {
	case ChangeRemove:
		p.remove(c.From)
	case ChangeMove:
		p.remove(c.To)
		if color, piece, ok := p.PieceAt(c.From); ok {
			p.Masks[color].Remove(c.From)
			p.Masks[color].Set(c.To)
			p.Masks[maskPieceBase+piece].Remove(c.From)
			p.Masks[maskPieceBase+piece].Set(c.To)
		}
	case ChangeAdd:
		p.set(c.To, c.Piece, c.Color)
	}
}

// Changes computes the ordered edits that transform p into other, with
// respect to piece and color masks only (not halfmoves, en passant, or
// castle rights). Applying the result to p in order yields a position
// whose masks equal other's.
func (p *Position) Changes(other *Position) []BoardChange {
	var changes []BoardChange

	for i := Pawn; i <= Queen; i++ {
		frMask := p.Masks[maskPieceBase+i]
		toMask := other.Masks[maskPieceBase+i]

		for _, c := range [2]Color{ColorWhite, ColorBlack} {
			frOnly := frMask.And(p.ColorMask(c)).AndNot(toMask.And(other.ColorMask(c)))
			toOnly := toMask.And(other.ColorMask(c)).AndNot(frMask.And(p.ColorMask(c)))

			frCount, toCount := frOnly.Count(), toOnly.Count()

			switch {
			case frCount > toCount:
				movable := frOnly
				for n := 0; n < frCount-toCount; n++ {
					sq, _ := movable.First()
					movable = movable.Without(sq)
				}
				for _, sq := range frOnly.AndNot(movable).Squares() {
					changes = append(changes, BoardChange{Kind: ChangeRemove, From: sq})
				}
				movableSquares := movable.Squares()
				toSquares := toOnly.Squares()
				for idx := range movableSquares {
					changes = append(changes, BoardChange{Kind: ChangeMove, From: movableSquares[idx], To: toSquares[idx]})
				}

			case frCount == toCount:
				frSquares := frOnly.Squares()
				toSquares := toOnly.Squares()
				for idx := range frSquares {
					changes = append(changes, BoardChange{Kind: ChangeMove, From: frSquares[idx], To: toSquares[idx]})
				}

			default: // frCount < toCount
				movable := toOnly
				for n := 0; n < toCount-frCount; n++ {
					sq, _ := movable.First()
					movable = movable.Without(sq)
				}
				movableSquares := movable.Squares()
				frSquares := frOnly.Squares()
				for idx := range movableSquares {
					changes = append(changes, BoardChange{Kind: ChangeMove, From: frSquares[idx], To: movableSquares[idx]})
				}
				for _, sq := range toOnly.AndNot(movable).Squares() {
					changes = append(changes, BoardChange{Kind: ChangeAdd, Piece: i, To: sq, Color: c})
				}
			}
		}
	}

	sortChangesByPriority(changes)

	return changes
}

func sortChangesByPriority(changes []BoardChange) {
	// Insertion sort: the list is short (at most a handful of pieces
	// differ between two positions from the same game) and this keeps
	// the Remove/Move/Add grouping stable.
	for i := 1; i < len(changes); i++ {
		for j := i; j > 0 && changes[j-1].priority() > changes[j].priority(); j-- {
			changes[j-1], changes[j] = changes[j], changes[j-1]
		}
	}
}
