/*
movegen.go implements the legal move generator: a reference, non-magic
ray-scan generator that produces, for any square, the full bitmask of legal
destinations for the piece standing there, accounting for pins, checks,
castling legality and en-passant discovered checks.
*/
package chego

// AllSquares is the full 64-square mask, the identity element for the
// check-resolution intersection when the side to move is not in check.
const AllSquares Bitmask = ^EmptyMask

// MoveGenerator precomputes, for one side to move in one Position, the
// masks needed to answer legal-move queries: which squares the opponent
// defends (for king safety), which enemy pieces are giving check, and
// which own pieces are pinned to the king.
type MoveGenerator struct {
	pos       *Position
	castle    *CastleRights
	turn      Color
	fullmoves uint16

	occupied Bitmask
	own      Bitmask
	enemy    Bitmask

	king    Square
	hasKing bool

	defence  Bitmask
	checking Bitmask
	pinned   Bitmask
}

// NewMoveGenerator precomputes the defence, check and pin masks for turn to
// move in pos under castle at the given fullmove number (only consulted to
// evaluate castle's per-direction loss turn).
func NewMoveGenerator(pos *Position, castle *CastleRights, turn Color, fullmoves uint16) *MoveGenerator {
	g := &MoveGenerator{
		pos:       pos,
		castle:    castle,
		turn:      turn,
		fullmoves: fullmoves,
		occupied:  pos.Occupied(),
		own:       pos.ColorMask(turn),
		enemy:     pos.ColorMask(turn.Opposite()),
	}

	king, ok := pos.Kings().And(g.own).First()
	if !ok {
		// No king of this colour: the raw Position does not guarantee one
		// (see the data model invariant), but the generator has nothing
		// useful to compute without it.
		return g
	}
	g.king = king
	g.hasKing = true

	g.defence = g.computeDefence()
	g.computePinsAndChecks()

	return g
}

// computeDefence returns every square the opponent attacks, with the own
// king removed from the blocker set so that a king retreating along the
// attacker's ray is still correctly seen as moving into check.
func (g *MoveGenerator) computeDefence() Bitmask {
	blockers := g.occupied.Without(g.king)
	enemyColor := g.turn.Opposite()

	var defence Bitmask
	for piece := Pawn; piece <= Queen; piece++ {
		for _, sq := range g.pos.PieceMask(piece).And(g.enemy).Squares() {
			capture, _ := piece.Moves(sq, blockers, enemyColor)
			defence = defence.Or(capture)
		}
	}
	return defence
}

// computePinsAndChecks walks every enemy slider aligned with the king,
// classifying it as a checker (nothing stands between it and the king) or
// as pinning whatever single own piece stands between them, then adds
// knight and pawn checks directly from the fixed-offset tables.
func (g *MoveGenerator) computePinsAndChecks() {
	enemyColor := g.turn.Opposite()

	classify := func(candidates Bitmask) {
		for _, e := range candidates.Squares() {
			between := Between[g.king][e].And(g.occupied)
			switch {
			case between.IsEmpty():
				g.checking = g.checking.With(e)
			case between.Count() == 1 && between.Intersects(g.own):
				g.pinned = g.pinned.Or(between)
			}
		}
	}

	classify(g.pos.OrthogonalSliders(enemyColor).And(RookAttacks[g.king]))
	classify(g.pos.DiagonalSliders(enemyColor).And(BishopAttacks[g.king]))

	enemyKnights := g.pos.Knights().And(g.enemy)
	g.checking = g.checking.Or(KnightAttacks[g.king].And(enemyKnights))

	pawnTable := &WhitePawnAttacks
	if g.turn == ColorBlack {
		pawnTable = &BlackPawnAttacks
	}
	enemyPawns := g.pos.Pawns().And(g.enemy)
	g.checking = g.checking.Or(pawnTable[g.king].And(enemyPawns))
}

// IsCheck reports whether the side to move's king is currently attacked.
func (g *MoveGenerator) IsCheck() bool {
	return !g.checking.IsEmpty()
}

// checkResolution returns the squares a non-king piece may move to while
// the king is in check: AllSquares when not in check (no restriction), or
// the single checker's square plus the path to it from the king (a
// capture-or-block mask) under single check. Under double check no single
// non-king move can resolve both threats at once, so this returns
// EmptyMask, correctly leaving only the king able to respond.
func (g *MoveGenerator) checkResolution() Bitmask {
	switch g.checking.Count() {
	case 0:
		return AllSquares
	case 1:
		c, _ := g.checking.First()
		return Between[g.king][c].With(c)
	default:
		return EmptyMask
	}
}

// pinLine returns the line through the king and sq: the squares the king's
// and sq's rook rays share if they share a file or rank, otherwise the
// squares their bishop rays share. Intersecting a pinned piece's already
// blocker-bounded attacks with this line is sufficient to stop it moving
// off the line or past the pinning piece, since the piece's own Moves()
// already can't see past an occupied square.
func (g *MoveGenerator) pinLine(sq Square) Bitmask {
	if sq.SharesOrthogonal(g.king) {
		return RookAttacks[g.king].And(RookAttacks[sq])
	}
	return BishopAttacks[g.king].And(BishopAttacks[sq])
}

// Generate returns the bitmask of legal destinations for the piece
// standing on sq. It is EmptyMask if sq is empty, holds an enemy piece, or
// the piece (once pins, checks and castling legality are applied) has no
// legal destination.
func (g *MoveGenerator) Generate(sq Square) Bitmask {
	if !g.hasKing {
		return EmptyMask
	}

	color, piece, ok := g.pos.PieceAt(sq)
	if !ok || color != g.turn {
		return EmptyMask
	}

	attacks, pushes := piece.Moves(sq, g.occupied, g.turn)
	attacks = attacks.AndNot(g.own)

	if piece == King {
		return attacks.Or(g.castleDestinations()).AndNot(g.defence)
	}

	dests := attacks.Or(pushes)
	if piece == Pawn {
		// A pawn's diagonal attack squares are only playable when an enemy
		// piece stands there.
		dests = attacks.And(g.enemy).Or(pushes)
	}

	dests = dests.And(g.checkResolution())

	if piece == Pawn {
		// The en-passant square is vetted against the raw attack mask and
		// carries its own check-resolution logic: capturing the checking
		// pawn lands beside it, outside the block-or-capture mask above.
		dests = dests.Or(g.pawnEnPassant(sq, attacks))
	}

	if g.pinned.Has(sq) {
		dests = dests.And(g.pinLine(sq))
	}

	return dests
}

// pawnEnPassant returns the en-passant capture destination for the pawn on
// sq if the current position allows it, or EmptyMask otherwise. attacks is
// the pawn's plain (non-en-passant) capture mask, already computed by the
// caller.
func (g *MoveGenerator) pawnEnPassant(sq Square, attacks Bitmask) Bitmask {
	ep := g.pos.EnPassant
	if ep == NoSquare || !attacks.Has(ep) {
		return EmptyMask
	}

	captureSq := NewSquare(ep.File(), sq.Rank())

	switch g.checking.Count() {
	case 0:
		// Not in check: only the discovered-check filter below applies.
	case 1:
		checker, _ := g.checking.First()
		resolvesCheck := g.checkResolution().Has(ep)
		capturesChecker := checker == captureSq && !g.pinned.Has(sq)
		if !resolvesCheck && !capturesChecker {
			return EmptyMask
		}
	default:
		return EmptyMask
	}

	if g.epDiscoversCheck(sq, captureSq) {
		return EmptyMask
	}

	return ep.Mask()
}

// epDiscoversCheck simulates the blockers left behind once sq's pawn
// captures en passant (occupied ∪ {ep}) \ {sq, captureSq} and reports
// whether that exposes the king to an orthogonal slider along captureSq's
// rank or a diagonal slider along ep's diagonal.
func (g *MoveGenerator) epDiscoversCheck(sq, captureSq Square) bool {
	blockers := g.occupied.With(g.pos.EnPassant).Without(sq).Without(captureSq)
	enemyColor := g.turn.Opposite()

	if g.king.Rank() == captureSq.Rank() {
		for _, e := range g.pos.OrthogonalSliders(enemyColor).Squares() {
			if e.Rank() != g.king.Rank() {
				continue
			}
			if Between[g.king][e].And(blockers).IsEmpty() {
				return true
			}
		}
	}

	if g.king.SharesDiagonal(g.pos.EnPassant) {
		for _, e := range g.pos.DiagonalSliders(enemyColor).Squares() {
			if !g.king.SharesDiagonal(e) {
				continue
			}
			if Between[g.king][e].And(blockers).IsEmpty() {
				return true
			}
		}
	}

	return false
}

// castleDestinations returns the squares the king may move to in order to
// request each castling direction still held, empty while in check.
func (g *MoveGenerator) castleDestinations() Bitmask {
	if g.IsCheck() {
		return EmptyMask
	}

	var dests Bitmask
	for _, dir := range [2]CastleDir{CastleKingside, CastleQueenside} {
		if !g.castle.HasCastle(g.turn, g.fullmoves, dir) {
			continue
		}
		if g.castle.CheckMask(g.king, g.turn, dir).Intersects(g.defence) {
			continue
		}
		if g.castle.BlockMask(g.king, g.turn, dir).Intersects(g.occupied) {
			continue
		}
		dests = dests.Or(g.castle.CastlePlayMask(g.turn, dir))
	}
	return dests
}

// HasAnyMoves reports whether the side to move has at least one legal
// move, used together with IsCheck to distinguish stalemate from
// checkmate.
func (g *MoveGenerator) HasAnyMoves() bool {
	if !g.hasKing {
		return false
	}

	for piece := Pawn; piece <= Queen; piece++ {
		for _, sq := range g.pos.PieceMask(piece).And(g.own).Squares() {
			if !g.Generate(sq).IsEmpty() {
				return true
			}
		}
	}
	return false
}
