package chego

// Precalculated, read-only attack tables shared by every Position. Built
// once by init() since they never change and are looked up on every
// move generated.
var (
	KnightAttacks [64]Bitmask
	KingAttacks   [64]Bitmask

	WhitePawnAttacks [64]Bitmask
	BlackPawnAttacks [64]Bitmask
	WhitePawnMoves   [64]Bitmask
	BlackPawnMoves   [64]Bitmask

	RookAttacks   [64]Bitmask
	BishopAttacks [64]Bitmask
	QueenAttacks  [64]Bitmask

	// Between[a][b] holds the open squares strictly between a and b on a
	// shared rank, file or diagonal; EmptyMask if a and b are not aligned.
	Between [64][64]Bitmask
)

// knightOffsets and kingOffsets are expressed as (file, rank) deltas so
// TryOffset rejects anything that would wrap around an edge.
var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// orthogonalDirections and diagonalDirections enumerate the four orthogonal and four diagonal step
// directions used to build the full-ray tables and Between.
var orthogonalDirections = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var diagonalDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func rayUnion(sq Square, directions [4][2]int) Bitmask {
	var mask Bitmask
	for _, d := range directions {
		cur := sq
		for {
			next, ok := cur.TryOffset(d[0], d[1])
			if !ok {
				break
			}
			mask = mask.With(next)
			cur = next
		}
	}
	return mask
}

func init() {
	for idx := 0; idx < 64; idx++ {
		sq := Square(idx)

		var knight, king Bitmask
		for _, o := range knightOffsets {
			if dst, ok := sq.TryOffset(o[0], o[1]); ok {
				knight = knight.With(dst)
			}
		}
		for _, o := range kingOffsets {
			if dst, ok := sq.TryOffset(o[0], o[1]); ok {
				king = king.With(dst)
			}
		}
		KnightAttacks[idx] = knight
		KingAttacks[idx] = king

		var whiteAttacks, blackAttacks Bitmask
		if dst, ok := sq.TryOffset(-1, 1); ok {
			whiteAttacks = whiteAttacks.With(dst)
		}
		if dst, ok := sq.TryOffset(1, 1); ok {
			whiteAttacks = whiteAttacks.With(dst)
		}
		if dst, ok := sq.TryOffset(-1, -1); ok {
			blackAttacks = blackAttacks.With(dst)
		}
		if dst, ok := sq.TryOffset(1, -1); ok {
			blackAttacks = blackAttacks.With(dst)
		}
		WhitePawnAttacks[idx] = whiteAttacks
		BlackPawnAttacks[idx] = blackAttacks

		var whiteMoves, blackMoves Bitmask
		if one, ok := sq.TryOffset(0, 1); ok {
			whiteMoves = whiteMoves.With(one)
			if sq.Rank() == Rank2 {
				if two, ok := one.TryOffset(0, 1); ok {
					whiteMoves = whiteMoves.With(two)
				}
			}
		}
		if one, ok := sq.TryOffset(0, -1); ok {
			blackMoves = blackMoves.With(one)
			if sq.Rank() == Rank7 {
				if two, ok := one.TryOffset(0, -1); ok {
					blackMoves = blackMoves.With(two)
				}
			}
		}
		WhitePawnMoves[idx] = whiteMoves
		BlackPawnMoves[idx] = blackMoves

		RookAttacks[idx] = rayUnion(sq, orthogonalDirections)
		BishopAttacks[idx] = rayUnion(sq, diagonalDirections)
		QueenAttacks[idx] = RookAttacks[idx].Or(BishopAttacks[idx])
	}

	allDirections := append(append([][2]int{}, orthogonalDirections[:]...), diagonalDirections[:]...)
	for idx := 0; idx < 64; idx++ {
		sq := Square(idx)
		for _, d := range allDirections {
			var accumulated Bitmask
			cur := sq
			for {
				next, ok := cur.TryOffset(d[0], d[1])
				if !ok {
					break
				}
				Between[idx][next] = accumulated
				accumulated = accumulated.With(next)
				cur = next
			}
		}
	}
}
