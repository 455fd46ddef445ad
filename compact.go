/*
compact.go implements a compact binary encoding of a ChessGame's move
sequence, built on the Huffman coding in huffman.go. It is an optional
export path alongside the game's canonical Position-based history, not a
replacement for it: decoding still replays every move through
PlayUnchecked to rebuild that history.
*/
package chego

import "fmt"

// destIndexFrequencies weights how often a legal move is the Nth
// destination Squares() yields for its piece (file-then-rank order
// starting at A1). Real games favor short, low-index moves heavily; the
// table is capped at 32 entries, comfortably above the largest legal
// destination count a single piece can have (a queen on an open board
// sees at most 27 squares).
var destIndexFrequencies = []int{
	1000, 600, 420, 300, 220, 160, 120, 90,
	70, 55, 44, 36, 29, 24, 20, 17,
	14, 12, 10, 9, 8, 7, 6, 5,
	4, 4, 3, 3, 2, 2, 1, 1,
}

var (
	destIndexTree  = buildHuffmanTree(destIndexFrequencies)
	destIndexCodes = huffmanCodes(destIndexTree, len(destIndexFrequencies))
)

// promoteCode maps a promotion piece to its 2-bit wire value.
func promoteCode(p Piece) uint64 {
	switch p {
	case Bishop:
		return 1
	case Rook:
		return 2
	case Queen:
		return 3
	default:
		return 0
	}
}

var promoteFromCode = [4]Piece{Knight, Bishop, Rook, Queen}

// CompactExport encodes g's played moves (excluding the initial position,
// which the caller supplies separately to decode) into a compact byte
// slice: a 16-bit ply count, then per ply a 6-bit from-square, a
// Huffman-coded destination index, and (only for moves that promote) 2
// promotion-piece bits.
func (g *ChessGame) CompactExport() []byte {
	w := NewBitWriter()
	plies := len(g.History) - 1
	w.WriteBits(uint64(plies), 16)

	state := g.Initial
	for i := 0; i < plies; i++ {
		next := g.History[i+1]
		from, dest, promote := inferMove(&state, &next)

		w.WriteBits(uint64(from), 6)

		squares := state.Generator().Generate(from).Squares()
		index := indexOf(squares, dest)
		w.WriteCode(destIndexCodes[index])

		if state.MoveRequiresPromotion(from, dest) {
			w.WriteBits(promoteCode(promote), 2)
		}

		state = state.PlayUnchecked(from, dest, promote)
	}

	return w.Bytes()
}

// DecodeCompactGame reconstructs a ChessGame from the bytes CompactExport
// produced, replaying every move from initial through PlayUnchecked.
func DecodeCompactGame(data []byte, initial BoardState) (*ChessGame, error) {
	r := NewBitReader(data)

	plies, ok := r.ReadBits(16)
	if !ok {
		return nil, fmt.Errorf("chego: truncated compact game header")
	}

	g := NewChessGameFrom(initial)

	for i := uint64(0); i < plies; i++ {
		fromBits, ok := r.ReadBits(6)
		if !ok {
			return nil, fmt.Errorf("chego: truncated compact game at ply %d", i)
		}
		from := Square(fromBits)

		squares := g.Latest.Generator().Generate(from).Squares()
		index, ok := decodeIndex(destIndexTree, r)
		if !ok || index >= len(squares) {
			return nil, fmt.Errorf("chego: corrupt destination code at ply %d", i)
		}
		dest := squares[index]

		promote := NoPiece
		if g.Latest.MoveRequiresPromotion(from, dest) {
			bits, ok := r.ReadBits(2)
			if !ok {
				return nil, fmt.Errorf("chego: truncated promotion bits at ply %d", i)
			}
			promote = promoteFromCode[bits]
		}

		g.Play(from, dest, promote)
	}

	return g, nil
}

// decodeIndex walks the Huffman tree one bit at a time until it reaches a
// leaf, returning that leaf's index. A single-node tree (one possible
// destination) needs no bits at all.
func decodeIndex(node *huffmanNode, r *BitReader) (int, bool) {
	for node.left != nil || node.right != nil {
		bit, ok := r.ReadBit()
		if !ok {
			return 0, false
		}
		if bit == 0 {
			node = node.left
		} else {
			node = node.right
		}
		if node == nil {
			return 0, false
		}
	}
	return node.index, true
}

func indexOf(squares []Square, target Square) int {
	for i, sq := range squares {
		if sq == target {
			return i
		}
	}
	return 0
}

// inferMove recovers the (from, dest, promote) triple that turns cur into
// next, by diffing which squares changed occupant. Used only by
// CompactExport, where the caller already has both positions but not the
// move that connected them.
func inferMove(cur *BoardState, next *Position) (from, dest Square, promote Piece) {
	from = NoSquare
	dest = NoSquare
	promote = NoPiece

	color := cur.Turn
	curOwn := cur.Position.ColorMask(color)
	nextOwn := next.ColorMask(color)

	vacated := curOwn.AndNot(nextOwn)
	occupied := nextOwn.AndNot(curOwn)

	// The king's own square is the most reliable anchor for castling,
	// where two of the mover's own pieces move at once.
	if kingFrom, ok := cur.Position.Kings().And(vacated).First(); ok {
		if kingTo, ok := next.Kings().And(occupied).First(); ok {
			return kingFrom, kingTo, NoPiece
		}
	}

	from, _ = vacated.First()
	dest, _ = occupied.First()

	if _, piece, ok := cur.Position.PieceAt(from); ok && piece == Pawn {
		for _, p := range [4]Piece{Knight, Bishop, Rook, Queen} {
			if next.PieceMask(p).And(nextOwn).Has(dest) {
				promote = p
				break
			}
		}
	}

	return from, dest, promote
}
