/*
game.go manages the ordered history of a chess game: the sequence of
positions reached so far, with support for forking an alternate
continuation and detecting draws by threefold repetition.
*/
package chego

// ChessGame tracks a game as it is played: the initial state, the
// position reached after every ply (index 0 is the initial position),
// and the castling rights and fullmove bookkeeping needed to reconstruct
// any earlier BoardState on demand.
type ChessGame struct {
	Initial BoardState
	Latest  BoardState
	History []Position
}

// NewChessGame starts a game from the standard opening position.
func NewChessGame() *ChessGame {
	return NewChessGameFrom(NewDefaultBoardState())
}

// NewChessGameFrom starts a game from an arbitrary BoardState, such as
// one parsed from a FEN string.
func NewChessGameFrom(initial BoardState) *ChessGame {
	return &ChessGame{
		Initial: initial,
		Latest:  initial,
		History: []Position{initial.Position},
	}
}

// Play applies the move from -> dest (with promote, or NoPiece) to the
// latest position, appends the result to the history, and returns the
// move's SAN rendering. The move is assumed legal.
func (g *ChessGame) Play(from, dest Square, promote Piece) string {
	san := g.Latest.Notation(from, dest, promote)
	g.Latest = g.Latest.PlayUnchecked(from, dest, promote)
	g.History = append(g.History, g.Latest.Position)
	return san
}

// Fork returns a new ChessGame whose history is truncated to index i
// (inclusive), leaving g itself untouched: an alternate continuation
// starting from the position at ply i.
func (g *ChessGame) Fork(i int) *ChessGame {
	history := make([]Position, i+1)
	copy(history, g.History[:i+1])

	return &ChessGame{
		Initial: g.Initial,
		Latest:  g.StateAtIndex(i),
		History: history,
	}
}

// ClearAfter truncates g's own history to index i (inclusive), discarding
// every later ply.
func (g *ChessGame) ClearAfter(i int) {
	g.History = g.History[:i+1]
	g.Latest = g.StateAtIndex(i)
}

// turnAtIndex returns whose turn it was to move at ply i.
func (g *ChessGame) turnAtIndex(i int) Color {
	if i%2 == 0 {
		return g.Initial.Turn
	}
	return g.Initial.Turn.Opposite()
}

// fullmovesAtIndex returns the fullmove number of the position at ply i,
// derived from how many times black has moved by then.
func (g *ChessGame) fullmovesAtIndex(i int) uint16 {
	var blackMoves int
	if g.Initial.Turn == ColorWhite {
		blackMoves = i / 2
	} else {
		blackMoves = (i + 1) / 2
	}
	return g.Initial.Fullmoves + uint16(blackMoves)
}

// StateAtIndex reconstructs the full BoardState at ply i by pairing the
// stored position with the turn, fullmove number, and castle rights
// snapshot computed for that point in the game.
func (g *ChessGame) StateAtIndex(i int) BoardState {
	fullmoves := g.fullmovesAtIndex(i)
	return BoardState{
		Position:  g.History[i],
		Castle:    g.Latest.Castle.Index(fullmoves),
		Fullmoves: fullmoves,
		Turn:      g.turnAtIndex(i),
	}
}

// samePieces reports whether a and b place the same pieces of the same
// colors on the same squares, ignoring en passant and halfmove state.
func samePieces(a, b *Position) bool {
	return a.Masks == b.Masks
}

// IsDrawByRepetition reports whether the current position's piece
// configuration has occurred three times in the game so far. The scan
// runs backwards from the latest position and stops as soon as it finds
// an earlier position with a different pawn count or total piece count:
// any such difference means a capture or pawn move happened in between,
// which makes every position before it unreachable from the current one.
func (g *ChessGame) IsDrawByRepetition() bool {
	current := &g.Latest.Position
	pawns := current.Pawns().Count()
	pieces := current.Count()

	matches := 0
	for i := len(g.History) - 1; i >= 0; i-- {
		p := &g.History[i]
		if p.Pawns().Count() != pawns || p.Count() != pieces {
			break
		}
		if samePieces(p, current) {
			matches++
			if matches >= 3 {
				return true
			}
		}
	}
	return false
}
