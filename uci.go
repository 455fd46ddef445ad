/*
uci.go renders moves in long algebraic notation, the format used by the
Universal Chess Interface protocol. This is a pure rendering function
alongside Notation; no UCI protocol loop lives in this package.
*/
package chego

import "strings"

// UCI renders the move from -> dest as long algebraic notation, e.g.
// "e2e4" or "e7e8q" for a queen promotion. The promotion letter is always
// lowercase, regardless of the mover's color, matching the protocol
// convention.
func (s BoardState) UCI(from, dest Square, promote Piece) string {
	var b strings.Builder
	b.WriteString(from.String())
	b.WriteString(dest.String())

	if promote != NoPiece {
		b.WriteByte(promote.id())
	}

	return b.String()
}
