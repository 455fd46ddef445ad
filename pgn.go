/*
pgn.go is a placeholder for Portable Game Notation export. Full PGN
serialization (tag pairs, movetext, clock annotations) is out of scope
here; only the move data ChessGame already tracks would back it.
*/
package chego

// SerializePGN is unimplemented; PGN export is out of scope.
func SerializePGN(g ChessGame) string {
	return ""
}
