package chego

import "fmt"

// File is a single column of the board grid, A=0 .. H=7.
type File int8

// Rank is a single row of the board grid, rank 1 = 0 .. rank 8 = 7.
type Rank int8

// Square is a single cell of the board grid, A1=0 .. H8=63, rank-major:
// file = sq & 7, rank = sq >> 3.
type Square int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// NoSquare marks the absence of a square, used for an empty en-passant
// target field.
const NoSquare Square = -1

// Square constants, A1 .. H8, rank-major.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// TryFile converts a raw index into a File, rejecting anything outside
// 0..7. The valid range is strictly less than 8 on both ends.
func TryFile(idx int) (File, bool) {
	if idx < 0 || idx >= 8 {
		return 0, false
	}
	return File(idx), true
}

// TryRank converts a raw index into a Rank, rejecting anything outside
// 0..7, the same bound as [TryFile].
func TryRank(idx int) (Rank, bool) {
	if idx < 0 || idx >= 8 {
		return 0, false
	}
	return Rank(idx), true
}

// TrySquare converts a raw index into a Square, rejecting anything
// outside 0..63.
func TrySquare(idx int) (Square, bool) {
	if idx < 0 || idx >= 64 {
		return 0, false
	}
	return Square(idx), true
}

// NewSquare combines a file and a rank into a square.
func NewSquare(f File, r Rank) Square {
	return Square(int(r)<<3 | int(f))
}

// File returns the column sq belongs to.
func (sq Square) File() File {
	return File(sq & 7)
}

// Rank returns the row sq belongs to.
func (sq Square) Rank() Rank {
	return Rank(sq >> 3)
}

// WithFile returns the square on the same rank but in file f.
func (sq Square) WithFile(f File) Square {
	return NewSquare(f, sq.Rank())
}

// WithRank returns the square on the same file but on rank r.
func (sq Square) WithRank(r Rank) Square {
	return NewSquare(sq.File(), r)
}

// TryOffset attempts to move sq by (fileOffset, rankOffset), returning
// false if the result would fall off the board.
func (sq Square) TryOffset(fileOffset, rankOffset int) (Square, bool) {
	f, ok := TryFile(int(sq.File()) + fileOffset)
	if !ok {
		return 0, false
	}
	r, ok := TryRank(int(sq.Rank()) + rankOffset)
	if !ok {
		return 0, false
	}
	return NewSquare(f, r), true
}

// DiagEdge returns the square at the edge of the board reached by
// walking from sq along the diagonal described by (dirFile, dirRank),
// each of which must be -1 or +1.
func (sq Square) DiagEdge(dirFile, dirRank int) Square {
	sf := int(sq.File())
	if dirFile != -1 {
		sf = 7 - sf
	}
	sr := int(sq.Rank())
	if dirRank != -1 {
		sr = 7 - sr
	}

	d := sf
	if sr < d {
		d = sr
	}

	result, _ := sq.TryOffset(d*dirFile, d*dirRank)
	return result
}

// SharesOrthogonal reports whether sq and other lie on the same rank
// or the same file.
func (sq Square) SharesOrthogonal(other Square) bool {
	return sq.File() == other.File() || sq.Rank() == other.Rank()
}

// SharesDiagonal reports whether sq and other lie on a common diagonal.
func (sq Square) SharesDiagonal(other Square) bool {
	x1, y1 := int(sq.File()), int(sq.Rank())
	x2, y2 := int(other.File()), int(other.Rank())
	return (x1-y1) == (x2-y2) || (x1-y2) == (x2-y1)
}

// Mask returns the bitmask with a single bit set at sq.
func (sq Square) Mask() Bitmask {
	return BitmaskFromSquare(sq)
}

func (f File) charLower() byte { return byte('a' + f) }
func (f File) charUpper() byte { return byte('A' + f) }
func (r Rank) char() byte      { return byte('1' + r) }

// FileFromChar converts a (case-insensitive) file letter to a File.
func FileFromChar(ch byte) (File, bool) {
	if ch >= 'a' && ch <= 'h' {
		return File(ch - 'a'), true
	}
	if ch >= 'A' && ch <= 'H' {
		return File(ch - 'A'), true
	}
	return 0, false
}

// RankFromChar converts a rank digit ('1'..'8') to a Rank.
func RankFromChar(ch byte) (Rank, bool) {
	if ch >= '1' && ch <= '8' {
		return Rank(ch - '1'), true
	}
	return 0, false
}

// SquareFromString parses a two-character square name such as "e4".
func SquareFromString(s string) (Square, bool) {
	if len(s) != 2 {
		return 0, false
	}
	f, ok := FileFromChar(s[0])
	if !ok {
		return 0, false
	}
	r, ok := RankFromChar(s[1])
	if !ok {
		return 0, false
	}
	return NewSquare(f, r), true
}

// String renders the square in lowercase algebraic form, e.g. "e4".
func (sq Square) String() string {
	if sq < 0 || sq > 63 {
		return fmt.Sprintf("<invalid square %d>", int(sq))
	}
	return string([]byte{sq.File().charLower(), sq.Rank().char()})
}
