package entity

import "fmt"

const (
	BoardRows = 10
	BoardCols = 9
)

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (that Position) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardRows && that.Col >= 0 && that.Col < BoardCols
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board is indexed [row][col]; row 0 is black's back rank, row 9 is red's.
type Board [BoardRows][BoardCols]Piece

// At returns the piece on pos, or an empty piece when pos is off the board.
func (that *Board) At(pos Position) Piece {
	if !pos.InBounds() {
		return Piece{}
	}
	return that[pos.Row][pos.Col]
}

func (that *Board) Set(pos Position, piece Piece) {
	if !pos.InBounds() {
		return
	}
	that[pos.Row][pos.Col] = piece
}

// Move relocates the piece on from to to and returns whatever was captured.
func (that *Board) Move(from, to Position) Piece {
	captured := that.At(to)
	that.Set(to, that.At(from))
	that.Set(from, Piece{})

	return captured
}

type placement struct {
	kind PieceKind
	row  int
	col  int
}

var backRank = []PieceKind{Chariot, Horse, Elephant, Advisor, King, Advisor, Elephant, Horse, Chariot}

// NewStandardBoard returns the 32-piece starting layout.
func NewStandardBoard() Board {
	var board Board

	for col, kind := range backRank {
		board.Set(Pos(0, col), NewPiece(kind, ColorBlack))
		board.Set(Pos(9, col), NewPiece(kind, ColorRed))
	}

	placements := []placement{
		{Cannon, 2, 1}, {Cannon, 2, 7},
		{Pawn, 3, 0}, {Pawn, 3, 2}, {Pawn, 3, 4}, {Pawn, 3, 6}, {Pawn, 3, 8},
	}

	for _, p := range placements {
		board.Set(Pos(p.row, p.col), NewPiece(p.kind, ColorBlack))
		// red mirrors black across the river
		board.Set(Pos(BoardRows-1-p.row, p.col), NewPiece(p.kind, ColorRed))
	}

	return board
}
