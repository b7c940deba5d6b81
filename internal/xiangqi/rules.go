package xiangqi

import (
	"github.com/rocketscienceinc/gamehub-backend/internal/entity"
)

const (
	palaceColMin = 3
	palaceColMax = 5

	blackPalaceRowMax = 2
	redPalaceRowMin   = 7

	// rows 0-4 are black's half, 5-9 are red's
	riverRedEdge   = 5
	riverBlackEdge = 4
)

type MoveResult struct {
	Legal    bool
	Captures bool
	Piece    entity.Piece
	Target   entity.Piece
}

// Target is a reachable destination, as shown to a player picking a move.
type Target struct {
	Row      int  `json:"row"`
	Col      int  `json:"col"`
	Captures bool `json:"captures"`
}

// EvaluateMove decides whether the piece on from may move to to. It never mutates board.
func EvaluateMove(board *entity.Board, from, to entity.Position) MoveResult {
	if !from.InBounds() || !to.InBounds() || from == to {
		return MoveResult{}
	}

	piece := board.At(from)
	if piece.IsEmpty() {
		return MoveResult{}
	}

	target := board.At(to)
	result := MoveResult{Piece: piece, Target: target}

	if !target.IsEmpty() && target.Side == piece.Side {
		return result
	}

	var legal bool

	switch piece.Kind {
	case entity.King:
		legal = kingMove(board, piece.Side, from, to)
	case entity.Advisor:
		legal = advisorMove(piece.Side, from, to)
	case entity.Elephant:
		legal = elephantMove(board, piece.Side, from, to)
	case entity.Horse:
		legal = horseMove(board, from, to)
	case entity.Chariot:
		legal = chariotMove(board, from, to)
	case entity.Cannon:
		legal = cannonMove(board, from, to, !target.IsEmpty())
	case entity.Pawn:
		legal = pawnMove(piece.Side, from, to)
	case entity.NoPiece:
	}

	result.Legal = legal
	result.Captures = legal && !target.IsEmpty()

	return result
}

// ValidMoves lists every legal destination of the piece on from.
func ValidMoves(board *entity.Board, from entity.Position) []Target {
	targets := []Target{}

	if board.At(from).IsEmpty() {
		return targets
	}

	for row := range entity.BoardRows {
		for col := range entity.BoardCols {
			result := EvaluateMove(board, from, entity.Pos(row, col))
			if result.Legal {
				targets = append(targets, Target{Row: row, Col: col, Captures: result.Captures})
			}
		}
	}

	return targets
}

func FindKing(board *entity.Board, side entity.Color) (entity.Position, bool) {
	for row := range entity.BoardRows {
		for col := range entity.BoardCols {
			piece := board[row][col]
			if piece.Kind == entity.King && piece.Side == side {
				return entity.Pos(row, col), true
			}
		}
	}

	return entity.Position{}, false
}

// InCheck reports whether any opposing piece could capture side's king on the next move.
func InCheck(board *entity.Board, side entity.Color) bool {
	king, ok := FindKing(board, side)
	if !ok {
		return false
	}

	for row := range entity.BoardRows {
		for col := range entity.BoardCols {
			piece := board[row][col]
			if piece.IsEmpty() || piece.Side == side {
				continue
			}

			if EvaluateMove(board, entity.Pos(row, col), king).Legal {
				return true
			}
		}
	}

	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func inPalace(side entity.Color, pos entity.Position) bool {
	if pos.Col < palaceColMin || pos.Col > palaceColMax {
		return false
	}

	if side == entity.ColorRed {
		return pos.Row >= redPalaceRowMin
	}

	return pos.Row <= blackPalaceRowMax
}

func kingMove(board *entity.Board, side entity.Color, from, to entity.Position) bool {
	if abs(to.Row-from.Row)+abs(to.Col-from.Col) != 1 {
		return false
	}

	if !inPalace(side, to) {
		return false
	}

	return !facesKing(board, side, from, to)
}

// facesKing scans the destination column toward the opponent's back rank on the board
// as it would look after the king left from.
func facesKing(board *entity.Board, side entity.Color, from, to entity.Position) bool {
	step := 1
	if side == entity.ColorRed {
		step = -1
	}

	for row := to.Row + step; row >= 0 && row < entity.BoardRows; row += step {
		pos := entity.Pos(row, to.Col)
		if pos == from {
			continue
		}

		piece := board.At(pos)
		if !piece.IsEmpty() {
			return piece.Kind == entity.King
		}
	}

	return false
}

func advisorMove(side entity.Color, from, to entity.Position) bool {
	if abs(to.Row-from.Row) != 1 || abs(to.Col-from.Col) != 1 {
		return false
	}

	return inPalace(side, to)
}

func elephantMove(board *entity.Board, side entity.Color, from, to entity.Position) bool {
	if abs(to.Row-from.Row) != 2 || abs(to.Col-from.Col) != 2 {
		return false
	}

	if side == entity.ColorRed && to.Row < riverRedEdge {
		return false
	}

	if side == entity.ColorBlack && to.Row > riverBlackEdge {
		return false
	}

	eye := entity.Pos((from.Row+to.Row)/2, (from.Col+to.Col)/2)

	return board.At(eye).IsEmpty()
}

func horseMove(board *entity.Board, from, to entity.Position) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)

	var leg entity.Position

	switch {
	case rowDiff == 2 && colDiff == 1:
		leg = entity.Pos((from.Row+to.Row)/2, from.Col)
	case rowDiff == 1 && colDiff == 2:
		leg = entity.Pos(from.Row, (from.Col+to.Col)/2)
	default:
		return false
	}

	return board.At(leg).IsEmpty()
}

// countBetween returns the number of pieces strictly between two cells on one line,
// or -1 when they do not share a row or column.
func countBetween(board *entity.Board, from, to entity.Position) int {
	if from.Row != to.Row && from.Col != to.Col {
		return -1
	}

	rowStep := sign(to.Row - from.Row)
	colStep := sign(to.Col - from.Col)

	count := 0
	for pos := entity.Pos(from.Row+rowStep, from.Col+colStep); pos != to; pos = entity.Pos(pos.Row+rowStep, pos.Col+colStep) {
		if !board.At(pos).IsEmpty() {
			count++
		}
	}

	return count
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func chariotMove(board *entity.Board, from, to entity.Position) bool {
	return countBetween(board, from, to) == 0
}

func cannonMove(board *entity.Board, from, to entity.Position, capture bool) bool {
	screens := countBetween(board, from, to)
	if capture {
		return screens == 1
	}

	return screens == 0
}

func pawnMove(side entity.Color, from, to entity.Position) bool {
	forward := from.Row - to.Row
	crossed := from.Row <= riverBlackEdge
	if side == entity.ColorBlack {
		forward = to.Row - from.Row
		crossed = from.Row >= riverRedEdge
	}

	lateral := abs(to.Col - from.Col)

	if forward == 1 && lateral == 0 {
		return true
	}

	return crossed && forward == 0 && lateral == 1
}
