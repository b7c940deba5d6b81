package xiangqi

import (
	"fmt"

	"github.com/rocketscienceinc/gamehub-backend/internal/apperror"
	"github.com/rocketscienceinc/gamehub-backend/internal/entity"
)

// Start moves a waiting match into play. It is a no-op otherwise.
func Start(state *entity.ChessState) {
	if state.IsWaiting() {
		state.Status = entity.StatusOngoing
	}
}

// SubmitMove validates and applies a move by side. On a king capture the match ends with
// side as the winner and the turn is left as it was.
func SubmitMove(state *entity.ChessState, side entity.Color, from, to entity.Position) (*entity.MoveRecord, error) {
	if err := state.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	if state.Turn != side {
		return nil, apperror.ErrNotYourTurn
	}

	if state.Board.At(from).IsEmpty() {
		return nil, apperror.ErrNoPieceSelected
	}

	result := EvaluateMove(&state.Board, from, to)
	if !result.Legal || result.Piece.Side != side {
		return nil, fmt.Errorf("%w: %s %s -> %s", apperror.ErrIllegalMove, result.Piece, from, to)
	}

	state.Board.Move(from, to)

	record := entity.MoveRecord{
		From:     from,
		To:       to,
		Piece:    result.Piece,
		Captured: result.Target,
		Captures: result.Captures,
	}
	state.History = append(state.History, record)

	if result.Captures && result.Target.Kind == entity.King {
		state.Finish(side)
		return &record, nil
	}

	state.Turn = side.Opponent()

	return &record, nil
}

// Restart resets the board in place. A match that had started keeps accepting moves.
func Restart(state *entity.ChessState) {
	started := !state.IsWaiting()

	*state = *entity.NewChessState()

	if started {
		state.Status = entity.StatusOngoing
	}
}
