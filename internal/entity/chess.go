package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gamehub-backend/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type MoveRecord struct {
	From     Position `json:"from"`
	To       Position `json:"to"`
	Piece    Piece    `json:"piece"`
	Captured Piece    `json:"targetPiece"`
	Captures bool     `json:"captures"`
}

type ChessState struct {
	Board    Board        `json:"board"`
	Turn     Color        `json:"currentTurn"`
	History  []MoveRecord `json:"moveHistory"`
	Status   string       `json:"status"`
	GameOver bool         `json:"gameOver"`
	Winner   *Color       `json:"winner"`
}

func NewChessState() *ChessState {
	return &ChessState{
		Board:   NewStandardBoard(),
		Turn:    ColorRed,
		History: []MoveRecord{},
		Status:  StatusWaiting,
	}
}

// Finish ends the match in favour of winner.
func (that *ChessState) Finish(winner Color) {
	that.Status = StatusFinished
	that.GameOver = true
	that.Winner = &winner
}

func (that *ChessState) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *ChessState) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *ChessState) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *ChessState) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
