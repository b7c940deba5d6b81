package apperror

import "errors"

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomFull         = errors.New("room is full")
	ErrNotInRoom        = errors.New("you are not in a room")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNoPieceSelected  = errors.New("no piece selected")
	ErrIllegalMove      = errors.New("illegal move")
	ErrMalformedMessage = errors.New("malformed message")
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrWrongGameType    = errors.New("action is not supported by this game type")
)
