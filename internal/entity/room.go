package entity

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

type GameType string

const (
	GameChess GameType = "chess"
	GameTank  GameType = "tank"

	MaxRoomMembers = 2
)

var ErrUnknownGameType = errors.New("unknown game type")

// ParseGameType accepts the wire value; an empty value means chess.
func ParseGameType(value string) (GameType, error) {
	switch GameType(value) {
	case "", GameChess:
		return GameChess, nil
	case GameTank:
		return GameTank, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownGameType, value)
	}
}

// Room holds one game instance. Exactly one of Chess or Tank is set, matching GameType.
type Room struct {
	ID        string
	GameType  GameType
	Members   []string
	Chess     *ChessState
	Tank      *TankState
	CreatedAt time.Time
}

func (that *Room) IsFull() bool {
	return len(that.Members) >= MaxRoomMembers
}

func (that *Room) IsEmpty() bool {
	return len(that.Members) == 0
}

func (that *Room) HasMember(sessionID string) bool {
	return slices.Contains(that.Members, sessionID)
}

// AddMember appends sessionID in join order. It is a no-op for existing members.
func (that *Room) AddMember(sessionID string) {
	if that.HasMember(sessionID) {
		return
	}
	that.Members = append(that.Members, sessionID)
}

func (that *Room) RemoveMember(sessionID string) {
	that.Members = slices.DeleteFunc(that.Members, func(id string) bool {
		return id == sessionID
	})
}

// GameState returns whichever state the room hosts, for serialisation.
func (that *Room) GameState() any {
	if that.GameType == GameTank {
		return that.Tank
	}
	return that.Chess
}

func (that *Room) IsGameOver() bool {
	switch that.GameType {
	case GameTank:
		return that.Tank != nil && that.Tank.GameOver
	default:
		return that.Chess != nil && that.Chess.GameOver
	}
}
