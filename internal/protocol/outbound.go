package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/gamehub-backend/internal/entity"
	"github.com/rocketscienceinc/gamehub-backend/internal/xiangqi"
)

type Welcome struct {
	Type     string `json:"type"`
	ClientID string `json:"clientId"`
	Message  string `json:"message"`
}

type RoomCreated struct {
	Type      string          `json:"type"`
	RoomID    string          `json:"roomId"`
	Color     entity.Color    `json:"color"`
	GameType  entity.GameType `json:"gameType"`
	GameState any             `json:"gameState"`
	Message   string          `json:"message"`
}

type RoomJoined struct {
	Type      string          `json:"type"`
	RoomID    string          `json:"roomId"`
	Color     entity.Color    `json:"color"`
	GameType  entity.GameType `json:"gameType"`
	GameState any             `json:"gameState"`
	Opponent  string          `json:"opponent,omitempty"`
	Message   string          `json:"message"`
}

type PlayerJoined struct {
	Type     string          `json:"type"`
	ClientID string          `json:"clientId"`
	Color    entity.Color    `json:"color"`
	GameType entity.GameType `json:"gameType"`
	Message  string          `json:"message"`
}

type PlayerLeft struct {
	Type     string `json:"type"`
	ClientID string `json:"clientId"`
	Message  string `json:"message"`
}

type MoveMade struct {
	Type        string          `json:"type"`
	From        entity.Position `json:"from"`
	To          entity.Position `json:"to"`
	Piece       entity.Piece    `json:"piece"`
	ClientID    string          `json:"clientId"`
	Captures    bool            `json:"captures"`
	TargetPiece entity.Piece    `json:"targetPiece"`
	Turn        entity.Color    `json:"turn"`
	Board       entity.Board    `json:"board"`
	GameOver    bool            `json:"gameOver"`
	Winner      *entity.Color   `json:"winner"`
	Check       bool            `json:"check"`
}

type GameRestarted struct {
	Type      string       `json:"type"`
	GameState any          `json:"gameState"`
	Turn      entity.Color `json:"turn"`
	Message   string       `json:"message"`
}

type TankState struct {
	Type     string                        `json:"type"`
	GameType entity.GameType               `json:"gameType"`
	Players  map[string]*entity.TankPlayer `json:"players"`
	Bullets  []*entity.Bullet              `json:"bullets"`
	GameOver bool                          `json:"gameOver"`
	Winner   *entity.Color                 `json:"winner"`
}

type ChatMessage struct {
	Type      string `json:"type"`
	ClientID  string `json:"clientId"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type RoomSummary struct {
	ID          string          `json:"id"`
	PlayerCount int             `json:"playerCount"`
	Created     int64           `json:"created"`
	GameType    entity.GameType `json:"gameType"`
}

type RoomList struct {
	Type  string        `json:"type"`
	Rooms []RoomSummary `json:"rooms"`
}

type ValidMoves struct {
	Type  string           `json:"type"`
	From  entity.Position  `json:"from"`
	Moves []xiangqi.Target `json:"moves"`
}

type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewWelcome(clientID string) Welcome {
	return Welcome{Type: "welcome", ClientID: clientID, Message: "connected to game server"}
}

func NewRoomCreated(room *entity.Room, color entity.Color) RoomCreated {
	return RoomCreated{
		Type:      "room_created",
		RoomID:    room.ID,
		Color:     color,
		GameType:  room.GameType,
		GameState: room.GameState(),
		Message:   "room created, waiting for another player",
	}
}

func NewRoomJoined(room *entity.Room, color entity.Color, opponent string) RoomJoined {
	return RoomJoined{
		Type:      "room_joined",
		RoomID:    room.ID,
		Color:     color,
		GameType:  room.GameType,
		GameState: room.GameState(),
		Opponent:  opponent,
		Message:   "joined room, game on",
	}
}

func NewPlayerJoined(room *entity.Room, clientID string, color entity.Color) PlayerJoined {
	return PlayerJoined{
		Type:     "player_joined",
		ClientID: clientID,
		Color:    color,
		GameType: room.GameType,
		Message:  "a new player joined, game on",
	}
}

func NewPlayerLeft(clientID string) PlayerLeft {
	return PlayerLeft{Type: "player_left", ClientID: clientID, Message: "player left the room"}
}

func NewMoveMade(state *entity.ChessState, record *entity.MoveRecord, clientID string, check bool) MoveMade {
	return MoveMade{
		Type:        "move",
		From:        record.From,
		To:          record.To,
		Piece:       record.Piece,
		ClientID:    clientID,
		Captures:    record.Captures,
		TargetPiece: record.Captured,
		Turn:        state.Turn,
		Board:       state.Board,
		GameOver:    state.GameOver,
		Winner:      state.Winner,
		Check:       check,
	}
}

func NewGameRestarted(room *entity.Room) GameRestarted {
	turn := entity.ColorRed
	if room.Chess != nil {
		turn = room.Chess.Turn
	}

	return GameRestarted{
		Type:      "game_restarted",
		GameState: room.GameState(),
		Turn:      turn,
		Message:   "game restarted",
	}
}

func NewTankState(state *entity.TankState) TankState {
	return TankState{
		Type:     "tank_state",
		GameType: entity.GameTank,
		Players:  state.Players,
		Bullets:  state.Bullets,
		GameOver: state.GameOver,
		Winner:   state.Winner,
	}
}

func NewChatMessage(clientID, message, timestamp string) ChatMessage {
	return ChatMessage{Type: "chat", ClientID: clientID, Message: message, Timestamp: timestamp}
}

func NewRoomList(rooms []*entity.Room) RoomList {
	summaries := make([]RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		summaries = append(summaries, RoomSummary{
			ID:          room.ID,
			PlayerCount: len(room.Members),
			Created:     room.CreatedAt.UnixMilli(),
			GameType:    room.GameType,
		})
	}

	return RoomList{Type: "room_list", Rooms: summaries}
}

func NewValidMoves(from entity.Position, moves []xiangqi.Target) ValidMoves {
	return ValidMoves{Type: "valid_moves", From: from, Moves: moves}
}

func NewError(err error) Error {
	return Error{Type: "error", Message: err.Error()}
}

func Encode(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message: %w", err)
	}
	return data, nil
}
