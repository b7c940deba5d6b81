package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/gamehub-backend/internal/apperror"
	"github.com/rocketscienceinc/gamehub-backend/internal/entity"
)

const (
	TypeCreateRoom    = "create_room"
	TypeJoinRoom      = "join_room"
	TypeMove          = "move"
	TypeTankInput     = "tank_input"
	TypeChat          = "chat"
	TypeRestart       = "restart"
	TypeGetRooms      = "get_rooms"
	TypeGetValidMoves = "get_valid_moves"
)

// Handler receives every inbound message kind. Adding a kind means adding a method here,
// so every handler has to deal with it before the code compiles.
type Handler interface {
	OnCreateRoom(session *entity.Session, msg CreateRoom)
	OnJoinRoom(session *entity.Session, msg JoinRoom)
	OnMove(session *entity.Session, msg Move)
	OnTankInput(session *entity.Session, msg TankInput)
	OnChat(session *entity.Session, msg Chat)
	OnRestart(session *entity.Session, msg Restart)
	OnGetRooms(session *entity.Session, msg GetRooms)
	OnGetValidMoves(session *entity.Session, msg GetValidMoves)
}

// Inbound is a decoded client message.
type Inbound interface {
	Type() string
	Dispatch(session *entity.Session, h Handler)
}

type CreateRoom struct {
	GameType entity.GameType
}

type JoinRoom struct {
	RoomID string
}

type Move struct {
	From entity.Position
	To   entity.Position
}

type TankInput struct {
	Keys entity.InputState
}

type Chat struct {
	Message string
}

type Restart struct{}

type GetRooms struct{}

type GetValidMoves struct {
	From entity.Position
}

func (CreateRoom) Type() string    { return TypeCreateRoom }
func (JoinRoom) Type() string      { return TypeJoinRoom }
func (Move) Type() string          { return TypeMove }
func (TankInput) Type() string     { return TypeTankInput }
func (Chat) Type() string          { return TypeChat }
func (Restart) Type() string       { return TypeRestart }
func (GetRooms) Type() string      { return TypeGetRooms }
func (GetValidMoves) Type() string { return TypeGetValidMoves }

func (that CreateRoom) Dispatch(s *entity.Session, h Handler)    { h.OnCreateRoom(s, that) }
func (that JoinRoom) Dispatch(s *entity.Session, h Handler)      { h.OnJoinRoom(s, that) }
func (that Move) Dispatch(s *entity.Session, h Handler)          { h.OnMove(s, that) }
func (that TankInput) Dispatch(s *entity.Session, h Handler)     { h.OnTankInput(s, that) }
func (that Chat) Dispatch(s *entity.Session, h Handler)          { h.OnChat(s, that) }
func (that Restart) Dispatch(s *entity.Session, h Handler)       { h.OnRestart(s, that) }
func (that GetRooms) Dispatch(s *entity.Session, h Handler)      { h.OnGetRooms(s, that) }
func (that GetValidMoves) Dispatch(s *entity.Session, h Handler) { h.OnGetValidMoves(s, that) }

type envelope struct {
	Type     string             `json:"type"`
	GameType string             `json:"gameType"`
	RoomID   string             `json:"roomId"`
	From     *entity.Position   `json:"from"`
	To       *entity.Position   `json:"to"`
	Keys     *entity.InputState `json:"keys"`
	Message  *string            `json:"message"`
}

// Decode parses one client frame. Any failure wraps apperror.ErrMalformedMessage.
func Decode(data []byte) (Inbound, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedMessage, err)
	}

	switch env.Type {
	case TypeCreateRoom:
		gameType, err := entity.ParseGameType(env.GameType)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedMessage, err)
		}
		return CreateRoom{GameType: gameType}, nil

	case TypeJoinRoom:
		if env.RoomID == "" {
			return nil, missing(env.Type, "roomId")
		}
		return JoinRoom{RoomID: env.RoomID}, nil

	case TypeMove:
		if env.From == nil || env.To == nil {
			return nil, missing(env.Type, "from/to")
		}
		return Move{From: *env.From, To: *env.To}, nil

	case TypeTankInput:
		var keys entity.InputState
		if env.Keys != nil {
			keys = *env.Keys
		}
		return TankInput{Keys: keys}, nil

	case TypeChat:
		if env.Message == nil {
			return nil, missing(env.Type, "message")
		}
		return Chat{Message: *env.Message}, nil

	case TypeRestart:
		return Restart{}, nil

	case TypeGetRooms:
		return GetRooms{}, nil

	case TypeGetValidMoves:
		if env.From == nil {
			return nil, missing(env.Type, "from")
		}
		return GetValidMoves{From: *env.From}, nil

	default:
		return nil, fmt.Errorf("%w: unknown type %q", apperror.ErrMalformedMessage, env.Type)
	}
}

func missing(kind, field string) error {
	return fmt.Errorf("%w: %s requires %s", apperror.ErrMalformedMessage, kind, field)
}
