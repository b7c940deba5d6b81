package entity

// Sender delivers an encoded message to a connected client without blocking.
type Sender interface {
	Send(data []byte)
}

type Session struct {
	ID     string
	Conn   Sender
	RoomID string
	Color  Color
}

func NewSession(id string, conn Sender) *Session {
	return &Session{ID: id, Conn: conn}
}

func (that *Session) InRoom() bool {
	return that.RoomID != ""
}

// Reset drops room membership.
func (that *Session) Reset() {
	that.RoomID = ""
	that.Color = ""
}
