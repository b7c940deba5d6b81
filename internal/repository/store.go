package repository

import (
	"slices"
	"strings"

	"github.com/rocketscienceinc/gamehub-backend/internal/entity"
)

// Store keeps live sessions and rooms in memory. It is not safe for concurrent use; the
// scheduler goroutine owns it.
type Store struct {
	sessions map[string]*entity.Session
	rooms    map[string]*entity.Room
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*entity.Session),
		rooms:    make(map[string]*entity.Room),
	}
}

func (that *Store) AddSession(session *entity.Session) {
	that.sessions[session.ID] = session
}

func (that *Store) Session(id string) (*entity.Session, bool) {
	session, ok := that.sessions[id]
	return session, ok
}

func (that *Store) RemoveSession(id string) {
	delete(that.sessions, id)
}

// Sessions returns every connected session ordered by id.
func (that *Store) Sessions() []*entity.Session {
	sessions := make([]*entity.Session, 0, len(that.sessions))
	for _, session := range that.sessions {
		sessions = append(sessions, session)
	}

	slices.SortFunc(sessions, func(a, b *entity.Session) int {
		return strings.Compare(a.ID, b.ID)
	})

	return sessions
}

func (that *Store) SessionCount() int {
	return len(that.sessions)
}

func (that *Store) AddRoom(room *entity.Room) {
	that.rooms[room.ID] = room
}

func (that *Store) Room(id string) (*entity.Room, bool) {
	room, ok := that.rooms[id]
	return room, ok
}

func (that *Store) HasRoom(id string) bool {
	_, ok := that.rooms[id]
	return ok
}

func (that *Store) RemoveRoom(id string) {
	delete(that.rooms, id)
}

// Rooms returns every open room ordered by creation time, then id.
func (that *Store) Rooms() []*entity.Room {
	rooms := make([]*entity.Room, 0, len(that.rooms))
	for _, room := range that.rooms {
		rooms = append(rooms, room)
	}

	slices.SortFunc(rooms, func(a, b *entity.Room) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return rooms
}
