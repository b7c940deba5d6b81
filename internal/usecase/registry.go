package usecase

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rocketscienceinc/gamehub-backend/internal/apperror"
	"github.com/rocketscienceinc/gamehub-backend/internal/entity"
	"github.com/rocketscienceinc/gamehub-backend/internal/pkg"
	"github.com/rocketscienceinc/gamehub-backend/internal/protocol"
	"github.com/rocketscienceinc/gamehub-backend/internal/repository"
	"github.com/rocketscienceinc/gamehub-backend/internal/tank"
	"github.com/rocketscienceinc/gamehub-backend/internal/xiangqi"
)

const roomIDAttempts = 5

var ErrRoomIDExhausted = errors.New("could not allocate a free room id")

type archiver interface {
	Record(match *entity.MatchResult)
}

// Registry routes client messages to rooms and fans results back out. It is driven by
// the scheduler and must only be called from the scheduler goroutine.
type Registry struct {
	logger  *zap.Logger
	store   *repository.Store
	archive archiver

	now       func() time.Time
	newRoomID func() (string, error)
}

func NewRegistry(logger *zap.Logger, store *repository.Store, archive archiver) *Registry {
	return &Registry{
		logger:  logger.With(zap.String("component", "registry")),
		store:   store,
		archive: archive,

		now:       time.Now,
		newRoomID: pkg.GenerateRoomID,
	}
}

func (that *Registry) CreateRoom(session *entity.Session, gameType entity.GameType) error {
	log := that.logger.With(zap.String("method", "CreateRoom"), zap.String("session", session.ID))

	if session.InRoom() {
		that.LeaveRoom(session)
	}

	roomID, err := that.allocateRoomID()
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	room := &entity.Room{
		ID:        roomID,
		GameType:  gameType,
		CreatedAt: that.now(),
	}

	switch gameType {
	case entity.GameTank:
		room.Tank = tank.NewArena()
	default:
		room.GameType = entity.GameChess
		room.Chess = entity.NewChessState()
	}

	room.AddMember(session.ID)
	session.RoomID = room.ID
	session.Color = entity.ColorRed

	that.store.AddRoom(room)

	that.send(session, protocol.NewRoomCreated(room, session.Color))
	that.broadcastRoomList()

	log.Info("room created", zap.String("room", room.ID), zap.String("game", string(room.GameType)))

	return nil
}

func (that *Registry) allocateRoomID() (string, error) {
	for range roomIDAttempts {
		id, err := that.newRoomID()
		if err != nil {
			return "", fmt.Errorf("failed to generate room id: %w", err)
		}

		if !that.store.HasRoom(id) {
			return id, nil
		}
	}

	return "", ErrRoomIDExhausted
}

func (that *Registry) JoinRoom(session *entity.Session, roomID string) error {
	log := that.logger.With(zap.String("method", "JoinRoom"), zap.String("session", session.ID))

	room, ok := that.store.Room(roomID)
	if !ok {
		return apperror.ErrRoomNotFound
	}

	if room.HasMember(session.ID) {
		that.send(session, protocol.NewRoomJoined(room, session.Color, that.opponentOf(room, session.ID)))
		return nil
	}

	if room.IsFull() {
		return apperror.ErrRoomFull
	}

	if session.InRoom() {
		that.LeaveRoom(session)
	}

	color := that.joinerColor(room)

	room.AddMember(session.ID)
	session.RoomID = room.ID
	session.Color = color

	if room.IsFull() {
		switch room.GameType {
		case entity.GameTank:
			that.spawnMembers(room)
		case entity.GameChess:
			xiangqi.Start(room.Chess)
		}
	}

	that.send(session, protocol.NewRoomJoined(room, color, that.opponentOf(room, session.ID)))
	that.Broadcast(room.ID, protocol.NewPlayerJoined(room, session.ID, color), session.ID)
	that.broadcastRoomList()

	log.Info("room joined", zap.String("room", room.ID), zap.String("color", string(color)))

	return nil
}

// joinerColor picks the side not held by whoever is already in the room.
func (that *Registry) joinerColor(room *entity.Room) entity.Color {
	var held entity.Color
	for _, id := range room.Members {
		if member, ok := that.store.Session(id); ok {
			held = member.Color
		}
	}

	if room.GameType == entity.GameTank {
		if held == entity.ColorBlue {
			return entity.ColorRed
		}
		return entity.ColorBlue
	}

	if held == entity.ColorBlack {
		return entity.ColorRed
	}
	return entity.ColorBlack
}

// spawnMembers gives every member a tank. Tanks left behind by departed players are removed.
func (that *Registry) spawnMembers(room *entity.Room) {
	for id := range room.Tank.Players {
		if !room.HasMember(id) {
			delete(room.Tank.Players, id)
		}
	}

	for _, id := range room.Members {
		member, ok := that.store.Session(id)
		if !ok {
			continue
		}
		tank.Spawn(room.Tank, id, member.Color)
	}
}

func (that *Registry) opponentOf(room *entity.Room, sessionID string) string {
	for _, id := range room.Members {
		if id != sessionID {
			return id
		}
	}
	return ""
}

// LeaveRoom detaches session from its room. The room is destroyed once empty.
func (that *Registry) LeaveRoom(session *entity.Session) {
	if !session.InRoom() {
		return
	}

	log := that.logger.With(zap.String("method", "LeaveRoom"), zap.String("session", session.ID))

	room, ok := that.store.Room(session.RoomID)
	session.Reset()

	if !ok {
		return
	}

	room.RemoveMember(session.ID)

	if room.Tank != nil {
		tank.Neutralize(room.Tank, session.ID)
	}

	that.Broadcast(room.ID, protocol.NewPlayerLeft(session.ID), session.ID)

	if room.IsEmpty() {
		that.store.RemoveRoom(room.ID)
		log.Info("room removed", zap.String("room", room.ID))
	}

	that.broadcastRoomList()
}

func (that *Registry) SubmitMove(session *entity.Session, from, to entity.Position) error {
	room, err := that.roomOf(session)
	if err != nil {
		return err
	}

	if room.GameType != entity.GameChess {
		return apperror.ErrWrongGameType
	}

	record, err := xiangqi.SubmitMove(room.Chess, session.Color, from, to)
	if err != nil {
		return fmt.Errorf("failed to submit move: %w", err)
	}

	check := !room.Chess.GameOver && xiangqi.InCheck(&room.Chess.Board, room.Chess.Turn)

	that.Broadcast(room.ID, protocol.NewMoveMade(room.Chess, record, session.ID, check), "")

	if room.Chess.GameOver {
		that.recordMatch(room)
	}

	return nil
}

func (that *Registry) ValidMoves(session *entity.Session, from entity.Position) error {
	room, err := that.roomOf(session)
	if err != nil {
		return err
	}

	if room.GameType != entity.GameChess {
		return apperror.ErrWrongGameType
	}

	that.send(session, protocol.NewValidMoves(from, xiangqi.ValidMoves(&room.Chess.Board, from)))

	return nil
}

// TankInput replaces the held keys of the session's tank. Input that cannot apply is ignored.
func (that *Registry) TankInput(session *entity.Session, keys entity.InputState) {
	room, err := that.roomOf(session)
	if err != nil || room.Tank == nil {
		return
	}

	tank.SetInput(room.Tank, session.ID, keys)
}

func (that *Registry) Chat(session *entity.Session, message string) error {
	room, err := that.roomOf(session)
	if err != nil {
		return err
	}

	that.Broadcast(room.ID, protocol.NewChatMessage(session.ID, message, that.now().Format(time.TimeOnly)), "")

	return nil
}

func (that *Registry) Restart(session *entity.Session) error {
	room, err := that.roomOf(session)
	if err != nil {
		return err
	}

	switch room.GameType {
	case entity.GameTank:
		room.Tank = tank.NewArena()
		if room.IsFull() {
			that.spawnMembers(room)
		}
	case entity.GameChess:
		xiangqi.Restart(room.Chess)
	}

	that.Broadcast(room.ID, protocol.NewGameRestarted(room), "")

	that.logger.Info("game restarted", zap.String("room", room.ID), zap.String("session", session.ID))

	return nil
}

func (that *Registry) ListRooms() []*entity.Room {
	return that.store.Rooms()
}

func (that *Registry) SessionCount() int {
	return that.store.SessionCount()
}

// Broadcast sends msg to every member of roomID except exclude.
func (that *Registry) Broadcast(roomID string, msg any, exclude string) {
	room, ok := that.store.Room(roomID)
	if !ok {
		return
	}

	data, err := protocol.Encode(msg)
	if err != nil {
		that.logger.Error("failed to encode broadcast", zap.String("room", roomID), zap.Error(err))
		return
	}

	for _, id := range room.Members {
		if id == exclude {
			continue
		}

		if member, ok := that.store.Session(id); ok {
			member.Conn.Send(data)
		}
	}
}

func (that *Registry) broadcastRoomList() {
	data, err := protocol.Encode(protocol.NewRoomList(that.store.Rooms()))
	if err != nil {
		that.logger.Error("failed to encode room list", zap.Error(err))
		return
	}

	for _, session := range that.store.Sessions() {
		session.Conn.Send(data)
	}
}

func (that *Registry) send(session *entity.Session, msg any) {
	data, err := protocol.Encode(msg)
	if err != nil {
		that.logger.Error("failed to encode message", zap.String("session", session.ID), zap.Error(err))
		return
	}

	session.Conn.Send(data)
}

func (that *Registry) roomOf(session *entity.Session) (*entity.Room, error) {
	if !session.InRoom() {
		return nil, apperror.ErrNotInRoom
	}

	room, ok := that.store.Room(session.RoomID)
	if !ok {
		return nil, apperror.ErrNotInRoom
	}

	return room, nil
}

func (that *Registry) recordMatch(room *entity.Room) {
	match := &entity.MatchResult{
		ID:         pkg.GenerateMatchID(),
		RoomID:     room.ID,
		GameType:   room.GameType,
		Players:    append([]string(nil), room.Members...),
		FinishedAt: that.now(),
	}

	switch room.GameType {
	case entity.GameTank:
		match.Winner = room.Tank.Winner
	case entity.GameChess:
		match.Winner = room.Chess.Winner
		match.Moves = len(room.Chess.History)
		match.History = append([]entity.MoveRecord(nil), room.Chess.History...)
	}

	that.archive.Record(match)

	that.logger.Info("match finished", zap.String("room", room.ID), zap.String("match", match.ID))
}
