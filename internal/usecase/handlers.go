package usecase

import (
	"time"

	"go.uber.org/zap"

	"github.com/rocketscienceinc/gamehub-backend/internal/entity"
	"github.com/rocketscienceinc/gamehub-backend/internal/protocol"
	"github.com/rocketscienceinc/gamehub-backend/internal/tank"
)

func (that *Registry) HandleConnect(id string, conn entity.Sender) {
	session := entity.NewSession(id, conn)
	that.store.AddSession(session)

	that.send(session, protocol.NewWelcome(id))

	that.logger.Info("client connected", zap.String("session", id))
}

func (that *Registry) HandleMessage(id string, msg protocol.Inbound) {
	session, ok := that.store.Session(id)
	if !ok {
		that.logger.Warn("message from unknown session", zap.String("session", id), zap.String("type", msg.Type()))
		return
	}

	msg.Dispatch(session, that)
}

func (that *Registry) HandleDisconnect(id string) {
	session, ok := that.store.Session(id)
	if !ok {
		return
	}

	that.store.RemoveSession(id)
	that.LeaveRoom(session)

	that.logger.Info("client disconnected", zap.String("session", id))
}

// Tick advances every tank duel that is still being fought.
func (that *Registry) Tick(now time.Time) {
	for _, room := range that.store.Rooms() {
		if room.GameType != entity.GameTank || room.Tank == nil {
			continue
		}

		if len(room.Members) != entity.MaxRoomMembers || room.Tank.GameOver {
			continue
		}

		result := tank.Step(room.Tank, now)

		that.Broadcast(room.ID, protocol.NewTankState(room.Tank), "")

		if result.Finished {
			that.recordMatch(room)
		}
	}
}

func (that *Registry) reply(session *entity.Session, err error) {
	if err == nil {
		return
	}

	that.logger.Debug("request rejected", zap.String("session", session.ID), zap.Error(err))
	that.send(session, protocol.NewError(err))
}

func (that *Registry) OnCreateRoom(session *entity.Session, msg protocol.CreateRoom) {
	that.reply(session, that.CreateRoom(session, msg.GameType))
}

func (that *Registry) OnJoinRoom(session *entity.Session, msg protocol.JoinRoom) {
	that.reply(session, that.JoinRoom(session, msg.RoomID))
}

func (that *Registry) OnMove(session *entity.Session, msg protocol.Move) {
	that.reply(session, that.SubmitMove(session, msg.From, msg.To))
}

func (that *Registry) OnTankInput(session *entity.Session, msg protocol.TankInput) {
	that.TankInput(session, msg.Keys)
}

func (that *Registry) OnChat(session *entity.Session, msg protocol.Chat) {
	that.reply(session, that.Chat(session, msg.Message))
}

func (that *Registry) OnRestart(session *entity.Session, _ protocol.Restart) {
	that.reply(session, that.Restart(session))
}

func (that *Registry) OnGetRooms(session *entity.Session, _ protocol.GetRooms) {
	that.send(session, protocol.NewRoomList(that.store.Rooms()))
}

func (that *Registry) OnGetValidMoves(session *entity.Session, msg protocol.GetValidMoves) {
	that.reply(session, that.ValidMoves(session, msg.From))
}
