package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/gamehub-backend/internal/protocol"
)

type runner interface {
	Do(ctx context.Context, fn func()) error
}

// RoomDirectory reads registry state from outside the scheduler goroutine.
type RoomDirectory struct {
	runner   runner
	registry *Registry
}

func NewRoomDirectory(runner runner, registry *Registry) *RoomDirectory {
	return &RoomDirectory{
		runner:   runner,
		registry: registry,
	}
}

func (that *RoomDirectory) Rooms(ctx context.Context) ([]protocol.RoomSummary, error) {
	var rooms []protocol.RoomSummary

	err := that.runner.Do(ctx, func() {
		rooms = protocol.NewRoomList(that.registry.ListRooms()).Rooms
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return rooms, nil
}

func (that *RoomDirectory) SessionCount(ctx context.Context) (int, error) {
	var count int

	err := that.runner.Do(ctx, func() {
		count = that.registry.SessionCount()
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	return count, nil
}
