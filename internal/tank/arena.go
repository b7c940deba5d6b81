package tank

import (
	"github.com/rocketscienceinc/gamehub-backend/internal/entity"
)

const (
	ArenaWidth  = 800
	ArenaHeight = 600
	WallMargin  = 20

	TankRadius = 12
	TankSpeed  = 3
	MaxHealth  = 100

	TurretLength = 18

	BulletSpeed      = 8
	BulletRadius     = 4
	BulletMaxBounces = 5
	BulletDamage     = 33.4

	diagonalFactor = 0.7071
)

// NewArena returns an empty arena with the two fixed spawn points.
func NewArena() *entity.TankState {
	return &entity.TankState{
		Players: map[string]*entity.TankPlayer{},
		Bullets: []*entity.Bullet{},
		SpawnPoints: []entity.SpawnPoint{
			{X: 100, Y: 100, Color: entity.ColorRed},
			{X: 700, Y: 500, Color: entity.ColorBlue},
		},
		Width:  ArenaWidth,
		Height: ArenaHeight,
	}
}

// Spawn places a tank for id at the spawn point of its color. An existing tank is kept.
func Spawn(state *entity.TankState, id string, color entity.Color) *entity.TankPlayer {
	if player, ok := state.Players[id]; ok {
		return player
	}

	spawn := spawnPointFor(state, color)

	player := &entity.TankPlayer{
		ID:        id,
		X:         spawn.X,
		Y:         spawn.Y,
		Health:    MaxHealth,
		MaxHealth: MaxHealth,
		Alive:     true,
		Color:     spawn.Color,
	}
	state.Players[id] = player

	return player
}

// Neutralize releases every input of id, leaving the tank inert.
func Neutralize(state *entity.TankState, id string) {
	if player, ok := state.Players[id]; ok {
		player.Keys = entity.InputState{}
	}
}

// SetInput replaces the held inputs of id. It reports false when id has no tank.
func SetInput(state *entity.TankState, id string, keys entity.InputState) bool {
	player, ok := state.Players[id]
	if !ok {
		return false
	}

	player.Keys = keys

	return true
}

func spawnPointFor(state *entity.TankState, color entity.Color) entity.SpawnPoint {
	for _, point := range state.SpawnPoints {
		if point.Color == color {
			return point
		}
	}

	// fall back to the next point in turn order
	return state.SpawnPoints[len(state.Players)%len(state.SpawnPoints)]
}
