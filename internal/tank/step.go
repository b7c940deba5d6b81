package tank

import (
	"math"
	"slices"
	"time"

	"github.com/rocketscienceinc/gamehub-backend/internal/entity"
)

const FireCooldown = 500 * time.Millisecond

type StepResult struct {
	Fired    int
	Finished bool
}

// Step advances the arena by one tick. Tanks are processed in id order so a step is
// deterministic for a given state and now.
func Step(state *entity.TankState, now time.Time) StepResult {
	var result StepResult

	if state.GameOver {
		return result
	}

	players := sortedPlayers(state)

	for _, player := range players {
		if player.Alive {
			drive(state, player)
		}
	}

	// bullets fired on this tick stay at the turret tip until the next one
	existing := len(state.Bullets)

	for _, player := range players {
		if player.Alive && fire(state, player, now) {
			result.Fired++
		}
	}

	for _, bullet := range state.Bullets[:existing] {
		if bullet.Active {
			advance(state, bullet)
		}
	}

	collide(state, players)

	state.Bullets = slices.DeleteFunc(state.Bullets, func(b *entity.Bullet) bool {
		return !b.Active
	})

	result.Finished = decide(state, players)

	return result
}

func sortedPlayers(state *entity.TankState) []*entity.TankPlayer {
	players := make([]*entity.TankPlayer, 0, len(state.Players))
	for _, player := range state.Players {
		players = append(players, player)
	}

	slices.SortFunc(players, func(a, b *entity.TankPlayer) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	return players
}

func drive(state *entity.TankState, player *entity.TankPlayer) {
	var dx, dy float64

	if player.Keys.Left {
		dx--
	}
	if player.Keys.Right {
		dx++
	}
	if player.Keys.Up {
		dy--
	}
	if player.Keys.Down {
		dy++
	}

	if dx != 0 && dy != 0 {
		dx *= diagonalFactor
		dy *= diagonalFactor
	}

	player.X = clamp(player.X+dx*TankSpeed, WallMargin+TankRadius, state.Width-WallMargin-TankRadius)
	player.Y = clamp(player.Y+dy*TankSpeed, WallMargin+TankRadius, state.Height-WallMargin-TankRadius)

	if dx != 0 || dy != 0 {
		player.Direction = degrees(math.Atan2(dy, dx))
		player.TurretDirection = player.Direction
	}
}

func fire(state *entity.TankState, player *entity.TankPlayer, now time.Time) bool {
	if !player.Keys.Shoot {
		return false
	}

	if !player.LastShot.IsZero() && now.Sub(player.LastShot) < FireCooldown {
		return false
	}

	rad := radians(player.TurretDirection)

	state.Bullets = append(state.Bullets, &entity.Bullet{
		X:          player.X + TurretLength*math.Cos(rad),
		Y:          player.Y + TurretLength*math.Sin(rad),
		Direction:  player.TurretDirection,
		Owner:      player.ID,
		MaxBounces: BulletMaxBounces,
		Speed:      BulletSpeed,
		Color:      player.Color,
		Active:     true,
	})
	player.LastShot = now

	return true
}

func advance(state *entity.TankState, bullet *entity.Bullet) {
	rad := radians(bullet.Direction)
	x := bullet.X + bullet.Speed*math.Cos(rad)
	y := bullet.Y + bullet.Speed*math.Sin(rad)

	minX, maxX := float64(WallMargin+BulletRadius), state.Width-WallMargin-BulletRadius
	minY, maxY := float64(WallMargin+BulletRadius), state.Height-WallMargin-BulletRadius

	if x <= minX || x >= maxX {
		bullet.Direction = 180 - bullet.Direction
		bullet.Bounces++
		x = clamp(x, minX, maxX)
	}

	if y <= minY || y >= maxY {
		bullet.Direction = -bullet.Direction
		bullet.Bounces++
		y = clamp(y, minY, maxY)
	}

	bullet.X = x
	bullet.Y = y

	if bullet.Bounces >= bullet.MaxBounces {
		bullet.Active = false
	}
}

func collide(state *entity.TankState, players []*entity.TankPlayer) {
	for _, bullet := range state.Bullets {
		for _, player := range players {
			if !bullet.Active {
				break
			}

			if !player.Alive || player.ID == bullet.Owner {
				continue
			}

			if math.Hypot(player.X-bullet.X, player.Y-bullet.Y) >= BulletRadius+TankRadius {
				continue
			}

			player.Health -= BulletDamage
			if player.Health <= 0 {
				player.Health = 0
				player.Alive = false
			}
			bullet.Active = false
		}
	}
}

// decide ends the game once at most one tank of a duel is left. No survivors is a draw.
func decide(state *entity.TankState, players []*entity.TankPlayer) bool {
	if len(players) < 2 {
		return false
	}

	var survivors []*entity.TankPlayer
	for _, player := range players {
		if player.Alive {
			survivors = append(survivors, player)
		}
	}

	switch len(survivors) {
	case 0:
		state.GameOver = true
		state.Winner = nil
	case 1:
		winner := survivors[0].Color
		state.GameOver = true
		state.Winner = &winner
	default:
		return false
	}

	return true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
