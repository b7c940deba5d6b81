package tank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gamehub-backend/internal/entity"
)

const tick = 50 * time.Millisecond

// duel returns an arena with a red tank "a" and a blue tank "b" at their spawn points.
func duel() (*entity.TankState, *entity.TankPlayer, *entity.TankPlayer) {
	state := NewArena()
	a := Spawn(state, "a", entity.ColorRed)
	b := Spawn(state, "b", entity.ColorBlue)
	return state, a, b
}

func TestSpawn(t *testing.T) {
	t.Run("Places tanks at the point of their color", func(t *testing.T) {
		// Given: an empty arena
		state := NewArena()

		// When: spawning blue first, then red
		blue := Spawn(state, "b", entity.ColorBlue)
		red := Spawn(state, "a", entity.ColorRed)

		// Then: each tank stands on its own spawn point with full health
		assert.InDelta(t, 700, blue.X, 0.001)
		assert.InDelta(t, 500, blue.Y, 0.001)
		assert.InDelta(t, 100, red.X, 0.001)
		assert.InDelta(t, 100, red.Y, 0.001)
		assert.InDelta(t, MaxHealth, red.Health, 0.001)
		assert.True(t, red.Alive)
		assert.Equal(t, entity.InputState{}, red.Keys)
	})

	t.Run("Keeps an existing tank", func(t *testing.T) {
		state, a, _ := duel()
		a.X = 300

		again := Spawn(state, "a", entity.ColorRed)

		assert.Same(t, a, again)
		assert.InDelta(t, 300, again.X, 0.001)
	})
}

func TestStep_Movement(t *testing.T) {
	t.Run("Moves right and faces east", func(t *testing.T) {
		state, a, _ := duel()
		a.Keys.Right = true

		Step(state, time.Now())

		assert.InDelta(t, 103, a.X, 0.001)
		assert.InDelta(t, 100, a.Y, 0.001)
		assert.InDelta(t, 0, a.Direction, 0.001)
	})

	t.Run("Diagonal movement is normalized", func(t *testing.T) {
		// Given: a tank holding up and right
		state, a, _ := duel()
		a.Keys.Up = true
		a.Keys.Right = true

		// When: stepping once
		Step(state, time.Now())

		// Then: it moves 3*0.7071 on each axis heading -45 degrees
		assert.InDelta(t, 100+3*0.7071, a.X, 0.001)
		assert.InDelta(t, 100-3*0.7071, a.Y, 0.001)
		assert.InDelta(t, -45, a.Direction, 0.001)
		assert.InDelta(t, -45, a.TurretDirection, 0.001)
	})

	t.Run("Stays inside the walls", func(t *testing.T) {
		state, a, _ := duel()
		a.X = WallMargin + TankRadius + 1
		a.Keys.Left = true

		Step(state, time.Now())

		assert.InDelta(t, WallMargin+TankRadius, a.X, 0.001)
	})

	t.Run("Idle tank keeps its heading", func(t *testing.T) {
		state, a, _ := duel()
		a.Direction = 90
		a.TurretDirection = 90

		Step(state, time.Now())

		assert.InDelta(t, 90, a.Direction, 0.001)
	})
}

func TestStep_Firing(t *testing.T) {
	t.Run("Spawns a bullet at the turret tip", func(t *testing.T) {
		// Given: a tank holding shoot with no previous shot
		state, a, _ := duel()
		a.Keys.Shoot = true
		now := time.Now()

		// When: stepping once
		result := Step(state, now)

		// Then: exactly one bullet sits at the turret tip
		assert.Equal(t, 1, result.Fired)
		require.Len(t, state.Bullets, 1)
		bullet := state.Bullets[0]
		assert.InDelta(t, 100+TurretLength, bullet.X, 0.001)
		assert.InDelta(t, 100, bullet.Y, 0.001)
		assert.Equal(t, "a", bullet.Owner)
		assert.Equal(t, 0, bullet.Bounces)
		assert.Equal(t, BulletMaxBounces, bullet.MaxBounces)
		assert.Equal(t, entity.ColorRed, bullet.Color)
		assert.Equal(t, now, a.LastShot)

		// And: it travels on the next step
		a.Keys.Shoot = false
		Step(state, now.Add(tick))
		assert.InDelta(t, 100+TurretLength+BulletSpeed, bullet.X, 0.001)
	})

	t.Run("Fires once per cooldown interval, not once per tick", func(t *testing.T) {
		// Given: a tank holding shoot
		state, a, _ := duel()
		a.Keys.Shoot = true
		start := time.Now()

		// When: stepping 20 ticks of 50ms
		fired := 0
		for i := range 20 {
			fired += Step(state, start.Add(time.Duration(i)*tick)).Fired
		}

		// Then: one bullet per 500ms
		assert.Equal(t, 2, fired)
		assert.Len(t, state.Bullets, 2)
	})

	t.Run("Dead tanks do not fire", func(t *testing.T) {
		state, a, _ := duel()
		a.Keys.Shoot = true
		a.Alive = false
		a.Health = 0

		result := Step(state, time.Now())

		assert.Equal(t, 0, result.Fired)
	})
}

func TestStep_Bullets(t *testing.T) {
	t.Run("Reflects off a side wall", func(t *testing.T) {
		// Given: a bullet about to hit the right wall
		state, _, _ := duel()
		bullet := &entity.Bullet{X: 770, Y: 300, Speed: BulletSpeed, MaxBounces: BulletMaxBounces, Active: true, Owner: "a"}
		state.Bullets = append(state.Bullets, bullet)

		// When: stepping
		Step(state, time.Now())

		// Then: it is clamped and heading west
		assert.InDelta(t, ArenaWidth-WallMargin-BulletRadius, bullet.X, 0.001)
		assert.InDelta(t, 180, bullet.Direction, 0.001)
		assert.Equal(t, 1, bullet.Bounces)
		assert.True(t, bullet.Active)
	})

	t.Run("Reflects off the top wall", func(t *testing.T) {
		state, _, _ := duel()
		bullet := &entity.Bullet{X: 400, Y: 30, Direction: -90, Speed: BulletSpeed, MaxBounces: BulletMaxBounces, Active: true, Owner: "a"}
		state.Bullets = append(state.Bullets, bullet)

		Step(state, time.Now())

		assert.InDelta(t, WallMargin+BulletRadius, bullet.Y, 0.001)
		assert.InDelta(t, 90, bullet.Direction, 0.001)
		assert.Equal(t, 1, bullet.Bounces)
	})

	t.Run("Removed after reaching the bounce limit", func(t *testing.T) {
		state, _, _ := duel()
		state.Bullets = append(state.Bullets, &entity.Bullet{
			X: 770, Y: 300, Speed: BulletSpeed, Bounces: BulletMaxBounces - 1, MaxBounces: BulletMaxBounces, Active: true, Owner: "a",
		})

		Step(state, time.Now())

		assert.Empty(t, state.Bullets)
	})
}

func TestStep_Collision(t *testing.T) {
	t.Run("Damages the target and removes the bullet", func(t *testing.T) {
		// Given: a red bullet on top of the blue tank
		state, _, b := duel()
		state.Bullets = append(state.Bullets, &entity.Bullet{X: b.X, Y: b.Y, Owner: "a", Active: true, MaxBounces: BulletMaxBounces})

		// When: stepping
		result := Step(state, time.Now())

		// Then: blue loses one hit of health
		assert.InDelta(t, MaxHealth-BulletDamage, b.Health, 0.001)
		assert.True(t, b.Alive)
		assert.Empty(t, state.Bullets)
		assert.False(t, result.Finished)
	})

	t.Run("Owner is never hit by its own bullet", func(t *testing.T) {
		state, a, _ := duel()
		state.Bullets = append(state.Bullets, &entity.Bullet{X: a.X, Y: a.Y, Owner: "a", Active: true, MaxBounces: BulletMaxBounces})

		Step(state, time.Now())

		assert.InDelta(t, MaxHealth, a.Health, 0.001)
		assert.Len(t, state.Bullets, 1)
	})

	t.Run("Health is clamped at zero and the survivor wins", func(t *testing.T) {
		// Given: a blue tank with less health than one hit
		state, _, b := duel()
		b.Health = 10
		state.Bullets = append(state.Bullets, &entity.Bullet{X: b.X, Y: b.Y, Owner: "a", Active: true, MaxBounces: BulletMaxBounces})

		// When: stepping
		result := Step(state, time.Now())

		// Then: blue is dead at zero health and red wins
		assert.Zero(t, b.Health)
		assert.False(t, b.Alive)
		assert.True(t, result.Finished)
		assert.True(t, state.GameOver)
		require.NotNil(t, state.Winner)
		assert.Equal(t, entity.ColorRed, *state.Winner)
	})

	t.Run("Mutual destruction is a draw", func(t *testing.T) {
		state, a, b := duel()
		a.Health = 10
		b.Health = 10
		state.Bullets = append(state.Bullets,
			&entity.Bullet{X: b.X, Y: b.Y, Owner: "a", Active: true, MaxBounces: BulletMaxBounces},
			&entity.Bullet{X: a.X, Y: a.Y, Owner: "b", Active: true, MaxBounces: BulletMaxBounces},
		)

		result := Step(state, time.Now())

		assert.True(t, result.Finished)
		assert.True(t, state.GameOver)
		assert.Nil(t, state.Winner)
	})

	t.Run("A finished arena is frozen", func(t *testing.T) {
		state, a, _ := duel()
		state.GameOver = true
		a.Keys.Right = true

		Step(state, time.Now())

		assert.InDelta(t, 100, a.X, 0.001)
	})

	t.Run("A lone tank never wins", func(t *testing.T) {
		state := NewArena()
		Spawn(state, "a", entity.ColorRed)

		result := Step(state, time.Now())

		assert.False(t, result.Finished)
		assert.False(t, state.GameOver)
	})
}

func TestInputs(t *testing.T) {
	state, a, _ := duel()

	ok := SetInput(state, "a", entity.InputState{Up: true, Shoot: true})
	require.True(t, ok)
	assert.True(t, a.Keys.Up)

	assert.False(t, SetInput(state, "ghost", entity.InputState{Up: true}))

	Neutralize(state, "a")
	assert.Equal(t, entity.InputState{}, a.Keys)
}
