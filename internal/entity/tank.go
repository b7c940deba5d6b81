package entity

import "time"

type InputState struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Shoot bool `json:"shoot"`
}

type TankPlayer struct {
	ID              string     `json:"id"`
	X               float64    `json:"x"`
	Y               float64    `json:"y"`
	Direction       float64    `json:"direction"`
	TurretDirection float64    `json:"turretDirection"`
	Health          float64    `json:"health"`
	MaxHealth       float64    `json:"maxHealth"`
	Alive           bool       `json:"isAlive"`
	Color           Color      `json:"color"`
	Keys            InputState `json:"keys"`
	LastShot        time.Time  `json:"-"`
}

type Bullet struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Direction  float64 `json:"direction"`
	Owner      string  `json:"owner"`
	Bounces    int     `json:"bounces"`
	MaxBounces int     `json:"maxBounces"`
	Speed      float64 `json:"speed"`
	Color      Color   `json:"color"`
	Active     bool    `json:"active"`
}

type SpawnPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color Color   `json:"color"`
}

type TankState struct {
	Players     map[string]*TankPlayer `json:"players"`
	Bullets     []*Bullet              `json:"bullets"`
	SpawnPoints []SpawnPoint           `json:"spawnPoints"`
	Width       float64                `json:"width"`
	Height      float64                `json:"height"`
	GameOver    bool                   `json:"gameOver"`
	Winner      *Color                 `json:"winner"`
}

// AliveCount reports how many tanks are still in the fight.
func (that *TankState) AliveCount() int {
	count := 0
	for _, player := range that.Players {
		if player.Alive {
			count++
		}
	}
	return count
}
