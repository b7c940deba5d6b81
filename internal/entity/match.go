package entity

import "time"

// MatchResult is the archived summary of a finished game.
type MatchResult struct {
	ID         string       `json:"id"`
	RoomID     string       `json:"roomId"`
	GameType   GameType     `json:"gameType"`
	Winner     *Color       `json:"winner"`
	Players    []string     `json:"players"`
	Moves      int          `json:"moves"`
	History    []MoveRecord `json:"history,omitempty"`
	FinishedAt time.Time    `json:"finishedAt"`
}
