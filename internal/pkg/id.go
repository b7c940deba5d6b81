package pkg

import (
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"
)

const (
	roomCodeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	roomCodeLength  = 6
)

func GenerateClientID() string {
	return "client_" + uuid.NewString()
}

// GenerateRoomID returns room_ followed by six upper-case alphanumerics.
func GenerateRoomID() (string, error) {
	b := make([]byte, roomCodeLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	for i := range b {
		b[i] = roomCodeLetters[int(b[i])%len(roomCodeLetters)]
	}

	return "room_" + string(b), nil
}

// GenerateMatchID identifies an archived match.
func GenerateMatchID() string {
	return uuid.NewString()
}
