package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Color identifies a participant: red/black in xiangqi, red/blue in the tank arena.
type Color string

const (
	ColorRed   Color = "red"
	ColorBlack Color = "black"
	ColorBlue  Color = "blue"
)

// Opponent returns the other xiangqi side.
func (that Color) Opponent() Color {
	if that == ColorRed {
		return ColorBlack
	}
	return ColorRed
}

type PieceKind uint8

const (
	NoPiece PieceKind = iota
	King
	Advisor
	Elephant
	Horse
	Chariot
	Cannon
	Pawn
)

var ErrUnknownPiece = errors.New("unknown piece")

var pieceLetters = map[PieceKind]string{
	King:     "k",
	Advisor:  "a",
	Elephant: "b",
	Horse:    "n",
	Chariot:  "r",
	Cannon:   "c",
	Pawn:     "p",
}

func (that PieceKind) String() string {
	switch that {
	case King:
		return "king"
	case Advisor:
		return "advisor"
	case Elephant:
		return "elephant"
	case Horse:
		return "horse"
	case Chariot:
		return "chariot"
	case Cannon:
		return "cannon"
	case Pawn:
		return "pawn"
	default:
		return "none"
	}
}

// Piece is an immutable value. The zero value is an empty cell.
type Piece struct {
	Kind PieceKind
	Side Color
}

func NewPiece(kind PieceKind, side Color) Piece {
	return Piece{Kind: kind, Side: side}
}

func (that Piece) IsEmpty() bool {
	return that.Kind == NoPiece
}

// Letter encodes the piece the way clients draw it: upper case for red, lower case for black.
func (that Piece) Letter() string {
	letter, ok := pieceLetters[that.Kind]
	if !ok {
		return ""
	}

	if that.Side == ColorRed {
		return strings.ToUpper(letter)
	}

	return letter
}

func (that Piece) String() string {
	if that.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%s %s", that.Side, that.Kind)
}

// ParsePiece decodes a single piece letter.
func ParsePiece(letter string) (Piece, error) {
	if len(letter) != 1 {
		return Piece{}, fmt.Errorf("%w: %q", ErrUnknownPiece, letter)
	}

	lower := strings.ToLower(letter)
	for kind, l := range pieceLetters {
		if l != lower {
			continue
		}

		side := ColorBlack
		if letter != lower {
			side = ColorRed
		}

		return NewPiece(kind, side), nil
	}

	return Piece{}, fmt.Errorf("%w: %q", ErrUnknownPiece, letter)
}

func (that Piece) MarshalJSON() ([]byte, error) {
	if that.IsEmpty() {
		return []byte("null"), nil
	}
	return json.Marshal(that.Letter())
}

func (that *Piece) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*that = Piece{}
		return nil
	}

	var letter string
	if err := json.Unmarshal(data, &letter); err != nil {
		return fmt.Errorf("failed to unmarshal piece: %w", err)
	}

	piece, err := ParsePiece(letter)
	if err != nil {
		return err
	}

	*that = piece

	return nil
}
