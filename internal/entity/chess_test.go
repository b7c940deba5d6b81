package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gamehub-backend/internal/apperror"
)

func TestChessStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when match status is finished", func(t *testing.T) {
		// Given: a match with StatusFinished
		state := &ChessState{Status: StatusFinished}

		// When: checking if the match is finished
		isFinished := state.IsFinished()

		// Then: it should return true
		assert.True(t, isFinished)
	})

	t.Run("IsOngoing returns true when match status is ongoing", func(t *testing.T) {
		// Given: a match with StatusOngoing
		state := &ChessState{Status: StatusOngoing}

		// When / Then
		assert.True(t, state.IsOngoing())
		assert.False(t, state.IsWaiting())
	})

	t.Run("IsWaiting returns true for a new match", func(t *testing.T) {
		// Given: a freshly created match
		state := NewChessState()

		// Then: it waits for a second player with red to move
		assert.True(t, state.IsWaiting())
		assert.Equal(t, ColorRed, state.Turn)
		assert.Empty(t, state.History)
		assert.False(t, state.GameOver)
		assert.Nil(t, state.Winner)
	})
}

func TestChessState_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when match is ongoing", func(t *testing.T) {
		// Given: a match with StatusOngoing
		state := &ChessState{Status: StatusOngoing}

		// When: checking if the match accepts moves
		err := state.ConfirmOngoingState()

		// Then: it should return nil error
		assert.NoError(t, err)
	})

	t.Run("Returns ErrGameIsNotStarted when match is waiting", func(t *testing.T) {
		state := &ChessState{Status: StatusWaiting}

		err := state.ConfirmOngoingState()

		assert.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when match is finished", func(t *testing.T) {
		// Given: a match that was won by black
		state := NewChessState()
		state.Finish(ColorBlack)

		// When: checking if the match accepts moves
		err := state.ConfirmOngoingState()

		// Then: it should return ErrGameFinished
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
		require.NotNil(t, state.Winner)
		assert.Equal(t, ColorBlack, *state.Winner)
		assert.True(t, state.GameOver)
	})

	t.Run("Returns error for unknown match status", func(t *testing.T) {
		state := &ChessState{Status: "unknown"}

		err := state.ConfirmOngoingState()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownGameStatus)
	})
}

func TestNewStandardBoard(t *testing.T) {
	// Given: the standard starting layout
	board := NewStandardBoard()

	// Then: every side has its pieces in place
	count := 0
	for row := range BoardRows {
		for col := range BoardCols {
			if !board.At(Pos(row, col)).IsEmpty() {
				count++
			}
		}
	}
	assert.Equal(t, 32, count)

	assert.Equal(t, NewPiece(King, ColorBlack), board.At(Pos(0, 4)))
	assert.Equal(t, NewPiece(King, ColorRed), board.At(Pos(9, 4)))
	assert.Equal(t, NewPiece(Cannon, ColorBlack), board.At(Pos(2, 1)))
	assert.Equal(t, NewPiece(Cannon, ColorRed), board.At(Pos(7, 7)))
	assert.Equal(t, NewPiece(Pawn, ColorRed), board.At(Pos(6, 0)))
	assert.Equal(t, NewPiece(Pawn, ColorBlack), board.At(Pos(3, 8)))
	assert.Equal(t, NewPiece(Elephant, ColorRed), board.At(Pos(9, 2)))
	assert.True(t, board.At(Pos(4, 4)).IsEmpty())
}

func TestBoard_Move(t *testing.T) {
	t.Run("Returns captured piece and clears origin", func(t *testing.T) {
		// Given: a red chariot facing a black pawn
		var board Board
		board.Set(Pos(5, 0), NewPiece(Chariot, ColorRed))
		board.Set(Pos(3, 0), NewPiece(Pawn, ColorBlack))

		// When: the chariot captures
		captured := board.Move(Pos(5, 0), Pos(3, 0))

		// Then: the pawn is returned and the chariot moved
		assert.Equal(t, NewPiece(Pawn, ColorBlack), captured)
		assert.Equal(t, NewPiece(Chariot, ColorRed), board.At(Pos(3, 0)))
		assert.True(t, board.At(Pos(5, 0)).IsEmpty())
	})

	t.Run("At returns empty off the board", func(t *testing.T) {
		board := NewStandardBoard()

		assert.True(t, board.At(Pos(-1, 0)).IsEmpty())
		assert.True(t, board.At(Pos(0, 9)).IsEmpty())
		assert.True(t, board.At(Pos(10, 4)).IsEmpty())
	})
}

func TestPiece_JSON(t *testing.T) {
	t.Run("Encodes red upper case, black lower case, empty as null", func(t *testing.T) {
		// Given: a row with a red king, a black horse and an empty cell
		row := []Piece{NewPiece(King, ColorRed), NewPiece(Horse, ColorBlack), {}}

		// When: encoding it
		data, err := json.Marshal(row)
		require.NoError(t, err)

		// Then: it uses single letters
		assert.JSONEq(t, `["K","n",null]`, string(data))
	})

	t.Run("Decodes letters back into pieces", func(t *testing.T) {
		var row []Piece

		err := json.Unmarshal([]byte(`["R","c",null]`), &row)

		require.NoError(t, err)
		assert.Equal(t, []Piece{NewPiece(Chariot, ColorRed), NewPiece(Cannon, ColorBlack), {}}, row)
	})

	t.Run("Rejects unknown letters", func(t *testing.T) {
		_, err := ParsePiece("x")

		assert.ErrorIs(t, err, ErrUnknownPiece)
	})
}

func TestColor_Opponent(t *testing.T) {
	assert.Equal(t, ColorBlack, ColorRed.Opponent())
	assert.Equal(t, ColorRed, ColorBlack.Opponent())
}
