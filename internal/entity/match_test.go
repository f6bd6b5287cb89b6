package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatch(t *testing.T) {
	// When: creating a new match
	match := NewMatch("123")

	// Then: the match should be empty, X to move, no scores and no outcome
	expected := &Match{
		ID:      "123",
		Board:   Board{},
		Turn:    PlayerX,
		Score:   Score{},
		Outcome: NoOutcome(),
	}

	require.Equal(t, expected, match)
	assert.False(t, match.IsFinished())
}

func TestMatch_Restart(t *testing.T) {
	// Given: a match that X has won
	match := NewMatch("123")
	match.Board.Set(0, 0, PlayerX)
	match.Board.Set(0, 1, PlayerX)
	match.Board.Set(0, 2, PlayerX)
	match.Turn = PlayerX
	match.Outcome = WinOf(PlayerX)
	match.Score = Score{X: 3, O: 1}

	// When: restarting the match
	match.Restart()

	// Then: the board, turn and outcome are reset but scores are kept
	assert.Equal(t, Board{}, match.Board)
	assert.Equal(t, PlayerX, match.Turn)
	assert.Equal(t, NoOutcome(), match.Outcome)
	assert.Equal(t, Score{X: 3, O: 1}, match.Score)
}

func TestMatch_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when match is in progress", func(t *testing.T) {
		match := NewMatch("123")
		assert.NoError(t, match.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameFinished when match is won", func(t *testing.T) {
		match := NewMatch("123")
		match.Outcome = WinOf(PlayerO)
		assert.ErrorIs(t, match.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns ErrGameFinished when match is drawn", func(t *testing.T) {
		match := NewMatch("123")
		match.Outcome = Draw()
		assert.ErrorIs(t, match.ConfirmOngoingState(), apperror.ErrGameFinished)
	})
}

func TestScore_Increment(t *testing.T) {
	var score Score

	score.Increment(PlayerX)
	score.Increment(PlayerO)
	score.Increment(PlayerX)

	assert.Equal(t, Score{X: 2, O: 1}, score)
}

func TestParseOpponentKind(t *testing.T) {
	t.Run("Known kinds", func(t *testing.T) {
		human, err := ParseOpponentKind("human")
		require.NoError(t, err)
		assert.Equal(t, OpponentHuman, human)

		empty, err := ParseOpponentKind("")
		require.NoError(t, err)
		assert.Equal(t, OpponentHuman, empty)

		ai, err := ParseOpponentKind("ai")
		require.NoError(t, err)
		assert.Equal(t, OpponentAutomated, ai)
	})

	t.Run("Unknown kind", func(t *testing.T) {
		_, err := ParseOpponentKind("robot")
		assert.ErrorIs(t, err, apperror.ErrInvalidOpponent)
	})
}

func TestMatchView_JSON(t *testing.T) {
	t.Run("In progress match has null victory", func(t *testing.T) {
		// Given: a match after X played the corner
		match := NewMatch("")
		match.Board.Set(0, 0, PlayerX)
		match.Turn = PlayerO

		// When: encoding its view
		data, err := json.Marshal(match.View())

		// Then: the payload should match the public shape
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"board": [["x","",""],["","",""],["","",""]],
			"score": {"x": 0, "o": 0},
			"currentTurn": "o",
			"victory": null
		}`, string(data))
	})

	t.Run("Draw is distinct from in progress", func(t *testing.T) {
		match := NewMatch("abc")
		match.Outcome = Draw()

		data, err := json.Marshal(match.View())

		require.NoError(t, err)
		assert.Contains(t, string(data), `"victory":"draw"`)
	})
}

func TestMatch_JSONRoundTrip(t *testing.T) {
	// Given: a finished match with a score
	match := NewMatch("abc")
	match.Board.Set(1, 1, PlayerO)
	match.Outcome = WinOf(PlayerO)
	match.Score = Score{O: 2}

	// When: storing and loading it as JSON
	data, err := json.Marshal(match)
	require.NoError(t, err)

	var loaded Match
	require.NoError(t, json.Unmarshal(data, &loaded))

	// Then: the state should survive unchanged
	assert.Equal(t, match.Board, loaded.Board)
	assert.Equal(t, match.Outcome, loaded.Outcome)
	assert.Equal(t, match.Score, loaded.Score)
	assert.Equal(t, match.Turn, loaded.Turn)
}
