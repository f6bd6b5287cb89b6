package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	e = entity.CellEmpty
	x = entity.CellX
	o = entity.CellO
)

func TestApplyMove(t *testing.T) {
	t.Run("ApplyMove", func(t *testing.T) {
		// Given: an empty board with X to move
		board := entity.Board{}

		// When: player X marks the top left corner
		applied, err := ApplyMove(board, entity.PlayerX, entity.PlayerX, 0, 0)
		require.NoError(t, err)

		// Then: the board holds the mark and the turn goes to O
		expected := AppliedMove{
			Board: entity.Board{
				{x, e, e},
				{e, e, e},
				{e, e, e},
			},
			Turn:    entity.PlayerO,
			Outcome: entity.NoOutcome(),
		}

		require.Equal(t, expected, applied)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X already holds the corner and it is O's turn
		board := entity.Board{
			{x, e, e},
			{e, e, e},
			{e, e, e},
		}
		snapshot := board

		// When: player O tries to make a move to the same square
		_, err := ApplyMove(board, entity.PlayerO, entity.PlayerO, 0, 0)

		// Then: an error ErrCellOccupied must be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// Then: the board remains unchanged
		require.Equal(t, snapshot, board)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: X already holds the corner and it is O's turn
		board := entity.Board{
			{x, e, e},
			{e, e, e},
			{e, e, e},
		}
		snapshot := board

		// When: player X tries to move again
		_, err := ApplyMove(board, entity.PlayerO, entity.PlayerX, 1, 1)

		// Then: an error ErrOutOfTurn must be returned
		require.ErrorIs(t, err, apperror.ErrOutOfTurn)
		require.Equal(t, snapshot, board)
	})

	t.Run("Error on invalid coordinates", func(t *testing.T) {
		cases := []struct {
			name string
			x, y int
		}{
			{"row too large", 3, 0},
			{"column too large", 0, 3},
			{"negative row", -1, 1},
			{"negative column", 1, -1},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				// When: a move is placed outside the board
				_, err := ApplyMove(entity.Board{}, entity.PlayerX, entity.PlayerX, tc.x, tc.y)

				// Then: ErrInvalidCoordinate should be returned
				assert.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
			})
		}
	})

	t.Run("Coordinates are checked before the turn", func(t *testing.T) {
		// When: the wrong player plays outside the board
		_, err := ApplyMove(entity.Board{}, entity.PlayerX, entity.PlayerO, 5, 5)

		// Then: the coordinate error wins
		assert.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
	})

	t.Run("Winning move keeps the turn", func(t *testing.T) {
		// Given: X has two in the top row
		board := entity.Board{
			{x, x, e},
			{o, o, e},
			{e, e, e},
		}

		// When: X completes the row
		applied, err := ApplyMove(board, entity.PlayerX, entity.PlayerX, 0, 2)

		// Then: X wins and the turn does not flip
		require.NoError(t, err)
		assert.Equal(t, entity.WinOf(entity.PlayerX), applied.Outcome)
		assert.Equal(t, entity.PlayerX, applied.Turn)
	})

	t.Run("Last move on a full board draws", func(t *testing.T) {
		// Given: one free cell left that wins nothing
		board := entity.Board{
			{x, o, x},
			{x, o, o},
			{o, x, e},
		}

		// When: X fills the last cell
		applied, err := ApplyMove(board, entity.PlayerX, entity.PlayerX, 2, 2)

		// Then: the game ends in a draw
		require.NoError(t, err)
		assert.Equal(t, entity.Draw(), applied.Outcome)
		assert.Equal(t, entity.PlayerX, applied.Turn)
	})
}

func TestDetectOutcome(t *testing.T) {
	t.Run("Winner X on a column", func(t *testing.T) {
		board := entity.Board{
			{x, o, e},
			{x, o, e},
			{x, e, e},
		}

		assert.Equal(t, entity.WinOf(entity.PlayerX), DetectOutcome(&board))
	})

	t.Run("Winner O on the anti diagonal", func(t *testing.T) {
		board := entity.Board{
			{x, x, o},
			{e, o, e},
			{o, e, x},
		}

		assert.Equal(t, entity.WinOf(entity.PlayerO), DetectOutcome(&board))
	})

	t.Run("Turn", func(t *testing.T) {
		board := entity.Board{
			{x, o, x},
			{e, o, e},
			{x, e, e},
		}

		assert.Equal(t, entity.NoOutcome(), DetectOutcome(&board))
	})

	t.Run("Tie", func(t *testing.T) {
		board := entity.Board{
			{o, x, o},
			{o, x, x},
			{x, o, x},
		}

		assert.Equal(t, entity.Draw(), DetectOutcome(&board))
	})

	t.Run("Full board with a line is a win, not a draw", func(t *testing.T) {
		board := entity.Board{
			{x, x, x},
			{o, o, x},
			{x, o, o},
		}

		assert.Equal(t, entity.WinOf(entity.PlayerX), DetectOutcome(&board))
	})

	t.Run("First line in table order wins on impossible boards", func(t *testing.T) {
		// Given: both the top row and the bottom row are complete
		board := entity.Board{
			{o, o, o},
			{e, e, e},
			{x, x, x},
		}

		// Then: the top row is reported
		assert.Equal(t, entity.WinOf(entity.PlayerO), DetectOutcome(&board))
	})
}

// TestDetectOutcome_AllBoards checks win/draw detection against a direct line count on every board of
// the 3^9 cell assignments.
func TestDetectOutcome_AllBoards(t *testing.T) {
	cells := []entity.Cell{e, x, o}

	for n := 0; n < 19683; n++ {
		var board entity.Board
		code := n
		for i := 0; i < entity.BoardSize*entity.BoardSize; i++ {
			board[i/entity.BoardSize][i%entity.BoardSize] = cells[code%3]
			code /= 3
		}

		xLine, oLine := false, false
		for _, line := range entity.Lines {
			a, b, c := board.Get(line[0].X, line[0].Y), board.Get(line[1].X, line[1].Y), board.Get(line[2].X, line[2].Y)
			if a == b && b == c {
				xLine = xLine || a == x
				oLine = oLine || a == o
			}
		}

		outcome := DetectOutcome(&board)

		switch {
		case xLine || oLine:
			require.Equal(t, entity.OutcomeWin, outcome.Kind, board.String())
			if !(xLine && oLine) {
				require.Equal(t, xLine, outcome.Winner == entity.PlayerX, board.String())
			}
		case board.IsFull():
			require.Equal(t, entity.Draw(), outcome, board.String())
		default:
			require.Equal(t, entity.NoOutcome(), outcome, board.String())
		}
	}
}
