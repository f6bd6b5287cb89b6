package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// AppliedMove is the position after a legal move.
type AppliedMove struct {
	Board   entity.Board
	Turn    entity.Player
	Outcome entity.Outcome
}

// ApplyMove - validates and applies a move. The board is taken by value, so a rejected move never touches
// the caller's board.
func ApplyMove(board entity.Board, turn, piece entity.Player, x, y int) (AppliedMove, error) {
	if err := validateMove(&board, turn, piece, x, y); err != nil {
		return AppliedMove{}, fmt.Errorf("invalid turn: %w", err)
	}

	board.Set(x, y, piece)

	outcome := DetectOutcome(&board)

	nextTurn := turn
	if !outcome.IsTerminal() {
		nextTurn = turn.Opponent()
	}

	return AppliedMove{
		Board:   board,
		Turn:    nextTurn,
		Outcome: outcome,
	}, nil
}

// validateMove - checks if the move is valid.
func validateMove(board *entity.Board, turn, piece entity.Player, x, y int) error {
	if !entity.InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCoordinate, x, y)
	}

	if !piece.Valid() {
		return apperror.ErrInvalidPiece
	}

	if piece != turn {
		return apperror.ErrOutOfTurn
	}

	if !board.Get(x, y).IsEmpty() {
		return apperror.ErrCellOccupied
	}

	return nil
}

// DetectOutcome - the first completed line in table order decides the winner.
func DetectOutcome(board *entity.Board) entity.Outcome {
	for _, line := range entity.Lines {
		a := board.Get(line[0].X, line[0].Y)
		b := board.Get(line[1].X, line[1].Y)
		c := board.Get(line[2].X, line[2].Y)

		if a == b && b == c {
			if winner, ok := a.Player(); ok {
				return entity.WinOf(winner)
			}
		}
	}

	// the game will continue until all the squares are full
	if board.IsFull() {
		return entity.Draw()
	}

	return entity.NoOutcome()
}
