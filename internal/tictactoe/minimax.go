package tictactoe

import (
	"errors"
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const winScore = 10

var ErrNoAvailableMoves = errors.New("no available moves")

// FindBestMove - picks the move for mover under perfect play from both sides. The whole game tree is
// searched on every call; ties go to the first free cell in row-major order.
func FindBestMove(board entity.Board, mover entity.Player) (entity.Coord, error) {
	var (
		bestScore = math.MinInt
		bestMove  entity.Coord
		found     bool
	)

	for _, cell := range board.EmptyCells() {
		board.Set(cell.X, cell.Y, mover)
		score := minimax(&board, 1, false, mover)
		board.Clear(cell.X, cell.Y)

		if score > bestScore {
			bestScore = score
			bestMove = cell
			found = true
		}
	}

	if !found {
		return entity.Coord{}, ErrNoAvailableMoves
	}

	return bestMove, nil
}

// minimax - scores the position from mover's point of view; faster wins and slower losses score higher.
func minimax(board *entity.Board, depth int, maximizing bool, mover entity.Player) int {
	switch outcome := DetectOutcome(board); outcome.Kind {
	case entity.OutcomeWin:
		if outcome.Winner == mover {
			return winScore - depth
		}
		return depth - winScore
	case entity.OutcomeDraw:
		return 0
	case entity.OutcomeNone:
	}

	player := mover.Opponent()
	bestScore := math.MaxInt
	if maximizing {
		player = mover
		bestScore = math.MinInt
	}

	for _, cell := range board.EmptyCells() {
		board.Set(cell.X, cell.Y, player)
		score := minimax(board, depth+1, !maximizing, mover)
		board.Clear(cell.X, cell.Y)

		if maximizing {
			bestScore = max(bestScore, score)
		} else {
			bestScore = min(bestScore, score)
		}
	}

	return bestScore
}
