package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type BotService interface {
	NextMove(match *entity.Match) (entity.Coord, error)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// NextMove - chooses the move for whoever's turn it is. The caller applies it.
func (that *botService) NextMove(match *entity.Match) (entity.Coord, error) {
	if err := match.ConfirmOngoingState(); err != nil {
		return entity.Coord{}, err
	}

	move, err := tictactoe.FindBestMove(match.Board, match.Turn)
	if err != nil {
		return entity.Coord{}, fmt.Errorf("bot failed to find move: %w", err)
	}

	return move, nil
}
