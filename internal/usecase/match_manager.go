package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	NextMove(match *entity.Match) (entity.Coord, error)
}

// MatchManager owns the lifecycle of matches. Every mutation of a match runs under that match's lock,
// from loading it to storing it back.
type MatchManager struct {
	logger    *slog.Logger
	matchRepo matchRepo
	bot       botService

	mu    sync.Mutex
	locks map[string]*matchLock

	now func() time.Time
}

func NewMatchManager(logger *slog.Logger, matchRepo matchRepo, bot botService) *MatchManager {
	return &MatchManager{
		logger:    logger.With("component", "match_manager"),
		matchRepo: matchRepo,
		bot:       bot,
		locks:     make(map[string]*matchLock),
		now:       time.Now,
	}
}

// Create - starts a match under a fresh id.
func (that *MatchManager) Create(ctx context.Context) (*entity.Match, error) {
	return that.GetOrCreate(ctx, uuid.NewString())
}

// GetOrCreate - returns the stored match, creating an empty one under id if there is none.
func (that *MatchManager) GetOrCreate(ctx context.Context, id string) (*entity.Match, error) {
	if id == "" {
		id = uuid.NewString()
	}

	unlock := that.lock(id)
	defer unlock()

	return that.getOrCreate(ctx, id)
}

func (that *MatchManager) GetState(ctx context.Context, id string) (entity.MatchView, error) {
	match, err := that.GetOrCreate(ctx, id)
	if err != nil {
		return entity.MatchView{}, err
	}

	return match.View(), nil
}

// MakeMove - plays piece at (x, y). Against an automated opponent the reply is played in the same call.
// On error nothing is stored.
func (that *MatchManager) MakeMove(
	ctx context.Context, id string, piece entity.Player, x, y int, opponent entity.OpponentKind,
) (*entity.Match, error) {
	log := that.logger.With("method", "MakeMove", "matchID", id)

	if id == "" {
		return nil, apperror.ErrEmptyMatchID
	}

	unlock := that.lock(id)
	defer unlock()

	match, err := that.getOrCreate(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = match.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	if err = that.applyMove(match, piece, x, y); err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	if !match.IsFinished() && opponent == entity.OpponentAutomated {
		var move entity.Coord
		if move, err = that.bot.NextMove(match); err != nil {
			return nil, fmt.Errorf("bot failed to choose turn: %w", err)
		}

		if err = that.applyMove(match, match.Turn, move.X, move.Y); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}

		log.Debug("bot answered", "x", move.X, "y", move.Y)
	}

	if err = that.updateMatch(ctx, match); err != nil {
		return nil, err
	}

	if match.IsFinished() {
		log.Info("match finished", "victory", match.Outcome.String(), "score_x", match.Score.X, "score_o", match.Score.O)
	}

	return match, nil
}

// Restart - clears the board for another round; scores are kept.
func (that *MatchManager) Restart(ctx context.Context, id string) (*entity.Match, error) {
	if id == "" {
		return nil, apperror.ErrEmptyMatchID
	}

	unlock := that.lock(id)
	defer unlock()

	match, err := that.getOrCreate(ctx, id)
	if err != nil {
		return nil, err
	}

	match.Restart()

	if err = that.updateMatch(ctx, match); err != nil {
		return nil, err
	}

	return match, nil
}

// Reset - throws the match away and starts a new one with zero scores under the same id.
func (that *MatchManager) Reset(ctx context.Context, id string) (*entity.Match, error) {
	log := that.logger.With("method", "Reset", "matchID", id)

	if id == "" {
		return nil, apperror.ErrEmptyMatchID
	}

	unlock := that.lock(id)
	defer unlock()

	if err := that.matchRepo.DeleteByID(ctx, id); err != nil && !errors.Is(err, apperror.ErrMatchNotFound) {
		return nil, fmt.Errorf("failed to delete match: %w", err)
	}

	match := entity.NewMatch(id)
	if err := that.updateMatch(ctx, match); err != nil {
		return nil, err
	}

	log.Info("match reset")

	return match, nil
}

// applyMove - the single path through which every move, human or bot, reaches a match.
func (that *MatchManager) applyMove(match *entity.Match, piece entity.Player, x, y int) error {
	applied, err := tictactoe.ApplyMove(match.Board, match.Turn, piece, x, y)
	if err != nil {
		return err
	}

	wasFinished := match.IsFinished()

	match.Board = applied.Board
	match.Turn = applied.Turn
	match.Outcome = applied.Outcome

	if !wasFinished && applied.Outcome.Kind == entity.OutcomeWin {
		match.Score.Increment(applied.Outcome.Winner)
	}

	return nil
}

func (that *MatchManager) getOrCreate(ctx context.Context, id string) (*entity.Match, error) {
	match, err := that.matchRepo.GetByID(ctx, id)
	if err == nil {
		return match, nil
	}

	if !errors.Is(err, apperror.ErrMatchNotFound) {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	match = entity.NewMatch(id)
	if err = that.updateMatch(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	that.logger.Info("match created", "matchID", id)

	return match, nil
}

func (that *MatchManager) updateMatch(ctx context.Context, match *entity.Match) error {
	match.UpdatedAt = that.now().UTC()

	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}

	return nil
}

type matchLock struct {
	sync.Mutex
	holders int
}

// lock - serializes work on one match; different matches do not block each other.
// An entry lives in locks only while someone holds or waits for it.
func (that *MatchManager) lock(id string) func() {
	that.mu.Lock()
	l, ok := that.locks[id]
	if !ok {
		l = &matchLock{}
		that.locks[id] = l
	}
	l.holders++
	that.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		that.mu.Lock()
		l.holders--
		if l.holders == 0 {
			delete(that.locks, id)
		}
		that.mu.Unlock()
	}
}
