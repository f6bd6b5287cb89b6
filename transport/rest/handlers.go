package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var errInvalidBody = errors.New("invalid request body")

type matchUseCase interface {
	Create(ctx context.Context) (*entity.Match, error)
	GetState(ctx context.Context, id string) (entity.MatchView, error)
	MakeMove(ctx context.Context, id string, piece entity.Player, x, y int, opponent entity.OpponentKind) (*entity.Match, error)
	Restart(ctx context.Context, id string) (*entity.Match, error)
	Reset(ctx context.Context, id string) (*entity.Match, error)
}

type moveRequest struct {
	X        *int   `json:"x"`
	Y        *int   `json:"y"`
	Opponent string `json:"opponent"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type MatchHandler struct {
	logger  *slog.Logger
	matches matchUseCase
}

func NewMatchHandler(logger *slog.Logger, matches matchUseCase) *MatchHandler {
	return &MatchHandler{
		logger:  logger.With("component", "match_handler"),
		matches: matches,
	}
}

func (that *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	match, err := that.matches.Create(r.Context())
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, match.View())
}

func (that *MatchHandler) GetState(w http.ResponseWriter, r *http.Request) {
	view, err := that.matches.GetState(r.Context(), chi.URLParam(r, "matchID"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *MatchHandler) MakeMove(w http.ResponseWriter, r *http.Request) {
	piece, err := entity.ParsePlayer(chi.URLParam(r, "piece"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	var req moveRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, r, fmt.Errorf("%w: %w", errInvalidBody, err))
		return
	}

	if req.X == nil || req.Y == nil {
		that.writeError(w, r, fmt.Errorf("%w: x and y are required", errInvalidBody))
		return
	}

	opponent, err := entity.ParseOpponentKind(req.Opponent)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	match, err := that.matches.MakeMove(r.Context(), chi.URLParam(r, "matchID"), piece, *req.X, *req.Y, opponent)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, match.View())
}

func (that *MatchHandler) Restart(w http.ResponseWriter, r *http.Request) {
	match, err := that.matches.Restart(r.Context(), chi.URLParam(r, "matchID"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, match.View())
}

func (that *MatchHandler) Reset(w http.ResponseWriter, r *http.Request) {
	match, err := that.matches.Reset(r.Context(), chi.URLParam(r, "matchID"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, match.View())
}

func (that *MatchHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *MatchHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperror.StatusCode(err)
	if errors.Is(err, errInvalidBody) {
		status = http.StatusBadRequest
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		message = http.StatusText(status)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}
