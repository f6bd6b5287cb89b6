package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidCoordinate = errors.New("coordinates are out of the board")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrOutOfTurn         = errors.New("it's not your turn")
	ErrGameFinished      = errors.New("game is already finished")

	ErrInvalidPiece    = errors.New("invalid piece")
	ErrInvalidOpponent = errors.New("invalid opponent")
	ErrMatchNotFound   = errors.New("match not found")
	ErrEmptyMatchID    = errors.New("match id is empty")
)

// StatusCode - maps an application error to the HTTP status a client should see.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrCellOccupied), errors.Is(err, ErrGameFinished):
		return http.StatusConflict
	case errors.Is(err, ErrOutOfTurn):
		return http.StatusNotAcceptable
	case errors.Is(err, ErrInvalidCoordinate), errors.Is(err, ErrInvalidPiece), errors.Is(err, ErrInvalidOpponent),
		errors.Is(err, ErrEmptyMatchID):
		return http.StatusBadRequest
	case errors.Is(err, ErrMatchNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
