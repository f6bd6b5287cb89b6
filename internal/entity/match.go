package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const DrawMarker = "draw"

type OutcomeKind uint8

const (
	OutcomeNone OutcomeKind = iota
	OutcomeWin
	OutcomeDraw
)

// Outcome is the result of a match: still in progress, won by a player or drawn.
type Outcome struct {
	Kind   OutcomeKind
	Winner Player
}

func NoOutcome() Outcome {
	return Outcome{Kind: OutcomeNone}
}

func WinOf(player Player) Outcome {
	return Outcome{Kind: OutcomeWin, Winner: player}
}

func Draw() Outcome {
	return Outcome{Kind: OutcomeDraw}
}

func (that Outcome) IsTerminal() bool {
	return that.Kind != OutcomeNone
}

func (that Outcome) String() string {
	switch that.Kind {
	case OutcomeWin:
		return that.Winner.String()
	case OutcomeDraw:
		return DrawMarker
	default:
		return ""
	}
}

// MarshalJSON - null while in progress, "x"/"o" for a win, "draw" for a draw.
func (that Outcome) MarshalJSON() ([]byte, error) {
	if !that.IsTerminal() {
		return []byte("null"), nil
	}
	return json.Marshal(that.String())
}

func (that *Outcome) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*that = NoOutcome()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	switch s {
	case "":
		*that = NoOutcome()
	case DrawMarker:
		*that = Draw()
	default:
		player, err := ParsePlayer(s)
		if err != nil {
			return fmt.Errorf("invalid outcome: %w", err)
		}
		*that = WinOf(player)
	}

	return nil
}

type Score struct {
	X int `json:"x"`
	O int `json:"o"`
}

func (that *Score) Increment(player Player) {
	switch player {
	case PlayerX:
		that.X++
	case PlayerO:
		that.O++
	}
}

// OpponentKind tells the match manager whether to answer a move automatically.
type OpponentKind uint8

const (
	OpponentHuman OpponentKind = iota
	OpponentAutomated
)

func ParseOpponentKind(s string) (OpponentKind, error) {
	switch s {
	case "", "human":
		return OpponentHuman, nil
	case "ai":
		return OpponentAutomated, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidOpponent, s)
	}
}

type Match struct {
	ID        string    `json:"id"`
	Board     Board     `json:"board"`
	Turn      Player    `json:"current_turn"`
	Score     Score     `json:"score"`
	Outcome   Outcome   `json:"victory"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewMatch(id string) *Match {
	return &Match{
		ID:      id,
		Board:   Board{},
		Turn:    PlayerX,
		Outcome: NoOutcome(),
	}
}

func (that *Match) IsFinished() bool {
	return that.Outcome.IsTerminal()
}

// Restart - clears the board for a new round and keeps the score.
func (that *Match) Restart() {
	that.Board = Board{}
	that.Turn = PlayerX
	that.Outcome = NoOutcome()
}

func (that *Match) ConfirmOngoingState() error {
	if that.IsFinished() {
		return fmt.Errorf("%w: %s", apperror.ErrGameFinished, that.Outcome)
	}
	return nil
}

// MatchView is the read-only snapshot handed to callers.
type MatchView struct {
	ID          string  `json:"id,omitempty"`
	Board       Board   `json:"board"`
	Score       Score   `json:"score"`
	CurrentTurn Player  `json:"currentTurn"`
	Victory     Outcome `json:"victory"`
}

func (that *Match) View() MatchView {
	return MatchView{
		ID:          that.ID,
		Board:       that.Board,
		Score:       that.Score,
		CurrentTurn: that.Turn,
		Victory:     that.Outcome,
	}
}
