package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const BoardSize = 3

// Player is a side of the match; it is also the mark a side leaves on the board.
type Player uint8

const (
	PlayerX Player = iota + 1
	PlayerO
)

func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(s) {
	case "x":
		return PlayerX, nil
	case "o":
		return PlayerO, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPiece, s)
	}
}

func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) Valid() bool {
	return that == PlayerX || that == PlayerO
}

func (that Player) String() string {
	switch that {
	case PlayerX:
		return "x"
	case PlayerO:
		return "o"
	default:
		return ""
	}
}

func (that Player) MarshalJSON() ([]byte, error) {
	if !that.Valid() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidPiece, that)
	}
	return json.Marshal(that.String())
}

func (that *Player) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	player, err := ParsePlayer(s)
	if err != nil {
		return err
	}

	*that = player
	return nil
}

// Cell is either empty or holds the mark of one player.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

func MarkOf(player Player) Cell {
	switch player {
	case PlayerX:
		return CellX
	case PlayerO:
		return CellO
	default:
		return CellEmpty
	}
}

func (that Cell) IsEmpty() bool {
	return that == CellEmpty
}

// Player - returns the owner of the mark; ok is false for an empty cell.
func (that Cell) Player() (Player, bool) {
	switch that {
	case CellX:
		return PlayerX, true
	case CellO:
		return PlayerO, true
	default:
		return 0, false
	}
}

func (that Cell) String() string {
	if player, ok := that.Player(); ok {
		return player.String()
	}
	return ""
}

func (that Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.String())
}

func (that *Cell) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		*that = CellEmpty
		return nil
	}

	player, err := ParsePlayer(s)
	if err != nil {
		return fmt.Errorf("invalid cell value: %w", err)
	}

	*that = MarkOf(player)
	return nil
}

// Coord addresses a cell: X is the row, Y is the column.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Line is one of the fixed triples that wins the game when uniformly marked.
type Line [3]Coord

// Lines - rows top to bottom, columns left to right, then both diagonals.
var Lines = [8]Line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a passive container; move legality is checked by the rule engine.
type Board [BoardSize][BoardSize]Cell

func InBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

func (that *Board) Get(x, y int) Cell {
	return that[x][y]
}

func (that *Board) Set(x, y int, player Player) {
	that[x][y] = MarkOf(player)
}

func (that *Board) Clear(x, y int) {
	that[x][y] = CellEmpty
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell.IsEmpty() {
				return false
			}
		}
	}
	return true
}

// EmptyCells - lists free cells in row-major order.
func (that *Board) EmptyCells() []Coord {
	cells := make([]Coord, 0, BoardSize*BoardSize)
	for x, row := range that {
		for y, cell := range row {
			if cell.IsEmpty() {
				cells = append(cells, Coord{X: x, Y: y})
			}
		}
	}
	return cells
}

func (that *Board) String() string {
	var sb strings.Builder
	for x, row := range that {
		if x > 0 {
			sb.WriteByte('/')
		}
		for _, cell := range row {
			if cell.IsEmpty() {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}
