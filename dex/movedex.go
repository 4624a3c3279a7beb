package dex

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Movedex indexes moves by lower cased name. Lookups hand out copies so the stored moves can never change after construction.
type Movedex struct {
	moves map[string]Move
}

// NewMovedex validates every move and builds the name index.
// Two moves whose names only differ by case are rejected.
func NewMovedex(moves []Move) (*Movedex, error) {
	return newMovedex(SOURCE_MOVES, moves)
}

func newMovedex(source string, moves []Move) (*Movedex, error) {
	movedex := &Movedex{moves: make(map[string]Move, len(moves))}

	for _, move := range moves {
		if err := move.validate(source); err != nil {
			return nil, err
		}

		key := strings.ToLower(move.Name)
		if existing, ok := movedex.moves[key]; ok {
			return nil, schemaErrorf(source, move.Name, "name", "duplicate of move %q", existing.Name)
		}

		internalLogger.V(1).Info("loaded move", "name", move.Name, "type", move.Type.String(), "power", move.Power, "pp", move.MaxPP)
		movedex.moves[key] = move.Clone()
	}

	return movedex, nil
}

// LoadMovedex reads a JSON list of moves
func LoadMovedex(r io.Reader) (*Movedex, error) {
	internalLogger.Info("Loading Move Data")

	var payloads []movePayload
	if err := decodeSource(r, &payloads); err != nil {
		internalLogger.Error(err, "Couldn't unmarshal move data")
		return nil, schemaErrorf(SOURCE_MOVES, "", "", "malformed json: %s", err)
	}
	if payloads == nil {
		return nil, schemaErrorf(SOURCE_MOVES, "", "", "expected a json list, got null")
	}

	moves := make([]Move, 0, len(payloads))
	for i, payload := range payloads {
		move, err := payload.toMove(SOURCE_MOVES, i)
		if err != nil {
			return nil, err
		}

		moves = append(moves, move)
	}

	movedex, err := newMovedex(SOURCE_MOVES, moves)
	if err != nil {
		return nil, err
	}

	internalLogger.Info("Loaded moves", "count", movedex.Len())
	return movedex, nil
}

// GetMove finds a move by name, ignoring case.
// The returned move is a copy and can be freely changed.
func (d *Movedex) GetMove(name string) (Move, error) {
	move, ok := d.moves[strings.ToLower(name)]
	if !ok {
		return Move{}, &NotFoundError{Registry: REGISTRY_MOVEDEX, Index: INDEX_NAME, Key: name}
	}

	return move.Clone(), nil
}

func (d *Movedex) Len() int {
	return len(d.moves)
}

// Names lists the name of every move in alphabetical order
func (d *Movedex) Names() []string {
	names := lo.MapToSlice(d.moves, func(_ string, move Move) string {
		return move.Name
	})
	slices.SortFunc(names, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	return names
}

func (d *Movedex) String() string {
	return fmt.Sprintf("Movedex(%d moves)", d.Len())
}
