package dex

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"golang.org/x/sync/errgroup"
)

// Where DefaultLoader expects each data source inside its fs.FS
const (
	SOURCE_TYPE_CHART = "type_chart.json"
	SOURCE_MOVES      = "moves.json"
	SOURCE_POKEDEX    = "pokedex"
)

// Dex is all of the reference data loaded from a single data directory
type Dex struct {
	Types   TypeChart
	Moves   *Movedex
	Pokemon *Pokedex
}

// DefaultLoader loads the type chart, moves, and pokemon from the layout used by the bundled data:
//
//	type_chart.json
//	moves.json
//	pokedex/*.json
//
// The sources are read in parallel but the call only returns once all of them are done.
// The first error aborts the whole load and no partial Dex is returned.
func DefaultLoader(files fs.FS) (Dex, error) {
	var (
		types   TypeChart
		moves   *Movedex
		pokemon *Pokedex
	)

	var group errgroup.Group
	group.Go(func() error {
		file, err := files.Open(SOURCE_TYPE_CHART)
		if err != nil {
			return fmt.Errorf("opening type chart: %w", err)
		}
		defer file.Close()

		types, err = LoadTypeChart(file)
		return err
	})
	group.Go(func() error {
		file, err := files.Open(SOURCE_MOVES)
		if err != nil {
			return fmt.Errorf("opening moves: %w", err)
		}
		defer file.Close()

		moves, err = LoadMovedex(file)
		return err
	})
	group.Go(func() error {
		var err error
		pokemon, err = LoadPokedex(files, SOURCE_POKEDEX)
		return err
	})

	if err := group.Wait(); err != nil {
		internalLogger.Error(err, "Failed to load data")
		return Dex{}, err
	}

	return Dex{Types: types, Moves: moves, Pokemon: pokemon}, nil
}

// MatchupOf is the effectiveness of move against every type of species
func (d Dex) MatchupOf(move Move, species Species) Effectiveness {
	return d.Types.AgainstSpecies(move.Type, species)
}

var errTrailingData = errors.New("unexpected data after the top level value")

// decodeSource decodes r into v, which must be the only json value in r
func decodeSource(r io.Reader, v any) error {
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(v); err != nil {
		return err
	}

	if _, err := decoder.Token(); err != io.EOF {
		return errTrailingData
	}

	return nil
}
