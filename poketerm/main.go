package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/pokedex/dex"
	"github.com/nathanieltooley/pokedex/poketerm/global"
	"github.com/nathanieltooley/pokedex/poketerm/rendering"
	"github.com/nathanieltooley/pokedex/poketerm/views/dexview"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const usage = `usage: poketerm [flags] <command> [args]

commands:
  pokemon <name|id>                          show a pokemon
  move <name>                                show a move
  moves                                      list every move name
  effectiveness <attacker> <defender> [defender]
                                             how well a type hits one or two types
  matchup <move> <pokemon>                   how well a move hits a pokemon
  list                                       list every pokemon
  browse                                     look things up interactively
  demo                                       show that lookups hand out copies
`

var ErrUsage = errors.New("bad usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, ErrUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		fmt.Fprintln(os.Stderr, rendering.RenderError(err))
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("poketerm", flag.ContinueOnError)
	configDir := flags.String("config-dir", global.DefaultConfigDir(), "where config.json and logs live")
	dataDir := flags.String("data-dir", "", "load data from this directory instead of the bundled data")
	verbose := flags.Bool("verbose", false, "also log to stderr")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	args = flags.Args()
	if len(args) < 1 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	loaded, err := global.GlobalInit(*configDir, *verbose, *dataDir)
	if err != nil {
		return err
	}

	command, args := args[0], args[1:]
	log.Debug().Str("command", command).Strs("args", args).Msg("running command")

	switch command {
	case "pokemon":
		if err := needArgs(args, 1, 1); err != nil {
			return err
		}
		return showPokemon(loaded, args[0], out)
	case "move":
		if err := needArgs(args, 1, 1); err != nil {
			return err
		}
		move, err := loaded.Moves.GetMove(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, rendering.RenderMove(move))
	case "moves":
		fmt.Fprintln(out, strings.Join(loaded.Moves.Names(), "\n"))
	case "effectiveness":
		if err := needArgs(args, 2, 1+dex.MAX_TYPES); err != nil {
			return err
		}
		return showEffectiveness(loaded, args, out)
	case "matchup":
		if err := needArgs(args, 2, 2); err != nil {
			return err
		}
		return showMatchup(loaded, args[0], args[1], out)
	case "list":
		for _, species := range loaded.Pokemon.All() {
			fmt.Fprintln(out, species)
		}
	case "browse":
		if _, err := tea.NewProgram(dexview.NewModel(loaded), tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("running browser: %w", err)
		}
	case "demo":
		return demo(loaded, out)
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}

	return nil
}

func needArgs(args []string, least int, most int) error {
	if len(args) < least || len(args) > most {
		return fmt.Errorf("%w: expected %d to %d arguments, got %d", ErrUsage, least, most, len(args))
	}

	return nil
}

// findSpecies treats numeric keys as pokedex ids
func findSpecies(loaded dex.Dex, key string) (dex.Species, error) {
	if id, err := strconv.Atoi(key); err == nil {
		return dex.GetSpecies(loaded.Pokemon, id)
	}

	return dex.GetSpecies(loaded.Pokemon, key)
}

func showPokemon(loaded dex.Dex, key string, out io.Writer) error {
	species, err := findSpecies(loaded, key)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, rendering.RenderSpecies(species))
	return nil
}

func showEffectiveness(loaded dex.Dex, typeNames []string, out io.Writer) error {
	types := make([]dex.ElementalType, 0, len(typeNames))
	for _, name := range typeNames {
		elementalType, err := dex.ParseElementalType(name)
		if err != nil {
			return err
		}
		types = append(types, elementalType)
	}

	attacker, defenders := types[0], types[1:]
	if len(lo.Uniq(defenders)) != len(defenders) {
		return fmt.Errorf("%w: defending types repeat", ErrUsage)
	}

	effectiveness := loaded.Types.CombinedEffectiveness(attacker, defenders...)
	fmt.Fprintln(out, rendering.RenderEffectiveness(attacker, defenders, effectiveness))
	return nil
}

func showMatchup(loaded dex.Dex, moveName string, key string, out io.Writer) error {
	move, err := loaded.Moves.GetMove(moveName)
	if err != nil {
		return err
	}
	species, err := findSpecies(loaded, key)
	if err != nil {
		return err
	}

	effectiveness := loaded.MatchupOf(move, species)
	fmt.Fprintf(out, "%s -> %s\n", move.Name, species.Name)
	fmt.Fprintln(out, rendering.RenderEffectiveness(move.Type, species.Types, effectiveness))
	return nil
}

// demo edits a looked up pokemon and looks it up again to show the registry didn't change
func demo(loaded dex.Dex, out io.Writer) error {
	bulbasaur, err := dex.GetSpecies(loaded.Pokemon, "Bulbasaur")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, bulbasaur)

	bulbasaur.BaseStats.Hp = 100
	fmt.Fprintln(out, "Changed the copy:")
	fmt.Fprintln(out, bulbasaur)

	again, err := dex.GetSpecies(loaded.Pokemon, "Bulbasaur")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Looked up again:")
	fmt.Fprintln(out, again)

	return nil
}
