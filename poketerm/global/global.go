package global

import (
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/zerologr"
	"github.com/nathanieltooley/pokedex/data"
	"github.com/nathanieltooley/pokedex/dex"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

var (
	TERM_WIDTH, TERM_HEIGHT, _ = term.GetSize(int(os.Stdout.Fd()))

	SelectKey = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "look up"),
	)
	BackKey = key.NewBinding(
		key.WithKeys(tea.KeyEsc.String()),
		key.WithHelp("esc", "clear"),
	)
	QuitKey = key.NewBinding(
		key.WithKeys(tea.KeyCtrlC.String()),
		key.WithHelp("ctrl+c", "quit"),
	)

	Opt = GlobalConfig{}
)

// GlobalInit reads the config in configDir, sets up logging, and loads all pokemon data.
// A non-empty dataDir beats both the config file and the environment.
// Console logging only happens when verbose is set; the log file is always written.
func GlobalInit(configDir string, verbose bool, dataDir string) (dex.Dex, error) {
	// Basic logging for config debugging
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	config, err := LoadConfig(configDir)
	if err != nil {
		log.Err(err).Msg("error occurred while loading config")
		return dex.Dex{}, err
	}
	if dataDir != "" {
		config.DataDir = dataDir
	}
	Opt = config

	level := zerolog.InfoLevel
	if Opt.Debug {
		level = zerolog.DebugLevel
		// lets the per record logs through
		zerologr.SetMaxV(1)
	}

	log.Logger = createLogger(Opt, level, verbose)
	dex.SetInternalLogger(zerologr.New(&log.Logger))

	log.Info().Str("data_dir", Opt.DataDir).Msg("loading pokedex data")
	loaded, err := dex.DefaultLoader(DataFS(Opt))
	if err != nil {
		log.Err(err).Msg("failed to load pokedex data")
		return dex.Dex{}, err
	}

	log.Info().Int("pokemon", loaded.Pokemon.Len()).Int("moves", loaded.Moves.Len()).Msg("pokedex ready")
	return loaded, nil
}

// DataFS is the bundled data unless the config points somewhere else
func DataFS(config GlobalConfig) fs.FS {
	if config.DataDir != "" {
		return os.DirFS(config.DataDir)
	}

	return data.FS()
}

func createFileWriter(config GlobalConfig) io.Writer {
	rollingWriter := NewRollingFileWriter(config.LogDir, "pokedex", config.MaxLogSize, config.MaxLogs)
	return zerolog.ConsoleWriter{Out: rollingWriter, NoColor: true}
}

func createLogger(config GlobalConfig, level zerolog.Level, console bool) zerolog.Logger {
	var writer io.Writer = createFileWriter(config)
	if console {
		writer = zerolog.MultiLevelWriter(zerolog.ConsoleWriter{Out: os.Stderr}, writer)
	}

	return zerolog.New(writer).With().Timestamp().Caller().Logger().Level(level)
}
