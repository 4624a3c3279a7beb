package dexview

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/dex"
	"github.com/nathanieltooley/pokedex/poketerm/global"
	"github.com/nathanieltooley/pokedex/poketerm/rendering"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const MOVE_PREFIX = "move:"

var ErrEmptyQuery = errors.New("nothing to look up")

var switchFocusKey = key.NewBinding(
	key.WithKeys("tab"),
	key.WithHelp("tab", "switch between list and search"),
)

type focus int

const (
	FOCUS_LIST focus = iota
	FOCUS_SEARCH
)

// Model is a species list on the left with a search box and whatever was last looked up on the right
type Model struct {
	dex dex.Dex

	speciesList list.Model
	search      textinput.Model
	focus       focus

	result string
}

func NewModel(loaded dex.Dex) Model {
	items := lo.Map(loaded.Pokemon.All(), func(species dex.Species, _ int) list.Item {
		return rendering.SpeciesItem{Species: species}
	})

	speciesList := list.New(items, rendering.NewSpeciesDelegate(), 24, 20)
	speciesList.Title = "Pokedex"
	speciesList.SetFilteringEnabled(true)
	speciesList.SetShowStatusBar(false)
	speciesList.SetShowHelp(false)
	speciesList.KeyMap.Quit.SetEnabled(false)

	search := textinput.New()
	search.Placeholder = "bulbasaur, 25, move:pound"
	search.CharLimit = 32
	search.Blur()

	return Model{
		dex:         loaded,
		speciesList: speciesList,
		search:      search,
		focus:       FOCUS_LIST,
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && key.Matches(keyMsg, global.QuitKey) {
		return m, tea.Quit
	}

	// let the list have every key while its filter is being typed
	if m.focus == FOCUS_LIST && m.speciesList.FilterState() == list.Filtering {
		m.speciesList, cmd = m.speciesList.Update(msg)
		return m, cmd
	}

	if isKey {
		switch {
		case key.Matches(keyMsg, switchFocusKey):
			if m.focus == FOCUS_LIST {
				m.focus = FOCUS_SEARCH
				cmd = m.search.Focus()
				return m, cmd
			}

			m.focus = FOCUS_LIST
			m.search.Blur()
			return m, nil
		case key.Matches(keyMsg, global.BackKey):
			m.result = ""
			m.search.Reset()
			return m, nil
		case key.Matches(keyMsg, global.SelectKey):
			m.result = m.selectResult()
			return m, nil
		}
	}

	if m.focus == FOCUS_SEARCH {
		m.search, cmd = m.search.Update(msg)
	} else {
		m.speciesList, cmd = m.speciesList.Update(msg)
	}

	return m, cmd
}

func (m Model) selectResult() string {
	if m.focus == FOCUS_LIST {
		item, ok := m.speciesList.SelectedItem().(rendering.SpeciesItem)
		if !ok {
			return ""
		}

		return rendering.RenderSpecies(item.Species)
	}

	result, err := Lookup(m.dex, m.search.Value())
	if err != nil {
		log.Debug().Err(err).Str("query", m.search.Value()).Msg("lookup failed")
		return rendering.RenderError(err)
	}

	return result
}

func (m Model) View() string {
	right := lipgloss.JoinVertical(lipgloss.Left, m.search.View(), "", m.result)
	help := rendering.FaintStyle.Render(strings.Join([]string{
		switchFocusKey.Help().Key + " " + switchFocusKey.Help().Desc,
		global.SelectKey.Help().Key + " " + global.SelectKey.Help().Desc,
		global.BackKey.Help().Key + " " + global.BackKey.Help().Desc,
		global.QuitKey.Help().Key + " " + global.QuitKey.Help().Desc,
	}, " • "))

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.speciesList.View(), "  ", right)
	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

// Lookup renders whatever query names. A number is a pokedex id, "move:" forces a move lookup,
// and anything else is tried as a species name and then as a move name.
func Lookup(loaded dex.Dex, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}

	if len(query) >= len(MOVE_PREFIX) && strings.EqualFold(query[:len(MOVE_PREFIX)], MOVE_PREFIX) {
		move, err := loaded.Moves.GetMove(strings.TrimSpace(query[len(MOVE_PREFIX):]))
		if err != nil {
			return "", err
		}
		return rendering.RenderMove(move), nil
	}

	if id, err := strconv.Atoi(query); err == nil {
		species, err := loaded.Pokemon.GetSpeciesByID(id)
		if err != nil {
			return "", err
		}
		return rendering.RenderSpecies(species), nil
	}

	species, speciesErr := loaded.Pokemon.GetSpeciesByName(query)
	if speciesErr == nil {
		return rendering.RenderSpecies(species), nil
	}

	move, err := loaded.Moves.GetMove(query)
	if err != nil {
		// the species miss is the more useful error for a bare name
		return "", speciesErr
	}

	return rendering.RenderMove(move), nil
}
