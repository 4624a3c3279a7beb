package rendering

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/dex"
)

var (
	HighlightedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(HighlightedColor)
	ItemStyle            = lipgloss.NewStyle().PaddingLeft(2)
)

// SpeciesItem lets a species be shown in a list.Model
type SpeciesItem struct {
	Species dex.Species
}

func (i SpeciesItem) FilterValue() string { return i.Species.Name }

// speciesDelegate draws one species per line as "#0001 Bulbasaur"
type speciesDelegate struct {
	HighlightedItemStyle lipgloss.Style
	ItemStyle            lipgloss.Style
}

func (d speciesDelegate) Height() int                             { return 1 }
func (d speciesDelegate) Spacing() int                            { return 0 }
func (d speciesDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d speciesDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	line := listItem.FilterValue()
	if item, ok := listItem.(SpeciesItem); ok {
		line = fmt.Sprintf("#%04d %s", item.Species.PokedexID, item.Species.Name)
	}

	if index == m.Index() {
		fmt.Fprint(w, d.HighlightedItemStyle.Render("> "+line))
	} else {
		fmt.Fprint(w, d.ItemStyle.Render("  "+line))
	}
}

func NewSpeciesDelegate() list.ItemDelegate {
	return speciesDelegate{HighlightedItemStyle, ItemStyle}
}
