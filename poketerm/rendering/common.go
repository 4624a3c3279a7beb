package rendering

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/dex"
	"github.com/nathanieltooley/pokedex/poketerm/global"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	panelWidth = 60
	statBarMax = 255
	statBarLen = 24
)

var (
	HighlightedColor = lipgloss.Color("33")
	ErrorColor       = lipgloss.Color("160")

	PanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).Padding(0, 1)
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(HighlightedColor)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ErrorColor)
	FaintStyle  = lipgloss.NewStyle().Faint(true)
	BadgeStyle  = lipgloss.NewStyle().Padding(0, 1).MarginRight(1)
	StatBarFull = lipgloss.NewStyle().Foreground(HighlightedColor)

	titleCaser = cases.Title(language.English)

	TypeColors = map[dex.ElementalType]lipgloss.Color{
		dex.TYPE_NORMAL:   lipgloss.Color("#A8A77A"),
		dex.TYPE_FIRE:     lipgloss.Color("#EE8130"),
		dex.TYPE_WATER:    lipgloss.Color("#6390F0"),
		dex.TYPE_GRASS:    lipgloss.Color("#7AC74C"),
		dex.TYPE_ELECTRIC: lipgloss.Color("#F7D02C"),
		dex.TYPE_ICE:      lipgloss.Color("#96D9D6"),
		dex.TYPE_FIGHTING: lipgloss.Color("#C22E28"),
		dex.TYPE_POISON:   lipgloss.Color("#A33EA1"),
		dex.TYPE_GROUND:   lipgloss.Color("#E2BF65"),
		dex.TYPE_FLYING:   lipgloss.Color("#A98FF3"),
		dex.TYPE_PSYCHIC:  lipgloss.Color("#F95587"),
		dex.TYPE_BUG:      lipgloss.Color("#A6B91A"),
		dex.TYPE_ROCK:     lipgloss.Color("#B6A136"),
		dex.TYPE_GHOST:    lipgloss.Color("#735797"),
		dex.TYPE_DRAGON:   lipgloss.Color("#6F35FC"),
		dex.TYPE_DARK:     lipgloss.Color("#705746"),
		dex.TYPE_STEEL:    lipgloss.Color("#B7B7CE"),
		dex.TYPE_FAIRY:    lipgloss.Color("#D685AD"),
	}
)

// Width is how wide panels can be, shrinking to fit the terminal when it's known
func Width() int {
	if global.TERM_WIDTH > 0 && global.TERM_WIDTH < panelWidth {
		return global.TERM_WIDTH
	}

	return panelWidth
}

func BestTextColor(backgroundColor lipgloss.Color) lipgloss.Color {
	// thanks https://andrisignorell.github.io/DescTools/reference/TextContrastColor.html
	r, g, b, _ := backgroundColor.RGBA()
	// RGBA gives 16 bit channels
	mean := (r + g + b) / 3

	if mean < 0x7FFF {
		return lipgloss.Color("#FFFFFF")
	} else {
		return lipgloss.Color("#000000")
	}
}

func TypeBadge(t dex.ElementalType) string {
	color := TypeColors[t]
	return BadgeStyle.Background(color).Foreground(BestTextColor(color)).Render(titleCaser.String(t.String()))
}

func statBar(value int) string {
	filled := min(value, statBarMax) * statBarLen / statBarMax
	return StatBarFull.Render(strings.Repeat("█", filled)) + FaintStyle.Render(strings.Repeat("░", statBarLen-filled))
}

type statRow struct {
	name  string
	value int
}

func RenderSpecies(species dex.Species) string {
	header := TitleStyle.Render(fmt.Sprintf("#%04d %s", species.PokedexID, species.Name)) +
		FaintStyle.Render(fmt.Sprintf("  Lv. %d", species.Level))
	badges := lipgloss.JoinHorizontal(lipgloss.Top, lo.Map(species.Types, func(t dex.ElementalType, _ int) string {
		return TypeBadge(t)
	})...)

	stats := species.BaseStats
	rows := []statRow{
		{"HP", stats.Hp},
		{"Atk", stats.Attack},
		{"Def", stats.Defense},
		{"SpA", stats.SpecialAttack},
		{"SpD", stats.SpecialDefense},
		{"Spe", stats.Speed},
	}
	statLines := lo.Map(rows, func(row statRow, _ int) string {
		return fmt.Sprintf("%-4s %3d %s", row.name, row.value, statBar(row.value))
	})
	statLines = append(statLines, fmt.Sprintf("%-4s %3d", "Tot", stats.Total()))

	body := lipgloss.JoinVertical(lipgloss.Left, header, badges, "", strings.Join(statLines, "\n"))
	return PanelStyle.Width(Width()).Render(body)
}

func RenderMove(move dex.Move) string {
	header := TitleStyle.Render(move.Name)
	badges := lipgloss.JoinHorizontal(lipgloss.Top, TypeBadge(move.Type), FaintStyle.Render(titleCaser.String(move.Category.String())))

	accuracy := "never misses"
	if move.CanMiss() {
		accuracy = fmt.Sprintf("%d%%", *move.Accuracy)
	}

	lines := []string{
		fmt.Sprintf("Power: %d  PP: %d  Accuracy: %s", move.Power, move.MaxPP, accuracy),
	}
	if move.Priority != 0 {
		lines = append(lines, fmt.Sprintf("Priority: %+d", move.Priority))
	}
	if move.Ailment != nil {
		lines = append(lines, fmt.Sprintf("Ailment: %s (%d%%)", *move.Ailment, move.AilmentChance))
	}
	if move.MinHits != nil && move.MaxHits != nil {
		lines = append(lines, fmt.Sprintf("Hits: %d-%d", *move.MinHits, *move.MaxHits))
	}
	if move.MinTurns != nil && move.MaxTurns != nil {
		lines = append(lines, fmt.Sprintf("Turns: %d-%d", *move.MinTurns, *move.MaxTurns))
	}

	description := lipgloss.NewStyle().Width(max(Width()-4, 10)).Render(move.Description)
	body := lipgloss.JoinVertical(lipgloss.Left, header, badges, "", strings.Join(lines, "\n"), "", description)
	return PanelStyle.Width(Width()).Render(body)
}

func RenderEffectiveness(attacker dex.ElementalType, defenders []dex.ElementalType, effectiveness dex.Effectiveness) string {
	defenderBadges := lo.Map(defenders, func(t dex.ElementalType, _ int) string {
		return TypeBadge(t)
	})

	matchup := lipgloss.JoinHorizontal(lipgloss.Top, append([]string{TypeBadge(attacker), "-> "}, defenderBadges...)...)
	return lipgloss.JoinVertical(lipgloss.Left, matchup, TitleStyle.Render(titleCaser.String(effectiveness.String())))
}

func RenderError(err error) string {
	return ErrorStyle.Render(err.Error())
}
