package rendering

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/dex"
)

func testSpecies() dex.Species {
	return dex.Species{
		PokedexID: 1,
		Name:      "Bulbasaur",
		Types:     []dex.ElementalType{dex.TYPE_GRASS, dex.TYPE_POISON},
		Level:     5,
		BaseStats: dex.BaseStats{Hp: 45, Attack: 49, Defense: 49, SpecialAttack: 65, SpecialDefense: 65, Speed: 45},
	}
}

func TestBestTextColor(t *testing.T) {
	if c := BestTextColor(lipgloss.Color("#000000")); c != lipgloss.Color("#FFFFFF") {
		t.Fatalf("expected white text on black, got %s", c)
	}
	if c := BestTextColor(lipgloss.Color("#FFFFFF")); c != lipgloss.Color("#000000") {
		t.Fatalf("expected black text on white, got %s", c)
	}
}

func TestEveryTypeHasAColor(t *testing.T) {
	for _, elementalType := range dex.AllTypes() {
		if _, ok := TypeColors[elementalType]; !ok {
			t.Fatalf("%s has no color", elementalType)
		}
	}
}

func TestRenderSpecies(t *testing.T) {
	rendered := RenderSpecies(testSpecies())

	for _, expected := range []string{"#0001 Bulbasaur", "Grass", "Poison", "HP", "45", "318"} {
		if !strings.Contains(rendered, expected) {
			t.Fatalf("expected %q in\n%s", expected, rendered)
		}
	}
}

func TestRenderMove(t *testing.T) {
	accuracy := 100
	move := dex.Move{
		Name:        "Ember",
		Type:        dex.TYPE_FIRE,
		Category:    dex.CATEGORY_SPECIAL,
		Description: "Burns.",
		MaxPP:       25,
		Power:       40,
		Accuracy:    &accuracy,
	}

	rendered := RenderMove(move)
	for _, expected := range []string{"Ember", "Fire", "Special", "Power: 40", "PP: 25", "100%"} {
		if !strings.Contains(rendered, expected) {
			t.Fatalf("expected %q in\n%s", expected, rendered)
		}
	}

	move.Accuracy = nil
	if rendered := RenderMove(move); !strings.Contains(rendered, "never misses") {
		t.Fatalf("a move without accuracy should never miss\n%s", rendered)
	}
}

func TestRenderEffectiveness(t *testing.T) {
	rendered := RenderEffectiveness(dex.TYPE_ELECTRIC, []dex.ElementalType{dex.TYPE_WATER, dex.TYPE_FLYING}, dex.EFFECTIVENESS_QUADRUPLE)

	for _, expected := range []string{"Electric", "Water", "Flying", "4"} {
		if !strings.Contains(rendered, expected) {
			t.Fatalf("expected %q in\n%s", expected, rendered)
		}
	}
}

func TestRenderError(t *testing.T) {
	if rendered := RenderError(errors.New("boom")); !strings.Contains(rendered, "boom") {
		t.Fatalf("error text missing: %s", rendered)
	}
}

func TestSpeciesDelegate(t *testing.T) {
	items := []list.Item{SpeciesItem{testSpecies()}}
	l := list.New(items, NewSpeciesDelegate(), 30, 10)

	var b strings.Builder
	NewSpeciesDelegate().Render(&b, l, 0, items[0])

	if !strings.Contains(b.String(), "#0001 Bulbasaur") {
		t.Fatalf("unexpected list line %q", b.String())
	}
}
