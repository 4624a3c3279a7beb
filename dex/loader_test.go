package dex_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-logr/logr/funcr"
	"github.com/nathanieltooley/pokedex/data"
	"github.com/nathanieltooley/pokedex/dex"
)

func loadBundled(t *testing.T) dex.Dex {
	t.Helper()

	loaded, err := dex.DefaultLoader(data.FS())
	if err != nil {
		t.Fatalf("bundled data failed to load: %s", err)
	}

	return loaded
}

func TestBundledDataLoads(t *testing.T) {
	loaded := loadBundled(t)

	if loaded.Pokemon.Len() == 0 {
		t.Fatalf("no pokemon loaded")
	}
	if loaded.Moves.Len() == 0 {
		t.Fatalf("no moves loaded")
	}
}

func TestBulbasaurCopyIsIndependent(t *testing.T) {
	pokedex := loadBundled(t).Pokemon

	bulbasaur, err := dex.GetSpecies(pokedex, "Bulbasaur")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if bulbasaur.BaseStats.Hp != 45 {
		t.Fatalf("expected bulbasaur hp 45, got %d", bulbasaur.BaseStats.Hp)
	}

	bulbasaur.BaseStats.Hp = 100

	friend, _ := dex.GetSpecies(pokedex, "Bulbasaur")
	if friend.BaseStats.Hp != 45 {
		t.Fatalf("registry bulbasaur changed: hp %d", friend.BaseStats.Hp)
	}
}

func TestBundledMovesIgnoreCase(t *testing.T) {
	movedex := loadBundled(t).Moves

	pound, err := movedex.GetMove("pound")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	upperPound, err := movedex.GetMove("POUND")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if pound.String() != upperPound.String() {
		t.Fatalf("case changed the move: %s | %s", pound, upperPound)
	}

	if _, err := movedex.GetMove("karate choP"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestBundledMatchupsAreCanonical(t *testing.T) {
	loaded := loadBundled(t)

	for _, species := range loaded.Pokemon.All() {
		for _, attacker := range dex.AllTypes() {
			e := loaded.Types.AgainstSpecies(attacker, species)
			if !e.Canonical() {
				t.Fatalf("%s vs %s gave non canonical %g", attacker, species.Name, e)
			}
		}
	}
}

func TestBundledMatchups(t *testing.T) {
	loaded := loadBundled(t)

	tests := []struct {
		move     string
		pokemon  string
		expected dex.Effectiveness
	}{
		{"Thunder Shock", "Gyarados", dex.EFFECTIVENESS_QUADRUPLE},
		{"Ember", "Bulbasaur", dex.EFFECTIVENESS_SUPER},
		{"Pound", "Gastly", dex.EFFECTIVENESS_NONE},
		{"Earthquake", "Charizard", dex.EFFECTIVENESS_NONE},
		{"Ember", "Kingdra", dex.EFFECTIVENESS_QUARTER},
		{"Water Gun", "Onix", dex.EFFECTIVENESS_QUADRUPLE},
		{"Pound", "Snorlax", dex.EFFECTIVENESS_NORMAL},
	}

	for _, test := range tests {
		move, err := loaded.Moves.GetMove(test.move)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		species, err := dex.GetSpecies(loaded.Pokemon, test.pokemon)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		if e := loaded.MatchupOf(move, species); e != test.expected {
			t.Fatalf("%s vs %s: expected %g, got %g", test.move, test.pokemon, test.expected, e)
		}
	}
}

func TestDefaultLoaderFailsWithoutPartialDex(t *testing.T) {
	files := fstest.MapFS{
		"type_chart.json":   {Data: []byte(`{"fire": {"grass": 2}}`)},
		"moves.json":        {Data: []byte(`[{"name": "a", "type": "fire", "category": "special", "description": "", "max_pp": 0, "power": 40}]`)},
		"pokedex/0001.json": {Data: []byte(`{"pokedex_id": 1, "name": "a", "type": ["fire"], "base_stats": {"hp": 1, "attack": 1, "defense": 1, "special_attack": 1, "special_defense": 1, "speed": 1}}`)},
	}

	loaded, err := dex.DefaultLoader(files)

	var schemaErr *dex.SchemaError
	if !errors.As(err, &schemaErr) || schemaErr.Field != "max_pp" {
		t.Fatalf("expected a max_pp SchemaError, got %v", err)
	}
	if loaded.Moves != nil || loaded.Pokemon != nil {
		t.Fatalf("a partial dex was returned")
	}
}

func TestDefaultLoaderMissingSource(t *testing.T) {
	files := fstest.MapFS{
		"moves.json":        {Data: []byte(`[]`)},
		"pokedex/0001.json": {Data: []byte(`{"pokedex_id": 1, "name": "a", "type": ["fire"], "base_stats": {"hp": 1, "attack": 1, "defense": 1, "special_attack": 1, "special_defense": 1, "speed": 1}}`)},
	}

	if _, err := dex.DefaultLoader(files); err == nil {
		t.Fatalf("expected an error when the type chart is missing")
	}
}

func TestInternalLogger(t *testing.T) {
	var lines []string
	dex.SetInternalLogger(funcr.New(func(prefix, args string) {
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{}))
	defer dex.SetInternalLogger(funcr.New(func(string, string) {}, funcr.Options{}))

	if _, err := dex.LoadMovedex(strings.NewReader(`[]`)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "dex") || !strings.Contains(joined, "Loaded moves") {
		t.Fatalf("expected named load logs, got %q", joined)
	}
}
