package dex

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	DEFAULT_LEVEL = 5
	MAX_LEVEL     = 100
	MAX_TYPES     = 2
)

type BaseStats struct {
	Hp             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`
}

func (b BaseStats) Total() int {
	return b.Hp + b.Attack + b.Defense + b.SpecialAttack + b.SpecialDefense + b.Speed
}

func (b BaseStats) String() string {
	return fmt.Sprintf("HP: %d, Atk: %d, Def: %d, SpA: %d, SpD: %d, Spe: %d (Total: %d)",
		b.Hp, b.Attack, b.Defense, b.SpecialAttack, b.SpecialDefense, b.Speed, b.Total())
}

type Species struct {
	PokedexID int             `json:"pokedex_id"`
	Name      string          `json:"name"`
	Types     []ElementalType `json:"type"`
	Level     int             `json:"level"`
	BaseStats BaseStats       `json:"base_stats"`
}

type baseStatsPayload struct {
	Hp             *int `json:"hp"`
	Attack         *int `json:"attack"`
	Defense        *int `json:"defense"`
	SpecialAttack  *int `json:"special_attack"`
	SpecialDefense *int `json:"special_defense"`
	Speed          *int `json:"speed"`
}

type speciesPayload struct {
	PokedexID *int              `json:"pokedex_id"`
	Name      *string           `json:"name"`
	Types     []ElementalType   `json:"type"`
	Level     *int              `json:"level"`
	BaseStats *baseStatsPayload `json:"base_stats"`
}

func (p speciesPayload) toSpecies(source string) (Species, error) {
	record := ""
	if p.Name != nil {
		record = *p.Name
	}

	if p.PokedexID == nil {
		return Species{}, schemaErrorf(source, record, "pokedex_id", "required field is missing")
	}
	if p.Name == nil {
		return Species{}, schemaErrorf(source, record, "name", "required field is missing")
	}
	if p.Types == nil {
		return Species{}, schemaErrorf(source, record, "type", "required field is missing")
	}
	if p.BaseStats == nil {
		return Species{}, schemaErrorf(source, record, "base_stats", "required field is missing")
	}

	stats := []struct {
		field string
		value *int
	}{
		{"hp", p.BaseStats.Hp},
		{"attack", p.BaseStats.Attack},
		{"defense", p.BaseStats.Defense},
		{"special_attack", p.BaseStats.SpecialAttack},
		{"special_defense", p.BaseStats.SpecialDefense},
		{"speed", p.BaseStats.Speed},
	}
	for _, stat := range stats {
		if stat.value == nil {
			return Species{}, schemaErrorf(source, record, "base_stats."+stat.field, "required field is missing")
		}
	}

	species := Species{
		PokedexID: *p.PokedexID,
		Name:      *p.Name,
		Types:     p.Types,
		Level:     lo.FromPtrOr(p.Level, DEFAULT_LEVEL),
		BaseStats: BaseStats{
			Hp:             *p.BaseStats.Hp,
			Attack:         *p.BaseStats.Attack,
			Defense:        *p.BaseStats.Defense,
			SpecialAttack:  *p.BaseStats.SpecialAttack,
			SpecialDefense: *p.BaseStats.SpecialDefense,
			Speed:          *p.BaseStats.Speed,
		},
	}

	return species, species.validate(source)
}

func (s Species) validate(source string) error {
	if s.PokedexID <= 0 {
		return schemaErrorf(source, s.Name, "pokedex_id", "must be greater than 0, got %d", s.PokedexID)
	}
	if strings.TrimSpace(s.Name) == "" {
		return schemaErrorf(source, s.Name, "name", "must not be empty")
	}
	if len(s.Types) == 0 || len(s.Types) > MAX_TYPES {
		return schemaErrorf(source, s.Name, "type", "must have 1 to %d types, got %d", MAX_TYPES, len(s.Types))
	}
	for _, t := range s.Types {
		if !t.Valid() {
			return schemaErrorf(source, s.Name, "type", "unknown elemental type %d", uint8(t))
		}
	}
	if len(lo.Uniq(s.Types)) != len(s.Types) {
		return schemaErrorf(source, s.Name, "type", "types must not repeat, got %v", s.Types)
	}
	if s.Level < 1 || s.Level > MAX_LEVEL {
		return schemaErrorf(source, s.Name, "level", "must be in [1, %d], got %d", MAX_LEVEL, s.Level)
	}

	stats := []struct {
		field string
		value int
	}{
		{"hp", s.BaseStats.Hp},
		{"attack", s.BaseStats.Attack},
		{"defense", s.BaseStats.Defense},
		{"special_attack", s.BaseStats.SpecialAttack},
		{"special_defense", s.BaseStats.SpecialDefense},
		{"speed", s.BaseStats.Speed},
	}
	for _, stat := range stats {
		if stat.value < 0 {
			return schemaErrorf(source, s.Name, "base_stats."+stat.field, "must not be negative, got %d", stat.value)
		}
	}

	return nil
}

// HasType reports whether t is one of the species' types
func (s Species) HasType(t ElementalType) bool {
	return slices.Contains(s.Types, t)
}

// Clone returns a deep copy of s. Changing the copy's types or stats never affects s.
func (s Species) Clone() Species {
	newSpecies := s
	newSpecies.Types = slices.Clone(s.Types)

	return newSpecies
}

func (s Species) String() string {
	titleCaser := cases.Title(language.English)
	typeNames := lo.Map(s.Types, func(t ElementalType, _ int) string {
		return titleCaser.String(t.String())
	})

	return fmt.Sprintf("%04d %s (%s) | %s", s.PokedexID, s.Name, strings.Join(typeNames, ", "), s.BaseStats)
}
