package dex

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Category uint8

const (
	CATEGORY_PHYSICAL Category = iota
	CATEGORY_SPECIAL
	CATEGORY_STATUS
)

var categoryNames = map[Category]string{
	CATEGORY_PHYSICAL: "physical",
	CATEGORY_SPECIAL:  "special",
	CATEGORY_STATUS:   "status",
}

func (c Category) String() string {
	name, ok := categoryNames[c]
	if !ok {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}

	return name
}

func (c Category) MarshalText() ([]byte, error) {
	if _, ok := categoryNames[c]; !ok {
		return nil, fmt.Errorf("invalid move category %d", uint8(c))
	}

	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	lowered := strings.ToLower(strings.TrimSpace(string(text)))
	for category, name := range categoryNames {
		if name == lowered {
			*c = category
			return nil
		}
	}

	return fmt.Errorf("unknown move category %q", string(text))
}

type Target uint8

const (
	// The opponent the user picked
	TARGET_SELECTED Target = iota
	TARGET_SELF
)

func (t Target) String() string {
	switch t {
	case TARGET_SELECTED:
		return "selected"
	case TARGET_SELF:
		return "self"
	default:
		return fmt.Sprintf("Target(%d)", uint8(t))
	}
}

func (t Target) MarshalText() ([]byte, error) {
	if t > TARGET_SELF {
		return nil, fmt.Errorf("invalid move target %d", uint8(t))
	}

	return []byte(t.String()), nil
}

func (t *Target) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "selected":
		*t = TARGET_SELECTED
	case "self":
		*t = TARGET_SELF
	default:
		return fmt.Errorf("unknown move target %q", string(text))
	}

	return nil
}

// For values that are pointers, they are nullable
type Move struct {
	Name        string        `json:"name"`
	Type        ElementalType `json:"type"`
	Category    Category      `json:"category"`
	Description string        `json:"description"`
	MaxPP       int           `json:"max_pp"`
	Power       int           `json:"power"`
	// Null means the move can't miss
	Accuracy *int   `json:"accuracy"`
	Target   Target `json:"target"`

	Priority      int     `json:"priority"`
	Drain         int     `json:"drain"`
	Healing       int     `json:"healing"`
	FlinchChance  float64 `json:"flinch_chance"`
	CritRate      int     `json:"crit_rate"`
	EffectChance  float64 `json:"effect_chance"`
	StatChance    float64 `json:"stat_chance"`
	Ailment       *string `json:"ailment"`
	AilmentChance int     `json:"ailment_chance"`

	// Null means always hits once
	MinHits *int `json:"min_hits"`
	// Null means always hits once
	MaxHits *int `json:"max_hits"`
	// Null means always one turn
	MinTurns *int `json:"min_turns"`
	// Null means always one turn
	MaxTurns *int `json:"max_turns"`
}

// movePayload mirrors Move with every required field as a pointer so missing fields can be told apart from zero values
type movePayload struct {
	Name        *string        `json:"name"`
	Type        *ElementalType `json:"type"`
	Category    *Category      `json:"category"`
	Description *string        `json:"description"`
	MaxPP       *int           `json:"max_pp"`
	Power       *int           `json:"power"`
	Accuracy    *int           `json:"accuracy"`
	Target      *Target        `json:"target"`

	Priority      int     `json:"priority"`
	Drain         int     `json:"drain"`
	Healing       int     `json:"healing"`
	FlinchChance  float64 `json:"flinch_chance"`
	CritRate      int     `json:"crit_rate"`
	EffectChance  float64 `json:"effect_chance"`
	StatChance    float64 `json:"stat_chance"`
	Ailment       *string `json:"ailment"`
	AilmentChance int     `json:"ailment_chance"`

	MinHits  *int `json:"min_hits"`
	MaxHits  *int `json:"max_hits"`
	MinTurns *int `json:"min_turns"`
	MaxTurns *int `json:"max_turns"`
}

func (p movePayload) toMove(source string, index int) (Move, error) {
	record := fmt.Sprintf("#%d", index)
	if p.Name != nil {
		record = *p.Name
	}

	required := []struct {
		field   string
		present bool
	}{
		{"name", p.Name != nil},
		{"type", p.Type != nil},
		{"category", p.Category != nil},
		{"description", p.Description != nil},
		{"max_pp", p.MaxPP != nil},
		{"power", p.Power != nil},
	}
	for _, r := range required {
		if !r.present {
			return Move{}, schemaErrorf(source, record, r.field, "required field is missing")
		}
	}

	move := Move{
		Name:          *p.Name,
		Type:          *p.Type,
		Category:      *p.Category,
		Description:   *p.Description,
		MaxPP:         *p.MaxPP,
		Power:         *p.Power,
		Accuracy:      p.Accuracy,
		Target:        TARGET_SELECTED,
		Priority:      p.Priority,
		Drain:         p.Drain,
		Healing:       p.Healing,
		FlinchChance:  p.FlinchChance,
		CritRate:      p.CritRate,
		EffectChance:  p.EffectChance,
		StatChance:    p.StatChance,
		Ailment:       p.Ailment,
		AilmentChance: p.AilmentChance,
		MinHits:       p.MinHits,
		MaxHits:       p.MaxHits,
		MinTurns:      p.MinTurns,
		MaxTurns:      p.MaxTurns,
	}
	if p.Target != nil {
		move.Target = *p.Target
	}

	return move, move.validate(source)
}

func (m Move) validate(source string) error {
	if strings.TrimSpace(m.Name) == "" {
		return schemaErrorf(source, m.Name, "name", "must not be empty")
	}
	if !m.Type.Valid() {
		return schemaErrorf(source, m.Name, "type", "unknown elemental type %d", uint8(m.Type))
	}
	if _, ok := categoryNames[m.Category]; !ok {
		return schemaErrorf(source, m.Name, "category", "unknown category %d", uint8(m.Category))
	}
	if m.Target > TARGET_SELF {
		return schemaErrorf(source, m.Name, "target", "unknown target %d", uint8(m.Target))
	}
	if m.MaxPP <= 0 {
		return schemaErrorf(source, m.Name, "max_pp", "must be greater than 0, got %d", m.MaxPP)
	}
	if m.Power <= 0 {
		return schemaErrorf(source, m.Name, "power", "must be greater than 0, got %d", m.Power)
	}
	if m.Accuracy != nil && (*m.Accuracy <= 0 || *m.Accuracy > 100) {
		return schemaErrorf(source, m.Name, "accuracy", "must be in (0, 100], got %d", *m.Accuracy)
	}

	chances := map[string]float64{
		"flinch_chance":  m.FlinchChance,
		"effect_chance":  m.EffectChance,
		"stat_chance":    m.StatChance,
		"ailment_chance": float64(m.AilmentChance),
	}
	for field, chance := range chances {
		if chance < 0 {
			return schemaErrorf(source, m.Name, field, "must not be negative, got %g", chance)
		}
	}

	if m.MinHits != nil && m.MaxHits != nil && *m.MinHits > *m.MaxHits {
		return schemaErrorf(source, m.Name, "min_hits", "min_hits %d is greater than max_hits %d", *m.MinHits, *m.MaxHits)
	}
	if m.MinTurns != nil && m.MaxTurns != nil && *m.MinTurns > *m.MaxTurns {
		return schemaErrorf(source, m.Name, "min_turns", "min_turns %d is greater than max_turns %d", *m.MinTurns, *m.MaxTurns)
	}

	return nil
}

// CanMiss is false for moves without an accuracy value
func (m Move) CanMiss() bool {
	return m.Accuracy != nil
}

// Clone returns a deep copy of m. Nothing in the copy shares memory with m.
func (m Move) Clone() Move {
	newMove := m
	newMove.Accuracy = clonePtr(m.Accuracy)
	newMove.Ailment = clonePtr(m.Ailment)
	newMove.MinHits = clonePtr(m.MinHits)
	newMove.MaxHits = clonePtr(m.MaxHits)
	newMove.MinTurns = clonePtr(m.MinTurns)
	newMove.MaxTurns = clonePtr(m.MaxTurns)

	return newMove
}

func (m Move) String() string {
	titleCaser := cases.Title(language.English)

	accuracy := "-"
	if m.Accuracy != nil {
		accuracy = fmt.Sprint(*m.Accuracy)
	}

	return fmt.Sprintf("%s (%s, %s) | PP: %d, Power: %d, Accuracy: %s | %s",
		m.Name,
		titleCaser.String(m.Type.String()),
		titleCaser.String(m.Category.String()),
		m.MaxPP,
		m.Power,
		accuracy,
		m.Description,
	)
}

func clonePtr[T any](ptr *T) *T {
	if ptr == nil {
		return nil
	}

	value := *ptr
	return &value
}
