package dex

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
)

type ElementalType uint8

// Order matches the order types are listed in the games
const (
	TYPE_NORMAL ElementalType = iota
	TYPE_FIRE
	TYPE_WATER
	TYPE_GRASS
	TYPE_ELECTRIC
	TYPE_ICE
	TYPE_FIGHTING
	TYPE_POISON
	TYPE_GROUND
	TYPE_FLYING
	TYPE_PSYCHIC
	TYPE_BUG
	TYPE_ROCK
	TYPE_GHOST
	TYPE_DRAGON
	TYPE_DARK
	TYPE_STEEL
	TYPE_FAIRY

	typeCount
)

var typeNames = [typeCount]string{
	"normal",
	"fire",
	"water",
	"grass",
	"electric",
	"ice",
	"fighting",
	"poison",
	"ground",
	"flying",
	"psychic",
	"bug",
	"rock",
	"ghost",
	"dragon",
	"dark",
	"steel",
	"fairy",
}

var typeLookup = lo.SliceToMap(AllTypes(), func(t ElementalType) (string, ElementalType) {
	return t.String(), t
})

// AllTypes returns every elemental type in declaration order
func AllTypes() []ElementalType {
	types := make([]ElementalType, 0, typeCount)
	for i := range typeCount {
		types = append(types, i)
	}

	return types
}

// ParseElementalType converts a type name to an ElementalType, ignoring case and surrounding whitespace.
func ParseElementalType(name string) (ElementalType, error) {
	t, ok := typeLookup[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown elemental type %q", name)
	}

	return t, nil
}

func (t ElementalType) Valid() bool {
	return t < typeCount
}

func (t ElementalType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ElementalType(%d)", uint8(t))
	}

	return typeNames[t]
}

func (t ElementalType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid elemental type %d", uint8(t))
	}

	return []byte(t.String()), nil
}

func (t *ElementalType) UnmarshalText(text []byte) error {
	parsed, err := ParseElementalType(string(text))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// Effectiveness is the damage multiplier of an attack against one or more defending types
type Effectiveness float64

const (
	EFFECTIVENESS_NONE      Effectiveness = 0
	EFFECTIVENESS_QUARTER   Effectiveness = 0.25
	EFFECTIVENESS_NOT_VERY  Effectiveness = 0.5
	EFFECTIVENESS_NORMAL    Effectiveness = 1
	EFFECTIVENESS_SUPER     Effectiveness = 2
	EFFECTIVENESS_QUADRUPLE Effectiveness = 4
)

// chartValues are the only multipliers a single attacker/defender pair can have.
// 4x and 0.25x only come out of combining two defending types.
var chartValues = []Effectiveness{
	EFFECTIVENESS_NONE,
	EFFECTIVENESS_NOT_VERY,
	EFFECTIVENESS_NORMAL,
	EFFECTIVENESS_SUPER,
}

var combinedValues = []Effectiveness{
	EFFECTIVENESS_NONE,
	EFFECTIVENESS_QUARTER,
	EFFECTIVENESS_NOT_VERY,
	EFFECTIVENESS_NORMAL,
	EFFECTIVENESS_SUPER,
	EFFECTIVENESS_QUADRUPLE,
}

// Canonical reports whether e is a multiplier that can come out of a chart with at most two defending types.
func (e Effectiveness) Canonical() bool {
	return lo.Contains(combinedValues, e)
}

func (e Effectiveness) String() string {
	switch e {
	case EFFECTIVENESS_NONE:
		return "no effect"
	case EFFECTIVENESS_QUARTER, EFFECTIVENESS_NOT_VERY:
		return fmt.Sprintf("not very effective (%gx)", float64(e))
	case EFFECTIVENESS_NORMAL:
		return "normal (1x)"
	case EFFECTIVENESS_SUPER, EFFECTIVENESS_QUADRUPLE:
		return fmt.Sprintf("super effective (%gx)", float64(e))
	default:
		return fmt.Sprintf("%gx", float64(e))
	}
}

// TypeChart maps attacking types to the multiplier they do against defending types.
// Pairs that aren't in the chart are normal effectiveness.
type TypeChart struct {
	matchups map[ElementalType]map[ElementalType]Effectiveness
}

// NewTypeChart validates and copies raw into a TypeChart.
// Every multiplier must be one of 0, 0.5, 1, or 2. A nil raw is rejected; an empty one is a chart where everything is normal effectiveness.
func NewTypeChart(raw map[ElementalType]map[ElementalType]Effectiveness) (TypeChart, error) {
	if raw == nil {
		return TypeChart{}, schemaErrorf(SOURCE_TYPE_CHART, "", "", "chart is missing")
	}

	chart := TypeChart{matchups: make(map[ElementalType]map[ElementalType]Effectiveness, len(raw))}

	for attacker, defenders := range raw {
		if !attacker.Valid() {
			return TypeChart{}, schemaErrorf(SOURCE_TYPE_CHART, attacker.String(), "", "unknown attacking type")
		}

		row := make(map[ElementalType]Effectiveness, len(defenders))
		for defender, effectiveness := range defenders {
			if !defender.Valid() {
				return TypeChart{}, schemaErrorf(SOURCE_TYPE_CHART, attacker.String(), defender.String(), "unknown defending type")
			}
			if !lo.Contains(chartValues, effectiveness) {
				return TypeChart{}, schemaErrorf(SOURCE_TYPE_CHART, attacker.String(), defender.String(), "multiplier %g is not one of 0, 0.5, 1, 2", float64(effectiveness))
			}

			row[defender] = effectiveness
		}

		chart.matchups[attacker] = row
	}

	return chart, nil
}

// LoadTypeChart reads a JSON object of the form {"fire": {"grass": 2, "water": 0.5}, ...}
func LoadTypeChart(r io.Reader) (TypeChart, error) {
	internalLogger.Info("Loading type chart")

	var raw map[string]map[string]float64
	if err := decodeSource(r, &raw); err != nil {
		internalLogger.Error(err, "Couldn't parse type chart")
		return TypeChart{}, schemaErrorf(SOURCE_TYPE_CHART, "", "", "malformed json: %s", err)
	}
	if raw == nil {
		return TypeChart{}, schemaErrorf(SOURCE_TYPE_CHART, "", "", "expected a json object, got null")
	}

	typed := make(map[ElementalType]map[ElementalType]Effectiveness, len(raw))
	attackerNames := make(map[ElementalType]string, len(raw))
	for attackerName, defenders := range raw {
		attacker, err := ParseElementalType(attackerName)
		if err != nil {
			return TypeChart{}, schemaErrorf(SOURCE_TYPE_CHART, attackerName, "", "%s", err)
		}
		// "fire" and "FIRE" are the same type
		if other, ok := attackerNames[attacker]; ok {
			return TypeChart{}, schemaErrorf(SOURCE_TYPE_CHART, attackerName, "", "duplicate type %q, already given as %q", attackerName, other)
		}
		attackerNames[attacker] = attackerName

		if defenders == nil {
			return TypeChart{}, schemaErrorf(SOURCE_TYPE_CHART, attackerName, "", "expected a json object, got null")
		}

		row := make(map[ElementalType]Effectiveness, len(defenders))
		defenderNames := make(map[ElementalType]string, len(defenders))
		for defenderName, value := range defenders {
			defender, err := ParseElementalType(defenderName)
			if err != nil {
				return TypeChart{}, schemaErrorf(SOURCE_TYPE_CHART, attackerName, defenderName, "%s", err)
			}
			if other, ok := defenderNames[defender]; ok {
				return TypeChart{}, schemaErrorf(SOURCE_TYPE_CHART, attackerName, defenderName, "duplicate type %q, already given as %q", defenderName, other)
			}
			defenderNames[defender] = defenderName

			row[defender] = Effectiveness(value)
		}

		typed[attacker] = row
	}

	chart, err := NewTypeChart(typed)
	if err != nil {
		return TypeChart{}, err
	}

	internalLogger.Info("Loaded type chart", "attacking_types", len(chart.matchups))
	return chart, nil
}

// EffectivenessOf gives the multiplier of an attack of type attacker against a single defending type.
func (c TypeChart) EffectivenessOf(attacker ElementalType, defender ElementalType) Effectiveness {
	effectiveness, ok := c.matchups[attacker][defender]
	if !ok {
		return EFFECTIVENESS_NORMAL
	}

	return effectiveness
}

// CombinedEffectiveness multiplies the effectiveness against each defending type together.
// No defenders is treated as normal effectiveness.
func (c TypeChart) CombinedEffectiveness(attacker ElementalType, defenders ...ElementalType) Effectiveness {
	effectiveness := EFFECTIVENESS_NORMAL
	for _, defender := range defenders {
		effectiveness *= c.EffectivenessOf(attacker, defender)
	}

	return effectiveness
}

// AgainstSpecies is the effectiveness of an attack of type attacker against all of a species' types
func (c TypeChart) AgainstSpecies(attacker ElementalType, species Species) Effectiveness {
	return c.CombinedEffectiveness(attacker, species.Types...)
}
