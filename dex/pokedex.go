package dex

import (
	"fmt"
	"io/fs"
	"math/rand/v2"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Pokedex indexes species by pokedex number and by lower cased name.
// Each index keeps its own copy of a record, and lookups always hand out copies.
type Pokedex struct {
	byID   map[int]Species
	byName map[string]Species
}

// SpeciesKey is anything a species can be looked up by: a name or a pokedex number
type SpeciesKey interface {
	string | int
}

// NewPokedex validates every species and builds both indices.
// A repeated pokedex number or name is rejected. Species without a level get DEFAULT_LEVEL.
func NewPokedex(species []Species) (*Pokedex, error) {
	pokedex := newEmptyPokedex(len(species))
	for _, s := range species {
		if s.Level == 0 {
			s.Level = DEFAULT_LEVEL
		}

		if err := pokedex.add(SOURCE_POKEDEX, s); err != nil {
			return nil, err
		}
	}

	return pokedex, nil
}

func newEmptyPokedex(size int) *Pokedex {
	return &Pokedex{
		byID:   make(map[int]Species, size),
		byName: make(map[string]Species, size),
	}
}

func (d *Pokedex) add(source string, species Species) error {
	if err := species.validate(source); err != nil {
		return err
	}

	if existing, ok := d.byID[species.PokedexID]; ok {
		return schemaErrorf(source, species.Name, "pokedex_id", "pokedex number %d is already used by %q", species.PokedexID, existing.Name)
	}

	lowerName := strings.ToLower(species.Name)
	if existing, ok := d.byName[lowerName]; ok {
		return schemaErrorf(source, species.Name, "name", "duplicate of pokemon #%d %q", existing.PokedexID, existing.Name)
	}

	internalLogger.V(1).Info("loaded pokemon",
		"pokedex", species.PokedexID,
		"name", species.Name,
		"types", lo.Map(species.Types, func(t ElementalType, _ int) string { return t.String() }),
		"hp", species.BaseStats.Hp,
		"attack", species.BaseStats.Attack,
		"def", species.BaseStats.Defense,
		"spattack", species.BaseStats.SpecialAttack,
		"spDef", species.BaseStats.SpecialDefense,
		"speed", species.BaseStats.Speed,
	)

	d.byID[species.PokedexID] = species.Clone()
	d.byName[lowerName] = species.Clone()
	return nil
}

// LoadPokedex reads every .json file in dir as a single species.
// Files are read one at a time and closed before the next is opened.
func LoadPokedex(files fs.FS, dir string) (*Pokedex, error) {
	internalLogger.Info("Loading Pokemon Data", "dir", dir)

	entries, err := fs.ReadDir(files, dir)
	if err != nil {
		internalLogger.Error(err, "Couldn't read pokedex directory")
		return nil, fmt.Errorf("reading pokedex dir %s: %w", dir, err)
	}

	entries = lo.Filter(entries, func(entry fs.DirEntry, _ int) bool {
		return !entry.IsDir() && path.Ext(entry.Name()) == ".json"
	})

	pokedex := newEmptyPokedex(len(entries))
	for _, entry := range entries {
		filePath := path.Join(dir, entry.Name())

		species, err := loadSpeciesFile(files, filePath)
		if err != nil {
			return nil, err
		}

		if err := pokedex.add(filePath, species); err != nil {
			return nil, err
		}
	}

	internalLogger.Info("Loaded pokemon", "count", pokedex.Len())
	return pokedex, nil
}

func loadSpeciesFile(files fs.FS, filePath string) (Species, error) {
	file, err := files.Open(filePath)
	if err != nil {
		return Species{}, fmt.Errorf("opening %s: %w", filePath, err)
	}
	defer file.Close()

	var payload speciesPayload
	if err := decodeSource(file, &payload); err != nil {
		internalLogger.WithName("pokemon_parsing").Error(err, "invalid pokemon file", "path", filePath)
		return Species{}, schemaErrorf(filePath, "", "", "malformed json: %s", err)
	}

	return payload.toSpecies(filePath)
}

// GetSpeciesByName finds a species by name, ignoring case. The returned species is a copy.
func (d *Pokedex) GetSpeciesByName(name string) (Species, error) {
	species, ok := d.byName[strings.ToLower(name)]
	if !ok {
		return Species{}, &NotFoundError{Registry: REGISTRY_POKEDEX, Index: INDEX_NAME, Key: name}
	}

	return species.Clone(), nil
}

// GetSpeciesByID finds a species by pokedex number. The returned species is a copy.
func (d *Pokedex) GetSpeciesByID(id int) (Species, error) {
	species, ok := d.byID[id]
	if !ok {
		return Species{}, &NotFoundError{Registry: REGISTRY_POKEDEX, Index: INDEX_ID, Key: strconv.Itoa(id)}
	}

	return species.Clone(), nil
}

// GetSpecies looks up by name when key is a string and by pokedex number when key is an int
func GetSpecies[K SpeciesKey](d *Pokedex, key K) (Species, error) {
	if id, ok := any(key).(int); ok {
		return d.GetSpeciesByID(id)
	}

	return d.GetSpeciesByName(any(key).(string))
}

// Random picks a species uniformly at random. The returned species is a copy.
// ok is false only when the pokedex is empty.
func (d *Pokedex) Random(rng *rand.Rand) (species Species, ok bool) {
	ids := d.ids()
	if len(ids) == 0 {
		return Species{}, false
	}

	return d.byID[ids[rng.IntN(len(ids))]].Clone(), true
}

func (d *Pokedex) Len() int {
	return len(d.byID)
}

// All returns copies of every species ordered by pokedex number
func (d *Pokedex) All() []Species {
	return lo.Map(d.ids(), func(id int, _ int) Species {
		return d.byID[id].Clone()
	})
}

func (d *Pokedex) ids() []int {
	ids := lo.Keys(d.byID)
	slices.Sort(ids)

	return ids
}

func (d *Pokedex) String() string {
	return fmt.Sprintf("Pokedex(%d pokemon)", d.Len())
}
