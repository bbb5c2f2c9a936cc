package catalog

import (
	"github.com/cory-johannsen/pokecalc/internal/game/battle"
)

// Evolution-stage flags carried by species records. Only StageNotFinal has
// mechanical meaning (it gates the evolution_stone item); anything else is
// treated as fully evolved.
const (
	StageFinal    = "final"
	StageNotFinal = "not_final"
	StageUnknown  = "unknown"
)

// Species is one pokedex entry.
type Species struct {
	ID             int            `yaml:"id"`
	Name           string         `yaml:"name"`
	Types          []string       `yaml:"types"`
	BaseStats      map[string]int `yaml:"base_stats"`
	EvolutionStage string         `yaml:"evolution_stage"`
}

// Stats returns the species base stats as a normalized StatBlock.
func (s Species) Stats() battle.StatBlock {
	raw := make(map[battle.Stat]int, len(s.BaseStats))
	for name, v := range s.BaseStats {
		raw[battle.Stat(name)] = v
	}
	return battle.NewStatBlock(raw, 0)
}

// SpeciesTable is the read-only pokedex, indexed by id and display name.
type SpeciesTable struct {
	byID   map[int]Species
	byName map[string]Species
}

// NewSpeciesTable builds a pokedex from explicit entries.
func NewSpeciesTable(entries []Species) *SpeciesTable {
	t := &SpeciesTable{
		byID:   make(map[int]Species, len(entries)),
		byName: make(map[string]Species, len(entries)),
	}
	for _, s := range entries {
		t.byID[s.ID] = s
		t.byName[s.Name] = s
	}
	return t
}

// ByID returns the species with the given numeric id.
func (t *SpeciesTable) ByID(id int) (Species, bool) {
	s, ok := t.byID[id]
	return s, ok
}

// ByName returns the species with the given display name.
func (t *SpeciesTable) ByName(name string) (Species, bool) {
	s, ok := t.byName[name]
	return s, ok
}

// NotFinalStage reports whether the species with the given id is flagged as
// not fully evolved. Unknown ids and unknown stages are treated as final,
// so the evolution_stone item stays inert for them.
func (t *SpeciesTable) NotFinalStage(id int) bool {
	s, ok := t.byID[id]
	return ok && s.EvolutionStage == StageNotFinal
}

// LoadSpecies reads the pokedex from a YAML file with a top-level
// "species" list.
func LoadSpecies(path string) (*SpeciesTable, error) {
	var doc struct {
		Species []Species `yaml:"species"`
	}
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}
	return NewSpeciesTable(doc.Species), nil
}
