package catalog

import (
	"github.com/cory-johannsen/pokecalc/internal/game/battle"
)

// Nature is one personality entry: a per-stat multiplier applied after the
// base stat derivation. Neutral natures carry 1.0 everywhere.
type Nature struct {
	Name      string  `yaml:"name"`
	HP        float64 `yaml:"HP"`
	Attack    float64 `yaml:"Attack"`
	Defense   float64 `yaml:"Defense"`
	SpAttack  float64 `yaml:"Sp_Attack"`
	SpDefense float64 `yaml:"Sp_Defense"`
	Speed     float64 `yaml:"Speed"`
}

// Modifier returns the multiplier for the named stat. Unknown stat names
// and unset (zero) entries are neutral.
func (n Nature) Modifier(s battle.Stat) float64 {
	mult := n.modifier(s)
	if mult == 0 {
		return 1.0
	}
	return mult
}

func (n Nature) modifier(s battle.Stat) float64 {
	switch s {
	case battle.StatHP:
		return n.HP
	case battle.StatAttack:
		return n.Attack
	case battle.StatDefense:
		return n.Defense
	case battle.StatSpAttack:
		return n.SpAttack
	case battle.StatSpDefense:
		return n.SpDefense
	case battle.StatSpeed:
		return n.Speed
	default:
		return 1.0
	}
}

// Natures is the read-only nature table keyed by display name.
type Natures struct {
	byName map[string]Nature
}

// NewNatures builds a nature table from explicit entries.
func NewNatures(entries []Nature) *Natures {
	byName := make(map[string]Nature, len(entries))
	for _, n := range entries {
		byName[n.Name] = n
	}
	return &Natures{byName: byName}
}

// Modifier returns the multiplier the named nature applies to the named
// stat. Unknown natures are neutral (1.0), matching the engine contract
// that a missing nature entry never fails a calculation.
func (t *Natures) Modifier(nature string, s battle.Stat) float64 {
	n, ok := t.byName[nature]
	if !ok {
		return 1.0
	}
	return n.Modifier(s)
}

// Len returns the number of natures in the table.
func (t *Natures) Len() int { return len(t.byName) }

// LoadNatures reads a nature table from a YAML file with a top-level
// "natures" list.
func LoadNatures(path string) (*Natures, error) {
	var doc struct {
		Natures []Nature `yaml:"natures"`
	}
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}
	return NewNatures(doc.Natures), nil
}
