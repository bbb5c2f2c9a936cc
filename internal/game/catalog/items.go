package catalog

import (
	"github.com/cory-johannsen/pokecalc/internal/game/battle"
)

// AttackerItemKind tags the closed set of attacker-side item effects.
type AttackerItemKind string

const (
	// ItemAttackBoost multiplies one named attacker stat.
	ItemAttackBoost AttackerItemKind = "attack_boost"
	// ItemDamageBoost contributes directly to the damage multiplier.
	ItemDamageBoost AttackerItemKind = "damage_boost"
	// ItemSpecialPokemon applies only when the holder's name matches one of
	// the configured target species; it either rescales the named stats or,
	// with effect "damage", feeds the damage multiplier.
	ItemSpecialPokemon AttackerItemKind = "special_pokemon"
	// ItemTypeAdvantage feeds the damage multiplier only when the move is
	// super-effective against the defender.
	ItemTypeAdvantage AttackerItemKind = "type_advantage"
)

// DefenderItemKind tags the closed set of defender-side item effects.
type DefenderItemKind string

const (
	// ItemDamageReduction contributes directly to the damage multiplier.
	ItemDamageReduction DefenderItemKind = "damage_reduction"
	// ItemDefenseBoost multiplies one named defender stat.
	ItemDefenseBoost DefenderItemKind = "defense_boost"
	// ItemEvolutionStone rescales the named stats, but only for species the
	// species catalog flags as not fully evolved.
	ItemEvolutionStone DefenderItemKind = "evolution_stone"
)

// AttackerItem is one attacker-side held-item record.
type AttackerItem struct {
	Kind       AttackerItemKind `yaml:"kind"`
	Stat       battle.Stat      `yaml:"stat,omitempty"`
	Stats      []battle.Stat    `yaml:"stats,omitempty"`
	Multiplier float64          `yaml:"multiplier"`
	// Pokemon lists the species display names a special_pokemon item works
	// for. A single-element list models single-target items.
	Pokemon []string `yaml:"pokemon,omitempty"`
	// Effect set to "damage" routes a special_pokemon item into the damage
	// multiplier instead of a stat rescale.
	Effect string `yaml:"effect,omitempty"`
}

// Targets reports whether the item's special_pokemon condition matches the
// given holder name.
func (i AttackerItem) Targets(name string) bool {
	for _, p := range i.Pokemon {
		if p == name {
			return true
		}
	}
	return false
}

// DefenderItem is one defender-side held-item record.
type DefenderItem struct {
	Kind       DefenderItemKind `yaml:"kind"`
	Stat       battle.Stat      `yaml:"stat,omitempty"`
	Stats      []battle.Stat    `yaml:"stats,omitempty"`
	Multiplier float64          `yaml:"multiplier"`
}

// Items is the read-only held-item table, split by the role the holder
// plays in a calculation, keyed by item display name.
type Items struct {
	attacker map[string]AttackerItem
	defender map[string]DefenderItem
}

// NewItems builds an item table from explicit entries.
func NewItems(attacker map[string]AttackerItem, defender map[string]DefenderItem) *Items {
	a := make(map[string]AttackerItem, len(attacker))
	for name, item := range attacker {
		a[name] = item
	}
	d := make(map[string]DefenderItem, len(defender))
	for name, item := range defender {
		d[name] = item
	}
	return &Items{attacker: a, defender: d}
}

// Attacker returns the attacker-side record for the named item.
// Unrecognized names return (zero, false) and have no effect.
func (t *Items) Attacker(name string) (AttackerItem, bool) {
	item, ok := t.attacker[name]
	return item, ok
}

// Defender returns the defender-side record for the named item.
func (t *Items) Defender(name string) (DefenderItem, bool) {
	item, ok := t.defender[name]
	return item, ok
}

// LoadItems reads the item table from a YAML file with top-level
// "attacker_items" and "defender_items" maps.
func LoadItems(path string) (*Items, error) {
	var doc struct {
		AttackerItems map[string]AttackerItem `yaml:"attacker_items"`
		DefenderItems map[string]DefenderItem `yaml:"defender_items"`
	}
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}
	return NewItems(doc.AttackerItems, doc.DefenderItems), nil
}
