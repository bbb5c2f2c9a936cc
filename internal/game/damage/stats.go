// Package damage implements the deterministic damage-resolution core: stat
// derivation, the ordered modifier pipeline with its mixed rounding rules,
// the engine facade, and the 16-roll range analyzer.
package damage

import (
	"github.com/cory-johannsen/pokecalc/internal/game/battle"
	"github.com/cory-johannsen/pokecalc/internal/game/catalog"
)

// DeriveStats converts a combatant's base stats, IVs, EVs, level, and
// nature into battle-ready stat values.
//
// HP:    (2*base + IV + EV/4) * level / 100 + level + 10
// other: ((2*base + IV + EV/4) * level / 100 + 5) * nature multiplier
//
// All divisions truncate, and the nature-adjusted value truncates again.
// A nature missing from the table is neutral.
//
// Postcondition: The input combatant is not mutated; the returned block is
// a fresh value.
func DeriveStats(c battle.Combatant, natures *catalog.Natures) battle.StatBlock {
	var derived battle.StatBlock
	for _, s := range battle.Stats() {
		core := (2*c.BaseStats.Get(s) + c.IVs.Get(s) + c.EVs.Get(s)/4) * c.Level / 100
		if s == battle.StatHP {
			derived = derived.With(s, core+c.Level+10)
			continue
		}
		mult := 1.0
		if natures != nil {
			mult = natures.Modifier(c.Nature, s)
		}
		derived = derived.With(s, int(float64(core+5)*mult))
	}
	return derived
}
