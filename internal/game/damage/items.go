package damage

import (
	"github.com/cory-johannsen/pokecalc/internal/game/battle"
	"github.com/cory-johannsen/pokecalc/internal/game/catalog"
)

// itemOutcome is the result of resolving one held item: the possibly
// rescaled stat block and the item's standalone damage multiplier.
type itemOutcome struct {
	stats            battle.StatBlock
	damageMultiplier float64
}

// applyAttackerItem resolves the attacker's held item against the derived
// stats. typeMultiplier is the base type effectiveness, consulted by
// type_advantage items. Unknown or absent items leave everything untouched.
func applyAttackerItem(items *catalog.Items, c battle.Combatant, stats battle.StatBlock, typeMultiplier float64) itemOutcome {
	out := itemOutcome{stats: stats, damageMultiplier: 1.0}
	if items == nil || c.Item == "" {
		return out
	}
	item, ok := items.Attacker(c.Item)
	if !ok {
		return out
	}

	switch item.Kind {
	case catalog.ItemAttackBoost:
		out.stats = out.stats.Scale(item.Stat, item.Multiplier)

	case catalog.ItemDamageBoost:
		out.damageMultiplier *= item.Multiplier

	case catalog.ItemSpecialPokemon:
		if !item.Targets(c.Name) {
			break
		}
		if item.Effect == "damage" {
			out.damageMultiplier *= item.Multiplier
			break
		}
		for _, s := range item.Stats {
			out.stats = out.stats.Scale(s, item.Multiplier)
		}

	case catalog.ItemTypeAdvantage:
		if typeMultiplier > 1.0 {
			out.damageMultiplier *= item.Multiplier
		}
	}

	return out
}

// applyDefenderItem resolves the defender's held item against the derived
// stats. The species table gates evolution_stone items to species flagged
// as not fully evolved.
func applyDefenderItem(items *catalog.Items, species *catalog.SpeciesTable, c battle.Combatant, stats battle.StatBlock) itemOutcome {
	out := itemOutcome{stats: stats, damageMultiplier: 1.0}
	if items == nil || c.Item == "" {
		return out
	}
	item, ok := items.Defender(c.Item)
	if !ok {
		return out
	}

	switch item.Kind {
	case catalog.ItemDamageReduction:
		out.damageMultiplier *= item.Multiplier

	case catalog.ItemDefenseBoost:
		out.stats = out.stats.Scale(item.Stat, item.Multiplier)

	case catalog.ItemEvolutionStone:
		if species == nil || !species.NotFinalStage(c.ID) {
			break
		}
		for _, s := range item.Stats {
			out.stats = out.stats.Scale(s, item.Multiplier)
		}
	}

	return out
}
