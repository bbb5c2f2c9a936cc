package damage

import (
	"strings"

	"github.com/cory-johannsen/pokecalc/internal/game/battle"
	"github.com/cory-johannsen/pokecalc/internal/game/catalog"
)

// multipliers is the working set of damage multipliers the ability rules
// rewrite. All start from the values the pipeline seeded before ability
// resolution.
type multipliers struct {
	other    float64
	stab     float64
	critical float64
	typeEff  float64
}

// applyOffensiveAbility rewrites the multipliers according to the
// attacker's ability. A blank or unknown ability name is a no-op.
func applyOffensiveAbility(abilities *catalog.Abilities, attacker battle.Combatant, move battle.Move, criticalHit bool, m multipliers) multipliers {
	name := strings.TrimSpace(attacker.Ability)
	if abilities == nil || name == "" {
		return m
	}
	ability, ok := abilities.Offensive(name)
	if !ok {
		return m
	}

	switch ability.Kind {
	case catalog.AbilityAdaptability:
		if attacker.HasType(move.Type) {
			m.stab = 2.0
		}

	case catalog.AbilityTechnician:
		if move.Power <= ability.PowerCap {
			m.other *= ability.Multiplier
		}

	case catalog.AbilityIronFist:
		if ability.NameMarker != "" && strings.Contains(move.Name, ability.NameMarker) {
			m.other *= ability.Multiplier
		}

	case catalog.AbilitySniper:
		if criticalHit {
			m.critical = 3.0
		}

	case catalog.AbilityTypeOverride:
		if m.typeEff == 0 && containsType(ability.Types, move.Type) {
			m.typeEff = 1.0
		}

	case catalog.AbilityTypeBoost:
		// Triggers on type match alone; the low-HP gate the franchise
		// implies is deliberately not modeled.
		if move.Type == ability.Type {
			m.other *= ability.Multiplier
		}

	case catalog.AbilityBurnImmune:
		// Handled where the burn penalty is applied.
	}

	return m
}

// applyDefensiveAbility rewrites the multipliers according to the
// defender's ability. A blank or unknown ability name is a no-op.
func applyDefensiveAbility(abilities *catalog.Abilities, defender battle.Combatant, move battle.Move, m multipliers) multipliers {
	name := strings.TrimSpace(defender.Ability)
	if abilities == nil || name == "" {
		return m
	}
	ability, ok := abilities.Defensive(name)
	if !ok {
		return m
	}

	switch ability.Kind {
	case catalog.AbilityTypeResist:
		if containsType(ability.Types, move.Type) {
			m.typeEff *= ability.Multiplier
		}

	case catalog.AbilityDrySkin:
		if move.Type == ability.ImmuneType {
			m.typeEff = 0
		} else if move.Type == ability.AmplifyType {
			m.other *= ability.AmplifyMultiplier
		}

	case catalog.AbilityFilter:
		if m.typeEff > 1.0 {
			m.typeEff *= ability.Multiplier
		}

	case catalog.AbilityTypeImmunity:
		if containsType(ability.Types, move.Type) {
			m.typeEff = 0
		}

	case catalog.AbilityCategoryDamp:
		if string(move.Category) == ability.Category {
			m.other *= ability.Multiplier
		}
	}

	return m
}

func containsType(types []string, t string) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
