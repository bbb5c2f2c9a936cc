package damage

import (
	"github.com/cory-johannsen/pokecalc/internal/game/battle"
)

// rangeRolls is the number of canonical damage roll factors.
const rangeRolls = 16

// rollFactor returns the i-th canonical damage roll factor,
// 0.85 + i*(0.15/15) for i in [0, 16).
func rollFactor(i int) float64 {
	return 0.85 + float64(i)/15*0.15
}

// DamageRange resolves the attack once per canonical roll factor and
// returns the 16 damage values in ascending factor order. Each entry
// matches an independent Calculate call pinned to the same factor.
func (e *Engine) DamageRange(attacker, defender battle.Combatant, move battle.Move, criticalHit bool) ([]int, error) {
	damages := make([]int, 0, rangeRolls)
	for i := 0; i < rangeRolls; i++ {
		factor := rollFactor(i)
		result, err := e.Calculate(attacker, defender, move, criticalHit, &factor)
		if err != nil {
			return nil, err
		}
		damages = append(damages, result.Damage)
	}
	return damages, nil
}

// RangeStats summarizes one 16-roll damage range.
type RangeStats struct {
	Min int `json:"min"`
	Max int `json:"max"`
	// Range holds all 16 damage values in ascending factor order.
	Range []int `json:"range"`
	// OHKOChance is the fraction of the 16 rolls that meet or exceed the
	// defender's maximum HP.
	OHKOChance float64 `json:"ohko_chance"`
}

// Statistics pairs the non-critical and critical range summaries.
type Statistics struct {
	Normal   RangeStats `json:"normal"`
	Critical RangeStats `json:"critical"`
}

// DamageStatistics computes min/max/OHKO statistics for both the normal
// and critical variants of the attack. defenderMaxHP <= 0 derives the HP
// from the defender's own stats.
func (e *Engine) DamageStatistics(attacker, defender battle.Combatant, move battle.Move, defenderMaxHP int) (Statistics, error) {
	if defenderMaxHP <= 0 {
		defenderMaxHP = DeriveStats(defender, e.natures).HP
	}

	normal, err := e.DamageRange(attacker, defender, move, false)
	if err != nil {
		return Statistics{}, err
	}
	critical, err := e.DamageRange(attacker, defender, move, true)
	if err != nil {
		return Statistics{}, err
	}

	return Statistics{
		Normal:   summarize(normal, defenderMaxHP),
		Critical: summarize(critical, defenderMaxHP),
	}, nil
}

func summarize(damages []int, maxHP int) RangeStats {
	stats := RangeStats{Range: damages}
	kills := 0
	for i, d := range damages {
		if i == 0 || d < stats.Min {
			stats.Min = d
		}
		if d > stats.Max {
			stats.Max = d
		}
		if d >= maxHP {
			kills++
		}
	}
	if len(damages) > 0 {
		stats.OHKOChance = float64(kills) / float64(len(damages))
	}
	return stats
}
