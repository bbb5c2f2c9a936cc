package damage

import (
	"math"

	"github.com/cory-johannsen/pokecalc/internal/game/battle"
)

// roundHalfUp rounds a non-negative float to the nearest integer, ties up.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// resolve runs the full modifier pipeline for one attacker/defender/move
// tuple. The stage order below is a correctness contract, not a
// convenience: items rescale stats before the stat pair is chosen, screens
// adjust the defense stat before the base-damage formula, abilities rewrite
// the multipliers after status/weather/assist, and only the final float
// product is floored.
func (e *Engine) resolve(attacker, defender battle.Combatant, move battle.Move, criticalHit bool, randomFactor float64) Result {
	attackerStats := DeriveStats(attacker, e.natures)
	defenderStats := DeriveStats(defender, e.natures)

	typeMultiplier := e.chart.Effectiveness(move.Type, defender.Types)

	attackerItem := applyAttackerItem(e.items, attacker, attackerStats, typeMultiplier)
	attackerStats = attackerItem.stats
	defenderItem := applyDefenderItem(e.items, e.species, defender, defenderStats)
	defenderStats = defenderItem.stats

	var attackStat, defenseStat int
	if move.IsPhysical() {
		attackStat = attackerStats.Attack
		defenseStat = defenderStats.Defense
	} else {
		attackStat = attackerStats.SpAttack
		defenseStat = defenderStats.SpDefense
	}

	// Walls sit on the defender's side and raise the matching defense stat
	// before the base-damage division.
	if defender.HasScreen(battle.ScreenReflect) && move.IsPhysical() {
		defenseStat = int(float64(defenseStat) * 1.5)
	}
	if defender.HasScreen(battle.ScreenLightScreen) && !move.IsPhysical() {
		defenseStat = int(float64(defenseStat) * 1.5)
	}
	if defenseStat <= 0 {
		defenseStat = 1
	}

	baseDamage := (2*attacker.Level/5+2)*move.Power*attackStat/defenseStat/50 + 2

	otherModifiers := 1.0

	// Burn halves physical damage unless the attacker's ability negates it.
	if attacker.Status == battle.StatusBurn && move.IsPhysical() && !e.abilities.BurnImmune(attacker.Ability) {
		otherModifiers *= 0.5
	}

	// Weather is read from whichever side carries it, attacker first.
	weather := attacker.Weather
	if weather == "" {
		weather = defender.Weather
	}
	switch {
	case weather == battle.WeatherSunny && move.Type == "Fire":
		otherModifiers *= 1.5
	case weather == battle.WeatherSunny && move.Type == "Water":
		otherModifiers *= 0.5
	case weather == battle.WeatherRain && move.Type == "Water":
		otherModifiers *= 1.5
	case weather == battle.WeatherRain && move.Type == "Fire":
		otherModifiers *= 0.5
	}

	if attacker.AssistStatus == battle.AssistHelp {
		otherModifiers *= 1.5
	}

	otherModifiers *= attackerItem.damageMultiplier
	otherModifiers *= defenderItem.damageMultiplier

	m := multipliers{
		other:    otherModifiers,
		stab:     1.0,
		critical: 1.0,
		typeEff:  typeMultiplier,
	}
	if criticalHit {
		m.critical = 2.0
	}
	if attacker.HasType(move.Type) {
		m.stab = 1.5
	}

	m = applyOffensiveAbility(e.abilities, attacker, move, criticalHit, m)
	m = applyDefensiveAbility(e.abilities, defender, move, m)

	// The modifier chain stays in floating point end to end; the rounded
	// step values are diagnostics only. Only step4 is floored, once, and
	// clamped to a minimum of 1.
	step1 := m.other * m.critical
	step2 := step1 * randomFactor
	step3 := step2 * m.stab
	step4 := step3 * m.typeEff

	finalModifier := int(math.Floor(step4))
	if finalModifier < 1 {
		finalModifier = 1
	}

	attackerItemName, defenderItemName := attacker.Item, defender.Item
	if attackerItemName == "" {
		attackerItemName = NoItem
	}
	if defenderItemName == "" {
		defenderItemName = NoItem
	}

	return Result{
		Damage:     baseDamage * finalModifier,
		BaseDamage: baseDamage,
		Modifiers: Modifiers{
			OtherModifiers:         m.other,
			CriticalMultiplier:     m.critical,
			RandomFactor:           randomFactor,
			StabMultiplier:         m.stab,
			TypeMultiplier:         m.typeEff,
			FinalModifier:          finalModifier,
			AttackerItemMultiplier: attackerItem.damageMultiplier,
			DefenderItemMultiplier: defenderItem.damageMultiplier,
		},
		CalculationSteps: CalculationSteps{
			Step1OtherCritical: roundHalfUp(step1),
			Step2Random:        roundHalfUp(step2),
			Step3Stab:          roundHalfUp(step3),
			Step4Type:          finalModifier,
		},
		StatsUsed: StatsUsed{
			AttackStat:  attackStat,
			DefenseStat: defenseStat,
		},
		ItemsUsed: ItemsUsed{
			AttackerItem: attackerItemName,
			DefenderItem: defenderItemName,
		},
	}
}
