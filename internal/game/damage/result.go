package damage

// NoItem is the placeholder display name reported when a combatant holds
// no item.
const NoItem = "none"

// Modifiers is the full multiplier breakdown for one calculation. Every
// factor that touched the final modifier is reported, so a consumer can
// reproduce the result from the parts.
type Modifiers struct {
	OtherModifiers         float64 `json:"other_modifiers"`
	CriticalMultiplier     float64 `json:"critical_multiplier"`
	RandomFactor           float64 `json:"random_factor"`
	StabMultiplier         float64 `json:"stab_multiplier"`
	TypeMultiplier         float64 `json:"type_multiplier"`
	FinalModifier          int     `json:"final_modifier"`
	AttackerItemMultiplier float64 `json:"attacker_item_multiplier"`
	DefenderItemMultiplier float64 `json:"defender_item_multiplier"`
}

// CalculationSteps holds the display-only rounded intermediates of the
// modifier chain. Steps 1-3 are rounded half-up purely for diagnostics;
// step 4 is the authoritative floored-and-clamped final modifier. The
// rounded values are never fed back into the chain.
type CalculationSteps struct {
	Step1OtherCritical int `json:"step1_other_critical"`
	Step2Random        int `json:"step2_random"`
	Step3Stab          int `json:"step3_stab"`
	Step4Type          int `json:"step4_type"`
}

// StatsUsed reports the attack and defense stat values that actually
// entered the base-damage formula, after item and screen adjustments.
type StatsUsed struct {
	AttackStat  int `json:"attack_stat"`
	DefenseStat int `json:"defense_stat"`
}

// ItemsUsed reports the display names of the held items that participated
// in the calculation, or NoItem placeholders.
type ItemsUsed struct {
	AttackerItem string `json:"attacker_item"`
	DefenderItem string `json:"defender_item"`
}

// Result is the outcome of one damage calculation. The breakdown fields
// are part of the public contract: Damage == BaseDamage * FinalModifier
// always holds.
type Result struct {
	Damage           int              `json:"damage"`
	BaseDamage       int              `json:"base_damage"`
	Modifiers        Modifiers        `json:"modifiers"`
	CalculationSteps CalculationSteps `json:"calculation_steps"`
	StatsUsed        StatsUsed        `json:"stats_used"`
	ItemsUsed        ItemsUsed        `json:"items_used"`
}
