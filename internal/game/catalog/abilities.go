package catalog

// OffensiveAbilityKind tags the closed set of attacker-ability effects.
type OffensiveAbilityKind string

const (
	// AbilityAdaptability raises STAB to 2.0 when the move type matches.
	AbilityAdaptability OffensiveAbilityKind = "adaptability"
	// AbilityTechnician boosts moves at or below the configured power cap.
	AbilityTechnician OffensiveAbilityKind = "technician"
	// AbilityIronFist boosts moves whose display name contains the marker.
	AbilityIronFist OffensiveAbilityKind = "iron_fist"
	// AbilitySniper raises the critical multiplier to 3.0 on a crit.
	AbilitySniper OffensiveAbilityKind = "sniper"
	// AbilityTypeOverride lifts a 0x type multiplier to 1.0 for the listed
	// move types (the scrappy/normalize-immunity family).
	AbilityTypeOverride OffensiveAbilityKind = "type_override"
	// AbilityTypeBoost boosts moves of the configured type unconditionally.
	// No current-HP gate is applied, matching the reference behavior of the
	// signature elemental abilities.
	AbilityTypeBoost OffensiveAbilityKind = "type_boost"
	// AbilityBurnImmune negates the burn physical-damage penalty (the guts
	// family). It contributes no multiplier of its own.
	AbilityBurnImmune OffensiveAbilityKind = "burn_immune"
)

// DefensiveAbilityKind tags the closed set of defender-ability effects.
type DefensiveAbilityKind string

const (
	// AbilityTypeResist halves (or otherwise rescales) the type multiplier
	// for the listed attack types (thick-fat family).
	AbilityTypeResist DefensiveAbilityKind = "type_resist"
	// AbilityDrySkin nullifies the immune type and amplifies the weak type.
	AbilityDrySkin DefensiveAbilityKind = "dry_skin"
	// AbilityFilter rescales super-effective hits.
	AbilityFilter DefensiveAbilityKind = "filter"
	// AbilityTypeImmunity zeroes the type multiplier for the listed attack
	// types (absorb/levitate family).
	AbilityTypeImmunity DefensiveAbilityKind = "type_immunity"
	// AbilityCategoryDamp rescales incoming moves of one category.
	AbilityCategoryDamp DefensiveAbilityKind = "category_damp"
)

// OffensiveAbility is one attacker-ability record. Which parameter fields
// are meaningful depends on Kind.
type OffensiveAbility struct {
	Kind OffensiveAbilityKind `yaml:"kind"`
	// Multiplier is the boost factor for technician/iron_fist/type_boost.
	Multiplier float64 `yaml:"multiplier,omitempty"`
	// PowerCap is the inclusive power ceiling for technician.
	PowerCap int `yaml:"power_cap,omitempty"`
	// NameMarker is the substring of the move name iron_fist looks for.
	NameMarker string `yaml:"name_marker,omitempty"`
	// Type is the boosted move type for type_boost.
	Type string `yaml:"type,omitempty"`
	// Types are the move types a type_override lifts out of immunity.
	Types []string `yaml:"types,omitempty"`
}

// DefensiveAbility is one defender-ability record.
type DefensiveAbility struct {
	Kind DefensiveAbilityKind `yaml:"kind"`
	// Types are the attack types the ability reacts to.
	Types []string `yaml:"types,omitempty"`
	// Multiplier is the rescale factor for type_resist/filter/category_damp.
	Multiplier float64 `yaml:"multiplier,omitempty"`
	// ImmuneType and AmplifyType/AmplifyMultiplier parameterize dry_skin.
	ImmuneType        string  `yaml:"immune_type,omitempty"`
	AmplifyType       string  `yaml:"amplify_type,omitempty"`
	AmplifyMultiplier float64 `yaml:"amplify_multiplier,omitempty"`
	// Category is the damped move category for category_damp.
	Category string `yaml:"category,omitempty"`
}

// Abilities is the read-only ability table, split into offensive and
// defensive halves, keyed by exact ability display name. Blank or unknown
// names are no-ops in the pipeline.
type Abilities struct {
	offensive map[string]OffensiveAbility
	defensive map[string]DefensiveAbility
}

// NewAbilities builds an ability table from explicit entries.
func NewAbilities(offensive map[string]OffensiveAbility, defensive map[string]DefensiveAbility) *Abilities {
	o := make(map[string]OffensiveAbility, len(offensive))
	for name, a := range offensive {
		o[name] = a
	}
	d := make(map[string]DefensiveAbility, len(defensive))
	for name, a := range defensive {
		d[name] = a
	}
	return &Abilities{offensive: o, defensive: d}
}

// Offensive returns the offensive record for the named ability.
func (t *Abilities) Offensive(name string) (OffensiveAbility, bool) {
	a, ok := t.offensive[name]
	return a, ok
}

// Defensive returns the defensive record for the named ability.
func (t *Abilities) Defensive(name string) (DefensiveAbility, bool) {
	a, ok := t.defensive[name]
	return a, ok
}

// BurnImmune reports whether the named ability negates the burn penalty.
func (t *Abilities) BurnImmune(name string) bool {
	a, ok := t.offensive[name]
	return ok && a.Kind == AbilityBurnImmune
}

// LoadAbilities reads the ability table from a YAML file with top-level
// "offensive_abilities" and "defensive_abilities" maps.
func LoadAbilities(path string) (*Abilities, error) {
	var doc struct {
		Offensive map[string]OffensiveAbility `yaml:"offensive_abilities"`
		Defensive map[string]DefensiveAbility `yaml:"defensive_abilities"`
	}
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}
	return NewAbilities(doc.Offensive, doc.Defensive), nil
}
