package battle

// Weather values recognized by the damage pipeline. Any other string is
// carried but has no effect on damage.
const (
	WeatherSunny = "sunny"
	WeatherRain  = "rain"
)

// Screen effects a defender may have active.
const (
	ScreenReflect     = "reflect"
	ScreenLightScreen = "light_screen"
)

// StatusBurn is the only status condition the pipeline reacts to.
const StatusBurn = "burn"

// AssistHelp is the assist flag that grants the x1.5 helping-hand bonus.
const AssistHelp = "help"

// Combatant is one side of a damage calculation. It is immutable once
// constructed: the engine derives stats into fresh StatBlocks and never
// writes back into a Combatant.
type Combatant struct {
	// ID is the species' numeric identifier in the species catalog.
	ID int
	// Name is the display name, matched against special_pokemon item targets.
	Name string
	// Types is the combatant's 1-2 elemental types. Must be non-empty.
	Types []string
	// BaseStats are the species base stats.
	BaseStats StatBlock
	// Level is the combatant's level, typically 1-100.
	Level int
	// Nature names an entry in the nature catalog; unknown names are neutral.
	Nature string
	// Ability names an entry in the ability catalogs; empty means none.
	Ability string
	// Item names an entry in the item catalogs; empty means none.
	Item string
	// Status is the active status condition; empty means none.
	Status string
	// Weather is this side's view of the battlefield weather; empty means none.
	Weather string
	// Screens is the set of active wall effects on this side.
	Screens []string
	// AssistStatus is the active assist flag; empty means none.
	AssistStatus string
	// IVs are the per-stat individual values, 0-31.
	IVs StatBlock
	// EVs are the per-stat effort values, 0-252. The 510 total cap is the
	// caller's responsibility.
	EVs StatBlock
}

// NewCombatant builds a Combatant from raw per-stat maps, applying the
// canonical defaults: base stats and EVs fill missing keys with 0, IVs with
// 31. After construction all six stat keys are guaranteed present.
func NewCombatant(id int, name string, types []string, base, ivs, evs map[Stat]int) Combatant {
	return Combatant{
		ID:        id,
		Name:      name,
		Types:     types,
		BaseStats: NewStatBlock(base, 0),
		IVs:       NewStatBlock(ivs, 31),
		EVs:       NewStatBlock(evs, 0),
	}
}

// HasType reports whether t is among the combatant's elemental types.
func (c Combatant) HasType(t string) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// HasScreen reports whether the named wall effect is active on this side.
func (c Combatant) HasScreen(screen string) bool {
	for _, s := range c.Screens {
		if s == screen {
			return true
		}
	}
	return false
}
