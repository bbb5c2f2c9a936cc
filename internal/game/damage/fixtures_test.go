package damage_test

import (
	"github.com/cory-johannsen/pokecalc/internal/game/battle"
	"github.com/cory-johannsen/pokecalc/internal/game/catalog"
	"github.com/cory-johannsen/pokecalc/internal/game/damage"
	"github.com/cory-johannsen/pokecalc/internal/game/typechart"
)

// fixedSource always returns the same Intn value, pinning the drawn factor.
type fixedSource struct{ v int }

func (s fixedSource) Intn(n int) int { return s.v % n }

// panicSource blows up on first use; exercises the facade's recover path.
type panicSource struct{}

func (panicSource) Intn(int) int { panic("source exploded") }

func floatPtr(v float64) *float64 { return &v }

func testNatures() *catalog.Natures {
	return catalog.NewNatures([]catalog.Nature{
		{Name: "Hardy", HP: 1.0, Attack: 1.0, Defense: 1.0, SpAttack: 1.0, SpDefense: 1.0, Speed: 1.0},
		{Name: "Modest", HP: 1.0, Attack: 0.9, Defense: 1.0, SpAttack: 1.1, SpDefense: 1.0, Speed: 1.0},
	})
}

func testItems() *catalog.Items {
	return catalog.NewItems(
		map[string]catalog.AttackerItem{
			"Choice Band": {Kind: catalog.ItemAttackBoost, Stat: battle.StatAttack, Multiplier: 1.5},
			"Life Orb":    {Kind: catalog.ItemDamageBoost, Multiplier: 1.3},
			"Expert Belt": {Kind: catalog.ItemTypeAdvantage, Multiplier: 1.2},
			"Light Ball": {
				Kind:       catalog.ItemSpecialPokemon,
				Pokemon:    []string{"Pikachu"},
				Stats:      []battle.Stat{battle.StatAttack, battle.StatSpAttack},
				Multiplier: 2.0,
			},
			"Soul Dew": {
				Kind:       catalog.ItemSpecialPokemon,
				Pokemon:    []string{"Latias", "Latios"},
				Effect:     "damage",
				Multiplier: 1.2,
			},
		},
		map[string]catalog.DefenderItem{
			"Occa Berry":   {Kind: catalog.ItemDamageReduction, Multiplier: 0.5},
			"Assault Vest": {Kind: catalog.ItemDefenseBoost, Stat: battle.StatSpDefense, Multiplier: 1.5},
			"Eviolite": {
				Kind:       catalog.ItemEvolutionStone,
				Stats:      []battle.Stat{battle.StatDefense, battle.StatSpDefense},
				Multiplier: 1.5,
			},
		},
	)
}

func testAbilities() *catalog.Abilities {
	return catalog.NewAbilities(
		map[string]catalog.OffensiveAbility{
			"Adaptability": {Kind: catalog.AbilityAdaptability},
			"Technician":   {Kind: catalog.AbilityTechnician, PowerCap: 60, Multiplier: 1.5},
			"Iron Fist":    {Kind: catalog.AbilityIronFist, NameMarker: "Punch", Multiplier: 1.2},
			"Sniper":       {Kind: catalog.AbilitySniper},
			"Scrappy":      {Kind: catalog.AbilityTypeOverride, Types: []string{"Normal", "Fighting"}},
			"Guts":         {Kind: catalog.AbilityBurnImmune},
			"Blaze":        {Kind: catalog.AbilityTypeBoost, Type: "Fire", Multiplier: 1.5},
			"Overgrow":     {Kind: catalog.AbilityTypeBoost, Type: "Grass", Multiplier: 1.5},
		},
		map[string]catalog.DefensiveAbility{
			"Thick Fat": {Kind: catalog.AbilityTypeResist, Types: []string{"Fire", "Ice"}, Multiplier: 0.5},
			"Dry Skin": {
				Kind:              catalog.AbilityDrySkin,
				ImmuneType:        "Water",
				AmplifyType:       "Fire",
				AmplifyMultiplier: 1.25,
			},
			"Filter":      {Kind: catalog.AbilityFilter, Multiplier: 0.75},
			"Volt Absorb": {Kind: catalog.AbilityTypeImmunity, Types: []string{"Electric"}},
			"Levitate":    {Kind: catalog.AbilityTypeImmunity, Types: []string{"Ground"}},
			"Light Metal": {Kind: catalog.AbilityCategoryDamp, Category: "physical", Multiplier: 0.5},
		},
	)
}

func testSpecies() *catalog.SpeciesTable {
	return catalog.NewSpeciesTable([]catalog.Species{
		{ID: 1, Name: "Bulbasaur", Types: []string{"Grass", "Poison"}, EvolutionStage: catalog.StageNotFinal},
		{ID: 25, Name: "Pikachu", Types: []string{"Electric"}, EvolutionStage: catalog.StageNotFinal},
		{ID: 26, Name: "Raichu", Types: []string{"Electric"}, EvolutionStage: catalog.StageFinal},
	})
}

func testMoves() *catalog.Moves {
	return catalog.NewMoves([]battle.Move{
		thunderbolt(),
		tackle(),
	})
}

// newTestEngine wires the full fixture tables with a pinned source.
func newTestEngine() *damage.Engine {
	return damage.NewEngine(damage.Tables{
		Chart:     typechart.Default(),
		Natures:   testNatures(),
		Items:     testItems(),
		Abilities: testAbilities(),
		Species:   testSpecies(),
		Moves:     testMoves(),
	}, fixedSource{0})
}

// pikachu is the canonical attacker: level 50, neutral nature, IV 31, EV 0.
func pikachu() battle.Combatant {
	c := battle.NewCombatant(25, "Pikachu", []string{"Electric"}, map[battle.Stat]int{
		battle.StatHP:        35,
		battle.StatAttack:    55,
		battle.StatDefense:   40,
		battle.StatSpAttack:  50,
		battle.StatSpDefense: 50,
		battle.StatSpeed:     90,
	}, nil, nil)
	c.Level = 50
	c.Nature = "Hardy"
	return c
}

// bulbasaur is the canonical defender: level 50, neutral nature, IV 31, EV 0.
func bulbasaur() battle.Combatant {
	c := battle.NewCombatant(1, "Bulbasaur", []string{"Grass", "Poison"}, map[battle.Stat]int{
		battle.StatHP:        45,
		battle.StatAttack:    49,
		battle.StatDefense:   49,
		battle.StatSpAttack:  65,
		battle.StatSpDefense: 65,
		battle.StatSpeed:     45,
	}, nil, nil)
	c.Level = 50
	c.Nature = "Hardy"
	return c
}

// blastoise is a water-typed defender, weak to Electric.
func blastoise() battle.Combatant {
	c := battle.NewCombatant(9, "Blastoise", []string{"Water"}, map[battle.Stat]int{
		battle.StatHP:        79,
		battle.StatAttack:    83,
		battle.StatDefense:   100,
		battle.StatSpAttack:  85,
		battle.StatSpDefense: 105,
		battle.StatSpeed:     78,
	}, nil, nil)
	c.Level = 50
	c.Nature = "Hardy"
	return c
}

// gengar is a ghost-typed defender, immune to Normal.
func gengar() battle.Combatant {
	c := battle.NewCombatant(94, "Gengar", []string{"Ghost", "Poison"}, map[battle.Stat]int{
		battle.StatHP:        60,
		battle.StatAttack:    65,
		battle.StatDefense:   60,
		battle.StatSpAttack:  130,
		battle.StatSpDefense: 75,
		battle.StatSpeed:     110,
	}, nil, nil)
	c.Level = 50
	c.Nature = "Hardy"
	return c
}

func thunderbolt() battle.Move {
	return battle.Move{ID: 85, Name: "Thunderbolt", Power: 90, Type: "Electric", Category: battle.CategorySpecial, Accuracy: 100}
}

func tackle() battle.Move {
	return battle.Move{ID: 33, Name: "Tackle", Power: 40, Type: "Normal", Category: battle.CategoryPhysical, Accuracy: 100}
}

func thunderPunch() battle.Move {
	return battle.Move{ID: 9, Name: "Thunder Punch", Power: 75, Type: "Electric", Category: battle.CategoryPhysical, Accuracy: 100}
}

func flamethrower() battle.Move {
	return battle.Move{ID: 53, Name: "Flamethrower", Power: 90, Type: "Fire", Category: battle.CategorySpecial, Accuracy: 100}
}

func surf() battle.Move {
	return battle.Move{ID: 57, Name: "Surf", Power: 90, Type: "Water", Category: battle.CategorySpecial, Accuracy: 100}
}
