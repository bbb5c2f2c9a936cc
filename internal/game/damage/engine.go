package damage

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/pokecalc/internal/game/battle"
	"github.com/cory-johannsen/pokecalc/internal/game/catalog"
	"github.com/cory-johannsen/pokecalc/internal/game/typechart"
)

// Error taxonomy. Invalid input and catalog misses are reported before the
// pipeline runs; ErrComputation covers anything recovered from inside it.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrMoveNotFound = errors.New("move not found")
	ErrComputation  = errors.New("computation failed")
)

// Tables bundles the read-only reference data a calculation consults. All
// fields are optional: a nil table behaves as an empty one, so partial
// wiring (e.g. tests without catalogs) stays valid.
type Tables struct {
	Chart     *typechart.Chart
	Natures   *catalog.Natures
	Items     *catalog.Items
	Abilities *catalog.Abilities
	Species   *catalog.SpeciesTable
	Moves     *catalog.Moves
}

// Engine is the damage-resolution facade. It holds immutable reference
// tables and a randomness source; every calculation is a pure function of
// its arguments plus, when no explicit factor is given, one draw from the
// source. An Engine is safe for concurrent use.
type Engine struct {
	chart     *typechart.Chart
	natures   *catalog.Natures
	items     *catalog.Items
	abilities *catalog.Abilities
	species   *catalog.SpeciesTable
	moves     *catalog.Moves
	src       Source
}

// NewEngine creates an Engine over the given tables. A nil src falls back
// to the crypto/rand-backed source.
//
// Postcondition: Returns a non-nil Engine; all internal tables are non-nil.
func NewEngine(tables Tables, src Source) *Engine {
	if tables.Chart == nil {
		tables.Chart = typechart.New(nil)
	}
	if tables.Natures == nil {
		tables.Natures = catalog.NewNatures(nil)
	}
	if tables.Items == nil {
		tables.Items = catalog.NewItems(nil, nil)
	}
	if tables.Abilities == nil {
		tables.Abilities = catalog.NewAbilities(nil, nil)
	}
	if tables.Species == nil {
		tables.Species = catalog.NewSpeciesTable(nil)
	}
	if tables.Moves == nil {
		tables.Moves = catalog.NewMoves(nil)
	}
	if src == nil {
		src = NewCryptoSource()
	}
	return &Engine{
		chart:     tables.Chart,
		natures:   tables.Natures,
		items:     tables.Items,
		abilities: tables.Abilities,
		species:   tables.Species,
		moves:     tables.Moves,
		src:       src,
	}
}

// validate checks the presence rules for one calculation's inputs.
func validate(attacker, defender battle.Combatant, move battle.Move) error {
	if len(attacker.Types) == 0 {
		return fmt.Errorf("%w: attacker has no types", ErrInvalidInput)
	}
	if len(defender.Types) == 0 {
		return fmt.Errorf("%w: defender has no types", ErrInvalidInput)
	}
	if attacker.Level < 1 {
		return fmt.Errorf("%w: attacker level must be >= 1, got %d", ErrInvalidInput, attacker.Level)
	}
	if defender.Level < 1 {
		return fmt.Errorf("%w: defender level must be >= 1, got %d", ErrInvalidInput, defender.Level)
	}
	if move.Type == "" {
		return fmt.Errorf("%w: move type is required", ErrInvalidInput)
	}
	if move.Category == "" {
		return fmt.Errorf("%w: move category is required", ErrInvalidInput)
	}
	return nil
}

// Calculate resolves one attack and returns the full Result breakdown.
// randomFactor pins the damage roll; nil draws one uniformly from
// [0.85, 1.0), which is the only non-deterministic path in the engine.
// Malformed input and any failure inside the pipeline are returned as
// errors; no panic escapes and no partial Result accompanies an error.
//
// Postcondition: On success, Result.Damage == Result.BaseDamage *
// Result.Modifiers.FinalModifier and FinalModifier >= 1.
func (e *Engine) Calculate(attacker, defender battle.Combatant, move battle.Move, criticalHit bool, randomFactor *float64) (result Result, err error) {
	if err := validate(attacker, defender, move); err != nil {
		return Result{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			result = Result{}
			err = fmt.Errorf("%w: %v", ErrComputation, r)
		}
	}()

	factor := drawFactor(e.src)
	if randomFactor != nil {
		factor = *randomFactor
	}
	return e.resolve(attacker, defender, move, criticalHit, factor), nil
}

// MoveByID returns the catalog move with the given id.
func (e *Engine) MoveByID(id int) (battle.Move, bool) {
	return e.moves.ByID(id)
}

// CalculateMove resolves the move by id against the move catalog before
// delegating to Calculate.
func (e *Engine) CalculateMove(attacker, defender battle.Combatant, moveID int, criticalHit bool, randomFactor *float64) (Result, error) {
	move, ok := e.moves.ByID(moveID)
	if !ok {
		return Result{}, fmt.Errorf("%w: id %d", ErrMoveNotFound, moveID)
	}
	return e.Calculate(attacker, defender, move, criticalHit, randomFactor)
}
