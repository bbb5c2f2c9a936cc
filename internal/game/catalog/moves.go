package catalog

import (
	"github.com/cory-johannsen/pokecalc/internal/game/battle"
)

// moveRecord is the YAML shape of one move entry. Power and accuracy are
// pointers because some catalog entries genuinely carry no value; both
// default to 0.
type moveRecord struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Power    *int   `yaml:"power"`
	Type     string `yaml:"type"`
	Category string `yaml:"category"`
	Accuracy *int   `yaml:"accuracy"`
}

func (r moveRecord) toMove() battle.Move {
	m := battle.Move{
		ID:       r.ID,
		Name:     r.Name,
		Type:     r.Type,
		Category: battle.MoveCategory(r.Category),
	}
	if r.Power != nil {
		m.Power = *r.Power
	}
	if r.Accuracy != nil {
		m.Accuracy = *r.Accuracy
	}
	return m
}

// Moves is the read-only move catalog, indexed by id and display name.
type Moves struct {
	byID   map[int]battle.Move
	byName map[string]battle.Move
}

// NewMoves builds a move catalog from explicit entries.
func NewMoves(entries []battle.Move) *Moves {
	t := &Moves{
		byID:   make(map[int]battle.Move, len(entries)),
		byName: make(map[string]battle.Move, len(entries)),
	}
	for _, m := range entries {
		t.byID[m.ID] = m
		t.byName[m.Name] = m
	}
	return t
}

// ByID returns the move with the given numeric id.
func (t *Moves) ByID(id int) (battle.Move, bool) {
	m, ok := t.byID[id]
	return m, ok
}

// ByName returns the move with the given display name.
func (t *Moves) ByName(name string) (battle.Move, bool) {
	m, ok := t.byName[name]
	return m, ok
}

// Len returns the number of moves in the catalog.
func (t *Moves) Len() int { return len(t.byID) }

// LoadMoves reads the move catalog from a YAML file with a top-level
// "moves" list.
func LoadMoves(path string) (*Moves, error) {
	var doc struct {
		Moves []moveRecord `yaml:"moves"`
	}
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}
	moves := make([]battle.Move, 0, len(doc.Moves))
	for _, r := range doc.Moves {
		moves = append(moves, r.toMove())
	}
	return NewMoves(moves), nil
}
