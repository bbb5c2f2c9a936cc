package main

import (
	"github.com/cory-johannsen/pokecalc/internal/game/battle"
)

// defaultLevel is assumed when a combatant document omits its level.
const defaultLevel = 50

// combatantDoc is the JSON shape of one combatant in a request.
type combatantDoc struct {
	ID           int            `json:"id"`
	Name         string         `json:"name"`
	Types        []string       `json:"types"`
	BaseStats    map[string]int `json:"base_stats"`
	Level        int            `json:"level"`
	Nature       string         `json:"nature"`
	Ability      string         `json:"ability"`
	Item         string         `json:"item"`
	Status       string         `json:"status"`
	Weather      string         `json:"weather"`
	Screens      []string       `json:"screens"`
	AssistStatus string         `json:"assist_status"`
	IVs          map[string]int `json:"ivs"`
	EVs          map[string]int `json:"evs"`
}

// toCombatant normalizes the document into an engine combatant: missing
// base stats and EVs default to 0, missing IVs to 31, missing level to 50.
func (d combatantDoc) toCombatant() battle.Combatant {
	c := battle.NewCombatant(d.ID, d.Name, d.Types, statMap(d.BaseStats), statMap(d.IVs), statMap(d.EVs))
	c.Level = d.Level
	if c.Level == 0 {
		c.Level = defaultLevel
	}
	c.Nature = d.Nature
	c.Ability = d.Ability
	c.Item = d.Item
	c.Status = d.Status
	c.Weather = d.Weather
	c.Screens = d.Screens
	c.AssistStatus = d.AssistStatus
	return c
}

func statMap(raw map[string]int) map[battle.Stat]int {
	m := make(map[battle.Stat]int, len(raw))
	for name, v := range raw {
		m[battle.Stat(name)] = v
	}
	return m
}

// moveDoc is the JSON shape of the move in a request.
type moveDoc struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Power    *int   `json:"power"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Accuracy *int   `json:"accuracy"`
}

func (d moveDoc) toMove() battle.Move {
	m := battle.Move{
		ID:       d.ID,
		Name:     d.Name,
		Type:     d.Type,
		Category: battle.MoveCategory(d.Category),
	}
	if d.Power != nil {
		m.Power = *d.Power
	}
	if d.Accuracy != nil {
		m.Accuracy = *d.Accuracy
	}
	return m
}

// request is one calculation request document. Either Move or MoveID must
// be present; MoveID resolves against the loaded move catalog.
type request struct {
	Attacker     combatantDoc `json:"attacker"`
	Defender     combatantDoc `json:"defender"`
	Move         *moveDoc     `json:"move"`
	MoveID       *int         `json:"move_id"`
	CriticalHit  bool         `json:"critical_hit"`
	RandomFactor *float64     `json:"random_factor"`
}
