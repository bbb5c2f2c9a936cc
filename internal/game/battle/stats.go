// Package battle defines the immutable value types shared by the damage
// engine: combatants, moves, stat blocks, and the battle-state vocabulary
// (weather, screens, status conditions).
package battle

// Stat names one of the six canonical stat slots.
type Stat string

const (
	StatHP        Stat = "HP"
	StatAttack    Stat = "Attack"
	StatDefense   Stat = "Defense"
	StatSpAttack  Stat = "Sp. Attack"
	StatSpDefense Stat = "Sp. Defense"
	StatSpeed     Stat = "Speed"
)

// Stats returns the six canonical stat names in display order.
func Stats() [6]Stat {
	return [6]Stat{StatHP, StatAttack, StatDefense, StatSpAttack, StatSpDefense, StatSpeed}
}

// StatBlock holds one integer value per canonical stat. It is a plain value
// type: methods return modified copies and never mutate the receiver.
type StatBlock struct {
	HP        int
	Attack    int
	Defense   int
	SpAttack  int
	SpDefense int
	Speed     int
}

// NewStatBlock builds a StatBlock from a raw per-stat map. Keys absent from
// the map take the fallback value, so the result always carries all six
// canonical stats regardless of how sparse the input was.
func NewStatBlock(raw map[Stat]int, fallback int) StatBlock {
	get := func(s Stat) int {
		if v, ok := raw[s]; ok {
			return v
		}
		return fallback
	}
	return StatBlock{
		HP:        get(StatHP),
		Attack:    get(StatAttack),
		Defense:   get(StatDefense),
		SpAttack:  get(StatSpAttack),
		SpDefense: get(StatSpDefense),
		Speed:     get(StatSpeed),
	}
}

// Get returns the value for the named stat, or 0 for an unknown name.
func (b StatBlock) Get(s Stat) int {
	switch s {
	case StatHP:
		return b.HP
	case StatAttack:
		return b.Attack
	case StatDefense:
		return b.Defense
	case StatSpAttack:
		return b.SpAttack
	case StatSpDefense:
		return b.SpDefense
	case StatSpeed:
		return b.Speed
	default:
		return 0
	}
}

// With returns a copy of the block with the named stat replaced. An unknown
// stat name returns the block unchanged.
func (b StatBlock) With(s Stat, v int) StatBlock {
	switch s {
	case StatHP:
		b.HP = v
	case StatAttack:
		b.Attack = v
	case StatDefense:
		b.Defense = v
	case StatSpAttack:
		b.SpAttack = v
	case StatSpDefense:
		b.SpDefense = v
	case StatSpeed:
		b.Speed = v
	}
	return b
}

// Scale returns a copy with the named stat multiplied by mult and truncated
// toward zero, matching the integer rescale items and screens apply.
func (b StatBlock) Scale(s Stat, mult float64) StatBlock {
	return b.With(s, int(float64(b.Get(s))*mult))
}
