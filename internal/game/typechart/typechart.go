// Package typechart provides the attack-type vs defense-type effectiveness
// table used by the damage engine.
package typechart

// Chart maps attack type -> defense type -> multiplier. Pairs absent from
// the chart are neutral (x1.0). A Chart is read-only reference data: build
// it once and share it freely.
type Chart struct {
	entries map[string]map[string]float64
}

// New builds a Chart from explicit entries. The entries map is copied, so
// later mutation of the argument does not affect the Chart.
func New(entries map[string]map[string]float64) *Chart {
	copied := make(map[string]map[string]float64, len(entries))
	for atk, row := range entries {
		r := make(map[string]float64, len(row))
		for def, mult := range row {
			r[def] = mult
		}
		copied[atk] = r
	}
	return &Chart{entries: copied}
}

// Effectiveness returns the combined type multiplier for an attack of
// attackType against a defender with the given defense types. The per-type
// multipliers are multiplied together and the product is quantized to one
// of the discrete tiers {0, 0.25, 0.5, 1, 2, 4}; any other product
// collapses to 1.0. An attack type missing from the chart is neutral
// against everything.
//
// Postcondition: Returns one of 0, 0.25, 0.5, 1.0, 2.0, 4.0.
func (c *Chart) Effectiveness(attackType string, defenseTypes []string) float64 {
	row, ok := c.entries[attackType]
	if !ok {
		return 1.0
	}

	effectiveness := 1.0
	for _, def := range defenseTypes {
		if mult, ok := row[def]; ok {
			effectiveness *= mult
		}
	}

	switch effectiveness {
	case 0, 0.25, 0.5, 2.0, 4.0:
		return effectiveness
	default:
		return 1.0
	}
}

// Default returns the standard 18-type effectiveness chart.
func Default() *Chart {
	return New(map[string]map[string]float64{
		"Normal":   {"Rock": 0.5, "Ghost": 0, "Steel": 0.5},
		"Fighting": {"Normal": 2, "Flying": 0.5, "Poison": 0.5, "Rock": 2, "Bug": 0.5, "Ghost": 0, "Steel": 2, "Psychic": 0.5, "Ice": 2, "Dark": 2, "Fairy": 0.5},
		"Flying":   {"Fighting": 2, "Rock": 0.5, "Bug": 2, "Steel": 0.5, "Grass": 2, "Electric": 0.5},
		"Poison":   {"Poison": 0.5, "Ground": 0.5, "Rock": 0.5, "Ghost": 0.5, "Steel": 0, "Grass": 2, "Fairy": 2},
		"Ground":   {"Flying": 0, "Poison": 2, "Rock": 2, "Bug": 0.5, "Steel": 2, "Fire": 2, "Grass": 0.5, "Electric": 2},
		"Rock":     {"Fighting": 0.5, "Flying": 2, "Ground": 0.5, "Bug": 2, "Steel": 0.5, "Fire": 2, "Ice": 2},
		"Bug":      {"Fighting": 0.5, "Flying": 0.5, "Poison": 0.5, "Ghost": 0.5, "Steel": 0.5, "Fire": 0.5, "Grass": 2, "Psychic": 2, "Dark": 2, "Fairy": 0.5},
		"Ghost":    {"Normal": 0, "Ghost": 2, "Psychic": 2, "Dark": 0.5},
		"Steel":    {"Rock": 2, "Steel": 0.5, "Fire": 0.5, "Water": 0.5, "Electric": 0.5, "Ice": 2, "Fairy": 2},
		"Fire":     {"Rock": 0.5, "Bug": 2, "Steel": 2, "Fire": 0.5, "Water": 0.5, "Grass": 2, "Ice": 2, "Dragon": 0.5},
		"Water":    {"Ground": 2, "Rock": 2, "Fire": 2, "Water": 0.5, "Grass": 0.5, "Dragon": 0.5},
		"Grass":    {"Flying": 0.5, "Poison": 0.5, "Ground": 2, "Rock": 2, "Bug": 0.5, "Steel": 0.5, "Fire": 0.5, "Water": 2, "Grass": 0.5, "Dragon": 0.5},
		"Electric": {"Flying": 2, "Ground": 0, "Water": 2, "Grass": 0.5, "Electric": 0.5, "Dragon": 0.5},
		"Psychic":  {"Fighting": 2, "Poison": 2, "Steel": 0.5, "Psychic": 0.5, "Dark": 0},
		"Ice":      {"Flying": 2, "Ground": 2, "Steel": 0.5, "Fire": 0.5, "Water": 0.5, "Grass": 2, "Ice": 0.5, "Dragon": 2},
		"Dragon":   {"Steel": 0.5, "Dragon": 2, "Fairy": 0},
		"Dark":     {"Fighting": 0.5, "Ghost": 2, "Psychic": 2, "Dark": 0.5, "Fairy": 0.5},
		"Fairy":    {"Fighting": 2, "Poison": 0.5, "Steel": 0.5, "Fire": 0.5, "Dragon": 2, "Dark": 2},
	})
}
