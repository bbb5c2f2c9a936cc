package battle

// MoveCategory distinguishes physical moves from special ones.
type MoveCategory string

const (
	CategoryPhysical MoveCategory = "physical"
	CategorySpecial  MoveCategory = "special"
)

// Move describes one attack. Power 0 stands in for moves whose catalog
// entry carries no power value.
type Move struct {
	ID       int
	Name     string
	Power    int
	Type     string
	Category MoveCategory
	// Accuracy is the declared accuracy 0-100. It is reported as-is and
	// plays no part in the damage math.
	Accuracy int
}

// IsPhysical reports whether the move uses the Attack/Defense stat pair.
// Every non-physical category resolves against Sp. Attack/Sp. Defense.
func (m Move) IsPhysical() bool {
	return m.Category == CategoryPhysical
}
