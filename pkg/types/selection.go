package types

// Selection phases. The menu interaction progresses through these phases
// during a session.
const (
	PhaseBrowsing = "browsing" // No category open, no results shown.
	PhaseChoosing = "choosing" // A category's sub-menu is open for multi-select.
	PhaseViewing  = "viewing"  // Filtered results are shown, sub-menu closed.
)

// validPhases is the set of recognized selection phase values.
var validPhases = map[string]bool{
	PhaseBrowsing: true,
	PhaseChoosing: true,
	PhaseViewing:  true,
}

// ValidPhase reports whether phase is a recognized selection phase.
func ValidPhase(phase string) bool {
	return validPhases[phase]
}

// Selection is an immutable snapshot of the menu selection state, handed to
// observers and renderers after every mutation. The category fields hold
// category IDs; an empty string means none.
type Selection struct {
	Phase            string   // One of the Phase constants.
	SelectedCategory string   // Category whose sub-menu is open (Choosing).
	CausingCategory  string   // Category whose selection produced the viewed results (Viewing).
	SubCategories    []string // Selected sub-category names, sorted.
}

// Empty reports whether no sub-categories are selected.
func (s Selection) Empty() bool {
	return len(s.SubCategories) == 0
}
