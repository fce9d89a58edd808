// Package menu implements the selection store for the storefront menu: which
// category is open, which sub-categories are selected, and the products the
// current selection yields.
package menu

import (
	"sort"

	"github.com/mesh-intelligence/storefront/pkg/types"
)

// Store holds the catalog, the product list, and the current selection state.
// The catalog is immutable between SetCatalog calls; the selection is the only
// mutable record. A Store is not safe for concurrent use; in an event-driven
// presentation layer mutations arrive on a single goroutine.
type Store struct {
	categories []types.MenuCategory
	products   []types.Product
	byID       map[string]int // index into categories by CategoryID

	phase            string
	selectedCategory string // CategoryID whose sub-menu is open; empty when none.
	causingCategory  string // CategoryID that produced the viewed results; empty when none.
	selectedSubs     map[string]bool

	observers []observer
	nextObsID int
}

// NewStore creates an empty Store in the browsing phase. Populate it with
// SetCatalog before use.
func NewStore() *Store {
	return &Store{
		byID:         make(map[string]int),
		phase:        types.PhaseBrowsing,
		selectedSubs: make(map[string]bool),
	}
}

// SetCatalog replaces the category and product catalogs. Replacement is
// all-or-nothing: on any validation error the existing catalogs are kept
// unchanged. A successful replacement resets the selection to browsing.
func (s *Store) SetCatalog(categories []types.MenuCategory, products []types.Product) error {
	byID := make(map[string]int, len(categories))
	for i := range categories {
		c := &categories[i]
		if err := c.Validate(); err != nil {
			return err
		}
		if c.CategoryID == "" {
			return types.ErrInvalidData
		}
		if _, dup := byID[c.CategoryID]; dup {
			return types.ErrInvalidData
		}
		byID[c.CategoryID] = i
	}
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return err
		}
	}

	s.categories = append([]types.MenuCategory(nil), categories...)
	s.products = append([]types.Product(nil), products...)
	s.byID = byID
	s.resetSelection()
	s.notify()
	return nil
}

// Categories returns the ordered category catalog. The returned slice is a
// copy and safe for the caller to retain.
func (s *Store) Categories() []types.MenuCategory {
	return append([]types.MenuCategory(nil), s.categories...)
}

// Products returns the full product catalog in source order.
func (s *Store) Products() []types.Product {
	return append([]types.Product(nil), s.products...)
}

// Category returns the catalog category with the given ID.
// Returns ErrUnknownCategory if the ID is not in the catalog.
func (s *Store) Category(id string) (types.MenuCategory, error) {
	i, ok := s.byID[id]
	if !ok {
		return types.MenuCategory{}, types.ErrUnknownCategory
	}
	return s.categories[i], nil
}

// CategoryByTitle returns the catalog category with the given title.
// Returns ErrUnknownCategory if no category has that title.
func (s *Store) CategoryByTitle(title string) (types.MenuCategory, error) {
	for _, c := range s.categories {
		if c.Title == title {
			return c, nil
		}
	}
	return types.MenuCategory{}, types.ErrUnknownCategory
}

// SelectCategory opens the sub-menu for the given category, or closes it when
// the category is already open. Switching to a different category clears any
// sub-category selections accumulated under the previous one; no stale
// cross-category selections survive. Unknown IDs are rejected with
// ErrUnknownCategory and leave the state untouched.
func (s *Store) SelectCategory(id string) error {
	if _, ok := s.byID[id]; !ok {
		return types.ErrUnknownCategory
	}

	if s.selectedCategory == id {
		// Toggle off: back to browsing.
		s.resetSelection()
		s.notify()
		return nil
	}

	s.selectedCategory = id
	s.causingCategory = ""
	s.selectedSubs = make(map[string]bool)
	s.phase = types.PhaseChoosing
	s.notify()
	return nil
}

// ToggleSubCategory inserts name into the selected set, or removes it when
// already present. Toggling twice returns the set to its original contents.
// The name must belong to the open category; the selected category itself is
// never affected.
func (s *Store) ToggleSubCategory(name string) error {
	if s.selectedCategory == "" {
		return types.ErrNoCategoryOpen
	}
	open := s.categories[s.byID[s.selectedCategory]]
	if !open.HasSubCategory(name) {
		return types.ErrUnknownSubCategory
	}

	if s.selectedSubs[name] {
		delete(s.selectedSubs, name)
	} else {
		s.selectedSubs[name] = true
	}
	s.notify()
	return nil
}

// ConfirmSelection moves the interaction from choosing sub-categories to
// viewing filtered results. The open category's identity is retained as the
// causing category so renderers can keep it marked active after its sub-menu
// closes. Confirming an empty selection is rejected with ErrEmptySelection
// and changes nothing.
func (s *Store) ConfirmSelection() error {
	if s.selectedCategory == "" {
		return types.ErrNoCategoryOpen
	}
	if len(s.selectedSubs) == 0 {
		return types.ErrEmptySelection
	}

	s.causingCategory = s.selectedCategory
	s.selectedCategory = ""
	s.phase = types.PhaseViewing
	s.notify()
	return nil
}

// CancelSelection abandons the current selection and returns to browsing.
// Equivalent to Reset.
func (s *Store) CancelSelection() {
	s.Reset()
}

// Reset clears the selected category, the causing category, and all
// sub-category selections, returning the interaction to browsing. Idempotent.
func (s *Store) Reset() {
	s.resetSelection()
	s.notify()
}

// FilteredProducts returns the products whose sub-category is in the selected
// set, in catalog order. The result is empty whenever no sub-categories are
// selected: no selection means no results, not "show all". Pure; safe to call
// in any phase.
func (s *Store) FilteredProducts() []types.Product {
	result := []types.Product{}
	if len(s.selectedSubs) == 0 {
		return result
	}
	for _, p := range s.products {
		if s.selectedSubs[p.SubCategory] {
			result = append(result, p)
		}
	}
	return result
}

// Selection returns a snapshot of the current selection state. The snapshot
// shares no storage with the Store; sub-category names are sorted.
func (s *Store) Selection() types.Selection {
	subs := make([]string, 0, len(s.selectedSubs))
	for name := range s.selectedSubs {
		subs = append(subs, name)
	}
	sort.Strings(subs)
	return types.Selection{
		Phase:            s.phase,
		SelectedCategory: s.selectedCategory,
		CausingCategory:  s.causingCategory,
		SubCategories:    subs,
	}
}

// resetSelection clears the selection record without notifying observers.
func (s *Store) resetSelection() {
	s.phase = types.PhaseBrowsing
	s.selectedCategory = ""
	s.causingCategory = ""
	s.selectedSubs = make(map[string]bool)
}
