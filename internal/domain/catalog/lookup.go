package catalog

import (
	ierr "github.com/poolquote/poolquote/internal/errors"
)

// NoneID is the sentinel meaning "nothing selected". Forms write it when a
// user clears a dropdown, so it resolves to not-found without being an error.
const NoneID = "none"

// IsNoneID reports whether id represents an empty selection.
func IsNoneID(id string) bool {
	return id == "" || id == NoneID
}

// Lookup resolves a cost item by id from an already-loaded catalog slice.
// Empty and "none" ids resolve to ErrNotFound; callers treat not-found as
// a zero cost contribution during calculation and only surface it on an
// explicit save. Pure; no side effects.
func Lookup(items []*CostItem, id string) (*CostItem, error) {
	if IsNoneID(id) {
		return nil, ierr.NewError("no cost item selected").
			WithHint("No catalog item selected").
			Mark(ierr.ErrNotFound)
	}
	for _, item := range items {
		if item != nil && item.ID == id {
			return item, nil
		}
	}
	return nil, ierr.NewErrorf("cost item %s not found", id).
		WithHint("Catalog item not found").
		WithReportableDetails(map[string]any{"id": id}).
		Mark(ierr.ErrNotFound)
}
