// Package selection models a user's choice of a catalog item plus quantities
// for one category of a project. Selections are flat records; repeated
// categories (retaining walls) are distinguished by a numeric slot index
// rather than a tag embedded in a shared field.
package selection

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/poolquote/poolquote/internal/domain/catalog"
	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/types"
)

// Selection is one line-item choice within a project. Only the numeric
// fields relevant to the category are meaningful; the rest stay zero.
type Selection struct {
	ID        string `json:"id" gorm:"column:id;primaryKey"`
	ProjectID string `json:"project_id" gorm:"column:project_id;index:idx_selections_project"`

	Category types.SelectionCategory `json:"category" gorm:"column:category;index:idx_selections_project"`
	// SlotIndex distinguishes repeated selections of the same category,
	// e.g. retaining wall 0..3. Zero for singleton categories.
	SlotIndex int `json:"slot_index" gorm:"column:slot_index;index:idx_selections_project"`

	// CostItemID references a catalog entry; empty or "none" means no
	// selection and a zero contribution.
	CostItemID string `json:"cost_item_id" gorm:"column:cost_item_id"`

	Quantity decimal.Decimal `json:"quantity" gorm:"column:quantity;type:numeric(20,6)"`

	// Retaining wall dimensions.
	Height1 decimal.Decimal `json:"height1" gorm:"column:height1;type:numeric(20,6)"`
	Height2 decimal.Decimal `json:"height2" gorm:"column:height2;type:numeric(20,6)"`
	Length  decimal.Decimal `json:"length" gorm:"column:length;type:numeric(20,6)"`

	// Paving / fencing meters.
	Meters decimal.Decimal `json:"meters" gorm:"column:meters;type:numeric(20,6)"`

	// Excavation inputs.
	TruckCount      decimal.Decimal `json:"truck_count" gorm:"column:truck_count;type:numeric(20,6)"`
	TruckHours      decimal.Decimal `json:"truck_hours" gorm:"column:truck_hours;type:numeric(20,6)"`
	ExcavationHours decimal.Decimal `json:"excavation_hours" gorm:"column:excavation_hours;type:numeric(20,6)"`

	// Spa add-on toggles.
	HasJetPump     bool `json:"has_jet_pump" gorm:"column:has_jet_pump"`
	HasPumpUpgrade bool `json:"has_pump_upgrade" gorm:"column:has_pump_upgrade"`
	HasPepperPots  bool `json:"has_pepper_pots" gorm:"column:has_pepper_pots"`

	// Custom/manual requirement line. Its price is always cost + margin,
	// recomputed on read; it is never stored independently.
	CustomCost   decimal.Decimal `json:"custom_cost" gorm:"column:custom_cost;type:numeric(20,6)"`
	CustomMargin decimal.Decimal `json:"custom_margin" gorm:"column:custom_margin;type:numeric(20,6)"`

	Description string `json:"description" gorm:"column:description"`

	// Version is a monotonic per-selection write sequence. Updates carrying
	// a version at or below the stored one are rejected as stale, so
	// sequential edits within a session apply in issuance order.
	Version int64 `json:"version" gorm:"column:version"`

	types.BaseModel
}

// TableName implements the gorm table naming convention.
func (Selection) TableName() string {
	return "selections"
}

// New creates a selection for a project category slot.
func New(ctx context.Context, projectID string, category types.SelectionCategory, slotIndex int) *Selection {
	return &Selection{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SELECTION),
		ProjectID: projectID,
		Category:  category,
		SlotIndex: slotIndex,
		Version:   1,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

// IsEmpty reports whether the selection contributes nothing: no catalog
// reference and no quantities or toggles.
func (s *Selection) IsEmpty() bool {
	return catalog.IsNoneID(s.CostItemID) &&
		s.Quantity.IsZero() &&
		s.Height1.IsZero() && s.Height2.IsZero() && s.Length.IsZero() &&
		s.Meters.IsZero() &&
		s.TruckCount.IsZero() && s.TruckHours.IsZero() && s.ExcavationHours.IsZero() &&
		!s.HasJetPump && !s.HasPumpUpgrade && !s.HasPepperPots &&
		s.CustomCost.IsZero() && s.CustomMargin.IsZero()
}

// Validate checks the selection before an explicit save. Live recalculation
// tolerates anything; saving requires a coherent record.
func (s *Selection) Validate() error {
	if s.ProjectID == "" {
		return ierr.NewError("project_id is required").
			WithHint("Project ID is required").
			Mark(ierr.ErrValidation)
	}
	if !s.Category.IsValid() {
		return ierr.NewErrorf("invalid selection category: %s", s.Category).
			WithHint("Unknown selection category").
			WithReportableDetails(map[string]any{"category": s.Category}).
			Mark(ierr.ErrValidation)
	}
	if s.SlotIndex < 0 {
		return ierr.NewError("slot_index must not be negative").
			WithHint("Slot index must not be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
