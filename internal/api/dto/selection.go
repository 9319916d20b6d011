package dto

import (
	"github.com/shopspring/decimal"

	"github.com/poolquote/poolquote/internal/domain/pricing"
	"github.com/poolquote/poolquote/internal/domain/selection"
)

// UpsertSelectionRequest creates or replaces the selection for one project
// category slot. Version must be strictly greater than the stored version
// for an update; zero lets the server assign the next version.
type UpsertSelectionRequest struct {
	SlotIndex  int    `json:"slot_index" validate:"min=0"`
	CostItemID string `json:"cost_item_id"`

	Quantity decimal.Decimal `json:"quantity"`

	Height1 decimal.Decimal `json:"height1"`
	Height2 decimal.Decimal `json:"height2"`
	Length  decimal.Decimal `json:"length"`

	Meters decimal.Decimal `json:"meters"`

	TruckCount      decimal.Decimal `json:"truck_count"`
	TruckHours      decimal.Decimal `json:"truck_hours"`
	ExcavationHours decimal.Decimal `json:"excavation_hours"`

	HasJetPump     bool `json:"has_jet_pump"`
	HasPumpUpgrade bool `json:"has_pump_upgrade"`
	HasPepperPots  bool `json:"has_pepper_pots"`

	CustomCost   decimal.Decimal `json:"custom_cost"`
	CustomMargin decimal.Decimal `json:"custom_margin"`

	Description string `json:"description"`

	Version int64 `json:"version" validate:"min=0"`
}

// Apply copies the request fields onto the selection.
func (r *UpsertSelectionRequest) Apply(s *selection.Selection) {
	s.SlotIndex = r.SlotIndex
	s.CostItemID = r.CostItemID
	s.Quantity = r.Quantity
	s.Height1 = r.Height1
	s.Height2 = r.Height2
	s.Length = r.Length
	s.Meters = r.Meters
	s.TruckCount = r.TruckCount
	s.TruckHours = r.TruckHours
	s.ExcavationHours = r.ExcavationHours
	s.HasJetPump = r.HasJetPump
	s.HasPumpUpgrade = r.HasPumpUpgrade
	s.HasPepperPots = r.HasPepperPots
	s.CustomCost = r.CustomCost
	s.CustomMargin = r.CustomMargin
	s.Description = r.Description
}

// SelectionResponse returns one selection with its freshly computed line
// item. When the write is suspended behind a confirmation, Result is the
// preview of what the write would produce.
type SelectionResponse struct {
	*selection.Selection
	Result pricing.LineItemResult `json:"result"`
}

// PendingConfirmationResponse is returned when a guarded write suspends.
// The client resolves it via the confirmations endpoints.
type PendingConfirmationResponse struct {
	ConfirmationID string `json:"confirmation_id"`
	ProjectID      string `json:"project_id"`
	ProjectStatus  string `json:"project_status"`
	Message        string `json:"message"`
}

// ListSelectionsResponse lists a project's selections.
type ListSelectionsResponse struct {
	Items []*SelectionResponse `json:"items"`
	Total int                  `json:"total"`
}
