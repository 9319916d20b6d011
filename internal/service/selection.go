package service

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/poolquote/poolquote/internal/api/dto"
	"github.com/poolquote/poolquote/internal/domain/selection"
	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/types"
)

// SelectionService manages per-category selections. Every write goes through
// the guard layer and the per-selection version check.
type SelectionService interface {
	// Upsert creates or replaces the selection at (project, category, slot).
	// When the project status requires confirmation, the returned pending
	// response carries the confirmation id and the selection response is nil.
	Upsert(ctx context.Context, projectID string, category types.SelectionCategory, req *dto.UpsertSelectionRequest) (*dto.SelectionResponse, *dto.PendingConfirmationResponse, error)

	// Delete clears the selection at (project, category, slot), guarded the
	// same way as Upsert.
	Delete(ctx context.Context, projectID string, category types.SelectionCategory, slotIndex int) (*dto.PendingConfirmationResponse, error)

	ListByProject(ctx context.Context, projectID string) (*dto.ListSelectionsResponse, error)
}

type selectionService struct {
	ServiceParams
	guard GuardService
	quote QuoteService
}

// NewSelectionService creates the selection service.
func NewSelectionService(params ServiceParams, guard GuardService, quote QuoteService) SelectionService {
	return &selectionService{ServiceParams: params, guard: guard, quote: quote}
}

func (s *selectionService) Upsert(ctx context.Context, projectID string, category types.SelectionCategory, req *dto.UpsertSelectionRequest) (*dto.SelectionResponse, *dto.PendingConfirmationResponse, error) {
	if !category.IsValid() {
		return nil, nil, ierr.NewErrorf("invalid selection category: %s", category).
			WithHint("Unknown selection category").
			Mark(ierr.ErrValidation)
	}
	if category != types.SelectionCategoryRetainingWall && req.SlotIndex != 0 {
		return nil, nil, ierr.NewError("slot_index is only valid for retaining walls").
			WithHint("Only retaining walls support multiple slots").
			Mark(ierr.ErrValidation)
	}

	var saved *selection.Selection
	result, err := s.guard.Execute(ctx, projectID, func(ctx context.Context) error {
		var opErr error
		saved, opErr = s.save(ctx, projectID, category, req)
		return opErr
	})
	if err != nil {
		return nil, nil, err
	}

	if !result.Executed {
		return nil, newPendingConfirmationResponse(result.Pending), nil
	}

	computed, err := s.quote.ComputeSelection(ctx, saved)
	if err != nil {
		return nil, nil, err
	}
	return &dto.SelectionResponse{Selection: saved, Result: computed}, nil, nil
}

// save performs the actual versioned write inside the guard.
func (s *selectionService) save(ctx context.Context, projectID string, category types.SelectionCategory, req *dto.UpsertSelectionRequest) (*selection.Selection, error) {
	existing, err := s.SelectionRepo.GetBySlot(ctx, projectID, category, req.SlotIndex)
	if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}

	if existing == nil {
		sel := selection.New(ctx, projectID, category, req.SlotIndex)
		req.Apply(sel)
		if req.Version > 0 {
			sel.Version = req.Version
		}
		if err := sel.Validate(); err != nil {
			return nil, err
		}
		if err := s.withRetry(ctx, func(ctx context.Context) error {
			return s.SelectionRepo.Create(ctx, sel)
		}); err != nil {
			return nil, err
		}
		s.Logger.Infow("created selection",
			"project_id", projectID,
			"category", category,
			"slot_index", sel.SlotIndex,
			"selection_id", sel.ID,
		)
		return sel, nil
	}

	// Stale submissions lose: the stored version only moves forward.
	if req.Version > 0 && req.Version <= existing.Version {
		return nil, ierr.NewErrorf("selection version %d is not newer than stored version %d", req.Version, existing.Version).
			WithHint("The selection was changed elsewhere; reload and retry").
			WithReportableDetails(map[string]any{
				"selection_id":   existing.ID,
				"stored_version": existing.Version,
			}).
			Mark(ierr.ErrVersionConflict)
	}

	req.Apply(existing)
	if req.Version > 0 {
		existing.Version = req.Version
	} else {
		existing.Version++
	}
	existing.UpdatedBy = types.GetUserID(ctx)
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.SelectionRepo.Update(ctx, existing)
	}); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *selectionService) Delete(ctx context.Context, projectID string, category types.SelectionCategory, slotIndex int) (*dto.PendingConfirmationResponse, error) {
	if !category.IsValid() {
		return nil, ierr.NewErrorf("invalid selection category: %s", category).
			WithHint("Unknown selection category").
			Mark(ierr.ErrValidation)
	}

	existing, err := s.SelectionRepo.GetBySlot(ctx, projectID, category, slotIndex)
	if err != nil {
		return nil, err
	}

	result, err := s.guard.Execute(ctx, projectID, func(ctx context.Context) error {
		return s.withRetry(ctx, func(ctx context.Context) error {
			return s.SelectionRepo.Delete(ctx, existing.ID)
		})
	})
	if err != nil {
		return nil, err
	}

	if !result.Executed {
		return newPendingConfirmationResponse(result.Pending), nil
	}

	s.Logger.Infow("deleted selection",
		"project_id", projectID,
		"category", category,
		"slot_index", slotIndex,
	)
	return nil, nil
}

func (s *selectionService) ListByProject(ctx context.Context, projectID string) (*dto.ListSelectionsResponse, error) {
	selections, err := s.SelectionRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.SelectionResponse, 0, len(selections))
	for _, sel := range selections {
		computed, err := s.quote.ComputeSelection(ctx, sel)
		if err != nil {
			return nil, err
		}
		items = append(items, &dto.SelectionResponse{Selection: sel, Result: computed})
	}

	return &dto.ListSelectionsResponse{
		Items: items,
		Total: len(items),
	}, nil
}

func newPendingConfirmationResponse(pc *PendingConfirmation) *dto.PendingConfirmationResponse {
	return &dto.PendingConfirmationResponse{
		ConfirmationID: pc.ID,
		ProjectID:      pc.ProjectID,
		ProjectStatus:  string(pc.Status),
		Message: fmt.Sprintf(
			"This quote has already been %s. Confirm to apply the change anyway.",
			lo.Ternary(pc.Status == types.ProjectStatusViewed, "viewed by the customer", string(pc.Status)),
		),
	}
}
