package service

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/session"
	"github.com/poolquote/poolquote/internal/types"
)

// GuardedOp is a mutation wrapped by the guard layer.
type GuardedOp func(ctx context.Context) error

// ConfirmationState tracks the lifecycle of a pending confirmation.
type ConfirmationState string

const (
	ConfirmationStatePending   ConfirmationState = "pending"
	ConfirmationStateConfirmed ConfirmationState = "confirmed"
	ConfirmationStateCancelled ConfirmationState = "cancelled"
)

// PendingConfirmation is a suspended guarded mutation awaiting a user
// decision. It is an explicit state object with Confirm/Cancel transitions
// rather than a pair of captured callbacks.
type PendingConfirmation struct {
	ID        string              `json:"id"`
	ProjectID string              `json:"project_id"`
	SessionID string              `json:"session_id"`
	Status    types.ProjectStatus `json:"project_status"`
	State     ConfirmationState   `json:"state"`
	CreatedAt time.Time           `json:"created_at"`

	op GuardedOp
	mu sync.Mutex
}

// GuardResult reports how the guard handled a mutation: either it executed
// immediately, or it is suspended on the returned confirmation.
type GuardResult struct {
	Executed bool
	Pending  *PendingConfirmation
}

// GuardService wraps selection writes with the project-status check. When a
// project has moved past the silently-editable statuses, the write suspends
// until the user confirms; one confirmation per project per session.
type GuardService interface {
	// Execute runs op immediately when the project status allows silent
	// writes or the session already acknowledged this project. Otherwise it
	// registers and returns a pending confirmation.
	Execute(ctx context.Context, projectID string, op GuardedOp) (*GuardResult, error)

	// Confirm records the session acknowledgment and runs the suspended op.
	Confirm(ctx context.Context, confirmationID string) error

	// Cancel rejects the suspended op with ErrGuardCancelled so callers can
	// distinguish an intentional cancellation from a failure.
	Cancel(ctx context.Context, confirmationID string) error
}

type guardService struct {
	ServiceParams

	pending *gocache.Cache
}

// NewGuardService creates the guard layer. Pending confirmations expire
// after the configured TTL; an expired confirmation simply rejects.
func NewGuardService(params ServiceParams) GuardService {
	ttl := params.Config.Guard.ConfirmationTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &guardService{
		ServiceParams: params,
		pending:       gocache.New(ttl, 5*time.Minute),
	}
}

func (s *guardService) Execute(ctx context.Context, projectID string, op GuardedOp) (*GuardResult, error) {
	if projectID == "" {
		return nil, ierr.NewError("project_id is required").
			WithHint("Project ID is required").
			Mark(ierr.ErrValidation)
	}

	status, err := s.ProjectRepo.GetStatus(ctx, projectID)
	if err != nil {
		// Fail-open is an explicit policy: when the status cannot be
		// determined, the write goes ahead rather than blocking the user.
		if s.Config.Guard.FailOpenOnStatusError {
			s.Logger.Warnw("guard: status lookup failed, failing open",
				"project_id", projectID,
				"error", err,
			)
			if err := op(ctx); err != nil {
				return nil, err
			}
			return &GuardResult{Executed: true}, nil
		}
		return nil, err
	}

	sessionID := types.GetSessionID(ctx)
	ackKey := session.AckKey(sessionID, projectID)

	if status.AllowsSilentWrites() || s.AckStore.Has(ackKey) {
		if err := op(ctx); err != nil {
			return nil, err
		}
		return &GuardResult{Executed: true}, nil
	}

	pc := &PendingConfirmation{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CONFIRMATION),
		ProjectID: projectID,
		SessionID: sessionID,
		Status:    status,
		State:     ConfirmationStatePending,
		CreatedAt: time.Now().UTC(),
		op:        op,
	}
	s.pending.SetDefault(pc.ID, pc)

	s.Logger.Infow("guard: write suspended pending confirmation",
		"project_id", projectID,
		"confirmation_id", pc.ID,
		"project_status", status,
	)
	return &GuardResult{Executed: false, Pending: pc}, nil
}

func (s *guardService) Confirm(ctx context.Context, confirmationID string) error {
	pc, err := s.take(confirmationID)
	if err != nil {
		return err
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.State != ConfirmationStatePending {
		return ierr.NewErrorf("confirmation %s is already %s", pc.ID, pc.State).
			WithHint("This confirmation has already been resolved").
			Mark(ierr.ErrValidation)
	}

	// Remember the acknowledgment so this session is not re-prompted on
	// every subsequent edit to the same project.
	s.AckStore.Set(session.AckKey(pc.SessionID, pc.ProjectID))

	if err := pc.op(ctx); err != nil {
		return err
	}
	pc.State = ConfirmationStateConfirmed
	s.pending.Delete(pc.ID)
	return nil
}

func (s *guardService) Cancel(_ context.Context, confirmationID string) error {
	pc, err := s.take(confirmationID)
	if err != nil {
		return err
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.State != ConfirmationStatePending {
		return ierr.NewErrorf("confirmation %s is already %s", pc.ID, pc.State).
			WithHint("This confirmation has already been resolved").
			Mark(ierr.ErrValidation)
	}

	pc.State = ConfirmationStateCancelled
	s.pending.Delete(pc.ID)

	return ierr.NewError("guarded operation cancelled by user").
		WithHint("Change cancelled").
		WithReportableDetails(map[string]any{
			"project_id": pc.ProjectID,
		}).
		Mark(ierr.ErrGuardCancelled)
}

func (s *guardService) take(confirmationID string) (*PendingConfirmation, error) {
	if confirmationID == "" {
		return nil, ierr.NewError("confirmation id is required").
			WithHint("Confirmation ID is required").
			Mark(ierr.ErrValidation)
	}
	v, found := s.pending.Get(confirmationID)
	if !found {
		return nil, ierr.NewErrorf("confirmation %s not found", confirmationID).
			WithHint("Confirmation expired or does not exist").
			Mark(ierr.ErrNotFound)
	}
	return v.(*PendingConfirmation), nil
}
