package dto

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/poolquote/poolquote/internal/domain/project"
	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/types"
)

// CreateProjectRequest starts a new quote.
type CreateProjectRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string `json:"customer_phone"`
	SiteAddress   string `json:"site_address"`
	PoolModel     string `json:"pool_model"`

	BasePrice decimal.Decimal `json:"base_price"`
}

// ToProject builds the domain model from the request.
func (r *CreateProjectRequest) ToProject(ctx context.Context) *project.Project {
	p := project.New(ctx, r.CustomerName)
	p.CustomerEmail = r.CustomerEmail
	p.CustomerPhone = r.CustomerPhone
	p.SiteAddress = r.SiteAddress
	p.PoolModel = r.PoolModel
	p.BasePrice = r.BasePrice
	return p
}

// UpdateProjectRequest edits quote fields. Nil fields are left unchanged.
type UpdateProjectRequest struct {
	CustomerName  *string `json:"customer_name,omitempty"`
	CustomerEmail *string `json:"customer_email,omitempty" validate:"omitempty,email"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	SiteAddress   *string `json:"site_address,omitempty"`
	PoolModel     *string `json:"pool_model,omitempty"`

	BasePrice       *decimal.Decimal `json:"base_price,omitempty"`
	TargetMarginPct *decimal.Decimal `json:"target_margin_pct,omitempty"`
	Deposit         *decimal.Decimal `json:"deposit,omitempty"`
	Handover        *decimal.Decimal `json:"handover,omitempty"`

	DiscountType  *string          `json:"discount_type,omitempty"`
	DiscountValue *decimal.Decimal `json:"discount_value,omitempty"`
}

// Apply copies the set fields onto the project.
func (r *UpdateProjectRequest) Apply(p *project.Project) error {
	if r.CustomerName != nil {
		p.CustomerName = *r.CustomerName
	}
	if r.CustomerEmail != nil {
		p.CustomerEmail = *r.CustomerEmail
	}
	if r.CustomerPhone != nil {
		p.CustomerPhone = *r.CustomerPhone
	}
	if r.SiteAddress != nil {
		p.SiteAddress = *r.SiteAddress
	}
	if r.PoolModel != nil {
		p.PoolModel = *r.PoolModel
	}
	if r.BasePrice != nil {
		p.BasePrice = *r.BasePrice
	}
	if r.TargetMarginPct != nil {
		p.TargetMarginPct = *r.TargetMarginPct
	}
	if r.Deposit != nil {
		p.Deposit = *r.Deposit
	}
	if r.Handover != nil {
		p.Handover = *r.Handover
	}
	if r.DiscountType != nil {
		if *r.DiscountType == "" {
			p.DiscountType = nil
		} else {
			dt := types.DiscountType(*r.DiscountType)
			if !dt.IsValid() {
				return ierr.NewErrorf("invalid discount type: %s", dt).
					WithHint("Discount type must be dollar or percentage").
					Mark(ierr.ErrValidation)
			}
			p.DiscountType = &dt
		}
	}
	if r.DiscountValue != nil {
		p.DiscountValue = *r.DiscountValue
	}
	return nil
}

// UpdateProjectStatusRequest moves the quote through its sales lifecycle.
type UpdateProjectStatusRequest struct {
	Status types.ProjectStatus `json:"status" validate:"required"`
}

// ProjectResponse returns one project with its wizard step name.
type ProjectResponse struct {
	*project.Project
	WizardStep types.WizardStep `json:"wizard_step"`
}

// NewProjectResponse wraps a project for the API.
func NewProjectResponse(p *project.Project) *ProjectResponse {
	return &ProjectResponse{Project: p, WizardStep: p.CurrentStep()}
}

// ListProjectsRequest filters the project list endpoint.
type ListProjectsRequest struct {
	Status string `form:"status"`
	Limit  *int   `form:"limit" validate:"omitempty,min=1,max=1000"`
	Offset *int   `form:"offset" validate:"omitempty,min=0"`
}

// ToFilter converts the request to a domain filter.
func (r *ListProjectsRequest) ToFilter() (*project.Filter, error) {
	filter := &project.Filter{
		QueryFilter: &types.QueryFilter{Limit: r.Limit, Offset: r.Offset},
	}
	if r.Status != "" {
		status := types.ProjectStatus(r.Status)
		if !status.IsValid() {
			return nil, ierr.NewErrorf("invalid status: %s", r.Status).
				WithHint("Unknown project status").
				Mark(ierr.ErrValidation)
		}
		filter.Statuses = []types.ProjectStatus{status}
	}
	return filter, nil
}

// ListProjectsResponse is a page of projects.
type ListProjectsResponse struct {
	Items []*ProjectResponse `json:"items"`
	Total int                `json:"total"`
}
