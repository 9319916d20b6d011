// Package project holds the quote root entity. A project owns all of its
// selections and its snapshot; catalog items are shared reference data.
package project

import (
	"context"

	"github.com/shopspring/decimal"

	ierr "github.com/poolquote/poolquote/internal/errors"
	"github.com/poolquote/poolquote/internal/types"
)

// Project is a customer quote being built through the wizard.
type Project struct {
	ID string `json:"id" gorm:"column:id;primaryKey"`

	CustomerName  string `json:"customer_name" gorm:"column:customer_name"`
	CustomerEmail string `json:"customer_email" gorm:"column:customer_email"`
	CustomerPhone string `json:"customer_phone" gorm:"column:customer_phone"`
	SiteAddress   string `json:"site_address" gorm:"column:site_address"`

	// PoolModel is the display name of the selected pool shell.
	PoolModel string `json:"pool_model" gorm:"column:pool_model"`
	// BasePrice is the pool shell base price.
	BasePrice decimal.Decimal `json:"base_price" gorm:"column:base_price;type:numeric(20,6)"`

	// TargetMarginPct is the target margin percentage used to derive the
	// retail price from total cost. Valid range [0, 100).
	TargetMarginPct decimal.Decimal `json:"target_margin_pct" gorm:"column:target_margin_pct;type:numeric(20,6)"`

	// Deposit and Handover are the entered contract-summary amounts.
	Deposit  decimal.Decimal `json:"deposit" gorm:"column:deposit;type:numeric(20,6)"`
	Handover decimal.Decimal `json:"handover" gorm:"column:handover;type:numeric(20,6)"`

	// Promotion applied to the contract summary grand total.
	DiscountType  *types.DiscountType `json:"discount_type,omitempty" gorm:"column:discount_type"`
	DiscountValue decimal.Decimal     `json:"discount_value" gorm:"column:discount_value;type:numeric(20,6)"`

	ProjectStatus types.ProjectStatus `json:"project_status" gorm:"column:project_status;index"`

	// WizardIndex is the current wizard position, clamped to step bounds.
	WizardIndex int `json:"wizard_index" gorm:"column:wizard_index"`

	types.BaseModel
}

// TableName implements the gorm table naming convention.
func (Project) TableName() string {
	return "projects"
}

// New creates a project in the created state at the first wizard step.
func New(ctx context.Context, customerName string) *Project {
	return &Project{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROJECT),
		CustomerName:  customerName,
		ProjectStatus: types.ProjectStatusCreated,
		WizardIndex:   0,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

// CurrentStep returns the wizard step for the stored index.
func (p *Project) CurrentStep() types.WizardStep {
	return types.WizardStepAt(p.WizardIndex)
}

// AdvanceWizard moves to the next step, clamped at the last step.
func (p *Project) AdvanceWizard() {
	p.WizardIndex = types.ClampWizardIndex(p.WizardIndex + 1)
}

// RetreatWizard moves to the previous step, clamped at the first step.
func (p *Project) RetreatWizard() {
	p.WizardIndex = types.ClampWizardIndex(p.WizardIndex - 1)
}

// Validate checks the project before it is persisted.
func (p *Project) Validate() error {
	if p.CustomerName == "" {
		return ierr.NewError("customer_name is required").
			WithHint("Customer name is required").
			Mark(ierr.ErrValidation)
	}
	if !p.ProjectStatus.IsValid() {
		return ierr.NewErrorf("invalid project status: %s", p.ProjectStatus).
			WithHint("Unknown project status").
			WithReportableDetails(map[string]any{"status": p.ProjectStatus}).
			Mark(ierr.ErrValidation)
	}
	if p.TargetMarginPct.IsNegative() || p.TargetMarginPct.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return ierr.NewError("target margin must be in [0, 100)").
			WithHint("Target margin percentage must be at least 0 and below 100").
			WithReportableDetails(map[string]any{"target_margin_pct": p.TargetMarginPct.String()}).
			Mark(ierr.ErrValidation)
	}
	if p.DiscountType != nil && !p.DiscountType.IsValid() {
		return ierr.NewErrorf("invalid discount type: %s", *p.DiscountType).
			WithHint("Discount type must be dollar or percentage").
			Mark(ierr.ErrValidation)
	}
	return nil
}
