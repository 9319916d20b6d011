package types

// WizardStep is one step of the quote-capture wizard.
type WizardStep string

const (
	WizardStepBasicInfo  WizardStep = "basic-info"
	WizardStepPoolCosts  WizardStep = "pool-costs"
	WizardStepExcavation WizardStep = "excavation"
	WizardStepCrane      WizardStep = "crane"
	WizardStepFiltration WizardStep = "filtration"
	WizardStepPricing    WizardStep = "pricing"
	WizardStepReview     WizardStep = "review"
)

// WizardSteps is the fixed step order. Navigation is by index with bounds
// clamping only; there is no skip validation.
var WizardSteps = []WizardStep{
	WizardStepBasicInfo,
	WizardStepPoolCosts,
	WizardStepExcavation,
	WizardStepCrane,
	WizardStepFiltration,
	WizardStepPricing,
	WizardStepReview,
}

func (s WizardStep) String() string {
	return string(s)
}

func (s WizardStep) IsValid() bool {
	for _, step := range WizardSteps {
		if s == step {
			return true
		}
	}
	return false
}

// Index returns the position of the step, or 0 for unknown steps.
func (s WizardStep) Index() int {
	for i, step := range WizardSteps {
		if s == step {
			return i
		}
	}
	return 0
}

// ClampWizardIndex clamps i into the valid step range.
func ClampWizardIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(WizardSteps) {
		return len(WizardSteps) - 1
	}
	return i
}

// WizardStepAt returns the step at index i, clamped to bounds.
func WizardStepAt(i int) WizardStep {
	return WizardSteps[ClampWizardIndex(i)]
}
