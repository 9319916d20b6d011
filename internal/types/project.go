package types

// ProjectStatus tracks where a quote sits in its sales lifecycle.
type ProjectStatus string

const (
	// ProjectStatusCreated indicates the quote is still being drafted.
	ProjectStatusCreated ProjectStatus = "created"
	// ProjectStatusSent indicates the quote has been sent to the customer.
	ProjectStatusSent ProjectStatus = "sent"
	// ProjectStatusViewed indicates the customer has opened the quote.
	ProjectStatusViewed ProjectStatus = "viewed"
	// ProjectStatusAccepted indicates the customer accepted the quote.
	ProjectStatusAccepted ProjectStatus = "accepted"
	// ProjectStatusChangeRequested indicates the customer asked for changes.
	ProjectStatusChangeRequested ProjectStatus = "change_requested"
)

func (s ProjectStatus) String() string {
	return string(s)
}

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusCreated, ProjectStatusSent, ProjectStatusViewed,
		ProjectStatusAccepted, ProjectStatusChangeRequested:
		return true
	}
	return false
}

// AllowsSilentWrites reports whether selections under a project with this
// status may be mutated without user confirmation. Once the customer has
// seen the quote, edits require an explicit acknowledgment.
func (s ProjectStatus) AllowsSilentWrites() bool {
	return s == ProjectStatusCreated || s == ProjectStatusSent
}
