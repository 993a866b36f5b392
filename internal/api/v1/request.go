package v1

// FilterRequest carries the dashboard's two controls: the selected risk
// bucket and the minimum gambling spend toggle.
type FilterRequest struct {
	Bucket   string `query:"bucket" validate:"required,risklabel"`
	MinSpend bool   `query:"min_spend"`
}
