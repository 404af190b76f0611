package vehicles

// UpsertRequest creates or replaces a vehicle entry.
type UpsertRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Model  string `json:"model" validate:"required,max=100"`
	Active bool   `json:"active"`
}
