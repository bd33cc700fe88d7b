package booking

// Request is a visitor's booking submission, shared between the HTML
// form handler and the JSON API.
type Request struct {
	Name        string `json:"name" form:"name" validate:"required,min=2,max=120"`
	Phone       string `json:"phone" form:"phone" validate:"omitempty,min=6,max=32"`
	Email       string `json:"email" form:"email" validate:"omitempty,email"`
	LocationID  string `json:"location_id" form:"location_id" validate:"required,uuid"`
	ServiceID   string `json:"service_id" form:"service_id" validate:"required,uuid"`
	PreferredAt string `json:"preferred_at,omitempty" form:"preferred_at" validate:"omitempty"`
}
