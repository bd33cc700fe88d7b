package locations

// create location payload
type CreateLocationRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Address  string `json:"address" validate:"required,min=2,max=240"`
	DeskInfo string `json:"desk_info,omitempty"`

	CheckInInstructions string `json:"check_in_instructions" validate:"required"`
	LateInstructions    string `json:"late_instructions" validate:"required"`
	ContactInstructions string `json:"contact_instructions" validate:"required"`
}

// update location payload; zero-value fields are left unchanged
type UpdateLocationRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Address  *string `json:"address,omitempty" validate:"omitempty,min=2,max=240"`
	DeskInfo *string `json:"desk_info,omitempty"`
	Active   *bool   `json:"active,omitempty"`

	CheckInInstructions *string `json:"check_in_instructions,omitempty"`
	LateInstructions    *string `json:"late_instructions,omitempty"`
	ContactInstructions *string `json:"contact_instructions,omitempty"`
}
