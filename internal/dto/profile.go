package dto

// ProfileUpdateRequest updates the member's own profile
type ProfileUpdateRequest struct {
	FirstName string `json:"first_name" validate:"required,min=2"`
	LastName  string `json:"last_name" validate:"required,min=2"`
}

// ProfileResponse envelope for GET/PUT /api/profile
type ProfileResponse struct {
	User    UserResponse `json:"user"`
	Message string       `json:"message,omitempty"`
}
