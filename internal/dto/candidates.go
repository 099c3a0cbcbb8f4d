package dto

// CreateCandidateRequest represents the payload to register a candidate
type CreateCandidateRequest struct {
	FullName  string `json:"full_name" validate:"required,min=3"`
	Phone     string `json:"phone" validate:"required,numeric,len=8"`
	Specialty string `json:"specialty" validate:"required,min=2"`
	Faculty   string `json:"faculty" validate:"required,min=2"`
	Address   string `json:"address" validate:"required,min=3"`
	ImageURL  string `json:"image_url,omitempty"`
}

// UpdateCandidateRequest represents fields allowed to update a candidate
// All fields are optional; only provided ones will be updated
type UpdateCandidateRequest struct {
	FullName  *string `json:"full_name"`
	Phone     *string `json:"phone"`
	Specialty *string `json:"specialty"`
	Faculty   *string `json:"faculty"`
	Address   *string `json:"address"`
	ImageURL  *string `json:"image_url"`
}

// CandidateResponse represents a candidate object in responses
type CandidateResponse struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	Phone     string  `json:"phone"`
	Specialty string  `json:"specialty"`
	Faculty   string  `json:"faculty"`
	Address   string  `json:"address"`
	ImageURL  *string `json:"image_url,omitempty"`
	CreatorID string  `json:"creator_id"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// CreateCandidateResponse envelope
type CreateCandidateResponse struct {
	Candidate CandidateResponse `json:"candidate"`
}

// CandidateListResponse envelope for the public listing
type CandidateListResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
	Total      int                 `json:"total"`
}

// UserCandidatesResponse envelope for a member's own candidates.
// HasCandidate drives the one-candidate-per-user rule in the client.
type UserCandidatesResponse struct {
	Candidates   []CandidateResponse `json:"candidates"`
	HasCandidate bool                `json:"has_candidate"`
}

// UploadImageResponse carries the hosted URL returned by the image host
type UploadImageResponse struct {
	ImageURL string `json:"image_url"`
}
