package handlers

import (
	"UGEM_BACK-END/internal/dto"
	"UGEM_BACK-END/internal/models"
	"UGEM_BACK-END/internal/utils"
)

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: utils.FormatTimestamp(user.CreatedAt),
		UpdatedAt: utils.FormatTimestamp(user.UpdatedAt),
	}
}

func toCandidateResponse(c *models.Candidate) dto.CandidateResponse {
	return dto.CandidateResponse{
		ID:        c.ID.String(),
		FullName:  c.FullName,
		Phone:     c.Phone,
		Specialty: c.Specialty,
		Faculty:   c.Faculty,
		Address:   c.Address,
		ImageURL:  c.ImageURL,
		CreatorID: c.CreatorID.String(),
		CreatedAt: utils.FormatTimestamp(c.CreatedAt),
		UpdatedAt: utils.FormatTimestamp(c.UpdatedAt),
	}
}

func toCandidateResponses(candidates []models.Candidate) []dto.CandidateResponse {
	responses := make([]dto.CandidateResponse, 0, len(candidates))
	for i := range candidates {
		responses = append(responses, toCandidateResponse(&candidates[i]))
	}
	return responses
}
