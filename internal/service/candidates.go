package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"UGEM_BACK-END/internal/dto"
	"UGEM_BACK-END/internal/models"
)

// CandidateStore defines the candidate data access interface consumed by
// CandidateService.
type CandidateStore interface {
	Create(ctx context.Context, c models.Candidate) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error)
	ListAll(ctx context.Context) ([]models.Candidate, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.Candidate, error)
	Update(ctx context.Context, id, creatorID uuid.UUID, upd models.CandidateUpdate) (*models.Candidate, error)
	Delete(ctx context.Context, id, creatorID uuid.UUID) error
}

// CandidateService implements the candidate registry: creation with the
// one-candidate-per-member rule, owner-only mutation, and the public listing.
type CandidateService struct {
	candidates CandidateStore
}

// NewCandidateService creates a new CandidateService
func NewCandidateService(candidates CandidateStore) *CandidateService {
	return &CandidateService{candidates: candidates}
}

// Create registers a new candidate for creatorID.
// Returns ErrUnauthorized when no user is signed in, a ValidationError when
// the faculty is missing, and ErrConflict when the member already has a
// registered candidate.
func (s *CandidateService) Create(ctx context.Context, creatorID uuid.UUID, req dto.CreateCandidateRequest) (*models.Candidate, error) {
	if creatorID == uuid.Nil {
		return nil, models.ErrUnauthorized
	}

	if strings.TrimSpace(req.Faculty) == "" {
		return nil, &models.ValidationError{Field: "faculty", Message: "يجب اختيار الكلية"}
	}

	existing, err := s.candidates.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("check existing candidates: %w", err)
	}
	if len(existing) > 0 {
		return nil, models.ErrConflict
	}

	now := time.Now()
	candidate := models.Candidate{
		ID:        uuid.New(),
		FullName:  strings.TrimSpace(req.FullName),
		Phone:     strings.TrimSpace(req.Phone),
		Specialty: strings.TrimSpace(req.Specialty),
		Faculty:   strings.TrimSpace(req.Faculty),
		Address:   strings.TrimSpace(req.Address),
		CreatorID: creatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.ImageURL != "" {
		candidate.ImageURL = &req.ImageURL
	}

	if err := s.candidates.Create(ctx, candidate); err != nil {
		return nil, fmt.Errorf("create candidate: %w", err)
	}

	return &candidate, nil
}

// GetByID returns a single candidate, for the public detail and edit views
func (s *CandidateService) GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	return s.candidates.FindByID(ctx, id)
}

// GetAll returns every candidate, newest first
func (s *CandidateService) GetAll(ctx context.Context) ([]models.Candidate, error) {
	return s.candidates.ListAll(ctx)
}

// GetByUser returns the member's own candidates, newest first. The client
// uses a non-empty result to hide the register action.
func (s *CandidateService) GetByUser(ctx context.Context, userID uuid.UUID) ([]models.Candidate, error) {
	if userID == uuid.Nil {
		return nil, models.ErrUnauthorized
	}
	return s.candidates.ListByCreator(ctx, userID)
}

// Update merges the provided fields into the candidate after verifying the
// requester owns it. Returns ErrNotFound for a missing candidate and
// ErrPermissionDenied for a creator mismatch.
func (s *CandidateService) Update(ctx context.Context, id, requesterID uuid.UUID, upd models.CandidateUpdate) (*models.Candidate, error) {
	if requesterID == uuid.Nil {
		return nil, models.ErrUnauthorized
	}

	existing, err := s.candidates.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.CreatorID != requesterID {
		return nil, models.ErrPermissionDenied
	}

	// The store re-checks ownership inside the write, so a candidate that
	// changed hands or vanished between the load and the write cannot be
	// modified anyway.
	updated, err := s.candidates.Update(ctx, id, requesterID, upd)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the candidate after verifying the requester owns it
func (s *CandidateService) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	if requesterID == uuid.Nil {
		return models.ErrUnauthorized
	}

	existing, err := s.candidates.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.CreatorID != requesterID {
		return models.ErrPermissionDenied
	}

	return s.candidates.Delete(ctx, id, requesterID)
}
