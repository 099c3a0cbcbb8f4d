package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"UGEM_BACK-END/internal/models"
)

// CandidateRepository handles data access for the candidates table
type CandidateRepository struct {
	db *pgxpool.Pool
}

// NewCandidateRepository creates a new CandidateRepository instance
func NewCandidateRepository(db *pgxpool.Pool) *CandidateRepository {
	return &CandidateRepository{db: db}
}

const candidateColumns = `id, full_name, phone, specialty, faculty, address, image_url, creator_id, created_at, updated_at`

func scanCandidate(row pgx.Row) (*models.Candidate, error) {
	var c models.Candidate
	err := row.Scan(&c.ID, &c.FullName, &c.Phone, &c.Specialty, &c.Faculty, &c.Address,
		&c.ImageURL, &c.CreatorID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("scan candidate: %w", err)
	}
	return &c, nil
}

// Create inserts a new candidate row
func (r *CandidateRepository) Create(ctx context.Context, c models.Candidate) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO candidates (id, full_name, phone, specialty, faculty, address, image_url, creator_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.FullName, c.Phone, c.Specialty, c.Faculty, c.Address, c.ImageURL,
		c.CreatorID, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert candidate: %w", err)
	}
	return nil
}

// FindByID retrieves a candidate by id
func (r *CandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
	return scanCandidate(row)
}

// ListAll returns every candidate ordered newest first, for the public table
func (r *CandidateRepository) ListAll(ctx context.Context) ([]models.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	return collectCandidates(rows)
}

// ListByCreator returns the creator's candidates ordered newest first
func (r *CandidateRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE creator_id = $1 ORDER BY created_at DESC`,
		creatorID)
	if err != nil {
		return nil, fmt.Errorf("list candidates by creator: %w", err)
	}
	defer rows.Close()

	return collectCandidates(rows)
}

func collectCandidates(rows pgx.Rows) ([]models.Candidate, error) {
	candidates := make([]models.Candidate, 0)
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.FullName, &c.Phone, &c.Specialty, &c.Faculty, &c.Address,
			&c.ImageURL, &c.CreatorID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan candidate row: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidates: %w", err)
	}
	return candidates, nil
}

// Update merges the provided fields into the candidate owned by creatorID.
// The creator_id condition makes the ownership check atomic with the write,
// so two racing edits cannot both slip past the permission check.
func (r *CandidateRepository) Update(ctx context.Context, id, creatorID uuid.UUID, upd models.CandidateUpdate) (*models.Candidate, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE candidates
		    SET full_name = COALESCE($1, full_name),
		        phone     = COALESCE($2, phone),
		        specialty = COALESCE($3, specialty),
		        faculty   = COALESCE($4, faculty),
		        address   = COALESCE($5, address),
		        image_url = COALESCE($6, image_url),
		        updated_at = NOW()
		  WHERE id = $7 AND creator_id = $8
		  RETURNING `+candidateColumns,
		upd.FullName, upd.Phone, upd.Specialty, upd.Faculty, upd.Address, upd.ImageURL,
		id, creatorID)
	return scanCandidate(row)
}

// Delete removes the candidate owned by creatorID
func (r *CandidateRepository) Delete(ctx context.Context, id, creatorID uuid.UUID) error {
	ct, err := r.db.Exec(ctx,
		`DELETE FROM candidates WHERE id = $1 AND creator_id = $2`, id, creatorID)
	if err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
