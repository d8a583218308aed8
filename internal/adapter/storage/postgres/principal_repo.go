package postgres

import (
	"context"
	"errors"
	"fmt"

	"confidential-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PrincipalRepo implements ports.PrincipalRepository.
type PrincipalRepo struct {
	pool Pool
}

// NewPrincipalRepo creates a new PrincipalRepo.
func NewPrincipalRepo(pool Pool) *PrincipalRepo {
	return &PrincipalRepo{pool: pool}
}

// Create inserts a new principal into the database.
func (r *PrincipalRepo) Create(ctx context.Context, p *domain.Principal) error {
	query := `INSERT INTO principals (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, p.ID, p.Username, p.PasswordHash, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert principal: %w", err)
	}
	return nil
}

// GetByID fetches a principal by its UUID.
func (r *PrincipalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Principal, error) {
	query := `SELECT id, username, password_hash, created_at
		FROM principals WHERE id = $1`

	p := &domain.Principal{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Username, &p.PasswordHash, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get principal by id: %w", err)
	}
	return p, nil
}

// GetByUsername fetches a principal by username.
func (r *PrincipalRepo) GetByUsername(ctx context.Context, username string) (*domain.Principal, error) {
	query := `SELECT id, username, password_hash, created_at
		FROM principals WHERE username = $1`

	p := &domain.Principal{}
	err := r.pool.QueryRow(ctx, query, username).Scan(&p.ID, &p.Username, &p.PasswordHash, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get principal by username: %w", err)
	}
	return p, nil
}
