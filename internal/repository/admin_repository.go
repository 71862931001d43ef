package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xezo360hye/DIP392-1337/internal/model"
)

// AdminRepository handles administrator account data access.
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

// GetByLogin retrieves an admin by its unique login.
func (r *AdminRepository) GetByLogin(ctx context.Context, login string) (*model.Admin, error) {
	a := &model.Admin{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, login, password_hash, created_at, updated_at FROM admins WHERE login = $1`, login,
	).Scan(&a.ID, &a.Login, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// GetByID retrieves an admin by ID.
func (r *AdminRepository) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	a := &model.Admin{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, login, password_hash, created_at, updated_at FROM admins WHERE id = $1`, id,
	).Scan(&a.ID, &a.Login, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Upsert inserts the admin or, if the login is taken, refreshes its password
// hash. Used by the seed command so re-running it is harmless.
func (r *AdminRepository) Upsert(ctx context.Context, a *model.Admin) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO admins (login, password_hash) VALUES ($1, $2)
		 ON CONFLICT (login) DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = NOW()
		 RETURNING id, created_at, updated_at`,
		a.Login, a.PasswordHash,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}
