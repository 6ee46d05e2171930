package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AgencyRepository interface {
	GetByAPIKey(ctx context.Context, apiKey string) (*domain.Agency, error)
}

type PGAgencyRepository struct {
	db *pgxpool.Pool
}

func NewAgencyRepository(db *pgxpool.Pool) AgencyRepository {
	return &PGAgencyRepository{db: db}
}

func (r *PGAgencyRepository) GetByAPIKey(ctx context.Context, apiKey string) (*domain.Agency, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, api_key, is_active, created_at FROM agencies WHERE api_key=$1 AND is_active`, apiKey)
	var a domain.Agency
	if err := row.Scan(&a.ID, &a.Name, &a.APIKey, &a.IsActive, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAgencyNotFound
		}
		return nil, err
	}
	return &a, nil
}

var _ AgencyRepository = (*PGAgencyRepository)(nil)
