package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyProfileRepo struct {
	db *pgxpool.Pool
}

func NewCompanyProfileRepository(db *pgxpool.Pool) domain.CompanyProfileRepository {
	return &companyProfileRepo{db: db}
}

// Upsert atomically creates or replaces the profile keyed by user_id. The
// logo is managed separately by SetLogoURL and deliberately not clobbered.
func (r *companyProfileRepo) Upsert(ctx context.Context, profile *domain.CompanyProfile) error {
	query := `INSERT INTO company_profiles (user_id, description, website, updated_at)
              VALUES ($1, $2, $3, $4)
              ON CONFLICT (user_id) DO UPDATE SET
                  description = EXCLUDED.description,
                  website = EXCLUDED.website,
                  updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query, profile.UserID, profile.Description, profile.Website, profile.UpdatedAt)
	return err
}

func (r *companyProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	query := `SELECT user_id, description, website, logo_url, updated_at FROM company_profiles WHERE user_id = $1`
	var profile domain.CompanyProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID, &profile.Description, &profile.Website, &profile.LogoURL, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *companyProfileRepo) SetLogoURL(ctx context.Context, userID, logoURL string) error {
	query := `INSERT INTO company_profiles (user_id, description, website, logo_url, updated_at)
              VALUES ($1, '', '', $2, now())
              ON CONFLICT (user_id) DO UPDATE SET
                  logo_url = EXCLUDED.logo_url,
                  updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query, userID, logoURL)
	return err
}
