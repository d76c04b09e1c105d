package domain

import (
	"context"
	"time"
)

// CompanyProfile describes an employer's company. One profile per user,
// created or replaced via upsert. Optional, not required for job creation.
type CompanyProfile struct {
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CompanyProfileRepository interface {
	// Upsert atomically creates or replaces the profile keyed by user_id.
	Upsert(ctx context.Context, profile *CompanyProfile) error
	GetByUserID(ctx context.Context, userID string) (*CompanyProfile, error)
	SetLogoURL(ctx context.Context, userID, logoURL string) error
}

type CompanyProfileUsecase interface {
	GetProfile(ctx context.Context, actor *User) (*CompanyProfile, error)
	UpsertProfile(ctx context.Context, actor *User, profile *CompanyProfile) error
}
