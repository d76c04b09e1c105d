package usecase

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/policy"
)

type companyProfileUsecase struct {
	profileRepo domain.CompanyProfileRepository
}

func NewCompanyProfileUsecase(profileRepo domain.CompanyProfileRepository) domain.CompanyProfileUsecase {
	return &companyProfileUsecase{profileRepo: profileRepo}
}

// GetProfile returns the actor's company profile, or an empty one for
// employers that have not filled it in yet.
func (u *companyProfileUsecase) GetProfile(ctx context.Context, actor *domain.User) (*domain.CompanyProfile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		if err == domain.ErrNotFound {
			return &domain.CompanyProfile{UserID: actor.ID}, nil
		}
		return nil, err
	}
	return profile, nil
}

// UpsertProfile creates or replaces the profile keyed by the actor. The key
// always comes from the authenticated actor, never the payload.
func (u *companyProfileUsecase) UpsertProfile(ctx context.Context, actor *domain.User, profile *domain.CompanyProfile) error {
	if d := policy.CanManageCompanyProfile(actor); !d.Allowed {
		return d.Err()
	}

	profile.UserID = actor.ID
	profile.UpdatedAt = time.Now()
	return u.profileRepo.Upsert(ctx, profile)
}
