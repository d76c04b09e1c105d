package usecase

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/policy"
	"go-jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

func NewApplicationUsecase(applicationRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// Apply submits a candidate's application to an active job. The duplicate
// pre-check keeps the common case friendly; the unique (job, candidate)
// constraint in the repository settles concurrent submissions.
func (u *applicationUsecase) Apply(ctx context.Context, actor *domain.User, jobID int64, coverLetter string) (*domain.Application, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	alreadyApplied := false
	if actor != nil {
		alreadyApplied, err = u.applicationRepo.Exists(ctx, jobID, actor.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
	}

	if d := policy.CanApply(actor, job, alreadyApplied); !d.Allowed {
		return nil, d.Err()
	}

	now := time.Now()
	app := &domain.Application{
		JobID:       jobID,
		CandidateID: actor.ID,
		CoverLetter: coverLetter,
		AppliedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// GetApplication returns an application to its owning candidate or to the
// employer owning the applied-to job.
func (u *applicationUsecase) GetApplication(ctx context.Context, actor *domain.User, id int64) (*domain.Application, error) {
	app, err := u.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, err
	}

	if actor != nil && app.CandidateID == actor.ID {
		return app, nil
	}
	if job, err := u.jobRepo.GetByID(ctx, app.JobID); err == nil && actor != nil && job.EmployerID == actor.ID {
		return app, nil
	}
	return nil, policy.CanAccessOwned(actor, app.CandidateID).Err()
}

func (u *applicationUsecase) ListMine(ctx context.Context, actor *domain.User) ([]domain.Application, error) {
	return u.applicationRepo.GetByCandidateID(ctx, actor.ID)
}

// ListForJob returns a job's applications to its owning employer.
func (u *applicationUsecase) ListForJob(ctx context.Context, actor *domain.User, jobID int64) ([]domain.Application, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	if d := policy.CanAccessOwned(actor, job.EmployerID); !d.Allowed {
		return nil, d.Err()
	}
	return u.applicationRepo.GetByJobID(ctx, jobID)
}

// UpdateApplication applies a partial update. The job reference is immutable
// after creation.
func (u *applicationUsecase) UpdateApplication(ctx context.Context, actor *domain.User, id int64, patch domain.ApplicationPatch) (*domain.Application, error) {
	app, err := u.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, err
	}

	jobChanged := patch.JobID != nil && *patch.JobID != app.JobID
	if d := policy.CanUpdateApplication(actor, app, jobChanged); !d.Allowed {
		return nil, d.Err()
	}

	if patch.CoverLetter != nil {
		app.CoverLetter = *patch.CoverLetter
	}
	app.UpdatedAt = time.Now()

	if err := u.applicationRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (u *applicationUsecase) DeleteApplication(ctx context.Context, actor *domain.User, id int64) error {
	app, err := u.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Application not found")
		}
		return err
	}

	if d := policy.CanDeleteApplication(actor, app); !d.Allowed {
		return d.Err()
	}

	return u.applicationRepo.Delete(ctx, id)
}
