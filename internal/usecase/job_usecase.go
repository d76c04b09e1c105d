package usecase

import (
	"context"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/policy"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// trimSkillNames trims each requirement name and drops empties; the
// resulting list fully replaces a job's requirement set.
func trimSkillNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (u *jobUsecase) CreateJob(ctx context.Context, actor *domain.User, job *domain.Job, skillNames []string) error {
	if d := policy.CanCreateJob(actor); !d.Allowed {
		return d.Err()
	}

	if job.Position == "" {
		return apperror.BadRequest("Position is required")
	}
	if job.Salary != nil && *job.Salary < 0 {
		return apperror.BadRequest("Salary must be non-negative")
	}

	job.EmployerID = actor.ID
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt

	return u.jobRepo.Create(ctx, job, trimSkillNames(skillNames))
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return u.jobRepo.Fetch(ctx)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, actor *domain.User, id int64, patch domain.JobPatch) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	if d := policy.CanUpdateJob(actor, job); !d.Allowed {
		return nil, d.Err()
	}

	if patch.Position != nil {
		if *patch.Position == "" {
			return nil, apperror.BadRequest("Position cannot be empty")
		}
		job.Position = *patch.Position
	}
	if patch.Description != nil {
		job.Description = *patch.Description
	}
	if patch.IsActive != nil {
		job.IsActive = *patch.IsActive
	}
	if patch.Salary.Present {
		if patch.Salary.Null {
			job.Salary = nil
		} else {
			if patch.Salary.Value < 0 {
				return nil, apperror.BadRequest("Salary must be non-negative")
			}
			job.Salary = patch.Salary.Ptr()
		}
	}

	var skillNames *[]string
	if patch.Skills != nil {
		trimmed := trimSkillNames(*patch.Skills)
		skillNames = &trimmed
	}

	job.UpdatedAt = time.Now()
	if err := u.jobRepo.Update(ctx, job, skillNames); err != nil {
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, actor *domain.User, id int64) error {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Job not found")
		}
		return err
	}

	// The is_active guard lives in the policy: active jobs are undeletable.
	if d := policy.CanDeleteJob(actor, job); !d.Allowed {
		return d.Err()
	}

	return u.jobRepo.Delete(ctx, id)
}
