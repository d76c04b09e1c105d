package domain

import (
	"context"
	"time"
)

// Application submitted by a candidate for a job. A candidate may apply to a
// given job at most once, enforced by a unique (job_id, candidate_id)
// constraint at the storage layer.
type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	CandidateID string    `json:"candidate_id"`
	CoverLetter string    `json:"cover_letter"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ApplicationPatch carries a partial application update. The job reference is
// immutable after creation; a JobID differing from the stored one is
// rejected.
type ApplicationPatch struct {
	JobID       *int64
	CoverLetter *string
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	GetByCandidateID(ctx context.Context, candidateID string) ([]Application, error)
	Exists(ctx context.Context, jobID int64, candidateID string) (bool, error)
	Update(ctx context.Context, app *Application) error
	Delete(ctx context.Context, id int64) error
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, actor *User, jobID int64, coverLetter string) (*Application, error)
	GetApplication(ctx context.Context, actor *User, id int64) (*Application, error)
	ListMine(ctx context.Context, actor *User) ([]Application, error)
	// ListForJob returns a job's applications to its owning employer.
	ListForJob(ctx context.Context, actor *User, jobID int64) ([]Application, error)
	UpdateApplication(ctx context.Context, actor *User, id int64, patch ApplicationPatch) (*Application, error)
	DeleteApplication(ctx context.Context, actor *User, id int64) error
}
