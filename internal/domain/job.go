package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Skill is a job requirement, created on demand when a job references it by
// name. Skills have no lifecycle endpoint of their own.
type Skill struct {
	ID   int64  `json:"id"`
	Name string `json:"name"` // unique
}

type Job struct {
	ID           int64     `json:"id"`
	Position     string    `json:"position"`
	Description  string    `json:"description"`
	Requirements []Skill   `json:"requirements"`
	EmployerID   string    `json:"employer_id"`
	IsActive     bool      `json:"is_active"`
	Salary       *float64  `json:"salary,omitempty"` // non-negative
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// JobPatch carries a partial job update. A non-nil Skills slice fully
// replaces the requirement set; nil leaves it untouched.
type JobPatch struct {
	Position    *string
	Description *string
	IsActive    *bool
	Salary      Optional[float64]
	Skills      *[]string
}

type JobRepository interface {
	// Create persists the job and resolves skillNames via get-or-create,
	// all within a single transaction. Requirements are populated on return.
	Create(ctx context.Context, job *Job, skillNames []string) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	// Fetch returns all jobs ordered by creation time descending.
	Fetch(ctx context.Context) ([]Job, error)
	// Update persists the job fields and, when skillNames is non-nil,
	// replaces the requirement set in the same transaction.
	Update(ctx context.Context, job *Job, skillNames *[]string) error
	// Delete hard-deletes the job, cascading requirement associations and
	// dependent applications.
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, actor *User, job *Job, skillNames []string) error
	GetJob(ctx context.Context, id int64) (*Job, error)
	ListJobs(ctx context.Context) ([]Job, error)
	UpdateJob(ctx context.Context, actor *User, id int64, patch JobPatch) (*Job, error)
	DeleteJob(ctx context.Context, actor *User, id int64) error
}
