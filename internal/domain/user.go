package domain

import (
	"context"
	"time"
)

// Role of a user account. Exactly one of Company/ResumeHandle is expected to
// be set on a user, matching its role (superusers are exempt).
type Role string

const (
	RoleEmployer  Role = "Employer"
	RoleCandidate Role = "Candidate"
)

// Roles lists the accepted role values, used in validation error messages.
var Roles = []Role{RoleEmployer, RoleCandidate}

func (r Role) Valid() bool {
	return r == RoleEmployer || r == RoleCandidate
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"` // stored lowercased, unique
	Username     string    `json:"username"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	Company      *string   `json:"company,omitempty"`
	ResumeHandle *string   `json:"resume_handle,omitempty"`
	IsActive     bool      `json:"is_active"`
	IsStaff      bool      `json:"is_staff"`
	IsSuperuser  bool      `json:"is_superuser"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterInput carries a self-service registration request.
type RegisterInput struct {
	Email        string
	Password     string
	Role         Role
	Username     string // optional, generated from the email local part if empty
	Company      string
	ResumeHandle string
}

// ProfilePatch carries a partial profile update. Fields absent from the
// request body stay untouched; explicit JSON nulls clear the company/resume
// fields.
type ProfilePatch struct {
	Email        Optional[string] `json:"email"`
	Username     Optional[string] `json:"username"`
	Password     Optional[string] `json:"password"`
	Role         Optional[Role]   `json:"role"`
	Company      Optional[string] `json:"company"`
	ResumeHandle Optional[string] `json:"resume_handle"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, user *User) error
	// Delete removes the user and cascades to owned jobs and applications.
	Delete(ctx context.Context, id string) error
}

type AccountUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	CreateSuperuser(ctx context.Context, email, password string, role Role) (*User, error)
	GetProfile(ctx context.Context, actor *User, targetID string) (*User, error)
	UpdateProfile(ctx context.Context, actor *User, targetID string, patch ProfilePatch) (*User, error)
	DeleteAccount(ctx context.Context, actor *User, targetID string) error
}
