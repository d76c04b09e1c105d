package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/policy"
	"go-jobboard-backend/pkg/apperror"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const usernameAttempts = 20

type accountUsecase struct {
	userRepo domain.UserRepository
}

func NewAccountUsecase(userRepo domain.UserRepository) domain.AccountUsecase {
	return &accountUsecase{userRepo: userRepo}
}

// Register creates a self-service account. Role-conditional required fields
// apply: candidates must bring a resume handle, employers a company name.
func (u *accountUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	return u.create(ctx, input, false)
}

// CreateSuperuser bootstraps an administrative account. It bypasses the
// role-conditional field requirement and marks the account staff+superuser.
func (u *accountUsecase) CreateSuperuser(ctx context.Context, email, password string, role domain.Role) (*domain.User, error) {
	if role == "" {
		role = domain.RoleEmployer
	}
	return u.create(ctx, domain.RegisterInput{
		Email:    email,
		Password: password,
		Role:     role,
	}, true)
}

func (u *accountUsecase) create(ctx context.Context, input domain.RegisterInput, superuser bool) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, apperror.BadRequest("Email is required")
	}
	if input.Password == "" {
		return nil, apperror.BadRequest("Password is required")
	}
	if !input.Role.Valid() {
		return nil, apperror.BadRequest(fmt.Sprintf("Invalid role %q. Valid roles are: %s, %s", input.Role, domain.RoleEmployer, domain.RoleCandidate))
	}

	var company, resume *string
	if !superuser {
		switch input.Role {
		case domain.RoleCandidate:
			if input.ResumeHandle == "" {
				return nil, apperror.BadRequest("A resume is required for candidate accounts")
			}
			resume = &input.ResumeHandle
		case domain.RoleEmployer:
			if input.Company == "" {
				return nil, apperror.BadRequest("A company is required for employer accounts")
			}
			company = &input.Company
		}
	}

	// Pre-check for a friendlier error; the unique constraint on the users
	// table is what actually settles concurrent registrations.
	if existing, err := u.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperror.Conflict("User with this email already exists")
	} else if err != nil && err != domain.ErrNotFound {
		return nil, apperror.Internal(err)
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		generated, err := u.generateUsername(ctx, email)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		username = generated
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		Role:         input.Role,
		PasswordHash: string(hash),
		Company:      company,
		ResumeHandle: resume,
		IsActive:     true,
		IsStaff:      superuser,
		IsSuperuser:  superuser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// generateUsername derives a base from the first 3 alphanumeric characters
// of the email local part and disambiguates collisions with random digits.
func (u *accountUsecase) generateUsername(ctx context.Context, email string) (string, error) {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	var base strings.Builder
	for _, r := range strings.ToLower(local) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			base.WriteRune(r)
			if base.Len() >= 3 {
				break
			}
		}
	}
	if base.Len() == 0 {
		base.WriteString("user")
	}

	username := base.String()
	for i := 0; i < usernameAttempts; i++ {
		exists, err := u.userRepo.UsernameExists(ctx, username)
		if err != nil {
			return "", err
		}
		if !exists {
			return username, nil
		}
		username = fmt.Sprintf("%s%03d", base.String(), rand.Intn(1000))
	}
	// Digits keep colliding, fall back to an opaque suffix.
	return base.String() + strings.ReplaceAll(uuid.NewString(), "-", "")[:8], nil
}

func (u *accountUsecase) GetProfile(ctx context.Context, actor *domain.User, targetID string) (*domain.User, error) {
	if d := policy.CanAccessUser(actor, targetID); !d.Allowed {
		return nil, d.Err()
	}
	user, err := u.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies a partial update. When the patch switches roles, the
// newly required field must arrive in the same patch and the old role's
// field is cleared atomically with the switch. Otherwise fields are updated
// one by one: absent fields stay, explicit nulls clear.
func (u *accountUsecase) UpdateProfile(ctx context.Context, actor *domain.User, targetID string, patch domain.ProfilePatch) (*domain.User, error) {
	if d := policy.CanAccessUser(actor, targetID); !d.Allowed {
		return nil, d.Err()
	}

	user, err := u.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}

	roleChanged := patch.Role.Set() && patch.Role.Value != user.Role
	if roleChanged {
		newRole := patch.Role.Value
		if !newRole.Valid() {
			return nil, apperror.BadRequest(fmt.Sprintf("Invalid role %q. Valid roles are: %s, %s", newRole, domain.RoleEmployer, domain.RoleCandidate))
		}
		switch newRole {
		case domain.RoleCandidate:
			if !patch.ResumeHandle.Set() || patch.ResumeHandle.Value == "" {
				return nil, apperror.BadRequest("A resume is required when switching to a candidate account")
			}
			user.ResumeHandle = patch.ResumeHandle.Ptr()
			user.Company = nil
		case domain.RoleEmployer:
			if !patch.Company.Set() || patch.Company.Value == "" {
				return nil, apperror.BadRequest("A company is required when switching to an employer account")
			}
			user.Company = patch.Company.Ptr()
			user.ResumeHandle = nil
		}
		user.Role = newRole
	} else {
		if patch.Company.Present {
			user.Company = patch.Company.Ptr()
		}
		if patch.ResumeHandle.Present {
			user.ResumeHandle = patch.ResumeHandle.Ptr()
		}
	}

	if patch.Email.Set() {
		email := strings.ToLower(strings.TrimSpace(patch.Email.Value))
		if email == "" {
			return nil, apperror.BadRequest("Email cannot be empty")
		}
		user.Email = email
	}
	if patch.Username.Set() {
		if strings.TrimSpace(patch.Username.Value) == "" {
			return nil, apperror.BadRequest("Username cannot be empty")
		}
		user.Username = strings.TrimSpace(patch.Username.Value)
	}
	if patch.Password.Set() {
		if patch.Password.Value == "" {
			return nil, apperror.BadRequest("Password cannot be empty")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(patch.Password.Value), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		user.PasswordHash = string(hash)
	}

	user.UpdatedAt = time.Now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user; owned jobs and applications cascade at the
// storage layer.
func (u *accountUsecase) DeleteAccount(ctx context.Context, actor *domain.User, targetID string) error {
	if d := policy.CanAccessUser(actor, targetID); !d.Allowed {
		return d.Err()
	}
	if err := u.userRepo.Delete(ctx, targetID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("User not found")
		}
		return err
	}
	return nil
}
