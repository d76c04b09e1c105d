package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func opt[T any](v T) domain.Optional[T] {
	return domain.Optional[T]{Present: true, Value: v}
}

func optNull[T any]() domain.Optional[T] {
	return domain.Optional[T]{Present: true, Null: true}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	appErr, ok := err.(*apperror.AppError)
	if !ok {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Should lowercase and trim the email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(mockRepo)

		mockRepo.On("GetByEmail", ctx, "alice@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("UsernameExists", ctx, mock.Anything).Return(false, nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := uc.Register(ctx, domain.RegisterInput{
			Email:        "  Alice@Example.COM ",
			Password:     "hunter2hunter2",
			Role:         domain.RoleCandidate,
			ResumeHandle: "resumes/alice.pdf",
		})
		assert.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsSuperuser)
	})

	t.Run("Should generate the username from the email local part", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(mockRepo)

		mockRepo.On("GetByEmail", ctx, mock.Anything).Return(nil, domain.ErrNotFound)
		mockRepo.On("UsernameExists", ctx, "ali").Return(false, nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := uc.Register(ctx, domain.RegisterInput{
			Email:        "alice@example.com",
			Password:     "hunter2hunter2",
			Role:         domain.RoleCandidate,
			ResumeHandle: "resumes/alice.pdf",
		})
		assert.NoError(t, err)
		assert.Equal(t, "ali", user.Username)
	})

	t.Run("Should disambiguate a taken username with digits", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(mockRepo)

		mockRepo.On("GetByEmail", ctx, mock.Anything).Return(nil, domain.ErrNotFound)
		mockRepo.On("UsernameExists", ctx, "ali").Return(true, nil)
		mockRepo.On("UsernameExists", ctx, mock.MatchedBy(func(name string) bool {
			return name != "ali"
		})).Return(false, nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := uc.Register(ctx, domain.RegisterInput{
			Email:        "alice@example.com",
			Password:     "hunter2hunter2",
			Role:         domain.RoleCandidate,
			ResumeHandle: "resumes/alice.pdf",
		})
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(user.Username, "ali"))
		assert.Len(t, user.Username, 6) // base plus three digits
	})

	t.Run("Should reject a duplicate email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(mockRepo)

		existing := &domain.User{ID: "u1", Email: "alice@example.com"}
		mockRepo.On("GetByEmail", ctx, "alice@example.com").Return(existing, nil)

		_, err := uc.Register(ctx, domain.RegisterInput{
			Email:        "Alice@example.com",
			Password:     "hunter2hunter2",
			Role:         domain.RoleCandidate,
			ResumeHandle: "resumes/alice.pdf",
		})
		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
	})

	t.Run("Should require a resume for candidates", func(t *testing.T) {
		uc := usecase.NewAccountUsecase(new(MockUserRepo))

		_, err := uc.Register(ctx, domain.RegisterInput{
			Email:    "bob@example.com",
			Password: "hunter2hunter2",
			Role:     domain.RoleCandidate,
		})
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Contains(t, err.Error(), "resume")
	})

	t.Run("Should require a company for employers", func(t *testing.T) {
		uc := usecase.NewAccountUsecase(new(MockUserRepo))

		_, err := uc.Register(ctx, domain.RegisterInput{
			Email:    "acme@example.com",
			Password: "hunter2hunter2",
			Role:     domain.RoleEmployer,
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "company")
	})

	t.Run("Should reject an unknown role", func(t *testing.T) {
		uc := usecase.NewAccountUsecase(new(MockUserRepo))

		_, err := uc.Register(ctx, domain.RegisterInput{
			Email:    "eve@example.com",
			Password: "hunter2hunter2",
			Role:     "Admin",
		})
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Contains(t, err.Error(), "Employer")
		assert.Contains(t, err.Error(), "Candidate")
	})

	t.Run("Should hash the password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(mockRepo)

		mockRepo.On("GetByEmail", ctx, mock.Anything).Return(nil, domain.ErrNotFound)
		mockRepo.On("UsernameExists", ctx, mock.Anything).Return(false, nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := uc.Register(ctx, domain.RegisterInput{
			Email:        "carol@example.com",
			Password:     "hunter2hunter2",
			Role:         domain.RoleCandidate,
			ResumeHandle: "resumes/carol.pdf",
		})
		assert.NoError(t, err)
		assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2hunter2")))
	})
}

func TestCreateSuperuser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAccountUsecase(mockRepo)

	mockRepo.On("GetByEmail", ctx, mock.Anything).Return(nil, domain.ErrNotFound)
	mockRepo.On("UsernameExists", ctx, mock.Anything).Return(false, nil)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	// No company despite the employer role: superusers bypass the
	// role-conditional field requirement.
	user, err := uc.CreateSuperuser(ctx, "root@example.com", "hunter2hunter2", domain.RoleEmployer)
	assert.NoError(t, err)
	assert.True(t, user.IsStaff)
	assert.True(t, user.IsSuperuser)
	assert.Nil(t, user.Company)
	assert.Nil(t, user.ResumeHandle)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	company := "Acme"

	storedCandidate := func() *domain.User {
		resume := "resumes/alice.pdf"
		return &domain.User{
			ID:           "u1",
			Email:        "alice@example.com",
			Username:     "ali",
			Role:         domain.RoleCandidate,
			ResumeHandle: &resume,
			IsActive:     true,
		}
	}

	t.Run("Should deny updating another user's profile", func(t *testing.T) {
		uc := usecase.NewAccountUsecase(new(MockUserRepo))
		actor := &domain.User{ID: "u2", Role: domain.RoleCandidate}

		_, err := uc.UpdateProfile(ctx, actor, "u1", domain.ProfilePatch{})
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})

	t.Run("Should require the company when switching to employer", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(mockRepo)
		user := storedCandidate()
		mockRepo.On("GetByID", ctx, "u1").Return(user, nil)

		_, err := uc.UpdateProfile(ctx, user, "u1", domain.ProfilePatch{
			Role: opt(domain.RoleEmployer),
		})
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Contains(t, err.Error(), "company")
	})

	t.Run("Should clear the resume when switching to employer", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(mockRepo)
		user := storedCandidate()
		mockRepo.On("GetByID", ctx, "u1").Return(user, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		updated, err := uc.UpdateProfile(ctx, user, "u1", domain.ProfilePatch{
			Role:    opt(domain.RoleEmployer),
			Company: opt(company),
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleEmployer, updated.Role)
		assert.Nil(t, updated.ResumeHandle)
		if assert.NotNil(t, updated.Company) {
			assert.Equal(t, company, *updated.Company)
		}
	})

	t.Run("Should leave absent fields untouched and clear explicit nulls", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(mockRepo)
		user := storedCandidate()
		mockRepo.On("GetByID", ctx, "u1").Return(user, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		updated, err := uc.UpdateProfile(ctx, user, "u1", domain.ProfilePatch{
			ResumeHandle: optNull[string](),
		})
		assert.NoError(t, err)
		assert.Nil(t, updated.ResumeHandle)
		assert.Equal(t, "alice@example.com", updated.Email) // untouched
	})

	t.Run("Should lowercase an updated email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(mockRepo)
		user := storedCandidate()
		mockRepo.On("GetByID", ctx, "u1").Return(user, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		updated, err := uc.UpdateProfile(ctx, user, "u1", domain.ProfilePatch{
			Email: opt("Alice@NewDomain.COM"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "alice@newdomain.com", updated.Email)
	})
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Should deny deleting another user", func(t *testing.T) {
		uc := usecase.NewAccountUsecase(new(MockUserRepo))
		actor := &domain.User{ID: "u2"}

		err := uc.DeleteAccount(ctx, actor, "u1")
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})

	t.Run("Should delete own account", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAccountUsecase(mockRepo)
		mockRepo.On("Delete", ctx, "u1").Return(nil)

		actor := &domain.User{ID: "u1"}
		assert.NoError(t, uc.DeleteAccount(ctx, actor, "u1"))
		mockRepo.AssertExpectations(t)
	})
}
