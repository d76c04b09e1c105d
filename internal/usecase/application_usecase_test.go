package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func activeJob() *domain.Job {
	return &domain.Job{ID: 1, Position: "Go Developer", EmployerID: "emp-1", IsActive: true}
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("Should deny employers", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)

		mockJobRepo.On("GetByID", ctx, int64(1)).Return(activeJob(), nil)
		mockAppRepo.On("Exists", ctx, int64(1), "emp-1").Return(false, nil)

		_, err := uc.Apply(ctx, testEmployer, 1, "")
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})

	t.Run("Should reject inactive jobs with a 400", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)

		inactive := activeJob()
		inactive.IsActive = false
		mockJobRepo.On("GetByID", ctx, int64(1)).Return(inactive, nil)
		mockAppRepo.On("Exists", ctx, int64(1), "cand-1").Return(false, nil)

		_, err := uc.Apply(ctx, testCandidate, 1, "")
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})

	t.Run("Should reject a duplicate application with a 409", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)

		mockJobRepo.On("GetByID", ctx, int64(1)).Return(activeJob(), nil)
		mockAppRepo.On("Exists", ctx, int64(1), "cand-1").Return(true, nil)

		_, err := uc.Apply(ctx, testCandidate, 1, "")
		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
	})

	t.Run("Should return 404 for a missing job", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)

		mockJobRepo.On("GetByID", ctx, int64(9)).Return(nil, domain.ErrNotFound)

		_, err := uc.Apply(ctx, testCandidate, 9, "")
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	t.Run("Should force the candidate from the actor", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)

		mockJobRepo.On("GetByID", ctx, int64(1)).Return(activeJob(), nil)
		mockAppRepo.On("Exists", ctx, int64(1), "cand-1").Return(false, nil)
		mockAppRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)

		app, err := uc.Apply(ctx, testCandidate, 1, "I write Go.")
		assert.NoError(t, err)
		assert.Equal(t, "cand-1", app.CandidateID)
		assert.Equal(t, "I write Go.", app.CoverLetter)
	})
}

func TestGetApplication(t *testing.T) {
	ctx := context.Background()
	stored := &domain.Application{ID: 5, JobID: 1, CandidateID: "cand-1"}

	t.Run("Should allow the owning candidate", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, new(MockJobRepo))
		mockAppRepo.On("GetByID", ctx, int64(5)).Return(stored, nil)

		app, err := uc.GetApplication(ctx, testCandidate, 5)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), app.ID)
	})

	t.Run("Should allow the employer owning the job", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)
		mockAppRepo.On("GetByID", ctx, int64(5)).Return(stored, nil)
		mockJobRepo.On("GetByID", ctx, int64(1)).Return(activeJob(), nil)

		app, err := uc.GetApplication(ctx, testEmployer, 5)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), app.ID)
	})

	t.Run("Should deny everyone else", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)
		mockAppRepo.On("GetByID", ctx, int64(5)).Return(stored, nil)
		mockJobRepo.On("GetByID", ctx, int64(1)).Return(activeJob(), nil)

		_, err := uc.GetApplication(ctx, testIntruder, 5)
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})
}

func TestListForJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should deny a non-owning employer", func(t *testing.T) {
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), mockJobRepo)
		mockJobRepo.On("GetByID", ctx, int64(1)).Return(activeJob(), nil)

		_, err := uc.ListForJob(ctx, testIntruder, 1)
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})

	t.Run("Should return applications to the owner", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)
		mockJobRepo.On("GetByID", ctx, int64(1)).Return(activeJob(), nil)
		mockAppRepo.On("GetByJobID", ctx, int64(1)).Return([]domain.Application{{ID: 5, JobID: 1}}, nil)

		apps, err := uc.ListForJob(ctx, testEmployer, 1)
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})
}

func TestUpdateApplication(t *testing.T) {
	ctx := context.Background()

	stored := func() *domain.Application {
		return &domain.Application{ID: 5, JobID: 1, CandidateID: "cand-1", CoverLetter: "old"}
	}

	t.Run("Should reject changing the job reference", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, new(MockJobRepo))
		mockAppRepo.On("GetByID", ctx, int64(5)).Return(stored(), nil)

		newJob := int64(2)
		_, err := uc.UpdateApplication(ctx, testCandidate, 5, domain.ApplicationPatch{JobID: &newJob})
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})

	t.Run("Should accept a same-value job id", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, new(MockJobRepo))
		mockAppRepo.On("GetByID", ctx, int64(5)).Return(stored(), nil)
		mockAppRepo.On("Update", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)

		sameJob := int64(1)
		letter := "new letter"
		app, err := uc.UpdateApplication(ctx, testCandidate, 5, domain.ApplicationPatch{JobID: &sameJob, CoverLetter: &letter})
		assert.NoError(t, err)
		assert.Equal(t, "new letter", app.CoverLetter)
	})

	t.Run("Should deny non-owners", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, new(MockJobRepo))
		mockAppRepo.On("GetByID", ctx, int64(5)).Return(stored(), nil)

		letter := "sneaky"
		_, err := uc.UpdateApplication(ctx, testEmployer, 5, domain.ApplicationPatch{CoverLetter: &letter})
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})

	t.Run("Should deny the owner after switching to an employer account", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, new(MockJobRepo))
		mockAppRepo.On("GetByID", ctx, int64(5)).Return(stored(), nil)

		migrated := &domain.User{ID: "cand-1", Role: domain.RoleEmployer}
		letter := "still mine?"
		_, err := uc.UpdateApplication(ctx, migrated, 5, domain.ApplicationPatch{CoverLetter: &letter})
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})
}

func TestDeleteApplicationUsecase(t *testing.T) {
	ctx := context.Background()
	stored := &domain.Application{ID: 5, JobID: 1, CandidateID: "cand-1"}

	t.Run("Should deny non-owners", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, new(MockJobRepo))
		mockAppRepo.On("GetByID", ctx, int64(5)).Return(stored, nil)

		err := uc.DeleteApplication(ctx, testEmployer, 5)
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})

	t.Run("Should withdraw the owner's application", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, new(MockJobRepo))
		mockAppRepo.On("GetByID", ctx, int64(5)).Return(stored, nil)
		mockAppRepo.On("Delete", ctx, int64(5)).Return(nil)

		assert.NoError(t, uc.DeleteApplication(ctx, testCandidate, 5))
		mockAppRepo.AssertExpectations(t)
	})
}
