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

var (
	testEmployer  = &domain.User{ID: "emp-1", Role: domain.RoleEmployer}
	testIntruder  = &domain.User{ID: "emp-2", Role: domain.RoleEmployer}
	testCandidate = &domain.User{ID: "cand-1", Role: domain.RoleCandidate}
)

func TestCreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should deny candidates", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))

		err := uc.CreateJob(ctx, testCandidate, &domain.Job{Position: "Go Developer"}, nil)
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})

	t.Run("Should require a position", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))

		err := uc.CreateJob(ctx, testEmployer, &domain.Job{}, nil)
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})

	t.Run("Should reject a negative salary", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))

		salary := -1.0
		err := uc.CreateJob(ctx, testEmployer, &domain.Job{Position: "Go Developer", Salary: &salary}, nil)
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})

	t.Run("Should force the employer from the actor and trim skills", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Job"), []string{"Go", "SQL"}).
			Return(nil).
			Run(func(args mock.Arguments) {
				job := args.Get(1).(*domain.Job)
				assert.Equal(t, "emp-1", job.EmployerID)
			})

		job := &domain.Job{Position: "Go Developer", EmployerID: "spoofed"}
		err := uc.CreateJob(ctx, testEmployer, job, []string{"  Go ", "SQL", "  "})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestUpdateJob(t *testing.T) {
	ctx := context.Background()

	storedJob := func() *domain.Job {
		salary := 90000.0
		return &domain.Job{ID: 1, Position: "Go Developer", EmployerID: "emp-1", IsActive: true, Salary: &salary}
	}

	t.Run("Should deny non-owners", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		mockRepo.On("GetByID", ctx, int64(1)).Return(storedJob(), nil)

		_, err := uc.UpdateJob(ctx, testIntruder, 1, domain.JobPatch{})
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})

	t.Run("Should return 404 for a missing job", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		mockRepo.On("GetByID", ctx, int64(9)).Return(nil, domain.ErrNotFound)

		_, err := uc.UpdateJob(ctx, testEmployer, 9, domain.JobPatch{})
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	t.Run("Should clear the salary on explicit null", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		mockRepo.On("GetByID", ctx, int64(1)).Return(storedJob(), nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job"), (*[]string)(nil)).Return(nil)

		job, err := uc.UpdateJob(ctx, testEmployer, 1, domain.JobPatch{Salary: optNull[float64]()})
		assert.NoError(t, err)
		assert.Nil(t, job.Salary)
	})

	t.Run("Should replace the requirement set when skills are supplied", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		mockRepo.On("GetByID", ctx, int64(1)).Return(storedJob(), nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job"), mock.MatchedBy(func(names *[]string) bool {
			return names != nil && len(*names) == 1 && (*names)[0] == "Go"
		})).Return(nil)

		skills := []string{" Go ", ""}
		_, err := uc.UpdateJob(ctx, testEmployer, 1, domain.JobPatch{Skills: &skills})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should leave requirements alone when skills are absent", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		mockRepo.On("GetByID", ctx, int64(1)).Return(storedJob(), nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job"), (*[]string)(nil)).Return(nil)

		active := false
		_, err := uc.UpdateJob(ctx, testEmployer, 1, domain.JobPatch{IsActive: &active})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should refuse to delete an active job", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		mockRepo.On("GetByID", ctx, int64(1)).Return(&domain.Job{ID: 1, EmployerID: "emp-1", IsActive: true}, nil)

		err := uc.DeleteJob(ctx, testEmployer, 1)
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
		assert.Contains(t, err.Error(), "Active jobs")
	})

	t.Run("Should delete an inactive job owned by the actor", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		mockRepo.On("GetByID", ctx, int64(1)).Return(&domain.Job{ID: 1, EmployerID: "emp-1", IsActive: false}, nil)
		mockRepo.On("Delete", ctx, int64(1)).Return(nil)

		assert.NoError(t, uc.DeleteJob(ctx, testEmployer, 1))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should deny non-owners before checking activity", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)
		mockRepo.On("GetByID", ctx, int64(1)).Return(&domain.Job{ID: 1, EmployerID: "emp-1", IsActive: true}, nil)

		err := uc.DeleteJob(ctx, testIntruder, 1)
		assert.Error(t, err)
		assert.Equal(t, "You are not authorized to perform this action", err.Error())
	})
}
