package usecase

import (
	"context"
	"io"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/policy"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/upload"

	"github.com/google/uuid"
)

// BlobStore is the opaque storage collaborator consumed by uploads;
// satisfied by pkg/blobstore.Client.
type BlobStore interface {
	Put(ctx context.Context, key string, payload []byte, contentType string) (string, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

type uploadUsecase struct {
	blobs       BlobStore
	profileRepo domain.CompanyProfileRepository
}

func NewUploadUsecase(blobs BlobStore, profileRepo domain.CompanyProfileRepository) domain.UploadUsecase {
	return &uploadUsecase{blobs: blobs, profileRepo: profileRepo}
}

// UploadResume validates and stores a candidate's resume document, returning
// the opaque handle to place in the user's resume_handle field.
func (u *uploadUsecase) UploadResume(ctx context.Context, actor *domain.User, filename string, content []byte) (*domain.UploadResult, error) {
	if d := policy.CanUploadResume(actor); !d.Allowed {
		return nil, d.Err()
	}

	ext, contentType, verr := upload.ValidateDocument(filename, content)
	if verr != nil {
		return nil, verr
	}

	key := "resumes/" + uuid.NewString() + ext
	handle, err := u.blobs.Put(ctx, key, content, contentType)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Best-effort cleanup of the superseded object; the new handle replaces
	// it on the profile.
	if actor.ResumeHandle != nil && strings.HasPrefix(*actor.ResumeHandle, "resumes/") && *actor.ResumeHandle != handle {
		_ = u.blobs.Delete(ctx, *actor.ResumeHandle)
	}

	return &domain.UploadResult{Handle: handle, URL: u.blobs.URL(handle)}, nil
}

// DownloadResume streams the actor's stored resume document.
func (u *uploadUsecase) DownloadResume(ctx context.Context, actor *domain.User) (io.ReadCloser, string, error) {
	if d := policy.CanUploadResume(actor); !d.Allowed {
		return nil, "", d.Err()
	}
	if actor.ResumeHandle == nil || *actor.ResumeHandle == "" {
		return nil, "", apperror.NotFound("No resume on file")
	}

	reader, err := u.blobs.Get(ctx, *actor.ResumeHandle)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return reader, upload.DocumentContentType(*actor.ResumeHandle), nil
}

// UploadLogo validates, normalizes and stores an employer's company logo,
// recording its URL on the company profile.
func (u *uploadUsecase) UploadLogo(ctx context.Context, actor *domain.User, filename string, content []byte) (*domain.UploadResult, error) {
	if d := policy.CanManageCompanyProfile(actor); !d.Allowed {
		return nil, d.Err()
	}

	if _, _, verr := upload.ValidateImage(filename, content); verr != nil {
		return nil, verr
	}
	normalized, verr := upload.NormalizeLogo(content)
	if verr != nil {
		return nil, verr
	}

	key := "logos/" + uuid.NewString() + ".png"
	handle, err := u.blobs.Put(ctx, key, normalized, "image/png")
	if err != nil {
		return nil, apperror.Internal(err)
	}

	url := u.blobs.URL(handle)
	if err := u.profileRepo.SetLogoURL(ctx, actor.ID, url); err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.UploadResult{Handle: handle, URL: url}, nil
}
