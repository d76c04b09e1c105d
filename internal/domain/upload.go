package domain

import (
	"context"
	"io"
)

// UploadResult is returned by the blob-store boundary: Handle is the opaque
// object key stored on entities (e.g. User.ResumeHandle), URL is a
// client-usable location.
type UploadResult struct {
	Handle string `json:"handle"`
	URL    string `json:"url"`
}

type UploadUsecase interface {
	// UploadResume stores a candidate's resume document and returns the
	// handle to place in the user's resume_handle field. A previously stored
	// resume object is cleaned up best-effort.
	UploadResume(ctx context.Context, actor *User, filename string, content []byte) (*UploadResult, error)
	// DownloadResume streams the actor's stored resume along with its
	// content type.
	DownloadResume(ctx context.Context, actor *User) (io.ReadCloser, string, error)
	// UploadLogo stores an employer's company logo (resized to a bounded
	// thumbnail) and records it on the company profile.
	UploadLogo(ctx context.Context, actor *User, filename string, content []byte) (*UploadResult, error)
}
