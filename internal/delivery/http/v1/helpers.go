package v1

import (
	"io"
	"mime/multipart"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

// actorFrom returns the authenticated user placed in the context by the auth
// middleware, or nil on unauthenticated routes.
func actorFrom(c *gin.Context) *domain.User {
	value, ok := c.Get(string(domain.KeyActor))
	if !ok {
		return nil
	}
	actor, _ := value.(*domain.User)
	return actor
}

// readUpload reads a multipart file into memory, bounded by the upload size
// limit.
func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(io.LimitReader(file, upload.MaxUploadSize+1))
}
