package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadUC domain.UploadUsecase
}

func NewUploadHandler(protected *gin.RouterGroup, uploadUC domain.UploadUsecase) {
	handler := &UploadHandler{uploadUC: uploadUC}

	uploads := protected.Group("/uploads")
	{
		uploads.POST("/resume", handler.Resume)
		uploads.GET("/resume", handler.DownloadResume)
		uploads.POST("/logo", handler.Logo)
	}
}

// Resume godoc
// @Summary      Upload a resume
// @Description  Candidate-only. Accepts PDF, DOC, DOCX or TXT up to 10 MB and returns the handle to set as resume_handle.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Resume file"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /uploads/resume [post]
// @Security     BearerAuth
func (h *UploadHandler) Resume(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("file is required"))
		return
	}

	content, err := readUpload(fileHeader)
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded file"))
		return
	}

	result, err := h.uploadUC.UploadResume(c.Request.Context(), actorFrom(c), fileHeader.Filename, content)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Resume uploaded", result)
}

// DownloadResume godoc
// @Summary      Download own resume
// @Description  Candidate-only. Streams the stored resume document.
// @Tags         uploads
// @Produce      application/octet-stream
// @Success      200  {file}    file
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /uploads/resume [get]
// @Security     BearerAuth
func (h *UploadHandler) DownloadResume(c *gin.Context) {
	reader, contentType, err := h.uploadUC.DownloadResume(c.Request.Context(), actorFrom(c))
	if err != nil {
		c.Error(err)
		return
	}
	defer reader.Close()
	c.DataFromReader(http.StatusOK, -1, contentType, reader, nil)
}

// Logo godoc
// @Summary      Upload a company logo
// @Description  Employer-only. Accepts PNG, JPEG, GIF or WebP; the image is resized and stored on the company profile.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Logo image"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /uploads/logo [post]
// @Security     BearerAuth
func (h *UploadHandler) Logo(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("file is required"))
		return
	}

	content, err := readUpload(fileHeader)
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded file"))
		return
	}

	result, err := h.uploadUC.UploadLogo(c.Request.Context(), actorFrom(c), fileHeader.Filename, content)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Logo uploaded", result)
}
