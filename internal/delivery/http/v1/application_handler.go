package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	apps := protected.Group("/applications")
	{
		apps.GET("", handler.ListMine)
		apps.GET("/:id", handler.Get)
		apps.POST("", handler.Create)
		apps.PUT("/:id", handler.Update)
		apps.PATCH("/:id", handler.Update)
		apps.DELETE("/:id", handler.Delete)
	}

	// Employer view of a job's inbox.
	protected.GET("/jobs/:id/applications", handler.ListForJob)
}

type CreateApplicationRequest struct {
	JobID       int64  `json:"job_id" binding:"required"`
	CoverLetter string `json:"cover_letter"`
}

type UpdateApplicationRequest struct {
	JobID       *int64  `json:"job_id"`
	CoverLetter *string `json:"cover_letter"`
}

func applicationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return 0, false
	}
	return id, true
}

// Create godoc
// @Summary      Apply to a job
// @Description  Candidate-only. The job must be active, and a candidate may apply to a job at most once.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application  body      CreateApplicationRequest  true  "Application JSON"
// @Success      201          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      403          {object}  response.Response
// @Failure      409          {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), actorFrom(c), req.JobID, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListMine godoc
// @Summary      List own applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	apps, err := h.applicationUC.ListMine(c.Request.Context(), actorFrom(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application list", gin.H{"applications": apps, "total": len(apps)})
}

// ListForJob godoc
// @Summary      List a job's applications
// @Description  Only the employer owning the job sees its applications.
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	apps, err := h.applicationUC.ListForJob(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application list", gin.H{"applications": apps, "total": len(apps)})
}

// Get godoc
// @Summary      Get application details
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := applicationID(c)
	if !ok {
		return
	}
	app, err := h.applicationUC.GetApplication(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application details", app)
}

// Update godoc
// @Summary      Update an application
// @Description  Owner-only. The job reference is immutable after creation.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id           path      int                       true  "Application ID"
// @Param        application  body      UpdateApplicationRequest  true  "Application patch JSON"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      403          {object}  response.Response
// @Router       /applications/{id} [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) Update(c *gin.Context) {
	id, ok := applicationID(c)
	if !ok {
		return
	}

	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.UpdateApplication(c.Request.Context(), actorFrom(c), id, domain.ApplicationPatch{
		JobID:       req.JobID,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application updated", app)
}

// Delete godoc
// @Summary      Withdraw an application
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /applications/{id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := applicationID(c)
	if !ok {
		return
	}
	if err := h.applicationUC.DeleteApplication(c.Request.Context(), actorFrom(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application withdrawn", nil)
}
