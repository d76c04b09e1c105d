package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyProfileHandler struct {
	profileUC domain.CompanyProfileUsecase
}

func NewCompanyProfileHandler(protected *gin.RouterGroup, profileUC domain.CompanyProfileUsecase) {
	handler := &CompanyProfileHandler{profileUC: profileUC}

	protected.GET("/company-profile", handler.Get)
	protected.PUT("/company-profile", handler.Upsert)
}

type UpsertCompanyProfileRequest struct {
	Description string `json:"description"`
	Website     string `json:"website" binding:"omitempty,url"`
}

// Get godoc
// @Summary      Get own company profile
// @Description  Returns the employer's company profile, empty if none has been saved yet.
// @Tags         company-profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /company-profile [get]
// @Security     BearerAuth
func (h *CompanyProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileUC.GetProfile(c.Request.Context(), actorFrom(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile", profile)
}

// Upsert godoc
// @Summary      Create or replace own company profile
// @Tags         company-profile
// @Accept       json
// @Produce      json
// @Param        profile  body      UpsertCompanyProfileRequest  true  "Company profile JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /company-profile [put]
// @Security     BearerAuth
func (h *CompanyProfileHandler) Upsert(c *gin.Context) {
	var req UpsertCompanyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.CompanyProfile{
		Description: req.Description,
		Website:     req.Website,
	}
	if err := h.profileUC.UpsertProfile(c.Request.Context(), actorFrom(c), profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile saved", profile)
}
