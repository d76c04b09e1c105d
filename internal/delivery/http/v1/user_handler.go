package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	accountUC domain.AccountUsecase
}

func NewUserHandler(protected *gin.RouterGroup, accountUC domain.AccountUsecase) {
	handler := &UserHandler{accountUC: accountUC}

	me := protected.Group("/users/me")
	{
		me.GET("", handler.Get)
		me.PATCH("", handler.Update)
		me.DELETE("", handler.Delete)
	}
}

// Get godoc
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) Get(c *gin.Context) {
	actor := actorFrom(c)
	user, err := h.accountUC.GetProfile(c.Request.Context(), actor, actor.ID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User profile", user)
}

// Update godoc
// @Summary      Update own profile
// @Description  Partial update. Absent fields stay untouched, explicit nulls clear company/resume. A role change must carry the newly required field.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        patch  body      domain.ProfilePatch  true  "Profile patch JSON"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /users/me [patch]
// @Security     BearerAuth
func (h *UserHandler) Update(c *gin.Context) {
	var patch domain.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	actor := actorFrom(c)
	user, err := h.accountUC.UpdateProfile(c.Request.Context(), actor, actor.ID, patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated", user)
}

// Delete godoc
// @Summary      Delete own account
// @Description  Deletes the account, cascading to owned jobs and applications.
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /users/me [delete]
// @Security     BearerAuth
func (h *UserHandler) Delete(c *gin.Context) {
	actor := actorFrom(c)
	if err := h.accountUC.DeleteAccount(c.Request.Context(), actor, actor.ID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Successfully deleted user", nil)
}
