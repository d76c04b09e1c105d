package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	accountUC domain.AccountUsecase
	authUC    domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, accountUC domain.AccountUsecase, authUC domain.AuthUsecase) {
	handler := &AuthHandler{accountUC: accountUC, authUC: authUC}

	public.POST("/users", handler.Register)
	public.POST("/auth/login", handler.Login)
	protected.POST("/auth/logout", handler.Logout)
}

type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Role         string `json:"role" binding:"required"`
	Username     string `json:"username" binding:"omitempty,no_emoji"`
	Company      string `json:"company"`
	ResumeHandle string `json:"resume_handle"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Self-service registration. Candidates must supply a resume handle, employers a company name.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user  body      RegisterRequest  true  "Registration JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /users [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.accountUC.Register(c.Request.Context(), domain.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		Role:         domain.Role(req.Role),
		Username:     req.Username,
		Company:      req.Company,
		ResumeHandle: req.ResumeHandle,
	})
	if err != nil {
		c.Error(err)
		return
	}

	tokens, err := h.authUC.IssueTokens(user)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User created successfully", gin.H{
		"user":    user,
		"access":  tokens.Access,
		"refresh": tokens.Refresh,
	})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate an email/password pair and receive an access/refresh token pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Login JSON"
// @Success      200          {object}  response.Response
// @Failure      401          {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, tokens, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Logged in", gin.H{
		"user":    user,
		"access":  tokens.Access,
		"refresh": tokens.Refresh,
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Revoke the refresh token. Responds 205 so clients reset their view.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token  body      LogoutRequest  true  "Logout JSON"
// @Success      205    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("refresh_token is required"))
		return
	}

	if err := h.authUC.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusResetContent, "Successfully logged out", nil)
}
