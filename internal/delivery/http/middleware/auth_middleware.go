package middleware

import (
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token (header or cookie) into a fresh
// user record and stashes it as the request actor. The role always comes
// from storage, never from token claims.
func AuthMiddleware(authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := c.Cookie("auth_token"); err == nil && cookie != "" {
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		user, err := authUC.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			code := http.StatusUnauthorized
			if appErr, ok := err.(*apperror.AppError); ok {
				code = appErr.Code
			}
			response.Error(c, code, err.Error(), nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyActor), user)
		c.Next()
	}
}
