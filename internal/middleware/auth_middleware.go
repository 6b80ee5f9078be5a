package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/placementcell/internal/app/models/dto"
	"github.com/campushq/placementcell/internal/pkg/auth"
)

// Context keys set after successful authentication
const (
	ContextAdminIDKey    = "adminId"
	ContextAdminEmailKey = "adminEmail"
)

// AuthMiddleware guards routes behind JWT authentication
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth validates the Authorization header and loads admin identity
// into the request context. A missing header gets its own message; every
// other failure collapses into the same 401 so callers learn nothing
// about why a token was rejected.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Access denied. No token provided.")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortInvalidToken(c)
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			abortInvalidToken(c)
			return
		}

		c.Set(ContextAdminIDKey, claims.AdminID)
		c.Set(ContextAdminEmailKey, claims.Email)
		c.Next()
	}
}

func abortInvalidToken(c *gin.Context) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid or expired token.")
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}
