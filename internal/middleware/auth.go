package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	apierrors "github.com/luanvr/project-management-api/internal/errors"
	"github.com/luanvr/project-management-api/internal/models"
	"github.com/luanvr/project-management-api/internal/repository"
	"github.com/luanvr/project-management-api/internal/services"
	"gorm.io/gorm"
)

const (
	// ContextKeyUserID is the gin context key holding the authenticated user ID
	ContextKeyUserID = "user_id"
	// ContextKeyUser is the gin context key holding the authenticated user
	ContextKeyUser = "user"
	// ContextKeyToken is the gin context key holding the raw bearer token
	ContextKeyToken = "token"
)

// RequireAuth verifies the bearer token in the Authorization header, loads
// the principal and stores it in the request context. Missing, malformed,
// unsigned or revoked tokens yield 401.
func RequireAuth(tokens *services.TokenService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")

		userID, err := tokens.Verify(token)
		if err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.Unauthorized(c, "")
			} else {
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUser, *user)
		c.Set(ContextKeyToken, token)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	return id, ok
}

// GetUser retrieves the authenticated user from context
func GetUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(ContextKeyUser)
	if !exists {
		return models.User{}, false
	}

	user, ok := value.(models.User)
	return user, ok
}

// GetToken retrieves the raw bearer token from context
func GetToken(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextKeyToken)
	if !exists {
		return "", false
	}

	token, ok := value.(string)
	return token, ok
}
