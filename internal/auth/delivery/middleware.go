package delivery

import (
	"net/http"
	"strings"

	authdomain "creatortube-backend/internal/auth/domain"
	"creatortube-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		token := parts[1]
		user, err := authUsecase.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// AdminMiddleware requires AuthMiddleware to have run first.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized user"})
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied, admin only"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by AuthMiddleware, or nil.
func CurrentUser(c *gin.Context) *authdomain.User {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	user, ok := v.(*authdomain.User)
	if !ok {
		return nil
	}
	return user
}
