package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"initiative-discovery-backend/internal/delivery/http/response"
	"initiative-discovery-backend/internal/domain"
	"initiative-discovery-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and loads the user's
// current role from the database. The role claim inside the token is
// ignored for authorization so a role change takes effect on the next
// request, not the next login.
func AuthMiddleware(tokens *token.Manager, userRepo domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		user, err := userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), strconv.FormatInt(user.ID, 10))
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}

// CurrentUserID reads the authenticated user's ID set by
// AuthMiddleware; zero means unauthenticated.
func CurrentUserID(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.GetString(string(domain.KeyUserID)), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
