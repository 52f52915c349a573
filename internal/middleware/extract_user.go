package middleware

import (
	"net/http"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExtractUserID copies the authenticated user id into user_id_validated after
// checking it is an employee uuid. It must run after AuthMiddleware.
func ExtractUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "User is not authenticated", nil)
			c.Abort()
			return
		}

		if _, err := uuid.Parse(userID); err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_USER_ID", "Malformed user id in token", nil)
			c.Abort()
			return
		}

		c.Set("user_id_validated", userID)
		c.Next()
	}
}
