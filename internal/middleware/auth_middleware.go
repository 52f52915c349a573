package middleware

import (
	"strings"

	autherrors "go-leave/internal/auth/errors"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"
	"go-leave/internal/shared/token"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrMissingToken)
			return
		}

		sub, err := token.Parse(tokenString, token.TypeAccess)
		if err != nil {
			abortWith(c, err)
			return
		}

		c.Set("user_id", sub.UserID)
		c.Set("employee_id", sub.EmployeeID)
		c.Set("role", sub.Role)

		c.Next()
	}
}

func abortWith(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
	c.Abort()
}
