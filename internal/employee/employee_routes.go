package employee

import (
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	can := func(action string) gin.HandlerFunc {
		return middleware.RBACAuthorize(rbacService, "employee", action)
	}

	// Limits are per user and shared by every route in a bucket.
	browse := middleware.RateLimitByUser(3, 10)
	lookup := middleware.RateLimitByUser(5, 20)
	write := middleware.RateLimitByUser(0.5, 2)

	employees := r.Group("/employees",
		middleware.AuthMiddleware(),
		middleware.ContextLogger(logger),
	)

	employees.GET("", browse, can("read"), handler.GetAll)
	employees.GET("/options", lookup, can("read"), handler.GetOptions)
	employees.GET("/:id", browse, can("read"), handler.GetById)

	employees.POST("", write, can("create"), handler.Create)
	employees.PUT("/:id", write, can("update"), handler.Update)
	employees.DELETE("/:id", middleware.RateLimitByUser(0.05, 1), can("delete"), handler.Delete)
}
