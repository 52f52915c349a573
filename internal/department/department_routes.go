package department

import (
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
) {
	can := func(action string) gin.HandlerFunc {
		return middleware.RBACAuthorize(rbacService, "department", action)
	}

	departments := r.Group("/departments", middleware.AuthMiddleware())

	departments.GET("", can("read"), h.GetAll)
	departments.GET("/:id", can("read"), h.GetById)

	// Every change invalidates the cached department list.
	writes := departments.Group("", middleware.RateLimitByUser(1, 5))
	writes.POST("", can("create"), h.Create)
	writes.PUT("/:id", can("update"), h.Update)
	writes.DELETE("/:id", can("delete"), h.Delete)
}
