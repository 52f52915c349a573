package leavetype

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
	types := r.Group("/leave-types")
	types.Use(middleware.AuthMiddleware())
	{
		types.GET("", middleware.RBACAuthorize(rbacService, "leave_type", "read"), h.GetAll)
		types.GET("/:id", middleware.RBACAuthorize(rbacService, "leave_type", "read"), h.GetById)
		types.POST("", middleware.RBACAuthorize(rbacService, "leave_type", "manage"), h.Create)
		types.PUT("/:id", middleware.RBACAuthorize(rbacService, "leave_type", "manage"), h.Update)
		types.DELETE("/:id", middleware.RBACAuthorize(rbacService, "leave_type", "manage"), h.Delete)
	}
}
