package title

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
	titles := r.Group("/titles")

	titles.Use(middleware.AuthMiddleware())

	{
		titles.GET("", middleware.RBACAuthorize(rbacService, "title", "read"), h.GetAll)
		titles.POST("", middleware.RBACAuthorize(rbacService, "title", "create"), h.Create)
		titles.GET("/:id", middleware.RBACAuthorize(rbacService, "title", "read"), h.GetById)
		titles.PUT("/:id", middleware.RBACAuthorize(rbacService, "title", "update"), h.Update)
		titles.DELETE("/:id", middleware.RBACAuthorize(rbacService, "title", "delete"), h.Delete)
	}
}
