package holiday

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
	holidays := r.Group("/holidays")
	holidays.Use(middleware.AuthMiddleware())
	{
		holidays.GET("", middleware.RBACAuthorize(rbacService, "holiday", "read"), h.GetAll)
		holidays.GET("/check", middleware.RBACAuthorize(rbacService, "holiday", "read"), h.Check)
		holidays.GET("/official/:year", middleware.RBACAuthorize(rbacService, "holiday", "read"), h.Official)
		holidays.GET("/:id", middleware.RBACAuthorize(rbacService, "holiday", "read"), h.GetById)
		holidays.POST("", middleware.RBACAuthorize(rbacService, "holiday", "manage"), h.Create)
		holidays.POST("/generate/:year", middleware.RBACAuthorize(rbacService, "holiday", "manage"), h.Generate)
		holidays.PUT("/:id", middleware.RBACAuthorize(rbacService, "holiday", "manage"), h.Update)
		holidays.DELETE("/:id", middleware.RBACAuthorize(rbacService, "holiday", "manage"), h.Delete)
	}
}
