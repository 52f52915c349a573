package leavebalance

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
	balances := r.Group("/leave-balances")
	balances.Use(middleware.AuthMiddleware())
	{
		balances.GET("/me", middleware.RBACAuthorize(rbacService, "leave_balance", "read"), h.GetMine)
		balances.GET("", middleware.RBACAuthorize(rbacService, "leave_balance", "read_all"), h.GetAll)
		balances.GET("/:id", middleware.RBACAuthorize(rbacService, "leave_balance", "read_all"), h.GetById)
		balances.POST("", middleware.RBACAuthorize(rbacService, "leave_balance", "manage"), h.Create)
		balances.PUT("/:id", middleware.RBACAuthorize(rbacService, "leave_balance", "manage"), h.Update)
		balances.DELETE("/:id", middleware.RBACAuthorize(rbacService, "leave_balance", "manage"), h.Delete)
	}

	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("/:id/leave-balances", middleware.RBACAuthorize(rbacService, "leave_balance", "read_all"), h.GetByEmployee)
	}
}
