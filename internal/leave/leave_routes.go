package leave

import (
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	leaves := r.Group("/leave-requests")
	leaves.Use(middleware.AuthMiddleware(), middleware.ExtractUserID(), middleware.ContextLogger(zap.L().Named("http.leave")))
	{
		leaves.GET("", middleware.RBACAuthorize(rbacService, "leave_request", "read_all"), handler.GetAll)
		leaves.GET("/me", middleware.RBACAuthorize(rbacService, "leave_request", "read"), handler.GetMine)
		leaves.GET("/pending/department", middleware.RBACAuthorize(rbacService, "leave_request", "approve"), handler.GetPendingForDepartment)
		leaves.GET("/pending/hr", middleware.RBACAuthorize(rbacService, "leave_request", "approve"), handler.GetPendingForHR)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, "leave_request", "read"), handler.GetById)
		leaves.GET("/:id/document", middleware.RBACAuthorize(rbacService, "leave_request", "read"), handler.Document)
		if redisClient != nil {
			leaves.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "leave_request", "create"),
				handler.Create,
			)
		} else {
			leaves.POST("", middleware.RBACAuthorize(rbacService, "leave_request", "create"), handler.Create)
		}
		leaves.PUT("/:id/status", middleware.RBACAuthorize(rbacService, "leave_request", "approve"), handler.UpdateStatus)
		leaves.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, "leave_request", "create"), handler.Cancel)
		leaves.DELETE("/:id", middleware.RBACAuthorize(rbacService, "leave_request", "delete"), handler.Delete)
	}
}
