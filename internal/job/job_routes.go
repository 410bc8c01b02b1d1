package job

import (
	"github.com/gabrieldacena/emprega-sapezal/internal/middleware"
	"github.com/gabrieldacena/emprega-sapezal/internal/user"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/my", middleware.Authenticate(), middleware.RequireRoles(string(user.RoleEmpresa)), handler.ListMine)
		jobs.GET("/:id", middleware.OptionalAuth(), handler.Get)

		company := jobs.Group("")
		company.Use(middleware.Authenticate(), middleware.RequireRoles(string(user.RoleEmpresa)))
		{
			company.POST("", middleware.RateLimitByUser(0.5, 3), handler.Create)
			company.PUT("/:id", handler.Update)
			company.PATCH("/:id/status", handler.UpdateStatus)
			company.DELETE("/:id", handler.Delete)
		}
	}
}
