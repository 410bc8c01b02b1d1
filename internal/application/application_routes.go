package application

import (
	"github.com/gin-gonic/gin"

	"github.com/gabrieldacena/emprega-sapezal/internal/middleware"
	"github.com/gabrieldacena/emprega-sapezal/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	applications := r.Group("/applications")
	applications.Use(middleware.Authenticate())
	{
		applications.POST("", middleware.RequireRoles(string(user.RoleCandidato)), middleware.RateLimitByUser(1, 3), handler.Apply)
		applications.GET("/my", middleware.RequireRoles(string(user.RoleCandidato)), handler.ListMine)
		applications.GET("/job/:jobId", middleware.RequireRoles(string(user.RoleEmpresa)), handler.ListByJob)
		applications.PATCH("/:id/status", middleware.RequireRoles(string(user.RoleEmpresa)), handler.UpdateStatus)
	}
}
