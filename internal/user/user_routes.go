package user

import (
	"github.com/gabrieldacena/emprega-sapezal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	users := r.Group("/users")
	users.Use(middleware.Authenticate())
	{
		users.GET("/profile", handler.GetProfile)
		users.PUT("/profile", middleware.RateLimitByUser(1, 3), handler.UpdateProfile)
	}
}
