package notification

import (
	"github.com/gin-gonic/gin"

	"github.com/gabrieldacena/emprega-sapezal/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	notifications := r.Group("/users/notifications")
	notifications.Use(middleware.Authenticate())
	{
		notifications.GET("", handler.ListMine)
		notifications.PATCH("/:id/read", handler.MarkRead)
	}
}
