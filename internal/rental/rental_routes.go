package rental

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/gabrieldacena/emprega-sapezal/internal/middleware"
	"github.com/gabrieldacena/emprega-sapezal/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	rentals := r.Group("/rentals")
	{
		rentals.GET("", handler.List)
		rentals.GET("/my", middleware.Authenticate(), middleware.RequireRoles(string(user.RoleEmpresa)), handler.ListMine)
		rentals.GET("/:id", middleware.OptionalAuth(), handler.Get)

		contact := []gin.HandlerFunc{middleware.RateLimitByIP(0.2, 5)}
		if rdb != nil {
			contact = append(contact, middleware.Idempotency(rdb, 24*time.Hour))
		}
		rentals.POST("/:id/contact", append(contact, handler.SendContact)...)

		company := rentals.Group("")
		company.Use(middleware.Authenticate(), middleware.RequireRoles(string(user.RoleEmpresa)))
		{
			company.POST("", middleware.RateLimitByUser(0.5, 3), handler.Create)
			company.PUT("/:id", handler.Update)
			company.PATCH("/:id/status", handler.UpdateStatus)
			company.DELETE("/:id", handler.Delete)
		}
	}
}
