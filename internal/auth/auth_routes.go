package auth

import (
	"github.com/gabrieldacena/emprega-sapezal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/register/candidato", middleware.RateLimitByIP(0.1, 3), handler.RegisterCandidate)
		auth.POST("/register/empresa", middleware.RateLimitByIP(0.1, 3), handler.RegisterCompany)
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", middleware.Authenticate(), handler.Me)
	}
}
