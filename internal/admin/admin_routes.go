package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/gabrieldacena/emprega-sapezal/internal/middleware"
	"github.com/gabrieldacena/emprega-sapezal/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, uploadHandler *UploadHandler) {
	admin := r.Group("/admin")
	admin.Use(middleware.Authenticate(), middleware.RequireRoles(string(user.RoleAdmin)))
	{
		admin.GET("/summary", handler.Summary)
		admin.GET("/dashboard", handler.Dashboard)
		admin.GET("/activity", handler.Activity)

		admin.GET("/users", handler.ListUsers)
		admin.PATCH("/users/:id/toggle", handler.ToggleUser)
		admin.DELETE("/users/:id", handler.DeleteUser)

		admin.GET("/jobs", handler.ListJobs)
		admin.PATCH("/jobs/:id", handler.ModerateJob)
		admin.DELETE("/jobs/:id", handler.DeleteJob)

		admin.GET("/rentals", handler.ListRentals)
		admin.PATCH("/rentals/:id", handler.ModerateRental)
		admin.DELETE("/rentals/:id", handler.DeleteRental)

		admin.GET("/applications", handler.ListApplications)

		admin.GET("/messages", handler.ListMessages)
		admin.DELETE("/messages/:id", handler.DeleteMessage)

		admin.GET("/ads", handler.ListAds)
		admin.POST("/ads", handler.CreateAd)
		admin.PATCH("/ads/:id", handler.UpdateAd)
		admin.DELETE("/ads/:id", handler.DeleteAd)

		admin.GET("/news", handler.ListNews)
		admin.POST("/news", handler.CreateNews)
		admin.PATCH("/news/:id", handler.UpdateNews)
		admin.PATCH("/news/:id/headline", handler.SetHeadline)
		admin.DELETE("/news/:id", handler.DeleteNews)

		admin.GET("/settings", handler.GetSettings)
		admin.PUT("/settings", handler.UpdateSettings)
		admin.DELETE("/settings/:chave", handler.DeleteSetting)

		if uploadHandler != nil {
			admin.POST("/upload", uploadHandler.Upload)
		}
	}
}
