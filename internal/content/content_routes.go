package content

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	contentGroup := r.Group("/content")
	{
		contentGroup.GET("/ads", handler.ListAds)
		contentGroup.GET("/news", handler.ListNews)
		contentGroup.GET("/news/headline", handler.GetHeadline)
		contentGroup.GET("/news/:id", handler.GetNews)
		contentGroup.GET("/settings", handler.GetSettings)
	}
}
