package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/gabrieldacena/emprega-sapezal/internal/admin"
	"github.com/gabrieldacena/emprega-sapezal/internal/application"
	"github.com/gabrieldacena/emprega-sapezal/internal/auth"
	"github.com/gabrieldacena/emprega-sapezal/internal/content"
	"github.com/gabrieldacena/emprega-sapezal/internal/job"
	"github.com/gabrieldacena/emprega-sapezal/internal/notification"
	"github.com/gabrieldacena/emprega-sapezal/internal/rental"
	"github.com/gabrieldacena/emprega-sapezal/internal/shared/storage"
	"github.com/gabrieldacena/emprega-sapezal/internal/user"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	uploader storage.ImageUploader,
) error {
	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	jobRepo := job.NewRepository(gormDB)
	rentalRepo := rental.NewRepository(gormDB)
	applicationRepo := application.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	contentRepo := content.NewRepository(gormDB)
	adminRepo := admin.NewRepository(gormDB)
	summaryRepo := admin.NewSummaryRepository(db)

	// --- Services ---
	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo)
	jobService := job.NewService(jobRepo, userRepo)
	rentalService := rental.NewService(rentalRepo, userRepo)
	applicationService := application.NewService(applicationRepo, jobRepo, userRepo)
	notificationService := notification.NewService(notificationRepo)
	contentService := content.NewService(contentRepo, rdb)
	adminService := admin.NewService(adminRepo, summaryRepo, jobRepo, rentalRepo, contentRepo, contentService)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	jobHandler := job.NewHandler(jobService)
	rentalHandler := rental.NewHandler(rentalService, rdb)
	applicationHandler := application.NewHandler(applicationService)
	notificationHandler := notification.NewHandler(notificationService)
	contentHandler := content.NewHandler(contentService)
	adminHandler := admin.NewHandler(adminService)

	var uploadHandler *admin.UploadHandler
	if uploader != nil {
		uploadHandler = admin.NewUploadHandler(uploader)
	}

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)
		user.RegisterRoutes(api, userHandler)
		job.RegisterRoutes(api, jobHandler)
		rental.RegisterRoutes(api, rentalHandler, rdb)
		application.RegisterRoutes(api, applicationHandler)
		notification.RegisterRoutes(api, notificationHandler)
		content.RegisterRoutes(api, contentHandler)
		admin.RegisterRoutes(api, adminHandler, uploadHandler)
	}

	return nil
}
