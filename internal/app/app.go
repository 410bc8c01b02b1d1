package app

import (
	"net/http"
	"os"
	"strings"
	"time"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gabrieldacena/emprega-sapezal/internal/middleware"
	"github.com/gabrieldacena/emprega-sapezal/internal/shared/connection"
	"github.com/gabrieldacena/emprega-sapezal/internal/shared/response"
	"github.com/gabrieldacena/emprega-sapezal/internal/shared/storage"
)

// BuildApp connects the infrastructure and registers every module under /api.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		logger.Warn("redis unavailable, caching and idempotency disabled", zap.Error(err))
		rdb = nil
	} else {
		logger.Info("redis connection established")
	}

	var uploader storage.ImageUploader
	if url := os.Getenv("CLOUDINARY_URL"); url != "" {
		cloud, err := cld.NewFromURL(url)
		if err != nil {
			return err
		}
		uploader = storage.NewCloudinaryUploader(cloud)
	} else {
		logger.Warn("CLOUDINARY_URL not set, image upload disabled")
	}

	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(cors.New(corsConfig()))

	router.GET("/api/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Rota não encontrada.", nil)
	})

	return registerModules(router, sqlDB, gormDB, rdb, uploader)
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if origins := os.Getenv("FRONTEND_URL"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowOrigins = []string{"http://localhost:5173"}
	}
	cfg.AllowCredentials = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Request-ID", "Idempotency-Key")
	return cfg
}
