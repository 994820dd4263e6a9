package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/careslot/clinic-scheduler/internal/cache"
	"github.com/careslot/clinic-scheduler/internal/config"
	dbpkg "github.com/careslot/clinic-scheduler/internal/db"
	"github.com/careslot/clinic-scheduler/internal/middleware"
	"github.com/careslot/clinic-scheduler/internal/routes"
	"github.com/careslot/clinic-scheduler/internal/storage"
)

func main() {

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	cch := cache.New(cfg)
	uploader := storage.NewS3Uploader(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, logger, cch, uploader)

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
