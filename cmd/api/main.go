package main

import (
	"context"
	"log"
	"net/http"

	"github.com/BruksfildServices01/barber-rewards/internal/cache"
	"github.com/BruksfildServices01/barber-rewards/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-rewards/internal/db"
	"github.com/BruksfildServices01/barber-rewards/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	redisCache := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Printf("redis unavailable, catalog cache disabled: %v", err)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, redisCache, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
