package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/DojoGymServices/gym-manager/internal/config"
	dbpkg "github.com/DojoGymServices/gym-manager/internal/db"
	"github.com/DojoGymServices/gym-manager/internal/middleware"
	"github.com/DojoGymServices/gym-manager/internal/routes"
	"github.com/DojoGymServices/gym-manager/internal/session"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	sessions := session.NewRedisStore(rdb, cfg.SessionTTL)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SessionMiddleware(sessions))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, sessions)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
