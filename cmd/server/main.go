package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chessclub/backend/internal/auth"
	"chessclub/backend/internal/config"
	"chessclub/backend/internal/database"
	"chessclub/backend/internal/handler"
	"chessclub/backend/internal/logging"
	"chessclub/backend/internal/routes"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "chessclub/backend/docs" // This is important for swag to find the generated docs
)

func init() {
	config.LoadConfig()
}

// @title           Chess Club API
// @version         1.0
// @description     Members post chess games, like them, and tag them with community-voted tags.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.AppConfig
	out := logging.Setup(cfg.LogFile)

	gin.SetMode(cfg.GinMode)
	gin.DefaultWriter = out
	gin.DefaultErrorWriter = out

	database.Connect(cfg, out)

	ctx := context.Background()
	if cfg.RedisURL != "" {
		rdb, err := auth.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer rdb.Close()
		auth.Revocations = auth.NewRedisRevoker(rdb)
		log.Println("Token revocation backed by redis.")
	} else {
		log.Println("REDIS_URL not set; logout will not revoke tokens server-side.")
	}

	if err := handler.RegisterValidators(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	router := gin.Default()
	routes.RegisterRoutes(router, cfg.Origins())

	// No write timeout: game event streams stay open.
	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
	}

	go func() {
		log.Printf("Server is running on %s", cfg.ServerAddr)
		log.Printf("Swagger UI is available at http://localhost%s/swagger/index.html", cfg.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
