package routes

import (
	"net/http"
	"time"

	"chessclub/backend/internal/auth"
	"chessclub/backend/internal/handler"
	"chessclub/backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes wires every endpoint onto r.
func RegisterRoutes(r *gin.Engine, allowedOrigins []string) {
	r.Use(middleware.RequestID(), middleware.Metrics(), corsMiddleware(allowedOrigins))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	apiV1 := r.Group("/api/v1")
	{
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
			authRoutes.POST("/logout", auth.AuthMiddleware(), handler.LogoutUser)
		}

		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("", handler.SearchUsers) // Must be before /:id
			userRoutes.GET("/me", handler.GetMe)
			userRoutes.GET("/:id", handler.GetUserByID)
			userRoutes.POST("/add_like/:gameId", handler.AddLike)
			userRoutes.POST("/delete_like/:gameId", handler.DeleteLike)
		}

		gameRoutes := apiV1.Group("/games")
		gameRoutes.Use(auth.AuthMiddleware())
		{
			gameRoutes.GET("", handler.GetGames)
			gameRoutes.POST("/new", handler.CreateGame)
			gameRoutes.GET("/user/:userId", handler.GetUserGames)
			gameRoutes.GET("/search_by_tag", handler.SearchGamesByTag)

			game := gameRoutes.Group("/game/:gameId")
			{
				game.GET("", handler.GetGameByID)
				game.POST("/delete", handler.DeleteGame)
				game.POST("/like", handler.ToggleLike)
				game.POST("/tag", handler.VoteTag)
				game.POST("/tag/:tagId", handler.VoteTagByPath)
				game.GET("/events", handler.StreamGameEvents)
			}
		}

		apiV1.GET("/tags", auth.OptionalAuthMiddleware(), handler.GetTags)

		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			tags := adminRoutes.Group("/tags")
			{
				tags.POST("", handler.CreateTag)
				tags.GET("", handler.GetTags)
				tags.PUT("/:id", handler.UpdateTag)
				tags.DELETE("/:id", handler.DeleteTag)
			}
		}
	}
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cors.New(cfg)
}
