package api

import (
	"net/http"

	"fittracker/fitness-app/internal/metrics"
	"fittracker/fitness-app/internal/service"
	"fittracker/fitness-app/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *gin.Engine,
	sess *session.Session,
	m *metrics.Manager,
	gatherer prometheus.Gatherer,
	authService service.AuthService,
	exerciseService service.ExerciseService,
	videoService service.VideoService,
) {
	authHandler := NewAuthHandler(authService, exerciseService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	videoHandler := NewVideoHandler(videoService)

	router.Use(RequestID(), AccessLog())
	if m != nil {
		router.Use(Metrics(m))
	}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/forgot-password", authHandler.ForgotPassword)
		}
	}

	protected := apiV1.Group("")
	protected.Use(RequireSession(sess))
	{
		protected.GET("/home", authHandler.Home)

		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.POST("/reload", exerciseHandler.ReloadExercises)
			exerciseGroup.PUT("/:id", exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
		}

		protected.GET("/today", exerciseHandler.GetToday)
		protected.POST("/completions", exerciseHandler.ToggleCompletion)
		protected.GET("/progress", exerciseHandler.GetProgress)

		protected.GET("/videos", videoHandler.ListVideos)

		protected.GET("/profile", authHandler.GetProfile)
		protected.PUT("/profile", authHandler.UpdateProfile)
	}
}
