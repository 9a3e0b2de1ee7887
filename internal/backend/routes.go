package backend

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts the remote API at the root, where the app expects it.
func SetupRoutes(router *gin.Engine, h *Handler, auth AuthService) {
	authMiddleware := AuthMiddleware(auth)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.POST("/userauth", h.Login)
	router.POST("/user", h.Register)
	router.PUT("/user/:id", authMiddleware, h.UpdateUser)

	exercises := router.Group("/exercicios")
	{
		exercises.GET("", h.ListExercises)
		exercises.POST("", h.CreateExercise)
		exercises.PUT("/:id", h.UpdateExercise)
		exercises.DELETE("/:id", h.DeleteExercise)
	}

	videos := router.Group("/videos")
	{
		videos.GET("", h.ListVideos)
		videos.POST("", authMiddleware, h.AddVideo)
		videos.POST("/upload-url", authMiddleware, h.UploadURL)
		videos.DELETE("/:id", authMiddleware, h.DeleteVideo)
	}
}
