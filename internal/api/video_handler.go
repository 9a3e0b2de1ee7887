package api

import (
	"net/http"

	"fittracker/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoService service.VideoService
}

func NewVideoHandler(videoService service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// GET /api/v1/videos
func (h *VideoHandler) ListVideos(c *gin.Context) {
	videos, err := h.videoService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}
