package api

import (
	"errors"
	"net/http"

	"fittracker/fitness-app/internal/remote"
	"fittracker/fitness-app/internal/service"
	"fittracker/fitness-app/internal/session"
	"fittracker/fitness-app/internal/tracker"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// respondError maps service, session and remote failures to HTTP statuses.
func respondError(c *gin.Context, err error) {
	var (
		ve *service.ValidationError
		re *remote.RemoteError
	)
	switch {
	case errors.As(err, &ve):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "field": ve.Field})
	case errors.Is(err, session.ErrNoSession):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrNoIdentity):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotAvailable):
		abortWithError(c, http.StatusNotImplemented, err.Error())
	case errors.Is(err, tracker.ErrNotReady):
		abortWithError(c, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &re):
		msg := re.Message
		if msg == "" {
			msg = re.Error()
		}
		abortWithError(c, remoteStatus(re), msg)
	default:
		log.Errorf("api: request %s failed: %s", c.GetString(ContextRequestIDKey), err)
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

func remoteStatus(re *remote.RemoteError) int {
	switch re.StatusCode {
	case http.StatusUnauthorized, http.StatusNotFound, http.StatusConflict:
		return re.StatusCode
	default:
		return http.StatusBadGateway
	}
}
