package api

import (
	"net/http"
	"strconv"
	"time"

	"fittracker/fitness-app/internal/metrics"
	"fittracker/fitness-app/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	HeaderRequestID     = "X-Request-ID"
	ContextRequestIDKey = "requestID"
)

// RequestID tags every request with an id, reusing the caller's when given.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// Metrics records request counts and durations.
func Metrics(m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.GaugeRequests.Inc()
		defer m.GaugeRequests.Dec()

		c.Next()

		m.CounterRequests.WithLabelValues(c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.HistRequestDuration.Observe(time.Since(start).Seconds())
	}
}

// AccessLog writes one line per request.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"request_id": c.GetString(ContextRequestIDKey),
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		}).Debug("request served")
	}
}

// RequireSession rejects requests made before login.
func RequireSession(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sess.Authenticated() {
			abortWithError(c, http.StatusUnauthorized, "Not signed in")
			return
		}
		c.Next()
	}
}

func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
