package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fittracker/fitness-app/internal/api"
	"fittracker/fitness-app/internal/config"
	"fittracker/fitness-app/internal/logging"
	"fittracker/fitness-app/internal/metrics"
	"fittracker/fitness-app/internal/remote"
	"fittracker/fitness-app/internal/service"
	"fittracker/fitness-app/internal/session"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// The app gateway: one signed-in user, their exercise screen, and the
// remote API behind it.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}
	logging.Setup(cfg.Log)
	log.Infof("starting fittracker app, remote API at %s", cfg.App.RemoteURL)

	reg := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("fittracker", "app", reg)

	client, err := remote.NewClient(cfg.App, metricsManager)
	if err != nil {
		log.Fatalf("remote client: %s", err)
	}

	sess := session.New()
	authService := service.NewAuthService(client, sess)
	exerciseService := service.NewExerciseService(client, sess, metricsManager)
	videoService := service.NewVideoService(client)

	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, sess, metricsManager, reg, authService, exerciseService, videoService)

	server := &http.Server{
		Addr:         cfg.App.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.App.RemoteTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("app listening on %s", cfg.App.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down app")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	exerciseService.Deactivate()
	authService.Logout()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("shutdown: %s", err)
		os.Exit(1)
	}
	log.Info("app exited")
}
