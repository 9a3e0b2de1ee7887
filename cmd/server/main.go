package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fittracker/fitness-app/internal/backend"
	"fittracker/fitness-app/internal/config"
	"fittracker/fitness-app/internal/logging"
	"fittracker/fitness-app/internal/repository/mongo"
	"fittracker/fitness-app/internal/storage"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// The reference backend: the remote API the app gateway talks to.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}
	logging.Setup(cfg.Log)
	log.Info("starting fittracker backend")

	if cfg.JWT.Secret == "" {
		log.Fatal("jwt.secret (JWT_SECRET) must be set")
	}

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(context.Background(), cfg.Database.URI)
	if err != nil {
		log.Fatalf("could not connect to MongoDB: %s", err)
	}
	appDB := dbClient.Database(cfg.Database.Name)
	log.Infof("connected to database %q", cfg.Database.Name)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), time.Minute)
	if err := mongo.EnsureIndexes(indexCtx, appDB); err != nil {
		log.Warnf("ensure indexes: %s", err)
	}
	cancelIndexes()

	// --- Storage ---
	var fileStorage storage.FileStorage
	if cfg.S3.Enabled() {
		fileStorage, err = storage.NewS3Storage(context.Background(), cfg.S3)
		if err != nil {
			log.Fatalf("failed to initialize S3 storage: %s", err)
		}
	} else {
		log.Warn("s3.bucket_name not set, video uploads are disabled")
	}

	// --- Repositories & Services ---
	accountRepo := mongo.NewMongoAccountRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	videoRepo := mongo.NewMongoVideoRepository(appDB)

	authService := backend.NewAuthService(accountRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	handler := backend.NewHandler(
		authService,
		backend.NewExerciseService(exerciseRepo, accountRepo),
		backend.NewVideoService(videoRepo, fileStorage),
	)

	router := gin.New()
	router.Use(gin.Recovery())
	backend.SetupRoutes(router, handler, authService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("backend listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down backend")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	err = multierr.Combine(
		server.Shutdown(ctxShutdown),
		mongo.DisconnectDB(dbClient),
	)
	if err != nil {
		log.Errorf("shutdown: %s", err)
		os.Exit(1)
	}
	log.Info("backend exited")
}
