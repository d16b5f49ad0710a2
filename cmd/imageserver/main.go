package main

import (
	"ModelCatalog/internal/blobstore"
	"ModelCatalog/internal/config"
	"ModelCatalog/internal/handlers"
	"ModelCatalog/internal/middleware"
	"ModelCatalog/internal/repo"
	"ModelCatalog/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

// newBlobStore выбирает бэкенд блобов по конфигурации.
func newBlobStore(ctx context.Context, cfg *config.Config, db *mongo.Database) (blobstore.Store, error) {
	if cfg.StorageBackend == "s3" {
		client, err := blobstore.NewS3Client(ctx, cfg.S3AccountID, cfg.S3AccessKeyID, cfg.S3SecretAccessKey)
		if err != nil {
			return nil, err
		}
		return blobstore.NewS3(client, cfg.S3Bucket), nil
	}
	return blobstore.NewGridFS(db), nil
}

func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := repo.InitDB(ctx, cfg.MongoURI)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			sugar.Errorw("mongo disconnect failed", "error", err)
		}
	}()
	db := client.Database(cfg.DBName)

	blobs, err := newBlobStore(ctx, cfg, db)
	if err != nil {
		sugar.Fatalw("failed to initialize blob store", "error", err)
	}

	refs := repo.NewImageRefRepository(db)
	images := service.NewImageService(refs, blobs, sugar)

	h := handlers.NewImageHandler(images, sugar, cfg)

	sugar.Infow("Starting image service",
		"addr", cfg.ImageAddr,
		"db", cfg.DBName,
		"storage", cfg.StorageBackend,
	)

	srv := &http.Server{Addr: cfg.ImageAddr, Handler: h.Router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("server shutdown failed", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalw("Server failed", "error", err)
	}
	sugar.Infow("image service stopped")
}
