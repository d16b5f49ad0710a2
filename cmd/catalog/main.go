package main

import (
	"ModelCatalog/internal/config"
	"ModelCatalog/internal/handlers"
	"ModelCatalog/internal/imagedel"
	"ModelCatalog/internal/journal"
	"ModelCatalog/internal/middleware"
	"ModelCatalog/internal/repo"
	"ModelCatalog/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"syscall"
	"time"

	"os/signal"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
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

	j, err := journal.Open(cfg.JournalPath)
	if err != nil {
		sugar.Fatalw("failed to open delete journal", "error", err)
	}

	deleter, err := imagedel.Dial(cfg.ImageDelAddr, cfg.ImageDelTimeout)
	if err != nil {
		sugar.Fatalw("failed to dial image delete coordinator", "error", err)
	}
	defer func() {
		_ = deleter.Close()
	}()

	modelRepo := repo.NewModelRepository(db)
	catalog := service.NewCatalogService(modelRepo, deleter, j, sugar)

	// доигрываем незавершённые удаления прошлого запуска
	if err := catalog.ReplayPending(ctx); err != nil {
		sugar.Warnw("replay of pending deletes failed", "error", err)
	}

	h := handlers.NewCatalogHandler(catalog, sugar, cfg)

	sugar.Infow("Starting catalog service",
		"addr", cfg.CatalogAddr,
		"db", cfg.DBName,
		"image_del_addr", cfg.ImageDelAddr,
	)

	srv := &http.Server{Addr: cfg.CatalogAddr, Handler: h.Router}
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
	sugar.Infow("catalog service stopped")
}
