package main

import (
	"ModelCatalog/internal/blobstore"
	"ModelCatalog/internal/config"
	"ModelCatalog/internal/imagedel"
	"ModelCatalog/internal/repo"
	"ModelCatalog/internal/service"
	"ModelCatalog/proto/imagepb"
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// newBlobStore выбирает бэкенд блобов по конфигурации.
// Координатор обязан смотреть в то же хранилище, что и image-сервис.
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

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		sugar.Fatalw("failed to listen", "addr", cfg.GRPCAddr, "error", err)
	}

	grpcServer := grpc.NewServer()
	imagepb.RegisterImageServiceServer(grpcServer, imagedel.NewServer(images, sugar))

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()

	sugar.Infow("Starting image delete coordinator", "addr", cfg.GRPCAddr, "storage", cfg.StorageBackend)
	if err := grpcServer.Serve(lis); err != nil {
		sugar.Fatalw("gRPC server failed", "error", err)
	}
	sugar.Infow("image delete coordinator stopped")
}
