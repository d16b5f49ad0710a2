// Package imagedel — gRPC-поверхность координатора удаления изображений.
// Вызов внутренний и не аутентифицируется: границей доверия служит сеть
// деплоймента, а не протокол. Известная слабость, унаследованная от
// исходной системы.
package imagedel

import (
	"ModelCatalog/internal/service"
	"ModelCatalog/proto/imagepb"
	"context"
	"errors"

	"go.uber.org/zap"
)

// Registry — путь удаления реестра изображений, в который делегирует координатор.
type Registry interface {
	DeleteByModelID(ctx context.Context, modelID string) error
}

// Server реализует единственный метод imagepb.ImageService.
// Доменные отказы кодируются в (success, message), а не в транспортную ошибку:
// повторный вызов для уже удалённой модели отвечает "not found", не падая.
type Server struct {
	imagepb.UnimplementedImageServiceServer

	registry Registry
	logger   *zap.SugaredLogger
}

// NewServer создаёт координатор поверх реестра изображений.
func NewServer(registry Registry, logger *zap.SugaredLogger) *Server {
	return &Server{registry: registry, logger: logger}
}

func (s *Server) DeleteImageByModelId(ctx context.Context, req *imagepb.DeleteImageRequest) (*imagepb.DeleteImageResponse, error) {
	modelID := req.GetModelId()

	err := s.registry.DeleteByModelID(ctx, modelID)
	switch {
	case err == nil:
		s.logger.Infow("image delete ok", "model_id", modelID)
		return &imagepb.DeleteImageResponse{Success: true, Message: "image deleted"}, nil
	case errors.Is(err, service.ErrNotFound):
		// модель без изображения — ожидаемый случай, отличаем от сбоя хранилища
		return &imagepb.DeleteImageResponse{Success: false, Message: service.MsgImageNotFound}, nil
	default:
		s.logger.Errorw("image delete failed", "model_id", modelID, "error", err)
		return &imagepb.DeleteImageResponse{Success: false, Message: err.Error()}, nil
	}
}
