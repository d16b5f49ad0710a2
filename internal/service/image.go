package service

import (
	"ModelCatalog/internal/blobstore"
	"ModelCatalog/internal/model"
	"ModelCatalog/internal/repo"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// ImageContentType — тип содержимого, с которым отдаются изображения.
// Фиксирован: согласование типов исходная система не делала.
const ImageContentType = "image/jpeg"

// ImageService — реестр изображений: связывает model_id с блобом
// и монопольно владеет жизненным циклом блобов.
type ImageService struct {
	refs   repo.ImageRefRepository
	blobs  blobstore.Store
	logger *zap.SugaredLogger
}

// NewImageService создаёт реестр поверх репозитория ссылок и хранилища блобов.
func NewImageService(refs repo.ImageRefRepository, blobs blobstore.Store, logger *zap.SugaredLogger) *ImageService {
	return &ImageService{refs: refs, blobs: blobs, logger: logger}
}

// Upload сохраняет байты изображения и регистрирует ссылку model_id -> blob_id.
// Прежняя ссылка для того же model_id не ищется и не удаляется (поведение
// исходной системы; последняя загрузка выигрывает при чтении).
func (s *ImageService) Upload(ctx context.Context, modelID string, data io.Reader) (string, error) {
	name := modelID + ".jpg"

	blobID, err := s.blobs.Put(ctx, name, data)
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}

	ref := model.ImageRef{Name: name, BlobID: blobID, ModelID: modelID}
	if err := s.refs.Insert(ctx, ref); err != nil {
		// блоб уже сохранён и останется без ссылки; удалить его здесь нельзя
		// атомарно, поэтому только сигнализируем наверх
		return "", fmt.Errorf("register image ref: %w", err)
	}

	s.logger.Infow("image uploaded", "model_id", modelID, "blob_id", blobID)
	return blobID, nil
}

// ListRefs возвращает все зарегистрированные ссылки.
func (s *ImageService) ListRefs(ctx context.Context) ([]model.ImageRef, error) {
	return s.refs.List(ctx)
}

// Fetch возвращает байты изображения модели.
func (s *ImageService) Fetch(ctx context.Context, modelID string) ([]byte, error) {
	ref, err := s.refs.GetByModelID(ctx, modelID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup image ref: %w", err)
	}

	data, err := s.blobs.Get(ctx, ref.BlobID)
	if err != nil {
		// ссылка есть, а блоба нет — повреждённое состояние, не 404
		return nil, fmt.Errorf("read blob %s: %w", ref.BlobID, err)
	}
	return data, nil
}

// DeleteByModelID удаляет блоб и затем ссылку. Если удаление блоба не удалось,
// ссылка остаётся на месте: висячих ссылок на уже удалённые блобы не оставляем.
func (s *ImageService) DeleteByModelID(ctx context.Context, modelID string) error {
	ref, err := s.refs.GetByModelID(ctx, modelID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("lookup image ref: %w", err)
	}

	if err := s.blobs.Delete(ctx, ref.BlobID); err != nil && !errors.Is(err, blobstore.ErrNotFound) {
		return fmt.Errorf("delete blob %s: %w", ref.BlobID, err)
	}

	if err := s.refs.DeleteByModelID(ctx, modelID); err != nil {
		return fmt.Errorf("delete image ref: %w", err)
	}

	s.logger.Infow("image deleted", "model_id", modelID, "blob_id", ref.BlobID)
	return nil
}
