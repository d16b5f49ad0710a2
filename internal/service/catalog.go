package service

import (
	"ModelCatalog/internal/auth"
	"ModelCatalog/internal/journal"
	"ModelCatalog/internal/model"
	"ModelCatalog/internal/repo"
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

// ImageDeleter — клиентская сторона координатора удаления изображений.
// Возвращает (success, message) удалённого вызова; err — только для
// транспортных проблем (недоступность, дедлайн), которые блокируют удаление.
type ImageDeleter interface {
	DeleteImageByModelID(ctx context.Context, modelID string) (bool, string, error)
}

// CatalogService владеет документами моделей и инициирует межсервисное удаление.
type CatalogService struct {
	models  repo.ModelRepository
	deleter ImageDeleter
	journal journal.Journal
	logger  *zap.SugaredLogger
}

// NewCatalogService собирает сервис каталога.
func NewCatalogService(models repo.ModelRepository, deleter ImageDeleter, j journal.Journal, logger *zap.SugaredLogger) *CatalogService {
	return &CatalogService{models: models, deleter: deleter, journal: j, logger: logger}
}

// Create сохраняет документ модели. created_by всегда ставится из субъекта;
// одноимённое поле из тела запроса затирается, а не доверяется.
// Дубликаты имён допустимы по построению.
func (s *CatalogService) Create(ctx context.Context, doc map[string]any, sub *auth.Subject) (string, error) {
	if sub == nil || sub.Name == "" {
		return "", ErrUnauthenticated
	}

	clean := make(bson.M, len(doc)+1)
	for k, v := range doc {
		clean[k] = v
	}
	// служебные поля хранилища клиент задавать не может
	delete(clean, "_id")
	delete(clean, "model_id")
	clean["created_by"] = sub.Name

	id, err := s.models.Insert(ctx, clean)
	if err != nil {
		return "", err
	}
	s.logger.Infow("model created", "model_id", id, "created_by", sub.Name)
	return id, nil
}

// List возвращает все модели. Чтение не требует аутентификации.
func (s *CatalogService) List(ctx context.Context) ([]model.Model, error) {
	return s.models.List(ctx)
}

// ListByCreator возвращает модели указанного создателя.
func (s *CatalogService) ListByCreator(ctx context.Context, creator string) ([]model.Model, error) {
	return s.models.ListByCreator(ctx, creator)
}

// GetByName возвращает модель по имени. Имя не уникально: при дубликатах
// возвращается произвольный экземпляр — вызывающим рекомендуются id-операции.
func (s *CatalogService) GetByName(ctx context.Context, name string) (*model.Model, error) {
	m, err := s.models.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// GetByID возвращает модель по идентификатору.
func (s *CatalogService) GetByID(ctx context.Context, id string) (*model.Model, error) {
	m, err := s.models.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// UpdateByName обновляет модель, найденную по имени (произвольное совпадение).
func (s *CatalogService) UpdateByName(ctx context.Context, name string, patch map[string]any, sub *auth.Subject) error {
	m, err := s.GetByName(ctx, name)
	if err != nil {
		return err
	}
	return s.update(ctx, m, patch, sub)
}

// UpdateByID обновляет модель по идентификатору.
func (s *CatalogService) UpdateByID(ctx context.Context, id string, patch map[string]any, sub *auth.Subject) error {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.update(ctx, m, patch, sub)
}

func (s *CatalogService) update(ctx context.Context, m *model.Model, patch map[string]any, sub *auth.Subject) error {
	if !s.isOwner(m, sub) {
		return ErrUnauthorized
	}

	clean := make(bson.M, len(patch))
	for k, v := range patch {
		clean[k] = v
	}
	// неизменяемые поля не патчатся
	delete(clean, "_id")
	delete(clean, "model_id")
	delete(clean, "created_by")
	if len(clean) == 0 {
		return ErrNoChange
	}

	modified, err := s.models.Update(ctx, m.ID.Hex(), clean)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if modified == 0 {
		// неотличимо от "патч равен текущему состоянию" — наружу как ошибка
		return ErrNoChange
	}
	s.logger.Infow("model updated", "model_id", m.ID.Hex(), "by", sub.Name)
	return nil
}

// Delete удаляет модель и её изображение: сперва удалённый вызов координатора,
// и только после его успеха — документ модели. Отказ координатора с причиной,
// отличной от "not found", блокирует удаление целиком.
func (s *CatalogService) Delete(ctx context.Context, id string, sub *auth.Subject) error {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.isOwner(m, sub) {
		return ErrUnauthorized
	}

	intentID, err := s.journal.Begin(ctx, id)
	if err != nil {
		return fmt.Errorf("record delete intent: %w", err)
	}

	ok, msg, err := s.deleter.DeleteImageByModelID(ctx, id)
	if err != nil {
		// координатор недоступен: удаление прервано, намерение снимается,
		// состояние каталога не трогаем
		_ = s.journal.Resolve(ctx, intentID)
		return fmt.Errorf("image delete coordinator: %w", err)
	}
	if !ok && msg != MsgImageNotFound {
		// единственная не блокирующая причина — отсутствие изображения
		_ = s.journal.Resolve(ctx, intentID)
		return fmt.Errorf("%w: %s", ErrImageDelete, msg)
	}
	if err := s.journal.MarkImageDone(ctx, intentID); err != nil {
		s.logger.Warnw("journal mark failed", "intent", intentID, "error", err)
	}

	deleted, err := s.models.Delete(ctx, id)
	if err != nil {
		// изображение уже удалено, документ — нет: окно несогласованности,
		// намерение остаётся в журнале и будет доиграно на старте
		return fmt.Errorf("delete model document: %w", err)
	}
	if deleted == 0 {
		// конкурирующее удаление успело раньше — безобидная гонка
		s.logger.Infow("model already deleted", "model_id", id)
	}

	if err := s.journal.Resolve(ctx, intentID); err != nil {
		s.logger.Warnw("journal resolve failed", "intent", intentID, "error", err)
	}
	s.logger.Infow("model deleted", "model_id", id, "by", sub.Name)
	return nil
}

// ReplayPending доигрывает незавершённые удаления после рестарта.
// Намерения без подтверждённого удаления изображения снимаются: удаление
// не было подтверждено вызывающему и не должно происходить задним числом.
func (s *CatalogService) ReplayPending(ctx context.Context) error {
	intents, err := s.journal.Pending(ctx)
	if err != nil {
		return err
	}
	for _, intent := range intents {
		if !intent.ImageDone {
			_ = s.journal.Resolve(ctx, intent.ID)
			continue
		}
		if _, err := s.models.Delete(ctx, intent.ModelID); err != nil {
			s.logger.Errorw("replay: delete model failed", "model_id", intent.ModelID, "error", err)
			continue // намерение остаётся до следующего рестарта
		}
		_ = s.journal.Resolve(ctx, intent.ID)
		s.logger.Infow("replay: finished pending delete", "model_id", intent.ModelID)
	}
	return nil
}

// isOwner — детерминированный предикат владения: точное строковое равенство
// model.created_by и имени субъекта. Любой сбой разрешения — "не владелец".
// Сравнение по имени (а не по стабильному id) унаследовано от исходной
// системы и хрупко к переименованиям.
func (s *CatalogService) isOwner(m *model.Model, sub *auth.Subject) bool {
	if m == nil || sub == nil || sub.Name == "" {
		return false
	}
	return m.CreatedBy == sub.Name
}
