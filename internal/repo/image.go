package repo

import (
	"ModelCatalog/internal/model"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ImageRefRepository — контракт доступа к записям-ссылкам на изображения.
type ImageRefRepository interface {
	// Insert добавляет новую ссылку. Существующая ссылка для того же model_id
	// не проверяется и не удаляется.
	Insert(ctx context.Context, ref model.ImageRef) error

	// List возвращает все ссылки.
	List(ctx context.Context) ([]model.ImageRef, error)

	// GetByModelID возвращает ссылку для модели; ErrNotFound — если её нет.
	GetByModelID(ctx context.Context, modelID string) (*model.ImageRef, error)

	// DeleteByModelID удаляет ссылку для модели.
	DeleteByModelID(ctx context.Context, modelID string) error
}

type imageRefRepo struct {
	coll Collection[model.ImageRef]
}

// NewImageRefRepository создаёт mongo-реализацию репозитория ссылок.
func NewImageRefRepository(db *mongo.Database) ImageRefRepository {
	return &imageRefRepo{coll: Collection[model.ImageRef]{db.Collection("images")}}
}

func (r *imageRefRepo) Insert(ctx context.Context, ref model.ImageRef) error {
	if _, err := r.coll.InsertOne(ctx, ref); err != nil {
		return fmt.Errorf("insert image ref: %w", err)
	}
	return nil
}

func (r *imageRefRepo) List(ctx context.Context) ([]model.ImageRef, error) {
	return r.coll.FindAll(ctx, bson.M{})
}

func (r *imageRefRepo) GetByModelID(ctx context.Context, modelID string) (*model.ImageRef, error) {
	ref, exists, err := r.coll.GetExists(ctx, bson.M{"model_id": modelID})
	if err != nil {
		return nil, fmt.Errorf("find image ref: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}
	return &ref, nil
}

func (r *imageRefRepo) DeleteByModelID(ctx context.Context, modelID string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"model_id": modelID}); err != nil {
		return fmt.Errorf("delete image ref: %w", err)
	}
	return nil
}
