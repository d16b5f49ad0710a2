package repo

import (
	"ModelCatalog/internal/model"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ModelRepository определяет контракт доступа к документам моделей для слоя сервиса.
type ModelRepository interface {
	// Insert сохраняет произвольный документ модели и возвращает присвоенный id.
	Insert(ctx context.Context, doc bson.M) (string, error)

	// List возвращает все модели каталога.
	List(ctx context.Context) ([]model.Model, error)

	// ListByCreator возвращает модели, созданные указанным субъектом.
	ListByCreator(ctx context.Context, creator string) ([]model.Model, error)

	// GetByName возвращает одну модель с данным именем. Имя не уникально:
	// при дубликатах возвращается произвольное совпадение.
	GetByName(ctx context.Context, name string) (*model.Model, error)

	// GetByID возвращает модель по id; ErrNotFound — если её нет.
	GetByID(ctx context.Context, id string) (*model.Model, error)

	// Update применяет частичное обновление ($set) и возвращает число
	// фактически изменённых документов.
	Update(ctx context.Context, id string, patch bson.M) (int64, error)

	// Delete удаляет документ модели. Возвращает число удалённых документов:
	// 0 означает, что документ уже был удалён конкурентным запросом.
	Delete(ctx context.Context, id string) (int64, error)
}

type modelRepo struct {
	coll Collection[model.Model]
}

// NewModelRepository создаёт mongo-реализацию репозитория моделей.
func NewModelRepository(db *mongo.Database) ModelRepository {
	return &modelRepo{coll: Collection[model.Model]{db.Collection("models")}}
}

func (r *modelRepo) Insert(ctx context.Context, doc bson.M) (string, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert model: %w", err)
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert model: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *modelRepo) List(ctx context.Context) ([]model.Model, error) {
	return r.coll.FindAll(ctx, bson.M{})
}

func (r *modelRepo) ListByCreator(ctx context.Context, creator string) ([]model.Model, error) {
	return r.coll.FindAll(ctx, bson.M{"created_by": creator})
}

func (r *modelRepo) GetByName(ctx context.Context, name string) (*model.Model, error) {
	m, exists, err := r.coll.GetExists(ctx, bson.M{"name": name})
	if err != nil {
		return nil, fmt.Errorf("find model by name: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (r *modelRepo) GetByID(ctx context.Context, id string) (*model.Model, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		// синтаксически невалидный id не может существовать в коллекции
		return nil, ErrNotFound
	}
	m, exists, err := r.coll.GetExists(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("find model by id: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (r *modelRepo) Update(ctx context.Context, id string, patch bson.M) (int64, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrNotFound
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": patch})
	if err != nil {
		return 0, fmt.Errorf("update model: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *modelRepo) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete model: %w", err)
	}
	return res.DeletedCount, nil
}
