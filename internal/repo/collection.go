package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Collection — типизированная обёртка над mongo.Collection.
type Collection[T any] struct {
	*mongo.Collection
}

// GetExists ищет один документ по фильтру. Отсутствие документа — не ошибка:
// возвращается (zero, false, nil).
func (c *Collection[T]) GetExists(ctx context.Context, filter any) (out T, exists bool, err error) {
	result := c.FindOne(ctx, filter)
	if err = result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return out, false, nil
		}
		return out, false, err
	}
	if err = result.Decode(&out); err != nil {
		return out, false, err
	}
	return out, true, nil
}

// FindAll возвращает все документы по фильтру.
func (c *Collection[T]) FindAll(ctx context.Context, filter any) ([]T, error) {
	cursor, err := c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
