package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ErrNotFound — документ отсутствует. Нормальный (не исключительный) исход поиска,
// хендлеры отображают его в 404, в отличие от ошибок хранилища.
var ErrNotFound = errors.New("not found")

// InitDB устанавливает и проверяет единственное долгоживущее подключение к MongoDB.
// Клиент создаётся на старте процесса, передаётся репозиториям явно
// и закрывается через Disconnect при остановке сервиса.
func InitDB(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}
