package imagedel

import (
	"ModelCatalog/internal/service"
	"ModelCatalog/proto/imagepb"
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCDeleter — клиент координатора для catalog-сервиса. Держит одно
// долгоживущее соединение на процесс; каждый вызов ограничен дедлайном,
// по истечении которого считается неуспешным и блокирует удаление модели.
type GRPCDeleter struct {
	conn    *grpc.ClientConn
	client  imagepb.ImageServiceClient
	timeout time.Duration
}

var _ service.ImageDeleter = (*GRPCDeleter)(nil)

// Dial создаёт клиента координатора по insecure-каналу.
func Dial(addr string, timeout time.Duration) (*GRPCDeleter, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial image delete coordinator: %w", err)
	}
	return &GRPCDeleter{
		conn:    conn,
		client:  imagepb.NewImageServiceClient(conn),
		timeout: timeout,
	}, nil
}

// DeleteImageByModelID выполняет удалённое удаление. err возвращается только
// для транспортных проблем; доменный отказ приходит как (false, message).
func (d *GRPCDeleter) DeleteImageByModelID(ctx context.Context, modelID string) (bool, string, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	resp, err := d.client.DeleteImageByModelId(ctx, &imagepb.DeleteImageRequest{ModelId: modelID})
	if err != nil {
		return false, "", err
	}
	return resp.GetSuccess(), resp.GetMessage(), nil
}

// Close закрывает соединение с координатором.
func (d *GRPCDeleter) Close() error {
	return d.conn.Close()
}
