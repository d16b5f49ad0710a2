// Package blobstore абстрагирует хранилище бинарных данных изображений.
// Блобы адресуются непрозрачным строковым идентификатором; что за ним стоит
// (ObjectID GridFS или ключ S3) — деталь реализации.
package blobstore

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound — блоб с данным идентификатором отсутствует.
var ErrNotFound = errors.New("blob not found")

// Store — байтовое хранилище, используемое реестром изображений.
type Store interface {
	// Put сохраняет содержимое и возвращает идентификатор нового блоба.
	Put(ctx context.Context, name string, data io.Reader) (string, error)

	// Get возвращает содержимое блоба целиком.
	Get(ctx context.Context, id string) ([]byte, error)

	// Delete удаляет блоб.
	Delete(ctx context.Context, id string) error
}
