package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// GridFS хранит блобы в GridFS-бакете той же базы MongoDB.
// Бэкенд по умолчанию: так держала изображения исходная система.
type GridFS struct {
	bucket *mongo.GridFSBucket
}

// NewGridFS создаёт хранилище поверх стандартного бакета fs базы db.
func NewGridFS(db *mongo.Database) *GridFS {
	return &GridFS{bucket: db.GridFSBucket()}
}

func (g *GridFS) Put(ctx context.Context, name string, data io.Reader) (string, error) {
	id, err := g.bucket.UploadFromStream(ctx, name, data)
	if err != nil {
		return "", fmt.Errorf("gridfs upload: %w", err)
	}
	return id.Hex(), nil
}

func (g *GridFS) Get(ctx context.Context, id string) ([]byte, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var buf bytes.Buffer
	if _, err := g.bucket.DownloadToStream(ctx, oid, &buf); err != nil {
		if errors.Is(err, mongo.ErrFileNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("gridfs download: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *GridFS) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	if err := g.bucket.Delete(ctx, oid); err != nil {
		if errors.Is(err, mongo.ErrFileNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("gridfs delete: %w", err)
	}
	return nil
}

var _ Store = (*GridFS)(nil)
