package service_test

import (
	"ModelCatalog/internal/blobstore"
	"ModelCatalog/internal/model"
	"ModelCatalog/internal/repo"
	"ModelCatalog/internal/service"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockRefRepo struct{ mock.Mock }

func (m *mockRefRepo) Insert(ctx context.Context, ref model.ImageRef) error {
	return m.Called(ctx, ref).Error(0)
}
func (m *mockRefRepo) List(ctx context.Context) ([]model.ImageRef, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.ImageRef); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRefRepo) GetByModelID(ctx context.Context, modelID string) (*model.ImageRef, error) {
	args := m.Called(ctx, modelID)
	if v, ok := args.Get(0).(*model.ImageRef); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRefRepo) DeleteByModelID(ctx context.Context, modelID string) error {
	return m.Called(ctx, modelID).Error(0)
}

var _ repo.ImageRefRepository = (*mockRefRepo)(nil)

type mockBlobStore struct{ mock.Mock }

func (m *mockBlobStore) Put(ctx context.Context, name string, r io.Reader) (string, error) {
	args := m.Called(ctx, name, r)
	return args.String(0), args.Error(1)
}
func (m *mockBlobStore) Get(ctx context.Context, id string) ([]byte, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).([]byte); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBlobStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ blobstore.Store = (*mockBlobStore)(nil)

func newImages(refs *mockRefRepo, blobs *mockBlobStore) *service.ImageService {
	return service.NewImageService(refs, blobs, zap.NewNop().Sugar())
}

func TestImage_Upload(t *testing.T) {
	t.Run("stores blob then registers ref", func(t *testing.T) {
		refs := new(mockRefRepo)
		blobs := new(mockBlobStore)

		blobs.On("Put", mock.Anything, "m-1.jpg", mock.Anything).Return("blob-1", nil).Once()
		refs.On("Insert", mock.Anything, model.ImageRef{
			Name: "m-1.jpg", BlobID: "blob-1", ModelID: "m-1",
		}).Return(nil).Once()

		svc := newImages(refs, blobs)
		blobID, err := svc.Upload(context.Background(), "m-1", bytes.NewReader([]byte{0xff, 0xd8}))

		assert.NoError(t, err)
		assert.Equal(t, "blob-1", blobID)
		refs.AssertExpectations(t)
		blobs.AssertExpectations(t)
	})

	t.Run("store failure skips ref", func(t *testing.T) {
		refs := new(mockRefRepo)
		blobs := new(mockBlobStore)
		blobs.On("Put", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("disk full")).Once()

		svc := newImages(refs, blobs)
		_, err := svc.Upload(context.Background(), "m-1", bytes.NewReader(nil))

		assert.Error(t, err)
		refs.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestImage_Fetch(t *testing.T) {
	payload := []byte{0xff, 0xd8, 0xff, 0xe0, 0x01, 0x02}

	t.Run("returns stored bytes", func(t *testing.T) {
		refs := new(mockRefRepo)
		blobs := new(mockBlobStore)
		refs.On("GetByModelID", mock.Anything, "m-1").Return(&model.ImageRef{BlobID: "blob-1", ModelID: "m-1"}, nil).Once()
		blobs.On("Get", mock.Anything, "blob-1").Return(payload, nil).Once()

		svc := newImages(refs, blobs)
		data, err := svc.Fetch(context.Background(), "m-1")

		assert.NoError(t, err)
		assert.Equal(t, payload, data)
	})

	t.Run("no ref is not found", func(t *testing.T) {
		refs := new(mockRefRepo)
		refs.On("GetByModelID", mock.Anything, "m-2").Return((*model.ImageRef)(nil), repo.ErrNotFound).Once()

		svc := newImages(refs, new(mockBlobStore))
		_, err := svc.Fetch(context.Background(), "m-2")
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("dangling ref is a storage error, not 404", func(t *testing.T) {
		refs := new(mockRefRepo)
		blobs := new(mockBlobStore)
		refs.On("GetByModelID", mock.Anything, "m-1").Return(&model.ImageRef{BlobID: "blob-gone", ModelID: "m-1"}, nil).Once()
		blobs.On("Get", mock.Anything, "blob-gone").Return(nil, blobstore.ErrNotFound).Once()

		svc := newImages(refs, blobs)
		_, err := svc.Fetch(context.Background(), "m-1")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrNotFound)
	})
}

func TestImage_DeleteByModelID(t *testing.T) {
	t.Run("blob then ref", func(t *testing.T) {
		refs := new(mockRefRepo)
		blobs := new(mockBlobStore)
		refs.On("GetByModelID", mock.Anything, "m-1").Return(&model.ImageRef{BlobID: "blob-1", ModelID: "m-1"}, nil).Once()
		blobs.On("Delete", mock.Anything, "blob-1").Return(nil).Once()
		refs.On("DeleteByModelID", mock.Anything, "m-1").Return(nil).Once()

		svc := newImages(refs, blobs)
		assert.NoError(t, svc.DeleteByModelID(context.Background(), "m-1"))
		refs.AssertExpectations(t)
		blobs.AssertExpectations(t)
	})

	t.Run("no ref", func(t *testing.T) {
		refs := new(mockRefRepo)
		refs.On("GetByModelID", mock.Anything, "m-2").Return((*model.ImageRef)(nil), repo.ErrNotFound).Once()

		svc := newImages(refs, new(mockBlobStore))
		err := svc.DeleteByModelID(context.Background(), "m-2")
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("blob delete failure keeps ref", func(t *testing.T) {
		refs := new(mockRefRepo)
		blobs := new(mockBlobStore)
		refs.On("GetByModelID", mock.Anything, "m-1").Return(&model.ImageRef{BlobID: "blob-1", ModelID: "m-1"}, nil).Once()
		blobs.On("Delete", mock.Anything, "blob-1").Return(errors.New("io error")).Once()

		svc := newImages(refs, blobs)
		err := svc.DeleteByModelID(context.Background(), "m-1")

		assert.Error(t, err)
		refs.AssertNotCalled(t, "DeleteByModelID", mock.Anything, mock.Anything)
	})

	t.Run("blob already gone still removes ref", func(t *testing.T) {
		refs := new(mockRefRepo)
		blobs := new(mockBlobStore)
		refs.On("GetByModelID", mock.Anything, "m-1").Return(&model.ImageRef{BlobID: "blob-1", ModelID: "m-1"}, nil).Once()
		blobs.On("Delete", mock.Anything, "blob-1").Return(blobstore.ErrNotFound).Once()
		refs.On("DeleteByModelID", mock.Anything, "m-1").Return(nil).Once()

		svc := newImages(refs, blobs)
		assert.NoError(t, svc.DeleteByModelID(context.Background(), "m-1"))
		refs.AssertExpectations(t)
	})
}
