package handlers_test

import (
	"ModelCatalog/internal/auth"
	"ModelCatalog/internal/config"
	"ModelCatalog/internal/handlers"
	"ModelCatalog/internal/journal"
	"ModelCatalog/internal/model"
	"ModelCatalog/internal/repo"
	"ModelCatalog/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

type mockModelRepo struct{ mock.Mock }

func (m *mockModelRepo) Insert(ctx context.Context, doc bson.M) (string, error) {
	args := m.Called(ctx, doc)
	return args.String(0), args.Error(1)
}
func (m *mockModelRepo) List(ctx context.Context) ([]model.Model, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Model); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockModelRepo) ListByCreator(ctx context.Context, creator string) ([]model.Model, error) {
	args := m.Called(ctx, creator)
	if v, ok := args.Get(0).([]model.Model); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockModelRepo) GetByName(ctx context.Context, name string) (*model.Model, error) {
	args := m.Called(ctx, name)
	if v, ok := args.Get(0).(*model.Model); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockModelRepo) GetByID(ctx context.Context, id string) (*model.Model, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Model); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockModelRepo) Update(ctx context.Context, id string, patch bson.M) (int64, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockModelRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.ModelRepository = (*mockModelRepo)(nil)

type mockDeleter struct{ mock.Mock }

func (m *mockDeleter) DeleteImageByModelID(ctx context.Context, modelID string) (bool, string, error) {
	args := m.Called(ctx, modelID)
	return args.Bool(0), args.String(1), args.Error(2)
}

var _ service.ImageDeleter = (*mockDeleter)(nil)

type mockJournal struct{ mock.Mock }

func (m *mockJournal) Begin(ctx context.Context, modelID string) (string, error) {
	args := m.Called(ctx, modelID)
	return args.String(0), args.Error(1)
}
func (m *mockJournal) MarkImageDone(ctx context.Context, intentID string) error {
	return m.Called(ctx, intentID).Error(0)
}
func (m *mockJournal) Resolve(ctx context.Context, intentID string) error {
	return m.Called(ctx, intentID).Error(0)
}
func (m *mockJournal) Pending(ctx context.Context) ([]journal.DeleteIntent, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]journal.DeleteIntent); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ journal.Journal = (*mockJournal)(nil)

// lenientJournal — журнал, которому в этих тестах всё равно.
func lenientJournal() *mockJournal {
	j := new(mockJournal)
	j.On("Begin", mock.Anything, mock.Anything).Return("intent-1", nil).Maybe()
	j.On("MarkImageDone", mock.Anything, mock.Anything).Return(nil).Maybe()
	j.On("Resolve", mock.Anything, mock.Anything).Return(nil).Maybe()
	return j
}

func newCatalogServer(t *testing.T, models repo.ModelRepository, deleter service.ImageDeleter, j journal.Journal) *httptest.Server {
	t.Helper()
	svc := service.NewCatalogService(models, deleter, j, zap.NewNop().Sugar())
	h := handlers.NewCatalogHandler(svc, zap.NewNop().Sugar(), &config.Config{AuthSecret: testSecret})
	srv := httptest.NewServer(h.Router)
	t.Cleanup(srv.Close)
	return srv
}

func bearerFor(t *testing.T, name string) string {
	t.Helper()
	token, err := auth.SignSubject(auth.Subject{ID: "u-" + name, Name: name}, testSecret)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, method, url, authHeader string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCatalogHandler_Home(t *testing.T) {
	srv := newCatalogServer(t, new(mockModelRepo), new(mockDeleter), lenientJournal())

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Welcome to the Catalog Service!", body["message"])
}

func TestCatalogHandler_CreateModel(t *testing.T) {
	id := bson.NewObjectID()

	t.Run("authenticated", func(t *testing.T) {
		models := new(mockModelRepo)
		models.On("Insert", mock.Anything, mock.MatchedBy(func(doc bson.M) bool {
			return doc["created_by"] == "alice"
		})).Return(id.Hex(), nil).Once()
		srv := newCatalogServer(t, models, new(mockDeleter), lenientJournal())

		resp := doJSON(t, http.MethodPost, srv.URL+"/models", bearerFor(t, "alice"), map[string]any{"name": "chair"})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, id.Hex(), body["model_id"])
		assert.Equal(t, "Model added successfully", body["message"])
		models.AssertExpectations(t)
	})

	t.Run("no token", func(t *testing.T) {
		srv := newCatalogServer(t, new(mockModelRepo), new(mockDeleter), lenientJournal())

		resp := doJSON(t, http.MethodPost, srv.URL+"/models", "", map[string]any{"name": "chair"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Unauthorized, no token provided", body["error"])
	})

	t.Run("garbage token is anonymous", func(t *testing.T) {
		srv := newCatalogServer(t, new(mockModelRepo), new(mockDeleter), lenientJournal())

		resp := doJSON(t, http.MethodPost, srv.URL+"/models", "Bearer not-a-jwt", map[string]any{"name": "chair"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("bad body", func(t *testing.T) {
		srv := newCatalogServer(t, new(mockModelRepo), new(mockDeleter), lenientJournal())

		req, err := http.NewRequest(http.MethodPost, srv.URL+"/models", bytes.NewBufferString("{broken"))
		require.NoError(t, err)
		req.Header.Set("Authorization", bearerFor(t, "alice"))
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCatalogHandler_GetModel(t *testing.T) {
	id := bson.NewObjectID()
	stored := &model.Model{ID: id, Name: "chair", CreatedBy: "alice"}

	t.Run("by name", func(t *testing.T) {
		models := new(mockModelRepo)
		models.On("GetByName", mock.Anything, "chair").Return(stored, nil).Once()
		srv := newCatalogServer(t, models, new(mockDeleter), lenientJournal())

		resp, err := http.Get(srv.URL + "/models/chair")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		got, ok := body["model"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, id.Hex(), got["model_id"])
		assert.Equal(t, "alice", got["created_by"])
	})

	t.Run("by id not found", func(t *testing.T) {
		models := new(mockModelRepo)
		models.On("GetByID", mock.Anything, "missing").Return((*model.Model)(nil), repo.ErrNotFound).Once()
		srv := newCatalogServer(t, models, new(mockDeleter), lenientJournal())

		resp, err := http.Get(srv.URL + "/models/id/missing")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Model not found", body["error"])
	})

	t.Run("list", func(t *testing.T) {
		models := new(mockModelRepo)
		models.On("List", mock.Anything).Return([]model.Model{*stored}, nil).Once()
		srv := newCatalogServer(t, models, new(mockDeleter), lenientJournal())

		resp, err := http.Get(srv.URL + "/models")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		list, ok := body["models"].([]any)
		require.True(t, ok)
		assert.Len(t, list, 1)
	})

	t.Run("list by creator", func(t *testing.T) {
		models := new(mockModelRepo)
		models.On("ListByCreator", mock.Anything, "alice").Return([]model.Model{*stored}, nil).Once()
		srv := newCatalogServer(t, models, new(mockDeleter), lenientJournal())

		resp, err := http.Get(srv.URL + "/models/user/alice")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestCatalogHandler_UpdateModel(t *testing.T) {
	id := bson.NewObjectID()
	stored := &model.Model{ID: id, Name: "chair", CreatedBy: "alice"}

	t.Run("owner updates by id", func(t *testing.T) {
		models := new(mockModelRepo)
		models.On("GetByID", mock.Anything, id.Hex()).Return(stored, nil).Once()
		models.On("Update", mock.Anything, id.Hex(), mock.Anything).Return(int64(1), nil).Once()
		srv := newCatalogServer(t, models, new(mockDeleter), lenientJournal())

		resp := doJSON(t, http.MethodPut, srv.URL+"/models/id/"+id.Hex(), bearerFor(t, "alice"), map[string]any{"color": "red"})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Model updated successfully", body["message"])
	})

	t.Run("non-owner gets 403", func(t *testing.T) {
		models := new(mockModelRepo)
		models.On("GetByName", mock.Anything, "chair").Return(stored, nil).Once()
		srv := newCatalogServer(t, models, new(mockDeleter), lenientJournal())

		resp := doJSON(t, http.MethodPut, srv.URL+"/models/chair", bearerFor(t, "bob"), map[string]any{"color": "red"})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Unauthorized", body["error"])
		models.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("anonymous gets 403", func(t *testing.T) {
		models := new(mockModelRepo)
		models.On("GetByName", mock.Anything, "chair").Return(stored, nil).Once()
		srv := newCatalogServer(t, models, new(mockDeleter), lenientJournal())

		resp := doJSON(t, http.MethodPut, srv.URL+"/models/chair", "", map[string]any{"color": "red"})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestCatalogHandler_DeleteModel(t *testing.T) {
	id := bson.NewObjectID()
	stored := &model.Model{ID: id, Name: "chair", CreatedBy: "alice"}

	t.Run("success", func(t *testing.T) {
		models := new(mockModelRepo)
		deleter := new(mockDeleter)
		models.On("GetByID", mock.Anything, id.Hex()).Return(stored, nil).Once()
		deleter.On("DeleteImageByModelID", mock.Anything, id.Hex()).Return(true, "image deleted", nil).Once()
		models.On("Delete", mock.Anything, id.Hex()).Return(int64(1), nil).Once()
		srv := newCatalogServer(t, models, deleter, lenientJournal())

		resp := doJSON(t, http.MethodDelete, srv.URL+"/models/id/"+id.Hex(), bearerFor(t, "alice"), nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Model deleted successfully", body["message"])
	})

	t.Run("no image is still success", func(t *testing.T) {
		models := new(mockModelRepo)
		deleter := new(mockDeleter)
		models.On("GetByID", mock.Anything, id.Hex()).Return(stored, nil).Once()
		deleter.On("DeleteImageByModelID", mock.Anything, id.Hex()).Return(false, service.MsgImageNotFound, nil).Once()
		models.On("Delete", mock.Anything, id.Hex()).Return(int64(1), nil).Once()
		srv := newCatalogServer(t, models, deleter, lenientJournal())

		resp := doJSON(t, http.MethodDelete, srv.URL+"/models/id/"+id.Hex(), bearerFor(t, "alice"), nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("image delete failure is 500", func(t *testing.T) {
		models := new(mockModelRepo)
		deleter := new(mockDeleter)
		models.On("GetByID", mock.Anything, id.Hex()).Return(stored, nil).Once()
		deleter.On("DeleteImageByModelID", mock.Anything, id.Hex()).Return(false, "storage offline", nil).Once()
		srv := newCatalogServer(t, models, deleter, lenientJournal())

		resp := doJSON(t, http.MethodDelete, srv.URL+"/models/id/"+id.Hex(), bearerFor(t, "alice"), nil)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Error deleting image", body["error"])
		models.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("non-owner gets 403", func(t *testing.T) {
		models := new(mockModelRepo)
		deleter := new(mockDeleter)
		models.On("GetByID", mock.Anything, id.Hex()).Return(stored, nil).Once()
		srv := newCatalogServer(t, models, deleter, lenientJournal())

		resp := doJSON(t, http.MethodDelete, srv.URL+"/models/id/"+id.Hex(), bearerFor(t, "bob"), nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		deleter.AssertNotCalled(t, "DeleteImageByModelID", mock.Anything, mock.Anything)
	})

	t.Run("missing model is 404", func(t *testing.T) {
		models := new(mockModelRepo)
		models.On("GetByID", mock.Anything, "missing").Return((*model.Model)(nil), repo.ErrNotFound).Once()
		srv := newCatalogServer(t, models, new(mockDeleter), lenientJournal())

		resp := doJSON(t, http.MethodDelete, srv.URL+"/models/id/missing", bearerFor(t, "alice"), nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
