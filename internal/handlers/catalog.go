package handlers

import (
	"ModelCatalog/internal/auth"
	"ModelCatalog/internal/config"
	"ModelCatalog/internal/middleware"
	"ModelCatalog/internal/model"
	"ModelCatalog/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogHandler — HTTP-поверхность сервиса каталога.
type CatalogHandler struct {
	catalog *service.CatalogService
	logger  *zap.SugaredLogger
}

// NewCatalogHandler собирает роутер каталога с цепочкой мидлварей.
func NewCatalogHandler(catalog *service.CatalogService, logger *zap.SugaredLogger, cfg *config.Config) *Handler {
	h := &CatalogHandler{catalog: catalog, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(cfg.AuthSecret))

	r.Get("/", h.Home)
	r.Post("/models", h.CreateModel)
	r.Get("/models", h.ListModels)
	r.Get("/models/user/{name}", h.ListModelsByCreator)
	r.Get("/models/{name}", h.GetModelByName)
	r.Get("/models/id/{id}", h.GetModelByID)
	r.Put("/models/{name}", h.UpdateModelByName)
	r.Put("/models/id/{id}", h.UpdateModelByID)
	r.Delete("/models/id/{id}", h.DeleteModelByID)

	return &Handler{Router: r}
}

// subjectFromRequest возвращает субъекта запроса или nil для анонимных.
func subjectFromRequest(r *http.Request) *auth.Subject {
	if sub, ok := middleware.GetSubjectFromContext(r.Context()); ok {
		return &sub
	}
	return nil
}

// asDocuments отображает модели в плоские JSON-документы.
func asDocuments(models []model.Model) []map[string]any {
	docs := make([]map[string]any, 0, len(models))
	for _, m := range models {
		docs = append(docs, m.AsDocument())
	}
	return docs
}

// Home — приветствие сервиса.
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Catalog Service!"})
}

// CreateModel сохраняет новый документ модели от аутентифицированного субъекта.
func (h *CatalogHandler) CreateModel(w http.ResponseWriter, r *http.Request) {
	var doc map[string]any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.catalog.Create(r.Context(), doc, subjectFromRequest(r))
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			writeError(w, http.StatusUnauthorized, "Unauthorized, no token provided")
			return
		}
		h.logger.Errorw("create model failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":  "Model added successfully",
		"model_id": id,
	})
}

// ListModels возвращает все модели каталога. Чтение публично.
func (h *CatalogHandler) ListModels(w http.ResponseWriter, r *http.Request) {
	models, err := h.catalog.List(r.Context())
	if err != nil {
		h.logger.Errorw("list models failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"models": asDocuments(models)})
}

// ListModelsByCreator возвращает модели указанного создателя.
func (h *CatalogHandler) ListModelsByCreator(w http.ResponseWriter, r *http.Request) {
	models, err := h.catalog.ListByCreator(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.logger.Errorw("list models by creator failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"models": asDocuments(models)})
}

// GetModelByName возвращает одну модель по имени (произвольное совпадение
// при дубликатах: имя не уникально по построению).
func (h *CatalogHandler) GetModelByName(w http.ResponseWriter, r *http.Request) {
	m, err := h.catalog.GetByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.respondLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"model": m.AsDocument()})
}

// GetModelByID возвращает модель по идентификатору.
func (h *CatalogHandler) GetModelByID(w http.ResponseWriter, r *http.Request) {
	m, err := h.catalog.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"model": m.AsDocument()})
}

// UpdateModelByName применяет частичное обновление к модели, найденной по имени.
func (h *CatalogHandler) UpdateModelByName(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := h.catalog.UpdateByName(r.Context(), chi.URLParam(r, "name"), patch, subjectFromRequest(r))
	h.respondMutation(w, err, "Model updated successfully")
}

// UpdateModelByID применяет частичное обновление к модели по идентификатору.
func (h *CatalogHandler) UpdateModelByID(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := h.catalog.UpdateByID(r.Context(), chi.URLParam(r, "id"), patch, subjectFromRequest(r))
	h.respondMutation(w, err, "Model updated successfully")
}

// DeleteModelByID удаляет модель и связанное изображение через координатор.
func (h *CatalogHandler) DeleteModelByID(w http.ResponseWriter, r *http.Request) {
	err := h.catalog.Delete(r.Context(), chi.URLParam(r, "id"), subjectFromRequest(r))
	h.respondMutation(w, err, "Model deleted successfully")
}

// respondLookupError — единое отображение ошибок чтения.
func (h *CatalogHandler) respondLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Model not found")
		return
	}
	h.logger.Errorw("model lookup failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

// respondMutation — единое отображение исходов мутаций: 404 / 403 / 500,
// успех — 200 с фиксированным сообщением.
func (h *CatalogHandler) respondMutation(w http.ResponseWriter, err error, okMsg string) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"message": okMsg})
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "Model not found")
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrUnauthenticated):
		writeError(w, http.StatusForbidden, "Unauthorized")
	case errors.Is(err, service.ErrImageDelete):
		h.logger.Errorw("image deletion blocked model delete", "error", err)
		writeError(w, http.StatusInternalServerError, "Error deleting image")
	default:
		h.logger.Errorw("model mutation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
