package handlers

import (
	"ModelCatalog/internal/config"
	"ModelCatalog/internal/middleware"
	"ModelCatalog/internal/service"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ImageHandler — HTTP-поверхность сервиса изображений.
type ImageHandler struct {
	images      *service.ImageService
	logger      *zap.SugaredLogger
	maxUploadMB int
}

// NewImageHandler собирает роутер сервиса изображений.
func NewImageHandler(images *service.ImageService, logger *zap.SugaredLogger, cfg *config.Config) *Handler {
	h := &ImageHandler{images: images, logger: logger, maxUploadMB: cfg.MaxUploadMB}

	r := chi.NewRouter()
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	r.Post("/upload", h.Upload)
	r.Get("/images", h.ListImages)
	r.Get("/image/{model_id}", h.GetImage)

	return &Handler{Router: r}
}

// Upload принимает multipart-форму с файлом image и полем model_id.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	maxBody := int64(h.maxUploadMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.logger.Warnw("upload: invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	modelID := r.FormValue("model_id")
	if modelID == "" {
		writeError(w, http.StatusBadRequest, "Model ID is required")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	blobID, err := h.images.Upload(r.Context(), modelID, file)
	if err != nil {
		h.logger.Errorw("upload failed", "model_id", modelID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":  "Image uploaded successfully",
		"image_id": blobID,
	})
}

// ListImages возвращает все записи-ссылки.
func (h *ImageHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	refs, err := h.images.ListRefs(r.Context())
	if err != nil {
		h.logger.Errorw("list images failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"images": refs})
}

// GetImage отдаёт сырые байты изображения модели с фиксированным Content-Type.
func (h *ImageHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	data, err := h.images.Fetch(r.Context(), chi.URLParam(r, "model_id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Image not found")
			return
		}
		h.logger.Errorw("fetch image failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", service.ImageContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
