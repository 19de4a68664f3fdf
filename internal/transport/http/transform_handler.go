package http

import (
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"outagecli/internal/config"
	apierrors "outagecli/internal/errors"
)

// TransformHandler handles schedule conversion requests. One handler
// serves all three payload adapters: multipart form data, JSON with a
// base64 file field, and a raw request body.
type TransformHandler struct {
	service        ReportServiceInterface
	logger         *slog.Logger
	errorHandler   *apierrors.ErrorHandler
	validate       *validator.Validate
	maxUploadBytes int64
}

// NewTransformHandler creates a new transform handler
func NewTransformHandler(service ReportServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler, maxUploadBytes int64) *TransformHandler {
	return &TransformHandler{
		service:        service,
		logger:         logger.With(slog.String("handler", "transform")),
		errorHandler:   errorHandler,
		validate:       validator.New(),
		maxUploadBytes: maxUploadBytes,
	}
}

// Routes returns the transform routes
func (h *TransformHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Transform)
	return r
}

// TransformRequest is the JSON payload variant of a conversion request.
type TransformRequest struct {
	File     string `json:"file" validate:"required,base64"`
	Filename string `json:"filename"`
}

// TransformResponse is the success response shape shared by all adapters.
type TransformResponse struct {
	Success     bool   `json:"success"`
	File        string `json:"file"`
	Filename    string `json:"filename"`
	RecordCount int    `json:"recordCount"`
	Message     string `json:"message"`
}

// Transform handles POST /api/transform
func (h *TransformHandler) Transform(w http.ResponseWriter, r *http.Request) {
	content, sourceName, err := h.readPayload(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	if len(content) == 0 {
		h.errorHandler.HandleError(w, r, apierrors.ErrMissingFile)
		return
	}

	h.logger.InfoContext(r.Context(), "processing uploaded schedule",
		slog.String("source", sourceName),
		slog.Int("size", len(content)))

	result, err := h.service.Convert(r.Context(), content)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	if r.Header.Get(config.BinaryResponseKey) == "binary" {
		w.Header().Set("Content-Type", config.XLSXContentType)
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(result.Filename)))
		w.WriteHeader(http.StatusOK)
		w.Write(result.File)
		return
	}

	render.JSON(w, r, &TransformResponse{
		Success:     true,
		File:        base64.StdEncoding.EncodeToString(result.File),
		Filename:    result.Filename,
		RecordCount: result.RecordCount,
		Message:     fmt.Sprintf("%d개의 레코드가 성공적으로 변환되었습니다.", result.RecordCount),
	})
}

// readPayload extracts the schedule bytes from the request, dispatching on
// Content-Type. Returns the bytes and a label for logging.
func (h *TransformHandler) readPayload(r *http.Request) ([]byte, string, error) {
	contentType := r.Header.Get("Content-Type")

	switch {
	case strings.HasPrefix(contentType, "multipart/form-data"):
		if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
			return nil, "", apierrors.ErrInvalidRequest
		}
		file, header, err := r.FormFile(config.UploadFieldName)
		if err != nil {
			return nil, "", apierrors.ErrMissingFile
		}
		defer file.Close()

		content, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes))
		if err != nil {
			return nil, "", fmt.Errorf("failed to read uploaded file: %w", err)
		}
		return content, header.Filename, nil

	case strings.HasPrefix(contentType, "application/json"):
		var req TransformRequest
		if err := render.DecodeJSON(io.LimitReader(r.Body, h.maxUploadBytes), &req); err != nil {
			return nil, "", apierrors.ErrInvalidRequest
		}
		if err := h.validate.Struct(&req); err != nil {
			return nil, "", apierrors.ErrValidation("file", "base64 file content is required")
		}
		content, err := base64.StdEncoding.DecodeString(req.File)
		if err != nil {
			return nil, "", apierrors.ErrValidation("file", "invalid base64 content")
		}
		name := req.Filename
		if name == "" {
			name = "input.xls"
		}
		return content, name, nil

	default:
		content, err := io.ReadAll(io.LimitReader(r.Body, h.maxUploadBytes))
		if err != nil {
			return nil, "", fmt.Errorf("failed to read request body: %w", err)
		}
		return content, "request body", nil
	}
}
