package image

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/yoshikazuuu/img-host/internal/response"
	"github.com/yoshikazuuu/img-host/internal/telemetry"
)

// Handler holds HTTP handlers for the image endpoints.
type Handler struct {
	svc            *Service
	maxUploadBytes int64
}

// NewHandler creates a new image Handler. maxUploadBytes caps the upload
// request body; pass 0 to disable the cap.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{svc: svc, maxUploadBytes: maxUploadBytes}
}

// UploadResponse is the body returned for a successful upload.
type UploadResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	URL      string `json:"url,omitempty"`
}

// Upload godoc
//
//	@Summary		Upload an image
//	@Description	Accepts a multipart form with a single `file` field, stores it, and returns the derived storage key.
//	@Tags			images
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"image file"
//	@Success		200	{object}	UploadResponse
//	@Failure		400	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	f, fh, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.BadRequest(w, "File too large")
			return
		}
		response.BadRequest(w, "File is required")
		return
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.BadRequest(w, "Only image files are allowed")
		return
	}

	data, err := io.ReadAll(f)
	if err != nil {
		response.InternalError(w, "Failed to read file")
		return
	}

	key, err := h.svc.Upload(r.Context(), fh.Filename, data, contentType)
	if err != nil {
		response.InternalError(w, "Failed to upload file")
		return
	}

	telemetry.UploadedBytes.Add(float64(len(data)))

	response.JSON(w, http.StatusOK, UploadResponse{
		Message:  "Image uploaded successfully",
		Filename: key,
		URL:      h.svc.PublicURL(key),
	})
}

// Get godoc
//
//	@Summary		Retrieve a stored image
//	@Description	Streams the object stored under the key with its original content type.
//	@Tags			images
//	@Produce		octet-stream
//	@Param			key	path	string	true	"storage key"
//	@Success		200	{file}	binary
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/{key} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	obj, err := h.svc.Fetch(r.Context(), key)
	if err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "Failed to retrieve file")
			return
		}
		response.InternalError(w, "Failed to retrieve file")
		return
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	if obj.ETag != "" {
		w.Header().Set("ETag", `"`+obj.ETag+`"`)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(obj.Data)
}
