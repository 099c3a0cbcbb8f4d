package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"UGEM_BACK-END/internal/config"
	"UGEM_BACK-END/internal/dto"
	"UGEM_BACK-END/internal/uploads"
	"UGEM_BACK-END/internal/utils"
)

// UploadHandler proxies candidate photo uploads to the image host
type UploadHandler struct {
	client *uploads.Client
	cfg    *config.UploadConfig
}

// NewUploadHandler creates a new UploadHandler instance
func NewUploadHandler(client *uploads.Client, cfg *config.UploadConfig) *UploadHandler {
	return &UploadHandler{client: client, cfg: cfg}
}

// UploadImage accepts a multipart file and returns the hosted URL
// @Summary Upload candidate image
// @Description Upload an image to the image host and return its HTTPS URL
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 200 {object} dto.UploadImageResponse "Image uploaded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Failure 502 {object} dto.ErrorResponse "Image host failure"
// @Router /api/uploads/image [post]
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "يجب تسجيل الدخول", "")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxFileSize)
	if err := r.ParseMultipartForm(h.cfg.MaxFileSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			utils.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "حجم الصورة كبير جداً", "")
			return
		}
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid multipart form", err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing file", "A file field is required")
		return
	}
	defer file.Close()

	imageURL, err := h.client.Upload(r.Context(), header.Filename, file)
	if err != nil {
		if errors.Is(err, uploads.ErrNotConfigured) {
			utils.WriteErrorResponse(w, http.StatusServiceUnavailable, "Image upload is not configured", "")
			return
		}
		slog.Error("image upload failed", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadGateway, "فشل في رفع الصورة", "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.UploadImageResponse{ImageURL: imageURL})
}
