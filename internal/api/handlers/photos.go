package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/response"
	apperrors "github.com/mdejong/Flip-Budget-Backend/internal/errors"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
	"github.com/mdejong/Flip-Budget-Backend/internal/service"
)

// maxPhotoUploadBytes caps multipart photo uploads at 20 MB.
const maxPhotoUploadBytes = 20 << 20

// PhotoHandler handles HTTP requests for project photo endpoints.
// Uploads arrive as multipart forms; downloads stream the stored file.
type PhotoHandler struct {
	photoService *service.PhotoService
}

// NewPhotoHandler creates a new PhotoHandler with the provided service dependency.
func NewPhotoHandler(photoService *service.PhotoService) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
	}
}

// Photos handles GET requests to retrieve a project's photo records.
//
// Endpoint: GET /api/project/{uuid}/photo
// Response: 200 OK with array of Photo
// Error: 400 Bad Request if project ID is invalid (validated by middleware)
// Error: 404 Not Found if project not found
// Error: 500 Internal Server Error if retrieval fails
func (h *PhotoHandler) Photos(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "uuid")

	photos, err := h.photoService.GetPhotos(projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProjectNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve photos", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, photos)
}

// UploadPhoto handles multipart POST requests to attach a photo to a
// project. The form carries the file plus optional caption and phase fields.
//
// Endpoint: POST /api/project/{uuid}/photo
// Form fields: file (required), caption, phase (before|progress|after)
// Response: 201 Created with Photo
// Error: 400 Bad Request if the form is malformed or the phase is unknown
// Error: 404 Not Found if project not found
// Error: 500 Internal Server Error if storage fails
func (h *PhotoHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "uuid")

	if err := r.ParseMultipartForm(maxPhotoUploadBytes); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid multipart form", err.Error())
		return
	}

	_, header, err := r.FormFile("file")
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "file field is required", err.Error())
		return
	}

	phase := r.FormValue("phase")
	if phase == "" {
		phase = model.PhotoProgress
	}
	if phase != model.PhotoBefore && phase != model.PhotoProgress && phase != model.PhotoAfter {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "phase must be before, progress or after")
		return
	}

	photo, err := h.photoService.SavePhoto(projectID, r.FormValue("caption"), phase, header)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProjectNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to store photo", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, photo)
}

// DownloadPhoto handles GET requests to stream a stored photo.
//
// Endpoint: GET /api/photo/{uuid}/file
// Response: 200 OK with the image bytes
// Error: 400 Bad Request if photo ID is invalid (validated by middleware)
// Error: 404 Not Found if photo not found
// Error: 500 Internal Server Error if the file cannot be read
func (h *PhotoHandler) DownloadPhoto(w http.ResponseWriter, r *http.Request) {
	photoID := chi.URLParam(r, "uuid")

	photo, file, err := h.photoService.OpenPhotoFile(photoID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPhotoNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPhotoNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to open photo", err.Error())
		return
	}
	defer file.Close()

	if photo.ContentType != "" {
		w.Header().Set("Content-Type", photo.ContentType)
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", photo.OriginalName))
	w.WriteHeader(http.StatusOK)

	// Headers are already written; a failed copy cannot be reported.
	_, _ = io.Copy(w, file)
}

// DeletePhoto handles DELETE requests to remove a photo and its file.
//
// Endpoint: DELETE /api/photo/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if photo ID is invalid (validated by middleware)
// Error: 404 Not Found if photo not found
// Error: 500 Internal Server Error if deletion fails
func (h *PhotoHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	photoID := chi.URLParam(r, "uuid")

	if err := h.photoService.DeletePhoto(photoID); err != nil {
		if errors.Is(err, apperrors.ErrPhotoNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPhotoNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete photo", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
