package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/request"
	"github.com/mdejong/Flip-Budget-Backend/internal/api/response"
	apperrors "github.com/mdejong/Flip-Budget-Backend/internal/errors"
	"github.com/mdejong/Flip-Budget-Backend/internal/service"
	"github.com/mdejong/Flip-Budget-Backend/internal/validation"
)

// NoteHandler handles HTTP requests for project note endpoints.
type NoteHandler struct {
	noteService *service.NoteService
}

// NewNoteHandler creates a new NoteHandler with the provided service dependency.
func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// Notes handles GET requests to retrieve a project's notes, newest first.
//
// Endpoint: GET /api/project/{uuid}/note
// Response: 200 OK with array of Note
// Error: 400 Bad Request if project ID is invalid (validated by middleware)
// Error: 404 Not Found if project not found
// Error: 500 Internal Server Error if retrieval fails
func (h *NoteHandler) Notes(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "uuid")

	notes, err := h.noteService.GetNotes(projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProjectNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve notes", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, notes)
}

// CreateNote handles POST requests to add a note to a project.
//
// Endpoint: POST /api/project/{uuid}/note
// Request Body: CreateNoteRequest (body required)
// Response: 201 Created with Note
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if project not found
// Error: 500 Internal Server Error if creation fails
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.CreateNoteRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateNote(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	note, err := h.noteService.CreateNote(projectID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProjectNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create note", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, note)
}

// UpdateNote handles PUT requests to update a note.
//
// Endpoint: PUT /api/note/{uuid}
// Request Body: UpdateNoteRequest (all fields optional)
// Response: 200 OK with updated Note
// Error: 400 Bad Request if note ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if note not found
// Error: 500 Internal Server Error if update fails
func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateNoteRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateNote(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	note, err := h.noteService.UpdateNote(noteID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoteNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrNoteNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update note", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, note)
}

// DeleteNote handles DELETE requests to remove a note.
//
// Endpoint: DELETE /api/note/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if note ID is invalid (validated by middleware)
// Error: 404 Not Found if note not found
// Error: 500 Internal Server Error if deletion fails
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "uuid")

	if err := h.noteService.DeleteNote(noteID); err != nil {
		if errors.Is(err, apperrors.ErrNoteNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrNoteNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete note", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
