package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/request"
	"github.com/mdejong/Flip-Budget-Backend/internal/api/response"
	apperrors "github.com/mdejong/Flip-Budget-Backend/internal/errors"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
	"github.com/mdejong/Flip-Budget-Backend/internal/service"
	"github.com/mdejong/Flip-Budget-Backend/internal/validation"
)

// ProjectHandler handles HTTP requests for project endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the projectService.
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler with the provided service dependency.
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// Projects handles GET requests to retrieve all projects.
// Archived projects are excluded unless include_archived=true; an optional
// status query parameter filters to one lifecycle status.
//
// Endpoint: GET /api/project
// Response: 200 OK with array of Project
// Error: 500 Internal Server Error if retrieval fails
func (h *ProjectHandler) Projects(w http.ResponseWriter, r *http.Request) {
	filter := model.ProjectFilter{
		IncludeArchived: r.URL.Query().Get("include_archived") == "true",
		Status:          r.URL.Query().Get("status"),
	}

	if filter.Status != "" {
		filter.IncludeArchived = filter.IncludeArchived || filter.Status == model.StatusArchived
	}

	projects, err := h.projectService.GetProjects(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve projects", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, projects)
}

// GetProject handles GET requests to retrieve a single project by ID.
//
// Endpoint: GET /api/project/{uuid}
// Response: 200 OK with Project
// Error: 400 Bad Request if project ID is invalid (validated by middleware)
// Error: 404 Not Found if project not found
// Error: 500 Internal Server Error if retrieval fails
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "uuid")

	project, err := h.projectService.GetProject(projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProjectNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve project", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, project)
}

// CreateProject handles POST requests to create a new project.
//
// Endpoint: POST /api/project
// Request Body: CreateProjectRequest (name required, financials optional)
// Response: 201 Created with Project
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateProjectRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateProject(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	project, err := h.projectService.CreateProject(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create project", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, project)
}

// UpdateProject handles PUT requests to update an existing project.
// All fields are optional; only provided fields change.
//
// Endpoint: PUT /api/project/{uuid}
// Request Body: UpdateProjectRequest
// Response: 200 OK with updated Project
// Error: 400 Bad Request if project ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if project not found
// Error: 500 Internal Server Error if update fails
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateProjectRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateProject(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	project, err := h.projectService.UpdateProject(projectID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProjectNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update project", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, project)
}

// DeleteProject handles DELETE requests to remove a project.
// Budget lines, draws, notes and photo records cascade with it.
//
// Endpoint: DELETE /api/project/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if project ID is invalid (validated by middleware)
// Error: 404 Not Found if project not found
// Error: 500 Internal Server Error if deletion fails
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "uuid")

	if err := h.projectService.DeleteProject(projectID); err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProjectNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete project", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// ProjectSummary handles GET requests for the project dashboard aggregate:
// budget totals, draw totals and media counts.
//
// Endpoint: GET /api/project/{uuid}/summary
// Response: 200 OK with ProjectSummary
// Error: 400 Bad Request if project ID is invalid (validated by middleware)
// Error: 404 Not Found if project not found
// Error: 500 Internal Server Error if aggregation fails
func (h *ProjectHandler) ProjectSummary(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "uuid")

	summary, err := h.projectService.GetProjectSummary(projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProjectNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to build project summary", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}
