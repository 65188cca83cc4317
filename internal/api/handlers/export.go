package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/response"
	apperrors "github.com/mdejong/Flip-Budget-Backend/internal/errors"
	"github.com/mdejong/Flip-Budget-Backend/internal/service"
)

// ExportHandler handles HTTP requests for document export endpoints.
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new ExportHandler with the provided service dependency.
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ExportExcel handles GET requests to download a project's budget as an
// Excel workbook.
//
// Endpoint: GET /api/project/{uuid}/export/excel
// Response: 200 OK with xlsx attachment
// Error: 400 Bad Request if project ID is invalid (validated by middleware)
// Error: 404 Not Found if project not found
// Error: 500 Internal Server Error if rendering fails
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "uuid")

	data, filename, err := h.exportService.ExportBudgetExcel(projectID, service.DefaultUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProjectNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to render excel export", err.Error())
		return
	}

	serveAttachment(w, data, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// ExportPDF handles GET requests to download a project's budget report as a
// PDF.
//
// Endpoint: GET /api/project/{uuid}/export/pdf
// Response: 200 OK with pdf attachment
// Error: 400 Bad Request if project ID is invalid (validated by middleware)
// Error: 404 Not Found if project not found
// Error: 500 Internal Server Error if rendering fails
func (h *ExportHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "uuid")

	data, filename, err := h.exportService.ExportBudgetPDF(projectID, service.DefaultUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrProjectNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to render pdf export", err.Error())
		return
	}

	serveAttachment(w, data, filename, "application/pdf")
}

func serveAttachment(w http.ResponseWriter, data []byte, filename, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
