package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/handlers"
	"github.com/mdejong/Flip-Budget-Backend/internal/api/request"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
	"github.com/mdejong/Flip-Budget-Backend/internal/testutil"
)

// TestProjectHandler_Projects tests the GET /api/project endpoint.
//
// WHY: This is the primary listing endpoint the frontend builds its
// dashboard from. Testing ensures archived filtering and JSON formatting
// stay stable.
func TestProjectHandler_Projects(t *testing.T) {
	t.Run("GET /api/project returns 200 with empty array", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProjectService(t, db)
		handler := handlers.NewProjectHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/project/", nil)
		w := httptest.NewRecorder()

		handler.Projects(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		contentType := w.Header().Get("Content-Type")
		if contentType != "application/json" {
			t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
		}

		var response []model.Project
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response) != 0 {
			t.Errorf("Expected empty array, got %d items", len(response))
		}
	})

	t.Run("GET /api/project excludes archived projects by default", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProjectService(t, db)
		handler := handlers.NewProjectHandler(svc)

		active := testutil.CreateProject(t, db, "Active House")
		testutil.NewProject().WithName("Old Flip").Archived().Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/project/", nil)
		w := httptest.NewRecorder()

		handler.Projects(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response []model.Project
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response) != 1 {
			t.Fatalf("Expected 1 project, got %d", len(response))
		}
		if response[0].ID != active.ID {
			t.Errorf("Expected project ID %s, got %s", active.ID, response[0].ID)
		}
	})

	t.Run("GET /api/project?include_archived=true returns archived projects", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProjectService(t, db)
		handler := handlers.NewProjectHandler(svc)

		testutil.CreateProject(t, db, "Active House")
		testutil.NewProject().WithName("Old Flip").Archived().Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/project/?include_archived=true", nil)
		w := httptest.NewRecorder()

		handler.Projects(w, req)

		var response []model.Project
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response) != 2 {
			t.Errorf("Expected 2 projects, got %d", len(response))
		}
	})

	t.Run("GET /api/project?status=rehab filters by status", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProjectService(t, db)
		handler := handlers.NewProjectHandler(svc)

		testutil.CreateProject(t, db, "Lead House")
		rehab := testutil.NewProject().WithName("Rehab House").WithStatus(model.StatusRehab).Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/project/?status=rehab", nil)
		w := httptest.NewRecorder()

		handler.Projects(w, req)

		var response []model.Project
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response) != 1 {
			t.Fatalf("Expected 1 project, got %d", len(response))
		}
		if response[0].ID != rehab.ID {
			t.Errorf("Expected project ID %s, got %s", rehab.ID, response[0].ID)
		}
	})
}

func TestProjectHandler_CreateProject(t *testing.T) {
	t.Run("POST /api/project creates a project with defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProjectService(t, db)
		handler := handlers.NewProjectHandler(svc)

		arv := 250000.0
		body := request.CreateProjectRequest{
			Name: "12 Oak St",
			ARV:  &arv,
		}

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/project/", body, nil)
		w := httptest.NewRecorder()

		handler.CreateProject(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Project
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.Name != "12 Oak St" {
			t.Errorf("Expected name '12 Oak St', got '%s'", response.Name)
		}
		if response.Status != model.StatusLead {
			t.Errorf("Expected default status 'lead', got '%s'", response.Status)
		}
		if response.ARV == nil || *response.ARV != 250000 {
			t.Errorf("Expected ARV 250000, got %v", response.ARV)
		}
		if response.ID == "" {
			t.Error("Expected generated ID")
		}
	})

	t.Run("POST /api/project rejects missing name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProjectService(t, db)
		handler := handlers.NewProjectHandler(svc)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/project/", request.CreateProjectRequest{}, nil)
		w := httptest.NewRecorder()

		handler.CreateProject(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("POST /api/project rejects negative rehab budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProjectService(t, db)
		handler := handlers.NewProjectHandler(svc)

		body := request.CreateProjectRequest{
			Name:        "Bad Budget",
			RehabBudget: -100,
		}

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/project/", body, nil)
		w := httptest.NewRecorder()

		handler.CreateProject(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestProjectHandler_GetProject(t *testing.T) {
	t.Run("GET /api/project/{uuid} returns the project", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProjectService(t, db)
		handler := handlers.NewProjectHandler(svc)

		project := testutil.CreateProject(t, db, "Oak St")

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/project/"+project.ID,
			map[string]string{"uuid": project.ID})
		w := httptest.NewRecorder()

		handler.GetProject(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Project
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.ID != project.ID {
			t.Errorf("Expected ID %s, got %s", project.ID, response.ID)
		}
	})

	t.Run("GET /api/project/{uuid} returns 404 for unknown project", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProjectService(t, db)
		handler := handlers.NewProjectHandler(svc)

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/project/"+id,
			map[string]string{"uuid": id})
		w := httptest.NewRecorder()

		handler.GetProject(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestProjectHandler_UpdateProject(t *testing.T) {
	t.Run("PUT /api/project/{uuid} applies partial updates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProjectService(t, db)
		handler := handlers.NewProjectHandler(svc)

		project := testutil.CreateProject(t, db, "Oak St")

		status := model.StatusUnderContract
		price := 150000.0
		body := request.UpdateProjectRequest{
			Status:        &status,
			PurchasePrice: &price,
		}

		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/project/"+project.ID, body,
			map[string]string{"uuid": project.ID})
		w := httptest.NewRecorder()

		handler.UpdateProject(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Project
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.Status != model.StatusUnderContract {
			t.Errorf("Expected status 'under_contract', got '%s'", response.Status)
		}
		if response.PurchasePrice == nil || *response.PurchasePrice != 150000 {
			t.Errorf("Expected purchase price 150000, got %v", response.PurchasePrice)
		}
		// Untouched fields survive
		if response.Name != project.Name {
			t.Errorf("Expected name '%s', got '%s'", project.Name, response.Name)
		}
	})

	t.Run("PUT /api/project/{uuid} rejects invalid status", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProjectService(t, db)
		handler := handlers.NewProjectHandler(svc)

		project := testutil.CreateProject(t, db, "Oak St")

		status := "flipped"
		body := request.UpdateProjectRequest{Status: &status}

		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/project/"+project.ID, body,
			map[string]string{"uuid": project.ID})
		w := httptest.NewRecorder()

		handler.UpdateProject(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestProjectHandler_DeleteProject(t *testing.T) {
	t.Run("DELETE /api/project/{uuid} removes the project", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProjectService(t, db)
		handler := handlers.NewProjectHandler(svc)

		project := testutil.CreateProject(t, db, "Oak St")

		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/project/"+project.ID,
			map[string]string{"uuid": project.ID})
		w := httptest.NewRecorder()

		handler.DeleteProject(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("Expected status 204, got %d: %s", w.Code, w.Body.String())
		}

		// Gone afterwards
		req = testutil.NewRequestWithURLParams(http.MethodGet, "/api/project/"+project.ID,
			map[string]string{"uuid": project.ID})
		w = httptest.NewRecorder()

		handler.GetProject(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404 after delete, got %d", w.Code)
		}
	})

	t.Run("DELETE /api/project/{uuid} returns 404 for unknown project", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProjectService(t, db)
		handler := handlers.NewProjectHandler(svc)

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/project/"+id,
			map[string]string{"uuid": id})
		w := httptest.NewRecorder()

		handler.DeleteProject(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestProjectHandler_ProjectSummary(t *testing.T) {
	t.Run("GET /api/project/{uuid}/summary aggregates budget and draws", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProjectService(t, db)
		handler := handlers.NewProjectHandler(svc)

		project := testutil.CreateProject(t, db, "Oak St")
		testutil.NewBudgetLine(project.ID).WithAmounts(5000, 5500).WithActual(6000).Build(t, db)
		testutil.NewBudgetLine(project.ID).WithCategory("bathrooms").WithAmounts(3000, 3000).Build(t, db)
		testutil.NewDraw(project.ID).WithAmount(10000).Build(t, db)
		testutil.NewDraw(project.ID).WithNumber(2).WithAmount(4000).Paid(time.Now()).Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/project/"+project.ID+"/summary",
			map[string]string{"uuid": project.ID})
		w := httptest.NewRecorder()

		handler.ProjectSummary(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.ProjectSummary
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.BudgetUnderwriting != 8000 {
			t.Errorf("Expected underwriting total 8000, got %v", response.BudgetUnderwriting)
		}
		if response.BudgetForecast != 8500 {
			t.Errorf("Expected forecast total 8500, got %v", response.BudgetForecast)
		}
		if response.BudgetActual != 6000 {
			t.Errorf("Expected actual total 6000, got %v", response.BudgetActual)
		}
		if response.BudgetLineCount != 2 {
			t.Errorf("Expected 2 budget lines, got %d", response.BudgetLineCount)
		}
		if response.DrawsScheduled != 14000 {
			t.Errorf("Expected scheduled draws 14000, got %v", response.DrawsScheduled)
		}
		if response.DrawsPaid != 4000 {
			t.Errorf("Expected paid draws 4000, got %v", response.DrawsPaid)
		}
		if response.DrawsRemaining != 10000 {
			t.Errorf("Expected remaining draws 10000, got %v", response.DrawsRemaining)
		}
	})
}
