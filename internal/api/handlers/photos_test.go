package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/handlers"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
	"github.com/mdejong/Flip-Budget-Backend/internal/testutil"
)

// newPhotoUploadRequest builds a multipart POST carrying one file plus the
// optional caption and phase form fields.
func newPhotoUploadRequest(t *testing.T, projectID, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("Failed to write form field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/project/"+projectID+"/photo", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("uuid", projectID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestPhotoHandler_UploadPhoto(t *testing.T) {
	t.Run("POST photo stores the file and defaults to progress phase", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPhotoService(t, db)
		handler := handlers.NewPhotoHandler(svc)

		project := testutil.CreateProject(t, db, "Oak St")

		req := newPhotoUploadRequest(t, project.ID, "kitchen.jpg", []byte("jpeg bytes"),
			map[string]string{"caption": "Demo day"})
		w := httptest.NewRecorder()

		handler.UploadPhoto(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Photo
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.Phase != model.PhotoProgress {
			t.Errorf("Expected phase 'progress', got '%s'", response.Phase)
		}
		if response.Caption != "Demo day" {
			t.Errorf("Expected caption 'Demo day', got '%s'", response.Caption)
		}
		if response.OriginalName != "kitchen.jpg" {
			t.Errorf("Expected original name 'kitchen.jpg', got '%s'", response.OriginalName)
		}
	})

	t.Run("POST photo rejects an unknown phase", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPhotoService(t, db)
		handler := handlers.NewPhotoHandler(svc)

		project := testutil.CreateProject(t, db, "Oak St")

		req := newPhotoUploadRequest(t, project.ID, "kitchen.jpg", []byte("jpeg bytes"),
			map[string]string{"phase": "listing"})
		w := httptest.NewRecorder()

		handler.UploadPhoto(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("POST photo returns 404 for unknown project", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPhotoService(t, db)
		handler := handlers.NewPhotoHandler(svc)

		id := testutil.MakeID()
		req := newPhotoUploadRequest(t, id, "kitchen.jpg", []byte("jpeg bytes"), nil)
		w := httptest.NewRecorder()

		handler.UploadPhoto(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestPhotoHandler_DownloadPhoto(t *testing.T) {
	t.Run("GET photo file streams the stored bytes back", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPhotoService(t, db)
		handler := handlers.NewPhotoHandler(svc)

		project := testutil.CreateProject(t, db, "Oak St")

		uploadReq := newPhotoUploadRequest(t, project.ID, "after.jpg", []byte("finished kitchen"),
			map[string]string{"phase": model.PhotoAfter})
		uploadW := httptest.NewRecorder()

		handler.UploadPhoto(uploadW, uploadReq)

		if uploadW.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", uploadW.Code, uploadW.Body.String())
		}

		var photo model.Photo
		if err := json.NewDecoder(uploadW.Body).Decode(&photo); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/photo/"+photo.ID+"/file",
			map[string]string{"uuid": photo.ID})
		w := httptest.NewRecorder()

		handler.DownloadPhoto(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		if w.Body.String() != "finished kitchen" {
			t.Errorf("Expected stored bytes back, got %q", w.Body.String())
		}
	})

	t.Run("GET photo file returns 404 for unknown photo", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPhotoService(t, db)
		handler := handlers.NewPhotoHandler(svc)

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/photo/"+id+"/file",
			map[string]string{"uuid": id})
		w := httptest.NewRecorder()

		handler.DownloadPhoto(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestPhotoHandler_DeletePhoto(t *testing.T) {
	t.Run("DELETE photo removes the record and file", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPhotoService(t, db)
		handler := handlers.NewPhotoHandler(svc)

		project := testutil.CreateProject(t, db, "Oak St")

		uploadReq := newPhotoUploadRequest(t, project.ID, "before.jpg", []byte("old kitchen"), nil)
		uploadW := httptest.NewRecorder()

		handler.UploadPhoto(uploadW, uploadReq)

		var photo model.Photo
		if err := json.NewDecoder(uploadW.Body).Decode(&photo); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/photo/"+photo.ID,
			map[string]string{"uuid": photo.ID})
		w := httptest.NewRecorder()

		handler.DeletePhoto(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("Expected status 204, got %d: %s", w.Code, w.Body.String())
		}

		getReq := testutil.NewRequestWithURLParams(http.MethodGet, "/api/photo/"+photo.ID+"/file",
			map[string]string{"uuid": photo.ID})
		getW := httptest.NewRecorder()

		handler.DownloadPhoto(getW, getReq)

		if getW.Code != http.StatusNotFound {
			t.Errorf("Expected status 404 after delete, got %d", getW.Code)
		}
	})
}
