package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"brightworks/internal/adapter/http/handlers/mocks"
	"brightworks/internal/domain/entities"
	"brightworks/internal/usecase"
	"brightworks/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProjectHandler_ConvertQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body keeps defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/convert", h.ConvertQuote)

		uc.EXPECT().Convert(gomock.Any(), gomock.Any(), "q1", usecase.ProjectOverrides{}).
			Return(entities.Project{ID: "p1", QuoteID: "q1"}, nil)

		req := asAdmin(httptest.NewRequest(http.MethodPost, "/v1/quotes/q1/convert", nil))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quote_id"] != "q1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("override payload forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/convert", h.ConvertQuote)

		uc.EXPECT().Convert(gomock.Any(), gomock.Any(), "q1", usecase.ProjectOverrides{ProjectName: "Custom build", TotalAmount: 1200}).
			Return(entities.Project{ID: "p1"}, nil)

		req := asAdmin(httptest.NewRequest(http.MethodPost, "/v1/quotes/q1/convert", bytes.NewBufferString(`{"project_name":"Custom build","total_amount":1200}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/convert", h.ConvertQuote)

		req := asAdmin(httptest.NewRequest(http.MethodPost, "/v1/quotes/q1/convert", bytes.NewBufferString("{")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not eligible maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/convert", h.ConvertQuote)

		uc.EXPECT().Convert(gomock.Any(), gomock.Any(), "q1", gomock.Any()).
			Return(entities.Project{}, usecase.ErrQuoteNotEligible)

		req := asAdmin(httptest.NewRequest(http.MethodPost, "/v1/quotes/q1/convert", nil))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("partial conversion maps to retryable 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/convert", h.ConvertQuote)

		partial := &usecase.PartialConversionError{QuoteID: "q1", ProjectID: "p1", Err: errors.New("db down")}
		uc.EXPECT().Convert(gomock.Any(), gomock.Any(), "q1", gomock.Any()).
			Return(entities.Project{}, partial)

		req := asAdmin(httptest.NewRequest(http.MethodPost, "/v1/quotes/q1/convert", nil))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "CONVERSION_INCOMPLETE" {
			t.Fatalf("unexpected error code: %s", w.Body.String())
		}
	})
}

func TestProjectHandler_CRUD(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create missing name rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := asAdmin(httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"client_id":"u1"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Project{ID: "p1", ProjectName: "Rebrand"}, nil)

		req := asAdmin(httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"project_name":"Rebrand","client_id":"u1"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("patch status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:id/status", h.PatchProjectStatus)

		uc.EXPECT().SetStatus(gomock.Any(), gomock.Any(), "p1", entities.ProjectStatusInProgress).
			Return(entities.Project{ID: "p1", Status: entities.ProjectStatusInProgress}, nil)

		req := asAdmin(httptest.NewRequest(http.MethodPatch, "/v1/projects/p1/status", bytes.NewBufferString(`{"status":"in-progress"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete returns no content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.DELETE("/v1/projects/:id", h.DeleteProject)

		uc.EXPECT().Delete(gomock.Any(), gomock.Any(), "p1").Return(nil)

		req := asAdmin(httptest.NewRequest(http.MethodDelete, "/v1/projects/p1", nil))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:id", h.GetProject)

		uc.EXPECT().GetByID(gomock.Any(), "p-missing").Return(entities.Project{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapProjectError(t *testing.T) {
	partial := &usecase.PartialConversionError{QuoteID: "q1", ProjectID: "p1", Err: errors.New("db")}
	if got := mapProjectError(partial); got.HTTPStatus != http.StatusInternalServerError || got.Code != "CONVERSION_INCOMPLETE" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if got := mapProjectError(usecase.ErrQuoteNotEligible); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapProjectError(usecase.ErrQuoteNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapProjectError(usecase.ErrProjectNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapProjectError(usecase.ErrMissingProjectName); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapProjectError(usecase.ErrActorForbidden); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapProjectError(interfaces.ErrStorageUnavailable); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapProjectError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
