package handlers

import (
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

func TestDashboardHandler_AdminDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forbidden without admin role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/admin", h.AdminDashboard)

		uc.EXPECT().AdminView(gomock.Any(), entities.Actor{Role: entities.RoleAnonymous}).
			Return(usecase.AdminDashboard{}, usecase.ErrActorForbidden)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/admin", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/admin", h.AdminDashboard)

		uc.EXPECT().AdminView(gomock.Any(), entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}).
			Return(usecase.AdminDashboard{TotalQuotes: 4, TotalRevenue: 300, ConversionRate: 50}, nil)

		req := asAdmin(httptest.NewRequest(http.MethodGet, "/v1/dashboard/admin", nil))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body usecase.AdminDashboard
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.TotalQuotes != 4 || body.TotalRevenue != 300 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDashboardHandler_ClientDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/client/:user_id", h.ClientDashboard)

		uc.EXPECT().ClientView(gomock.Any(), "u1").
			Return(usecase.ClientDashboard{UserID: "u1", TotalQuotes: 2, OutstandingBalance: 200}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/client/u1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body usecase.ClientDashboard
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.OutstandingBalance != 200 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("storage unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/client/:user_id", h.ClientDashboard)

		uc.EXPECT().ClientView(gomock.Any(), "u1").
			Return(usecase.ClientDashboard{}, interfaces.ErrStorageUnavailable)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/client/u1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestMapDashboardError(t *testing.T) {
	if got := mapDashboardError(usecase.ErrActorForbidden); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapDashboardError(usecase.ErrInvalidQuoteID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapDashboardError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
