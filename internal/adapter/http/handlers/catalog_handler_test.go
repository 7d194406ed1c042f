package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"orcamentix/internal/adapter/http/handlers/mocks"
	"orcamentix/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_ListUnits(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.GET("/v1/catalog/units", h.ListUnits)

	uc.EXPECT().ListUnits(gomock.Any()).Return([]string{"m²", "un", "h"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/catalog/units", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string][]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body["values"]) != 3 || body["values"][0] != "m²" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestCatalogHandler_AddUnit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/catalog/units", h.AddUnit)

		req := httptest.NewRequest(http.MethodPost, "/v1/catalog/units", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("new value returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/catalog/units", h.AddUnit)

		uc.EXPECT().AddUnit(gomock.Any(), "km").Return("km", true, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/catalog/units", bytes.NewBufferString(`{"nome":"km"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["nome"] != "km" || body["added"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("duplicate is a 200 no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/catalog/units", h.AddUnit)

		uc.EXPECT().AddUnit(gomock.Any(), "UN").Return("un", false, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/catalog/units", bytes.NewBufferString(`{"nome":"UN"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["nome"] != "un" || body["added"] != false {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_AddCategory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty name maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/catalog/categories", h.AddCategory)

		uc.EXPECT().AddCategory(gomock.Any(), "   ").Return("", false, usecase.ErrCatalogNameRequired)

		req := httptest.NewRequest(http.MethodPost, "/v1/catalog/categories", bytes.NewBufferString(`{"nome":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/catalog/categories", h.AddCategory)

		uc.EXPECT().AddCategory(gomock.Any(), "Elétrica").Return("Elétrica", true, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/catalog/categories", bytes.NewBufferString(`{"nome":"Elétrica"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}
