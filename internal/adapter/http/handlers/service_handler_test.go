package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"orcamentix/internal/adapter/http/handlers/mocks"
	"orcamentix/internal/domain/entities"
	"orcamentix/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestServiceHandler_CreateService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.CreateService)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.CreateService)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Service{}, usecase.ErrServiceExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"nome":"Pintura","preco":35.5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success with string price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.CreateService)

		uc.EXPECT().Create(gomock.Any(), usecase.ServiceInput{Nome: "Pintura interna", Preco: 35.5, Unidade: "m²", Categoria: "Pintura"}).
			Return(entities.Service{ID: "s1", Nome: "Pintura interna", Preco: 35.5, Unidade: "m²", Categoria: "Pintura"}, nil)

		payload := `{"nome":"Pintura interna","preco":"35,5","unidade":"m²","categoria":"Pintura"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "s1" || body["preco"] != 35.5 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestServiceHandler_UpdateService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceUseCase(ctrl)
	h := NewServiceHandler(uc)

	r := gin.New()
	r.PUT("/v1/services/:id", h.UpdateService)

	uc.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(entities.Service{}, usecase.ErrServiceNotFound)

	req := httptest.NewRequest(http.MethodPut, "/v1/services/missing", bytes.NewBufferString(`{"nome":"Pintura"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestServiceHandler_ListServices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceUseCase(ctrl)
	h := NewServiceHandler(uc)

	r := gin.New()
	r.GET("/v1/services", h.ListServices)

	uc.EXPECT().List(gomock.Any(), "").Return([]entities.Service{{ID: "s1", Nome: "Pintura interna"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapServiceError(t *testing.T) {
	if got := mapServiceError(usecase.ErrServiceNameRequired); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapServiceError(usecase.ErrCatalogNameRequired); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapServiceError(usecase.ErrServiceExists); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapServiceError(usecase.ErrServiceNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapServiceError(usecase.ErrServiceLimitReached); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapServiceError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
