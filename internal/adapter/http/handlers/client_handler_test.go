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

func TestClientHandler_CreateClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients", h.CreateClient)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients", h.CreateClient)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(`{"email":"x@y.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("email taken maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients", h.CreateClient)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{}, usecase.ErrClientEmailTaken)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(`{"nome":"Ana","email":"ana@email.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("plan limit maps to forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients", h.CreateClient)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{}, usecase.ErrClientLimitReached)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(`{"nome":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/clients", h.CreateClient)

		uc.EXPECT().Create(gomock.Any(), usecase.ClientInput{Nome: "Ana Silva", Email: "ana@email.com"}).
			Return(entities.Client{ID: "c1", Nome: "Ana Silva", Email: "ana@email.com"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(`{"nome":"Ana Silva","email":"ana@email.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "c1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestClientHandler_ListClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClientUseCase(ctrl)
	h := NewClientHandler(uc)

	r := gin.New()
	r.GET("/v1/clients", h.ListClients)

	uc.EXPECT().List(gomock.Any(), "maria").Return([]entities.Client{{ID: "c1", Nome: "Maria Costa"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/clients?q=maria", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["nome"] != "Maria Costa" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestClientHandler_DeleteClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.DELETE("/v1/clients/:id", h.DeleteClient)

		uc.EXPECT().Delete(gomock.Any(), "c1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/clients/c1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.DELETE("/v1/clients/:id", h.DeleteClient)

		uc.EXPECT().Delete(gomock.Any(), "missing").Return(usecase.ErrClientNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/clients/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapClientError(t *testing.T) {
	if got := mapClientError(usecase.ErrClientNameRequired); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapClientError(usecase.ErrClientEmailInvalid); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapClientError(usecase.ErrClientEmailTaken); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapClientError(usecase.ErrClientPhoneTaken); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapClientError(usecase.ErrClientNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapClientError(usecase.ErrClientLimitReached); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapClientError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
