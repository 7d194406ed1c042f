package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orcamentix/internal/adapter/http/handlers/mocks"
	"orcamentix/internal/domain/entities"
	"orcamentix/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.Join(usecase.ErrQuoteClientRequired, usecase.ErrQuoteItemsRequired))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success with coerced string numbers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, input usecase.QuoteInput) (entities.Quote, error) {
			if input.Margem != 10 || input.Desconto != 5 {
				t.Fatalf("percentages not coerced: %+v", input)
			}
			return entities.Quote{
				ID:        "q1",
				Status:    entities.QuoteStatusRascunho,
				Cliente:   *input.Cliente,
				Itens:     input.Itens,
				Margem:    input.Margem,
				Desconto:  input.Desconto,
				Subtotal:  200,
				Total:     210,
				CreatedAt: now,
				UpdatedAt: now,
				History:   []entities.QuoteRevision{},
			}, nil
		})

		payload := `{
			"cliente": {"id": "c1", "nome": "Ana"},
			"itens": [{"nome": "Pintura", "preco": "100", "qtd": 2}],
			"margem": "10",
			"desconto": 5
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "q1" || body["total"] != 210.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["history"] == nil {
			t.Fatalf("history must serialize as an array: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_UpdateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PUT("/v1/quotes/:id", h.UpdateQuote)

		uc.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/missing", bytes.NewBufferString(`{"margem":15}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("absent fields stay nil in the patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PUT("/v1/quotes/:id", h.UpdateQuote)

		uc.EXPECT().Update(gomock.Any(), "q1", gomock.Any()).DoAndReturn(func(_ any, _ string, patch usecase.QuotePatch) (entities.Quote, error) {
			if patch.Status == nil || *patch.Status != "enviado" {
				t.Fatalf("expected status patch, got %+v", patch)
			}
			if patch.Itens != nil || patch.Margem != nil {
				t.Fatalf("absent fields leaked into the patch: %+v", patch)
			}
			return entities.Quote{ID: "q1", Status: entities.QuoteStatusEnviado}, nil
		})

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/q1", bytes.NewBufferString(`{"status":"enviado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_DuplicateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.POST("/v1/quotes/:id/duplicate", h.DuplicateQuote)

	uc.EXPECT().Duplicate(gomock.Any(), "q1").Return(entities.Quote{ID: "q2", Status: entities.QuoteStatusRascunho}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q1/duplicate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["id"] != "q2" || body["status"] != "rascunho" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestQuoteHandler_PreviewQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.POST("/v1/quotes/preview", h.PreviewQuote)

	uc.EXPECT().Preview(gomock.Any()).Return(entities.Totals{Subtotal: 250, MargemValor: 25, DescontoValor: 12.5, Total: 262.5})

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/preview", bytes.NewBufferString(`{"itens":[{"preco":100,"qtd":2},{"preco":50,"qtd":1}],"margem":10,"desconto":5}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["subtotal"] != 250.0 || body["total"] != 262.5 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestQuoteHandler_CheckUnsaved(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.POST("/v1/quotes/unsaved", h.CheckUnsaved)

	uc.EXPECT().Unsaved(gomock.Any(), "q1", gomock.Any()).Return(true, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/unsaved", bytes.NewBufferString(`{"id":"q1","draft":{"margem":20}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["unsaved"] != true {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapQuoteError(t *testing.T) {
	if got := mapQuoteError(usecase.ErrQuoteClientRequired); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrQuoteItemsRequired); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrQuoteInvalidStatus); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrQuoteNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(usecase.ErrQuoteLimitReached); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapQuoteError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
