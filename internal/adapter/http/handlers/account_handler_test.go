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

func TestAccountHandler_GetAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAccountUseCase(ctrl)
	h := NewAccountHandler(uc)

	r := gin.New()
	r.GET("/v1/account", h.GetAccount)

	uc.EXPECT().Get(gomock.Any()).Return(entities.Account{
		Nome: "Usuário Demo",
		Plan: "basic",
		Caps: entities.ResolveCaps("basic"),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/account", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["plan"] != "basic" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
	caps, _ := body["caps"].(map[string]any)
	if caps == nil || caps["whatsapp"] != false {
		t.Fatalf("expected basic caps in response: %s", w.Body.String())
	}
	if _, present := body["upgradedAt"]; present {
		t.Fatalf("zero upgradedAt must be omitted: %s", w.Body.String())
	}
}

func TestAccountHandler_SwitchPlan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccountUseCase(ctrl)
		h := NewAccountHandler(uc)

		r := gin.New()
		r.PUT("/v1/account/plan", h.SwitchPlan)

		req := httptest.NewRequest(http.MethodPut, "/v1/account/plan", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccountUseCase(ctrl)
		h := NewAccountHandler(uc)

		r := gin.New()
		r.PUT("/v1/account/plan", h.SwitchPlan)

		uc.EXPECT().SwitchPlan(gomock.Any(), "gold").Return(entities.Account{}, usecase.ErrPlanUnknown)

		req := httptest.NewRequest(http.MethodPut, "/v1/account/plan", bytes.NewBufferString(`{"plan":"gold"}`))
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
		uc := mocks.NewMockIAccountUseCase(ctrl)
		h := NewAccountHandler(uc)

		r := gin.New()
		r.PUT("/v1/account/plan", h.SwitchPlan)

		uc.EXPECT().SwitchPlan(gomock.Any(), "premium").Return(entities.Account{
			Plan: "premium",
			Caps: entities.ResolveCaps("premium"),
		}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/account/plan", bytes.NewBufferString(`{"plan":"premium"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		caps, _ := body["caps"].(map[string]any)
		if caps == nil || caps["whatsapp"] != true || caps["maxQuotes"] != -1.0 {
			t.Fatalf("expected premium caps: %s", w.Body.String())
		}
	})
}

func TestAccountHandler_UpdateAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAccountUseCase(ctrl)
	h := NewAccountHandler(uc)

	r := gin.New()
	r.PUT("/v1/account", h.UpdateAccount)

	uc.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, input usecase.AccountInput) (entities.Account, error) {
		if input.Nome == nil || *input.Nome != "Carlos" {
			t.Fatalf("expected nome patch, got %+v", input)
		}
		if input.Email != nil {
			t.Fatalf("absent email must stay nil: %+v", input)
		}
		return entities.Account{Nome: "Carlos", Plan: "basic", Caps: entities.ResolveCaps("basic")}, nil
	})

	req := httptest.NewRequest(http.MethodPut, "/v1/account", bytes.NewBufferString(`{"nome":"Carlos"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAccountHandler_ResetAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAccountUseCase(ctrl)
	h := NewAccountHandler(uc)

	r := gin.New()
	r.POST("/v1/account/reset", h.ResetAccount)

	uc.EXPECT().Reset(gomock.Any()).Return(entities.Account{Plan: "basic", Caps: entities.ResolveCaps("basic")}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/account/reset", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["plan"] != "basic" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapAccountError(t *testing.T) {
	if got := mapAccountError(usecase.ErrPlanUnknown); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAccountError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
