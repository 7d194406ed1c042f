package handlers

import (
	"errors"
	"net/http"

	request "orcamentix/internal/adapter/http/dto/request"
	response "orcamentix/internal/adapter/http/dto/response"
	"orcamentix/internal/usecase"
	"orcamentix/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAccountPayload = pkg.NewDomainErrorSimple("INVALID_ACCOUNT_INPUT", "Invalid account payload", http.StatusBadRequest)
)

// AccountHandler handles the single local account: profile, company data
// and plan switching.
type AccountHandler struct {
	usecase usecase.IAccountUseCase
}

func NewAccountHandler(uc usecase.IAccountUseCase) *AccountHandler {
	return &AccountHandler{usecase: uc}
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		appErr := mapAccountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAccount(account))
}

func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	var payload request.AccountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAccountPayload.HTTPStatus, errInvalidAccountPayload.ToHTTPError())
		return
	}

	account, err := h.usecase.Update(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapAccountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAccount(account))
}

// SwitchPlan changes the plan tier and rebuilds the capability set in the
// same write.
func (h *AccountHandler) SwitchPlan(c *gin.Context) {
	var payload request.PlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAccountPayload.HTTPStatus, errInvalidAccountPayload.ToHTTPError())
		return
	}

	account, err := h.usecase.SwitchPlan(c.Request.Context(), payload.Plan)
	if err != nil {
		appErr := mapAccountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAccount(account))
}

// ResetAccount restores the demo defaults on the basic plan.
func (h *AccountHandler) ResetAccount(c *gin.Context) {
	account, err := h.usecase.Reset(c.Request.Context())
	if err != nil {
		appErr := mapAccountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAccount(account))
}

func mapAccountError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPlanUnknown):
		return pkg.NewDomainErrorSimple("UNKNOWN_PLAN", "Unknown plan tier", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
