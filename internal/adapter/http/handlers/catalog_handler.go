package handlers

import (
	"context"
	"net/http"

	request "orcamentix/internal/adapter/http/dto/request"
	response "orcamentix/internal/adapter/http/dto/response"
	"orcamentix/internal/usecase"
	"orcamentix/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)
)

// CatalogHandler handles the unit and category registries shared by the
// service catalog.
type CatalogHandler struct {
	usecase usecase.IServiceUseCase
}

func NewCatalogHandler(uc usecase.IServiceUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListUnits(c *gin.Context) {
	h.list(c, h.usecase.ListUnits)
}

func (h *CatalogHandler) AddUnit(c *gin.Context) {
	h.add(c, h.usecase.AddUnit)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	h.list(c, h.usecase.ListCategories)
}

func (h *CatalogHandler) AddCategory(c *gin.Context) {
	h.add(c, h.usecase.AddCategory)
}

func (h *CatalogHandler) list(c *gin.Context, lister func(ctx context.Context) ([]string, error)) {
	values, err := lister(c.Request.Context())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.CatalogResponse{Values: values})
}

// add accepts the new entry and reports whether it was actually appended;
// a case-insensitive duplicate is a no-op, not an error.
func (h *CatalogHandler) add(c *gin.Context, adder func(ctx context.Context, nome string) (string, bool, error)) {
	var payload request.CatalogEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	nome, added, err := adder(c.Request.Context(), payload.Nome)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	c.JSON(status, response.CatalogEntryResponse{Nome: nome, Added: added})
}
