package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	response "orcamentix/internal/adapter/http/dto/response"
	"orcamentix/internal/usecase"
	"orcamentix/pkg"

	"github.com/gin-gonic/gin"
)

// ExportHandler handles the plan-gated export channels: PDF download and
// the WhatsApp/email share links.
type ExportHandler struct {
	usecase usecase.IExportUseCase
}

func NewExportHandler(uc usecase.IExportUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

// ExportPdf streams the rendered document. The template matches the
// account's plan tier.
func (h *ExportHandler) ExportPdf(c *gin.Context) {
	file, err := h.usecase.GeneratePdf(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapExportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, "application/pdf", file.Content)
}

func (h *ExportHandler) ShareWhatsapp(c *gin.Context) {
	h.shareLink(c, h.usecase.WhatsappLink)
}

func (h *ExportHandler) ShareEmail(c *gin.Context) {
	h.shareLink(c, h.usecase.EmailLink)
}

func (h *ExportHandler) shareLink(c *gin.Context, builder func(ctx context.Context, quoteID string) (string, error)) {
	url, err := builder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapExportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ShareLinkResponse{URL: url})
}

func mapExportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCapabilityDenied):
		return pkg.NewDomainErrorSimple("CAPABILITY_DENIED", "Feature not available in current plan", http.StatusForbidden)
	case errors.Is(err, usecase.ErrExportNotReady):
		return pkg.NewDomainErrorSimple("EXPORT_NOT_READY", "Quote needs a client and at least one item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
