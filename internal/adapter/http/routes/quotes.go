package routes

import (
	"orcamentix/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, exportHandler *handlers.ExportHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.POST("/preview", quoteHandler.PreviewQuote)
		quotes.POST("/unsaved", quoteHandler.CheckUnsaved)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PUT("/:id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
		quotes.POST("/:id/duplicate", quoteHandler.DuplicateQuote)

		// Plan-gated export channels.
		quotes.GET("/:id/export/pdf", exportHandler.ExportPdf)
		quotes.GET("/:id/share/whatsapp", exportHandler.ShareWhatsapp)
		quotes.GET("/:id/share/email", exportHandler.ShareEmail)
	}
}
