package routes

import (
	"whitepaper_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients  = "/clients"
	PathInvoices = "/invoices"
	PathQuotes   = "/quotes"
	PathSettings = "/settings"
)

func addBillingRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	invoiceHandler *handlers.InvoiceHandler,
	quoteHandler *handlers.QuoteHandler,
	settingsHandler *handlers.SettingsHandler,
	paymentHandler *handlers.PaymentHandler,
	exportHandler *handlers.ExportHandler,
) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", clientHandler.List)
		clients.POST("", clientHandler.Create)
		clients.GET("/:id", clientHandler.Get)
		clients.PUT("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.List)
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
		invoices.GET("/:id/pdf", exportHandler.ExportInvoice)
		invoices.POST("/:id/payments", paymentHandler.Create)
		invoices.GET("/:id/payments", paymentHandler.List)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.List)
		quotes.POST("", quoteHandler.Create)
		quotes.GET("/:id", quoteHandler.Get)
		quotes.PUT("/:id", quoteHandler.Update)
		quotes.DELETE("/:id", quoteHandler.Delete)
		quotes.GET("/:id/pdf", exportHandler.ExportQuote)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.Get)
		settings.PUT("", settingsHandler.Update)
	}
}
