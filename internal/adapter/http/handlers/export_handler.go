package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"whitepaper_billing/internal/export"
	"whitepaper_billing/internal/usecase"
	"whitepaper_billing/pkg"
)

// ExportHandler streams generated PDFs as file downloads.

type ExportHandler struct {
	usecase usecase.IExportUseCase
}

func NewExportHandler(uc usecase.IExportUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

func (h *ExportHandler) ExportInvoice(c *gin.Context) {
	h.export(c, h.usecase.ExportInvoice)
}

func (h *ExportHandler) ExportQuote(c *gin.Context) {
	h.export(c, h.usecase.ExportQuote)
}

func (h *ExportHandler) export(c *gin.Context, run func(ctx context.Context, id string) (export.Artifact, error)) {
	id := c.Param("id")

	artifact, err := run(c.Request.Context(), id)
	if err != nil {
		log.Printf("[export][handler] export failed id=%s err=%v", id, err)
		appErr := mapExportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if artifact.URL != "" {
		c.Header("X-Document-URL", artifact.URL)
	}
	c.Header("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(artifact.Data)))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

func mapExportError(err error) *pkg.AppError {
	var stageErr *export.StageError
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, export.ErrExportInFlight):
		return pkg.NewDomainErrorSimple("EXPORT_IN_FLIGHT", "Another export is already in progress", http.StatusConflict)
	case errors.Is(err, export.ErrNothingToCapture):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CAPTURE", "Document is not ready to export", http.StatusUnprocessableEntity)
	case errors.As(err, &stageErr) && stageErr.Stage == export.StageDelivering:
		return pkg.NewDomainError("DELIVERY_FAILED", "Failed to deliver the exported document", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
