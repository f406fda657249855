package usecase

import (
	"context"
	"fmt"
	"strings"

	"whitepaper_billing/internal/domain/entities"
	"whitepaper_billing/internal/export"
	"whitepaper_billing/internal/render"
	"whitepaper_billing/internal/usecase/interfaces"
)

// IExportUseCase produces downloadable PDF artifacts for stored documents.

type IExportUseCase interface {
	ExportInvoice(ctx context.Context, id string) (export.Artifact, error)
	ExportQuote(ctx context.Context, id string) (export.Artifact, error)
}

type ExportUseCase struct {
	invoiceRepo  interfaces.IInvoiceRepository
	quoteRepo    interfaces.IQuoteRepository
	settingsRepo interfaces.ICompanySettingsRepository
	pipeline     *export.Pipeline
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(invoiceRepo interfaces.IInvoiceRepository, quoteRepo interfaces.IQuoteRepository, settingsRepo interfaces.ICompanySettingsRepository, pipeline *export.Pipeline) *ExportUseCase {
	return &ExportUseCase{invoiceRepo: invoiceRepo, quoteRepo: quoteRepo, settingsRepo: settingsRepo, pipeline: pipeline}
}

func (u *ExportUseCase) ExportInvoice(ctx context.Context, id string) (export.Artifact, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return export.Artifact{}, ErrInvalidInvoiceID
	}

	inv, err := u.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return export.Artifact{}, err
	}
	if inv.ID == "" {
		return export.Artifact{}, ErrInvoiceNotFound
	}

	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return export.Artifact{}, err
	}

	layout := render.BuildInvoiceLayout(inv, settings)
	return u.pipeline.Export(ctx, &layout, documentFilename(entities.DocumentKindInvoice, inv.Number))
}

func (u *ExportUseCase) ExportQuote(ctx context.Context, id string) (export.Artifact, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return export.Artifact{}, ErrInvalidQuoteID
	}

	q, err := u.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return export.Artifact{}, err
	}
	if q.ID == "" {
		return export.Artifact{}, ErrQuoteNotFound
	}

	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return export.Artifact{}, err
	}

	layout := render.BuildQuoteLayout(q, settings)
	return u.pipeline.Export(ctx, &layout, documentFilename(entities.DocumentKindQuote, q.Number))
}

func documentFilename(kind entities.DocumentKind, number string) string {
	return fmt.Sprintf("%s-%s.pdf", kind, number)
}
