package interfaces

import (
	"context"

	"whitepaper_billing/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for the quote aggregate.
// Save/Delete follow the same full-replacement contract as IInvoiceRepository.

type IQuoteRepository interface {
	List(ctx context.Context) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Save(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
}
