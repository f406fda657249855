package interfaces

import (
	"context"

	"whitepaper_billing/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for the invoice aggregate.
//
// Save is an upsert: the header row is replaced and the item rows are fully
// deleted and reinserted. Partial item updates are never performed, so header
// totals and item rows cannot drift apart.
//
// Delete removes item rows before the header row.
//
// Not-found is signaled by a zero-value entity and a nil error; the use case
// maps that to its sentinel.

type IInvoiceRepository interface {
	List(ctx context.Context) ([]entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	Save(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
}
