package entities

import "github.com/shopspring/decimal"

// LineItem is one billable row within an invoice or quote.
//
// Invoices and quotes share this item shape; rows are stored in a single
// document_items table keyed by the parent document id and kind.
//
// Monetary representation:
//   - Quantity, UnitPrice and TaxRate are exact decimals. Derived amounts
//     (subtotal, tax, total) are never stored on the item; they are always
//     recomputed from these three fields.

type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}
