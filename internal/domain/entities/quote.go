package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus is the quote lifecycle. The set is closed.

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}

// Quote is the quote aggregate. It mirrors Invoice except for the status set,
// the expiry date in place of a due date, and the absence of recurrence.
//
// Storage model (DynamoDB):
//   - header PK: id (quotes table)
//   - item rows: document_items table, PK document_id, SK item id

type Quote struct {
	ID         string          `json:"id"`
	Number     string          `json:"number"`
	Client     Client          `json:"client"`
	IssueDate  time.Time       `json:"issue_date"`
	ExpiryDate time.Time       `json:"expiry_date"`
	Items      []LineItem      `json:"items"`
	Notes      string          `json:"notes,omitempty"`
	Terms      string          `json:"terms,omitempty"`
	Status     QuoteStatus     `json:"status"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxTotal   decimal.Decimal `json:"tax_total"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// DocumentKind distinguishes the two document aggregates where they share
// infrastructure (item rows, PDF filenames).

type DocumentKind string

const (
	DocumentKindInvoice DocumentKind = "invoice"
	DocumentKindQuote   DocumentKind = "quote"
)
