package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the invoice lifecycle. The set is closed.

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// Recurrence tags whether and how often an invoice regenerates.

type Recurrence string

const (
	RecurrenceNone      Recurrence = "none"
	RecurrenceWeekly    Recurrence = "weekly"
	RecurrenceMonthly   Recurrence = "monthly"
	RecurrenceQuarterly Recurrence = "quarterly"
	RecurrenceYearly    Recurrence = "yearly"
)

func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceWeekly, RecurrenceMonthly, RecurrenceQuarterly, RecurrenceYearly:
		return true
	}
	return false
}

// NextFrom returns the next generation date for an issue date, or the zero
// time when the recurrence is none.
func (r Recurrence) NextFrom(issue time.Time) time.Time {
	switch r {
	case RecurrenceWeekly:
		return issue.AddDate(0, 0, 7)
	case RecurrenceMonthly:
		return issue.AddDate(0, 1, 0)
	case RecurrenceQuarterly:
		return issue.AddDate(0, 3, 0)
	case RecurrenceYearly:
		return issue.AddDate(1, 0, 0)
	}
	return time.Time{}
}

// Invoice is the invoice aggregate: header, client snapshot, item rows and
// computed totals.
//
// Storage model (DynamoDB):
//   - header PK: id (invoices table)
//   - item rows: document_items table, PK document_id, SK item id
//
// Invariants:
//   - Subtotal, TaxTotal and Total always equal the sums recomputed from
//     Items; they are restored from item rows on every load.
//   - Items is non-empty for any persisted invoice.

type Invoice struct {
	ID                 string          `json:"id"`
	Number             string          `json:"number"`
	Client             Client          `json:"client"`
	IssueDate          time.Time       `json:"issue_date"`
	DueDate            time.Time       `json:"due_date"`
	Items              []LineItem      `json:"items"`
	Notes              string          `json:"notes,omitempty"`
	Terms              string          `json:"terms,omitempty"`
	Status             InvoiceStatus   `json:"status"`
	Recurrence         Recurrence      `json:"recurrence"`
	NextGenerationDate time.Time       `json:"next_generation_date,omitempty"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	TaxTotal           decimal.Decimal `json:"tax_total"`
	Total              decimal.Decimal `json:"total"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
