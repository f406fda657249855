package request

import (
	"time"

	"whitepaper_billing/internal/domain/entities"
	"whitepaper_billing/internal/usecase"
)

// LineItemRequest is one raw item row. Amounts arrive as JSON numbers and are
// converted to exact decimals inside the document builder.

type LineItemRequest struct {
	ID          string  `json:"id"`
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TaxRate     float64 `json:"tax_rate"`
}

// InvoiceRequest is the payload for creating or editing an invoice. Dates are
// RFC 3339. Totals are never accepted from the caller.

type InvoiceRequest struct {
	Number     string            `json:"number"`
	ClientID   string            `json:"client_id" binding:"required"`
	IssueDate  time.Time         `json:"issue_date"`
	DueDate    time.Time         `json:"due_date"`
	Items      []LineItemRequest `json:"items"`
	Notes      string            `json:"notes"`
	Terms      string            `json:"terms"`
	Status     string            `json:"status"`
	Recurrence string            `json:"recurrence"`
}

func (r InvoiceRequest) ToDraft(id string) usecase.InvoiceDraft {
	return usecase.InvoiceDraft{
		ID:         id,
		Number:     r.Number,
		ClientID:   r.ClientID,
		IssueDate:  r.IssueDate,
		DueDate:    r.DueDate,
		Items:      toLineItemDrafts(r.Items),
		Notes:      r.Notes,
		Terms:      r.Terms,
		Status:     entities.InvoiceStatus(r.Status),
		Recurrence: entities.Recurrence(r.Recurrence),
	}
}

func toLineItemDrafts(reqs []LineItemRequest) []usecase.LineItemDraft {
	drafts := make([]usecase.LineItemDraft, 0, len(reqs))
	for _, it := range reqs {
		drafts = append(drafts, usecase.LineItemDraft{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TaxRate:     it.TaxRate,
		})
	}
	return drafts
}
