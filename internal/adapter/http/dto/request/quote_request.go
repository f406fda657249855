package request

import (
	"time"

	"whitepaper_billing/internal/domain/entities"
	"whitepaper_billing/internal/usecase"
)

// QuoteRequest is the payload for creating or editing a quote.

type QuoteRequest struct {
	Number     string            `json:"number"`
	ClientID   string            `json:"client_id" binding:"required"`
	IssueDate  time.Time         `json:"issue_date"`
	ExpiryDate time.Time         `json:"expiry_date"`
	Items      []LineItemRequest `json:"items"`
	Notes      string            `json:"notes"`
	Terms      string            `json:"terms"`
	Status     string            `json:"status"`
}

func (r QuoteRequest) ToDraft(id string) usecase.QuoteDraft {
	return usecase.QuoteDraft{
		ID:         id,
		Number:     r.Number,
		ClientID:   r.ClientID,
		IssueDate:  r.IssueDate,
		ExpiryDate: r.ExpiryDate,
		Items:      toLineItemDrafts(r.Items),
		Notes:      r.Notes,
		Terms:      r.Terms,
		Status:     entities.QuoteStatus(r.Status),
	}
}
