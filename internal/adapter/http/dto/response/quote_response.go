package response

import (
	"time"

	"whitepaper_billing/internal/domain/entities"
)

type QuoteResponse struct {
	ID         string             `json:"id"`
	Number     string             `json:"number"`
	Client     ClientResponse     `json:"client"`
	IssueDate  time.Time          `json:"issue_date"`
	ExpiryDate time.Time          `json:"expiry_date"`
	Items      []LineItemResponse `json:"items"`
	Notes      string             `json:"notes,omitempty"`
	Terms      string             `json:"terms,omitempty"`
	Status     string             `json:"status"`
	Subtotal   float64            `json:"subtotal"`
	TaxTotal   float64            `json:"tax_total"`
	Total      float64            `json:"total"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:         q.ID,
		Number:     q.Number,
		Client:     FromClient(q.Client),
		IssueDate:  q.IssueDate,
		ExpiryDate: q.ExpiryDate,
		Items:      fromLineItems(q.Items),
		Notes:      q.Notes,
		Terms:      q.Terms,
		Status:     string(q.Status),
		Subtotal:   q.Subtotal.InexactFloat64(),
		TaxTotal:   q.TaxTotal.InexactFloat64(),
		Total:      q.Total.InexactFloat64(),
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
