package response

import (
	"time"

	"whitepaper_billing/internal/domain/entities"
	"whitepaper_billing/internal/domain/money"
)

type LineItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TaxRate     float64 `json:"tax_rate"`
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

type InvoiceResponse struct {
	ID                 string             `json:"id"`
	Number             string             `json:"number"`
	Client             ClientResponse     `json:"client"`
	IssueDate          time.Time          `json:"issue_date"`
	DueDate            time.Time          `json:"due_date"`
	Items              []LineItemResponse `json:"items"`
	Notes              string             `json:"notes,omitempty"`
	Terms              string             `json:"terms,omitempty"`
	Status             string             `json:"status"`
	Recurrence         string             `json:"recurrence"`
	NextGenerationDate *time.Time         `json:"next_generation_date,omitempty"`
	Subtotal           float64            `json:"subtotal"`
	TaxTotal           float64            `json:"tax_total"`
	Total              float64            `json:"total"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:                 inv.ID,
		Number:             inv.Number,
		Client:             FromClient(inv.Client),
		IssueDate:          inv.IssueDate,
		DueDate:            inv.DueDate,
		Items:              fromLineItems(inv.Items),
		Notes:              inv.Notes,
		Terms:              inv.Terms,
		Status:             string(inv.Status),
		Recurrence:         string(inv.Recurrence),
		NextGenerationDate: optionalTime(inv.NextGenerationDate),
		Subtotal:           inv.Subtotal.InexactFloat64(),
		TaxTotal:           inv.TaxTotal.InexactFloat64(),
		Total:              inv.Total.InexactFloat64(),
		CreatedAt:          inv.CreatedAt,
		UpdatedAt:          inv.UpdatedAt,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, LineItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity.InexactFloat64(),
			UnitPrice:   item.UnitPrice.InexactFloat64(),
			TaxRate:     item.TaxRate.InexactFloat64(),
			Subtotal:    money.LineSubtotal(item).InexactFloat64(),
			Tax:         money.LineTax(item).InexactFloat64(),
			Total:       money.LineTotal(item).InexactFloat64(),
		})
	}
	return out
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
