package response

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"whitepaper_billing/internal/domain/entities"
)

func TestFromInvoice(t *testing.T) {
	now := time.Now().UTC()
	next := now.AddDate(0, 1, 0)
	inv := entities.Invoice{
		ID:     "inv-1",
		Number: "INV-20240105-001",
		Client: entities.Client{ID: "cli-1", Name: "Acme Ltd"},
		Items: []entities.LineItem{{
			ID:          "item-1",
			Description: "Consulting",
			Quantity:    decimal.NewFromInt(2),
			UnitPrice:   decimal.NewFromInt(100),
			TaxRate:     decimal.NewFromInt(15),
		}},
		Status:             entities.InvoiceStatusSent,
		Recurrence:         entities.RecurrenceMonthly,
		NextGenerationDate: next,
		Subtotal:           decimal.NewFromInt(200),
		TaxTotal:           decimal.NewFromInt(30),
		Total:              decimal.NewFromInt(230),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	res := FromInvoice(inv)
	if res.ID != "inv-1" || res.Number != "INV-20240105-001" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Client.Name != "Acme Ltd" {
		t.Fatalf("unexpected client: %+v", res.Client)
	}
	if res.Subtotal != 200 || res.TaxTotal != 30 || res.Total != 230 {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if len(res.Items) != 1 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	item := res.Items[0]
	if item.Subtotal != 200 || item.Tax != 30 || item.Total != 230 {
		t.Fatalf("unexpected item amounts: %+v", item)
	}
	if res.Status != "sent" || res.Recurrence != "monthly" {
		t.Fatalf("unexpected enums: %+v", res)
	}
	if res.NextGenerationDate == nil || !res.NextGenerationDate.Equal(next) {
		t.Fatalf("unexpected next generation date: %+v", res.NextGenerationDate)
	}
}

func TestFromInvoice_NoRecurrence(t *testing.T) {
	res := FromInvoice(entities.Invoice{ID: "inv-1", Recurrence: entities.RecurrenceNone})
	if res.NextGenerationDate != nil {
		t.Fatalf("expected nil next generation date, got %v", res.NextGenerationDate)
	}
}

func TestFromQuote(t *testing.T) {
	q := entities.Quote{
		ID:       "qte-1",
		Number:   "QTE-20240105-001",
		Status:   entities.QuoteStatusAccepted,
		Subtotal: decimal.NewFromInt(500),
		TaxTotal: decimal.NewFromInt(75),
		Total:    decimal.NewFromInt(575),
	}

	res := FromQuote(q)
	if res.ID != "qte-1" || res.Status != "accepted" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Total != 575 {
		t.Fatalf("unexpected total: %v", res.Total)
	}
}
