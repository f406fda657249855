package usecase

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"whitepaper_billing/internal/domain/entities"
)

var (
	testNow      = time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC)
	testClient   = entities.Client{ID: "client-1", Name: "ABC Corporation", Email: "john@abccorp.co.za", Address: "123 Main Street"}
	testSettings = entities.CompanySettings{
		Name:          "White Paper Systems",
		InvoicePrefix: "INV-",
		QuotePrefix:   "QTE-",
		InvoiceTerms:  "Payment is due within 30 days from the invoice date.",
		QuoteTerms:    "This quote is valid for 30 days from the issue date.",
	}
)

func validInvoiceDraft() InvoiceDraft {
	return InvoiceDraft{
		Number:    "INV-20240105-001",
		ClientID:  "client-1",
		IssueDate: testNow,
		DueDate:   testNow.AddDate(0, 1, 0),
		Items: []LineItemDraft{
			{Description: "Consulting", Quantity: 2, UnitPrice: 100, TaxRate: 15},
			{Description: "Support", Quantity: 2, UnitPrice: 100, TaxRate: 15},
		},
		Status:     entities.InvoiceStatusDraft,
		Recurrence: entities.RecurrenceNone,
	}
}

func TestBuildInvoice(t *testing.T) {
	t.Run("computes totals from items", func(t *testing.T) {
		inv, err := BuildInvoice(validInvoiceDraft(), testClient, testSettings, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !inv.Subtotal.Equal(decimal.NewFromInt(400)) {
			t.Fatalf("subtotal = %s, want 400", inv.Subtotal)
		}
		if !inv.TaxTotal.Equal(decimal.NewFromInt(60)) {
			t.Fatalf("tax total = %s, want 60", inv.TaxTotal)
		}
		if !inv.Total.Equal(decimal.NewFromInt(460)) {
			t.Fatalf("total = %s, want 460", inv.Total)
		}
		if inv.ID == "" {
			t.Fatalf("expected generated aggregate id")
		}
		for _, item := range inv.Items {
			if item.ID == "" {
				t.Fatalf("expected generated item id")
			}
		}
	})

	t.Run("never trusts caller-supplied totals", func(t *testing.T) {
		draft := validInvoiceDraft()
		draft.Items = draft.Items[:1]

		inv, err := BuildInvoice(draft, testClient, testSettings, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !inv.Total.Equal(decimal.NewFromInt(230)) {
			t.Fatalf("total = %s, want 230 recomputed from the single item", inv.Total)
		}
	})

	t.Run("rejects empty items", func(t *testing.T) {
		draft := validInvoiceDraft()
		draft.Items = nil

		_, err := BuildInvoice(draft, testClient, testSettings, testNow)
		var fieldErrs FieldErrors
		if !errors.As(err, &fieldErrs) {
			t.Fatalf("expected FieldErrors, got %v", err)
		}
		if fieldErrs[0].Field != "items" {
			t.Fatalf("unexpected field: %+v", fieldErrs)
		}
	})

	t.Run("rejects zero quantity without clamping", func(t *testing.T) {
		draft := validInvoiceDraft()
		draft.Items[0].Quantity = 0

		_, err := BuildInvoice(draft, testClient, testSettings, testNow)
		var fieldErrs FieldErrors
		if !errors.As(err, &fieldErrs) {
			t.Fatalf("expected FieldErrors, got %v", err)
		}
		if !strings.Contains(fieldErrs[0].Field, "items[0]") {
			t.Fatalf("unexpected field: %+v", fieldErrs)
		}
	})

	t.Run("rejects due date before issue date", func(t *testing.T) {
		draft := validInvoiceDraft()
		draft.DueDate = testNow.AddDate(0, 0, -1)

		_, err := BuildInvoice(draft, testClient, testSettings, testNow)
		var fieldErrs FieldErrors
		if !errors.As(err, &fieldErrs) {
			t.Fatalf("expected FieldErrors, got %v", err)
		}
		if fieldErrs[0].Field != "due_date" {
			t.Fatalf("unexpected field: %+v", fieldErrs)
		}
	})

	t.Run("synthesizes number and default terms", func(t *testing.T) {
		draft := validInvoiceDraft()
		draft.Number = ""
		draft.Terms = ""

		inv, err := BuildInvoice(draft, testClient, testSettings, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(inv.Number, "INV-20240105-") {
			t.Fatalf("unexpected synthesized number: %s", inv.Number)
		}
		if len(inv.Number) != len("INV-20240105-")+3 {
			t.Fatalf("expected 3-digit suffix: %s", inv.Number)
		}
		if inv.Terms != testSettings.InvoiceTerms {
			t.Fatalf("expected default terms, got %q", inv.Terms)
		}
	})

	t.Run("recurrence derives next generation date", func(t *testing.T) {
		draft := validInvoiceDraft()
		draft.Recurrence = entities.RecurrenceMonthly

		inv, err := BuildInvoice(draft, testClient, testSettings, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := testNow.AddDate(0, 1, 0); !inv.NextGenerationDate.Equal(want) {
			t.Fatalf("next generation date = %v, want %v", inv.NextGenerationDate, want)
		}
	})

	t.Run("no recurrence leaves next generation date unset", func(t *testing.T) {
		inv, err := BuildInvoice(validInvoiceDraft(), testClient, testSettings, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !inv.NextGenerationDate.IsZero() {
			t.Fatalf("expected zero next generation date, got %v", inv.NextGenerationDate)
		}
	})

	t.Run("keeps existing ids on edit", func(t *testing.T) {
		draft := validInvoiceDraft()
		draft.ID = "inv-1"
		draft.Items[0].ID = "item-1"

		inv, err := BuildInvoice(draft, testClient, testSettings, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.ID != "inv-1" || inv.Items[0].ID != "item-1" {
			t.Fatalf("ids were not preserved: %+v", inv)
		}
	})
}

func TestBuildQuote(t *testing.T) {
	draft := QuoteDraft{
		ClientID:   "client-1",
		IssueDate:  testNow,
		ExpiryDate: testNow.AddDate(0, 1, 0),
		Items: []LineItemDraft{
			{Description: "Design", Quantity: 1, UnitPrice: 500, TaxRate: 15},
		},
	}

	t.Run("defaults status, number and terms", func(t *testing.T) {
		q, err := BuildQuote(draft, testClient, testSettings, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusDraft {
			t.Fatalf("status = %s, want draft", q.Status)
		}
		if !strings.HasPrefix(q.Number, "QTE-20240105-") {
			t.Fatalf("unexpected synthesized number: %s", q.Number)
		}
		if q.Terms != testSettings.QuoteTerms {
			t.Fatalf("expected default quote terms, got %q", q.Terms)
		}
		if !q.Total.Equal(decimal.NewFromInt(575)) {
			t.Fatalf("total = %s, want 575", q.Total)
		}
	})

	t.Run("rejects expiry before issue", func(t *testing.T) {
		bad := draft
		bad.ExpiryDate = testNow.AddDate(0, 0, -1)

		_, err := BuildQuote(bad, testClient, testSettings, testNow)
		var fieldErrs FieldErrors
		if !errors.As(err, &fieldErrs) {
			t.Fatalf("expected FieldErrors, got %v", err)
		}
		if fieldErrs[0].Field != "expiry_date" {
			t.Fatalf("unexpected field: %+v", fieldErrs)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		bad := draft
		bad.Status = "approved"

		_, err := BuildQuote(bad, testClient, testSettings, testNow)
		var fieldErrs FieldErrors
		if !errors.As(err, &fieldErrs) {
			t.Fatalf("expected FieldErrors, got %v", err)
		}
	})
}
