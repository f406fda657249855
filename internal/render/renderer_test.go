package render

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"whitepaper_billing/internal/domain/entities"
)

func sampleSettings() entities.CompanySettings {
	return entities.CompanySettings{
		Name:      "White Paper Systems",
		Email:     "systems@whitepaperconcepts.co.za",
		Phone:     "+27 87 265 1890",
		Address:   "South Africa",
		VATNumber: "ZA123456789",
		Website:   "www.whitepaperconcepts.co.za",
		BankDetails: entities.BankDetails{
			BankName:      "First National Bank",
			AccountNumber: "12345678910",
			BranchCode:    "250655",
			AccountType:   "Business Account",
		},
		InvoicePrefix: "INV-",
		QuotePrefix:   "QTE-",
	}
}

func sampleInvoice() entities.Invoice {
	items := []entities.LineItem{
		{
			ID:          "item-1",
			Description: "Consulting",
			Quantity:    decimal.NewFromInt(2),
			UnitPrice:   decimal.NewFromInt(100),
			TaxRate:     decimal.NewFromInt(15),
		},
	}
	return entities.Invoice{
		ID:        "inv-1",
		Number:    "INV-20240105-001",
		Client:    entities.Client{ID: "client-1", Name: "ABC Corporation", Email: "john@abccorp.co.za", Address: "123 Main Street"},
		IssueDate: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2024, time.February, 4, 0, 0, 0, 0, time.UTC),
		Items:     items,
		Status:    entities.InvoiceStatusSent,
		Subtotal:  decimal.NewFromInt(200),
		TaxTotal:  decimal.NewFromInt(30),
		Total:     decimal.NewFromInt(230),
	}
}

func TestBuildInvoiceLayout(t *testing.T) {
	layout := BuildInvoiceLayout(sampleInvoice(), sampleSettings())

	if layout.Title != "INVOICE" || layout.Number != "INV-20240105-001" {
		t.Fatalf("unexpected header: %+v", layout)
	}
	if layout.StatusLabel != "SENT" {
		t.Fatalf("status label = %q, want SENT", layout.StatusLabel)
	}
	if layout.IssueDate != "05 Jan 2024" || layout.SecondDate != "04 Feb 2024" {
		t.Fatalf("unexpected dates: %q / %q", layout.IssueDate, layout.SecondDate)
	}
	if layout.SecondDateLabel != "Due Date" || layout.RecipientHeading != "Bill To" {
		t.Fatalf("unexpected labels: %+v", layout)
	}
	if layout.Issuer.Name != "White Paper Systems" || layout.Recipient.Name != "ABC Corporation" {
		t.Fatalf("unexpected parties: %+v", layout)
	}

	if len(layout.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(layout.Lines))
	}
	row := layout.Lines[0]
	if row.Quantity != "2" || row.UnitPrice != "R 100.00" || row.TaxRate != "15%" || row.Amount != "R 200.00" {
		t.Fatalf("unexpected row: %+v", row)
	}

	want := TotalsBlock{Subtotal: "R 200.00", Tax: "R 30.00", Total: "R 230.00"}
	if layout.Totals != want {
		t.Fatalf("totals = %+v, want %+v", layout.Totals, want)
	}

	if layout.Bank == nil || layout.Bank.BankName != "First National Bank" {
		t.Fatalf("expected bank block, got %+v", layout.Bank)
	}
	if !layout.Ready() {
		t.Fatalf("expected layout to be ready")
	}
}

func TestBuildQuoteLayout(t *testing.T) {
	q := entities.Quote{
		ID:         "quote-1",
		Number:     "QTE-20240105-001",
		Client:     entities.Client{ID: "client-1", Name: "XYZ Limited", Email: "jane@xyz.co.za", Address: "456 Oak Avenue"},
		IssueDate:  time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		ExpiryDate: time.Date(2024, time.February, 4, 0, 0, 0, 0, time.UTC),
		Items: []entities.LineItem{
			{ID: "item-1", Description: "Design", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("1234.5"), TaxRate: decimal.Zero},
		},
		Status:   entities.QuoteStatusDraft,
		Subtotal: decimal.RequireFromString("1234.5"),
		TaxTotal: decimal.Zero,
		Total:    decimal.RequireFromString("1234.5"),
	}

	layout := BuildQuoteLayout(q, sampleSettings())
	if layout.Title != "QUOTE" || layout.StatusLabel != "DRAFT" {
		t.Fatalf("unexpected header: %+v", layout)
	}
	if layout.SecondDateLabel != "Valid Until" || layout.RecipientHeading != "Prepared For" {
		t.Fatalf("unexpected labels: %+v", layout)
	}
	if layout.Totals.Total != "R 1234.50" {
		t.Fatalf("total = %q, want R 1234.50", layout.Totals.Total)
	}
	if layout.Bank != nil {
		t.Fatalf("quotes must not carry a bank block")
	}
}

func TestLayoutDeterminism(t *testing.T) {
	inv := sampleInvoice()
	settings := sampleSettings()

	first := BuildInvoiceLayout(inv, settings)
	second := BuildInvoiceLayout(inv, settings)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("layouts differ between identical renders")
	}
}

func TestFormatDatePlaceholder(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "-" {
		t.Fatalf("zero date = %q, want -", got)
	}
}

func TestLayoutReadiness(t *testing.T) {
	var nilLayout *DocumentLayout
	if nilLayout.Ready() {
		t.Fatalf("nil layout must not be ready")
	}

	empty := DocumentLayout{Number: "INV-1"}
	if empty.Ready() {
		t.Fatalf("layout without rows must not be ready")
	}
}
