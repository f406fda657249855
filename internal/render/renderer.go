package render

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"whitepaper_billing/internal/domain/entities"
	"whitepaper_billing/internal/domain/money"
)

const (
	currencyPrefix  = "R "
	dateFormat      = "02 Jan 2006"
	datePlaceholder = "-"
)

// BuildInvoiceLayout renders an invoice into its printable layout. Totals are
// taken from the aggregate, which the repositories guarantee to match the item
// rows; per-line amounts are recomputed from the items.
func BuildInvoiceLayout(inv entities.Invoice, settings entities.CompanySettings) DocumentLayout {
	layout := DocumentLayout{
		Kind:             string(entities.DocumentKindInvoice),
		Title:            "INVOICE",
		Number:           inv.Number,
		StatusLabel:      strings.ToUpper(string(inv.Status)),
		IssueDateLabel:   "Issue Date",
		IssueDate:        FormatDate(inv.IssueDate),
		SecondDateLabel:  "Due Date",
		SecondDate:       FormatDate(inv.DueDate),
		Issuer:           issuerBlock(settings),
		RecipientHeading: "Bill To",
		Recipient:        recipientBlock(inv.Client),
		Lines:            lineRows(inv.Items),
		Totals: TotalsBlock{
			Subtotal: FormatAmount(inv.Subtotal),
			Tax:      FormatAmount(inv.TaxTotal),
			Total:    FormatAmount(inv.Total),
		},
		Notes:      inv.Notes,
		Terms:      inv.Terms,
		FooterNote: "Thank you for your business!",
	}
	if settings.BankDetails.BankName != "" || settings.BankDetails.AccountNumber != "" {
		layout.Bank = &BankBlock{
			BankName:      settings.BankDetails.BankName,
			AccountNumber: settings.BankDetails.AccountNumber,
			BranchCode:    settings.BankDetails.BranchCode,
			AccountType:   settings.BankDetails.AccountType,
		}
	}
	return layout
}

// BuildQuoteLayout renders a quote. Quotes carry no bank block; payment
// details only appear once a quote became an invoice.
func BuildQuoteLayout(q entities.Quote, settings entities.CompanySettings) DocumentLayout {
	return DocumentLayout{
		Kind:             string(entities.DocumentKindQuote),
		Title:            "QUOTE",
		Number:           q.Number,
		StatusLabel:      strings.ToUpper(string(q.Status)),
		IssueDateLabel:   "Issue Date",
		IssueDate:        FormatDate(q.IssueDate),
		SecondDateLabel:  "Valid Until",
		SecondDate:       FormatDate(q.ExpiryDate),
		Issuer:           issuerBlock(settings),
		RecipientHeading: "Prepared For",
		Recipient:        recipientBlock(q.Client),
		Lines:            lineRows(q.Items),
		Totals: TotalsBlock{
			Subtotal: FormatAmount(q.Subtotal),
			Tax:      FormatAmount(q.TaxTotal),
			Total:    FormatAmount(q.Total),
		},
		Notes:      q.Notes,
		Terms:      q.Terms,
		FooterNote: "Thank you for your business!",
	}
}

func issuerBlock(settings entities.CompanySettings) IssuerBlock {
	return IssuerBlock{
		Name:      settings.Name,
		Address:   settings.Address,
		Phone:     settings.Phone,
		Email:     settings.Email,
		Website:   settings.Website,
		VATNumber: settings.VATNumber,
	}
}

func recipientBlock(c entities.Client) RecipientBlock {
	return RecipientBlock{
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Address:       c.Address,
		Email:         c.Email,
		Phone:         c.Phone,
		VATNumber:     c.VATNumber,
	}
}

func lineRows(items []entities.LineItem) []LineRow {
	rows := make([]LineRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, LineRow{
			Description: item.Description,
			Quantity:    item.Quantity.String(),
			UnitPrice:   FormatAmount(item.UnitPrice),
			TaxRate:     item.TaxRate.String() + "%",
			Amount:      FormatAmount(money.LineSubtotal(item)),
		})
	}
	return rows
}

// FormatAmount renders a decimal with the currency prefix and exactly two
// fractional digits. This is the only rounding step in the system.
func FormatAmount(d decimal.Decimal) string {
	return currencyPrefix + d.StringFixed(2)
}

// FormatDate renders DD Mon YYYY; a zero date renders as a placeholder dash
// instead of failing the row.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return datePlaceholder
	}
	return t.Format(dateFormat)
}
