package usecase

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"whitepaper_billing/internal/domain/entities"
	"whitepaper_billing/internal/domain/money"
)

// FieldError reports one invalid draft field.

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the full validation outcome for a draft. It satisfies error
// so handlers can map it to a 400 with per-field detail.

type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "invalid draft: " + strings.Join(msgs, "; ")
}

// LineItemDraft is one raw item row from a form submission.

type LineItemDraft struct {
	ID          string
	Description string
	Quantity    float64
	UnitPrice   float64
	TaxRate     float64
}

// InvoiceDraft is the locally-owned form state for creating or editing an
// invoice. ID is empty on first save.

type InvoiceDraft struct {
	ID         string
	Number     string
	ClientID   string
	IssueDate  time.Time
	DueDate    time.Time
	Items      []LineItemDraft
	Notes      string
	Terms      string
	Status     entities.InvoiceStatus
	Recurrence entities.Recurrence
}

// QuoteDraft mirrors InvoiceDraft for quotes.

type QuoteDraft struct {
	ID         string
	Number     string
	ClientID   string
	IssueDate  time.Time
	ExpiryDate time.Time
	Items      []LineItemDraft
	Notes      string
	Terms      string
	Status     entities.QuoteStatus
}

// BuildInvoice validates a draft against a resolved client and settings and
// produces the fully computed aggregate. Totals are always recomputed here;
// client-supplied totals are never trusted. Missing ids are assigned, a blank
// number is synthesized from the settings prefix, blank terms fall back to the
// settings default.
func BuildInvoice(draft InvoiceDraft, client entities.Client, settings entities.CompanySettings, now time.Time) (entities.Invoice, error) {
	var errs FieldErrors

	status := draft.Status
	if status == "" {
		status = entities.InvoiceStatusDraft
	}
	if !status.Valid() {
		errs = append(errs, FieldError{Field: "status", Message: "unknown invoice status"})
	}

	recurrence := draft.Recurrence
	if recurrence == "" {
		recurrence = entities.RecurrenceNone
	}
	if !recurrence.Valid() {
		errs = append(errs, FieldError{Field: "recurrence", Message: "unknown recurrence"})
	}

	errs = append(errs, validateDates("due_date", draft.IssueDate, draft.DueDate)...)
	items, itemErrs := buildItems(draft.Items)
	errs = append(errs, itemErrs...)

	if len(errs) > 0 {
		return entities.Invoice{}, errs
	}

	id := draft.ID
	if id == "" {
		id = uuid.NewString()
	}
	number := strings.TrimSpace(draft.Number)
	if number == "" {
		number = synthesizeNumber(settings.InvoicePrefix, now)
	}
	terms := draft.Terms
	if terms == "" {
		terms = settings.InvoiceTerms
	}

	inv := entities.Invoice{
		ID:         id,
		Number:     number,
		Client:     client,
		IssueDate:  draft.IssueDate,
		DueDate:    draft.DueDate,
		Items:      items,
		Notes:      draft.Notes,
		Terms:      terms,
		Status:     status,
		Recurrence: recurrence,
		Subtotal:   money.DocumentSubtotal(items),
		TaxTotal:   money.DocumentTax(items),
		Total:      money.DocumentTotal(items),
		CreatedAt:  now.UTC(),
		UpdatedAt:  now.UTC(),
	}
	if recurrence != entities.RecurrenceNone {
		inv.NextGenerationDate = recurrence.NextFrom(draft.IssueDate)
	}
	return inv, nil
}

// BuildQuote is the quote counterpart of BuildInvoice.
func BuildQuote(draft QuoteDraft, client entities.Client, settings entities.CompanySettings, now time.Time) (entities.Quote, error) {
	var errs FieldErrors

	status := draft.Status
	if status == "" {
		status = entities.QuoteStatusDraft
	}
	if !status.Valid() {
		errs = append(errs, FieldError{Field: "status", Message: "unknown quote status"})
	}

	errs = append(errs, validateDates("expiry_date", draft.IssueDate, draft.ExpiryDate)...)
	items, itemErrs := buildItems(draft.Items)
	errs = append(errs, itemErrs...)

	if len(errs) > 0 {
		return entities.Quote{}, errs
	}

	id := draft.ID
	if id == "" {
		id = uuid.NewString()
	}
	number := strings.TrimSpace(draft.Number)
	if number == "" {
		number = synthesizeNumber(settings.QuotePrefix, now)
	}
	terms := draft.Terms
	if terms == "" {
		terms = settings.QuoteTerms
	}

	return entities.Quote{
		ID:         id,
		Number:     number,
		Client:     client,
		IssueDate:  draft.IssueDate,
		ExpiryDate: draft.ExpiryDate,
		Items:      items,
		Notes:      draft.Notes,
		Terms:      terms,
		Status:     status,
		Subtotal:   money.DocumentSubtotal(items),
		TaxTotal:   money.DocumentTax(items),
		Total:      money.DocumentTotal(items),
		CreatedAt:  now.UTC(),
		UpdatedAt:  now.UTC(),
	}, nil
}

func validateDates(secondField string, issue, second time.Time) FieldErrors {
	var errs FieldErrors
	if issue.IsZero() {
		errs = append(errs, FieldError{Field: "issue_date", Message: "issue date is required"})
	}
	if second.IsZero() {
		errs = append(errs, FieldError{Field: secondField, Message: secondField + " is required"})
	}
	if !issue.IsZero() && !second.IsZero() && second.Before(issue) {
		errs = append(errs, FieldError{Field: secondField, Message: "must not be before the issue date"})
	}
	return errs
}

func buildItems(drafts []LineItemDraft) ([]entities.LineItem, FieldErrors) {
	if len(drafts) == 0 {
		return nil, FieldErrors{{Field: "items", Message: "at least one item is required"}}
	}

	var errs FieldErrors
	items := make([]entities.LineItem, 0, len(drafts))
	for i, d := range drafts {
		item := entities.LineItem{
			ID:          d.ID,
			Description: strings.TrimSpace(d.Description),
			Quantity:    decimalFromFloat(d.Quantity),
			UnitPrice:   decimalFromFloat(d.UnitPrice),
			TaxRate:     decimalFromFloat(d.TaxRate),
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if item.Description == "" {
			errs = append(errs, FieldError{Field: itemField(i, "description"), Message: "description is required"})
		}
		if err := money.ValidateItem(item); err != nil {
			errs = append(errs, FieldError{Field: itemField(i, "amounts"), Message: err.Error()})
		}
		items = append(items, item)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return items, nil
}

func decimalFromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func itemField(index int, name string) string {
	return fmt.Sprintf("items[%d].%s", index, name)
}

// synthesizeNumber is a convenience default, not a uniqueness guarantee; a
// collision surfaces as a save error from the repository's unique constraint.
func synthesizeNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s%s-%03d", prefix, now.Format("20060102"), rand.Intn(1000))
}
