// Package render turns a document aggregate plus the issuer settings into a
// deterministic printable layout. Every field is a pre-formatted string; the
// layout is the single place where monetary values are rounded to 2 decimals
// and dates are formatted for display.
package render

// IssuerBlock is the company header printed on every document.

type IssuerBlock struct {
	Name      string
	Address   string
	Phone     string
	Email     string
	Website   string
	VATNumber string
}

// RecipientBlock is the "Bill To" / "Prepared For" block.

type RecipientBlock struct {
	Name          string
	ContactPerson string
	Address       string
	Email         string
	Phone         string
	VATNumber     string
}

// LineRow is one formatted row of the item table.

type LineRow struct {
	Description string
	Quantity    string
	UnitPrice   string
	TaxRate     string
	Amount      string
}

// TotalsBlock is the formatted totals footer.

type TotalsBlock struct {
	Subtotal string
	Tax      string
	Total    string
}

// BankBlock is the issuer's payment details section.

type BankBlock struct {
	BankName      string
	AccountNumber string
	BranchCode    string
	AccountType   string
}

// DocumentLayout is the full printable view of an invoice or quote. It is
// built from the aggregate alone and carries no behavior; rendering it twice
// from the same input yields identical values.

type DocumentLayout struct {
	Kind             string
	Title            string
	Number           string
	StatusLabel      string
	IssueDateLabel   string
	IssueDate        string
	SecondDateLabel  string
	SecondDate       string
	Issuer           IssuerBlock
	RecipientHeading string
	Recipient        RecipientBlock
	Lines            []LineRow
	Totals           TotalsBlock
	Notes            string
	Terms            string
	Bank             *BankBlock
	FooterNote       string
}

// Ready reports whether the layout holds a capturable document view. An empty
// layout (no number or no rows) must not reach the PDF encoder.
func (l *DocumentLayout) Ready() bool {
	return l != nil && l.Number != "" && len(l.Lines) > 0
}
