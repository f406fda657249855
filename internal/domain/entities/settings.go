package entities

// BankDetails is the issuer's banking block rendered on invoices.

type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	BranchCode    string `json:"branch_code"`
	AccountType   string `json:"account_type"`
}

// CompanySettings is the singleton issuer record: identity rendered on
// documents plus numbering prefixes and default terms used when building a
// new document.
//
// Storage model (DynamoDB):
//   - PK: id, fixed to the single value "company"

type CompanySettings struct {
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	VATNumber     string      `json:"vat_number"`
	Website       string      `json:"website"`
	BankDetails   BankDetails `json:"bank_details"`
	InvoicePrefix string      `json:"invoice_prefix"`
	QuotePrefix   string      `json:"quote_prefix"`
	InvoiceTerms  string      `json:"invoice_terms"`
	QuoteTerms    string      `json:"quote_terms"`
}

// DefaultCompanySettings is returned when the settings record has never been
// written, so document numbering still has usable prefixes.
func DefaultCompanySettings() CompanySettings {
	return CompanySettings{
		InvoicePrefix: "INV-",
		QuotePrefix:   "QTE-",
	}
}
