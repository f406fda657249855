package response

import (
	"whitepaper_billing/internal/domain/entities"
)

type BankDetailsResponse struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	BranchCode    string `json:"branch_code"`
	AccountType   string `json:"account_type"`
}

type SettingsResponse struct {
	Name          string              `json:"name"`
	Email         string              `json:"email,omitempty"`
	Phone         string              `json:"phone,omitempty"`
	Address       string              `json:"address,omitempty"`
	VATNumber     string              `json:"vat_number,omitempty"`
	Website       string              `json:"website,omitempty"`
	BankDetails   BankDetailsResponse `json:"bank_details"`
	InvoicePrefix string              `json:"invoice_prefix"`
	QuotePrefix   string              `json:"quote_prefix"`
	InvoiceTerms  string              `json:"invoice_terms,omitempty"`
	QuoteTerms    string              `json:"quote_terms,omitempty"`
}

func FromSettings(s entities.CompanySettings) SettingsResponse {
	return SettingsResponse{
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		VATNumber: s.VATNumber,
		Website:   s.Website,
		BankDetails: BankDetailsResponse{
			BankName:      s.BankDetails.BankName,
			AccountNumber: s.BankDetails.AccountNumber,
			BranchCode:    s.BankDetails.BranchCode,
			AccountType:   s.BankDetails.AccountType,
		},
		InvoicePrefix: s.InvoicePrefix,
		QuotePrefix:   s.QuotePrefix,
		InvoiceTerms:  s.InvoiceTerms,
		QuoteTerms:    s.QuoteTerms,
	}
}
