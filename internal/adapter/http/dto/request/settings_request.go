package request

import (
	"whitepaper_billing/internal/domain/entities"
)

type BankDetailsRequest struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	BranchCode    string `json:"branch_code"`
	AccountType   string `json:"account_type"`
}

// SettingsRequest is the payload for replacing the issuer record.

type SettingsRequest struct {
	Name          string             `json:"name" binding:"required"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
	Address       string             `json:"address"`
	VATNumber     string             `json:"vat_number"`
	Website       string             `json:"website"`
	BankDetails   BankDetailsRequest `json:"bank_details"`
	InvoicePrefix string             `json:"invoice_prefix"`
	QuotePrefix   string             `json:"quote_prefix"`
	InvoiceTerms  string             `json:"invoice_terms"`
	QuoteTerms    string             `json:"quote_terms"`
}

func (r SettingsRequest) ToEntity() entities.CompanySettings {
	return entities.CompanySettings{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		VATNumber: r.VATNumber,
		Website:   r.Website,
		BankDetails: entities.BankDetails{
			BankName:      r.BankDetails.BankName,
			AccountNumber: r.BankDetails.AccountNumber,
			BranchCode:    r.BankDetails.BranchCode,
			AccountType:   r.BankDetails.AccountType,
		},
		InvoicePrefix: r.InvoicePrefix,
		QuotePrefix:   r.QuotePrefix,
		InvoiceTerms:  r.InvoiceTerms,
		QuoteTerms:    r.QuoteTerms,
	}
}
