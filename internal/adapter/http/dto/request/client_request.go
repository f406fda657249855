package request

import (
	"whitepaper_billing/internal/domain/entities"
)

// ClientRequest is the payload for creating or updating a client.

type ClientRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" binding:"required"`
	Phone         string `json:"phone"`
	Address       string `json:"address" binding:"required"`
	VATNumber     string `json:"vat_number"`
}

func (r ClientRequest) ToEntity(id string) entities.Client {
	return entities.Client{
		ID:            id,
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		VATNumber:     r.VATNumber,
	}
}
