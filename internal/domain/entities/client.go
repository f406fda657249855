package entities

// Client is a billable customer referenced by invoices and quotes.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Deleting a client does not cascade to historical documents; they keep the
// client snapshot they were saved with.

type Client struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address"`
	VATNumber     string `json:"vat_number,omitempty"`
}
