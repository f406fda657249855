package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"whitepaper_billing/internal/domain/entities"
	"whitepaper_billing/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrInvoiceNotPayable          = errors.New("invoice not payable")
	ErrPaymentGatewayUnavailable  = errors.New("payment gateway not configured")
	ErrPaymentNotApprovedByWallet = errors.New("payment not approved by provider")
)

// IPaymentUseCase records a gateway payment against an invoice and, when the
// provider approves it, transitions the invoice to paid.

type IPaymentUseCase interface {
	RecordPayment(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.Payment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo        interfaces.IPaymentRepository
	invoiceRepo interfaces.IInvoiceRepository
	gateway     interfaces.IPaymentGateway
	now         func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, invoiceRepo interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, invoiceRepo: invoiceRepo, gateway: gateway, now: time.Now}
}

func (u *PaymentUseCase) RecordPayment(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.Payment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Payment{}, ErrInvalidInvoiceID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return entities.Payment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrPaymentGatewayUnavailable
	}

	inv, err := u.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Payment{}, err
	}
	if inv.ID == "" {
		return entities.Payment{}, ErrInvoiceNotFound
	}
	switch inv.Status {
	case entities.InvoiceStatusPaid, entities.InvoiceStatusCancelled:
		return entities.Payment{}, ErrInvoiceNotPayable
	}

	// The source of truth for the charged amount is the stored invoice total,
	// never the caller's payload. external_reference ties the provider event
	// back to the invoice.
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil {
		return entities.Payment{}, ErrInvalidPaymentPayload
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = inv.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Invoice %s", inv.Number)
	}
	req["transaction_amount"] = inv.Total.InexactFloat64()
	payload, err = json.Marshal(req)
	if err != nil {
		return entities.Payment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed invoice_id=%s err=%v", invoiceID, err)
		return entities.Payment{}, err
	}
	if providerStatus != "approved" {
		log.Printf("[payment][usecase] provider declined invoice_id=%s provider_status=%s", invoiceID, providerStatus)
		return entities.Payment{}, ErrPaymentNotApprovedByWallet
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed invoice_id=%s err=%v", invoiceID, err)
	}

	p := entities.Payment{
		ID:                 providerPaymentID,
		InvoiceID:          inv.ID,
		Date:               u.now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}

	inv.Status = entities.InvoiceStatusPaid
	if _, err := u.invoiceRepo.Save(ctx, inv); err != nil {
		// The payment is recorded; a failed status flip is surfaced so the
		// caller can re-save rather than silently losing the paid state.
		log.Printf("[payment][usecase] invoice status update failed invoice_id=%s payment_id=%s err=%v", inv.ID, created.ID, err)
		return created, err
	}

	log.Printf("[payment][usecase] payment recorded invoice_id=%s payment_id=%s", inv.ID, created.ID)
	return created, nil
}

func (u *PaymentUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	return u.repo.ListByInvoiceID(ctx, invoiceID)
}
