package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"whitepaper_billing/internal/usecase/interfaces"

	"whitepaper_billing/internal/domain/entities"
)

var (
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrInvalidInvoiceID = errors.New("invalid invoice id")
	ErrClientNotFound   = errors.New("client not found")
)

// IInvoiceUseCase exposes invoice operations.
//
// Save covers both create (empty draft ID) and edit. Edits replace the whole
// aggregate: the repository deletes and reinserts every item row, never
// patches them.

type IInvoiceUseCase interface {
	List(ctx context.Context) ([]entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	Save(ctx context.Context, draft InvoiceDraft) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
}

type InvoiceUseCase struct {
	repo         interfaces.IInvoiceRepository
	clientRepo   interfaces.IClientRepository
	settingsRepo interfaces.ICompanySettingsRepository
	now          func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, clientRepo interfaces.IClientRepository, settingsRepo interfaces.ICompanySettingsRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, clientRepo: clientRepo, settingsRepo: settingsRepo, now: time.Now}
}

func (u *InvoiceUseCase) List(ctx context.Context) ([]entities.Invoice, error) {
	return u.repo.List(ctx)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) Save(ctx context.Context, draft InvoiceDraft) (entities.Invoice, error) {
	clientID := strings.TrimSpace(draft.ClientID)
	if clientID == "" {
		return entities.Invoice{}, FieldErrors{{Field: "client_id", Message: "client is required"}}
	}

	client, err := u.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if client.ID == "" {
		return entities.Invoice{}, ErrClientNotFound
	}

	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return entities.Invoice{}, err
	}

	inv, err := BuildInvoice(draft, client, settings, u.now())
	if err != nil {
		return entities.Invoice{}, err
	}

	// Edits keep the original creation timestamp.
	if draft.ID != "" {
		existing, err := u.repo.GetByID(ctx, draft.ID)
		if err != nil {
			return entities.Invoice{}, err
		}
		if existing.ID != "" {
			inv.CreatedAt = existing.CreatedAt
		}
	}

	return u.repo.Save(ctx, inv)
}

func (u *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inv.ID == "" {
		return ErrInvoiceNotFound
	}
	return u.repo.Delete(ctx, id)
}
