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
	ErrQuoteNotFound  = errors.New("quote not found")
	ErrInvalidQuoteID = errors.New("invalid quote id")
)

// IQuoteUseCase exposes quote operations, mirroring IInvoiceUseCase.

type IQuoteUseCase interface {
	List(ctx context.Context) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Save(ctx context.Context, draft QuoteDraft) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
}

type QuoteUseCase struct {
	repo         interfaces.IQuoteRepository
	clientRepo   interfaces.IClientRepository
	settingsRepo interfaces.ICompanySettingsRepository
	now          func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, clientRepo interfaces.IClientRepository, settingsRepo interfaces.ICompanySettingsRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, clientRepo: clientRepo, settingsRepo: settingsRepo, now: time.Now}
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) Save(ctx context.Context, draft QuoteDraft) (entities.Quote, error) {
	clientID := strings.TrimSpace(draft.ClientID)
	if clientID == "" {
		return entities.Quote{}, FieldErrors{{Field: "client_id", Message: "client is required"}}
	}

	client, err := u.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return entities.Quote{}, err
	}
	if client.ID == "" {
		return entities.Quote{}, ErrClientNotFound
	}

	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return entities.Quote{}, err
	}

	q, err := BuildQuote(draft, client, settings, u.now())
	if err != nil {
		return entities.Quote{}, err
	}

	// Edits keep the original creation timestamp.
	if draft.ID != "" {
		existing, err := u.repo.GetByID(ctx, draft.ID)
		if err != nil {
			return entities.Quote{}, err
		}
		if existing.ID != "" {
			q.CreatedAt = existing.CreatedAt
		}
	}

	return u.repo.Save(ctx, q)
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if q.ID == "" {
		return ErrQuoteNotFound
	}
	return u.repo.Delete(ctx, id)
}
