package usecase

import (
	"context"
	"errors"
	"strings"

	"whitepaper_billing/internal/domain/entities"
	"whitepaper_billing/internal/usecase/interfaces"
)

var ErrInvalidSettings = errors.New("invalid company settings")

// ISettingsUseCase reads and replaces the singleton issuer record.

type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.CompanySettings, error)
	Update(ctx context.Context, s entities.CompanySettings) (entities.CompanySettings, error)
}

type SettingsUseCase struct {
	repo interfaces.ICompanySettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ICompanySettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) Get(ctx context.Context) (entities.CompanySettings, error) {
	return u.repo.Get(ctx)
}

func (u *SettingsUseCase) Update(ctx context.Context, s entities.CompanySettings) (entities.CompanySettings, error) {
	if strings.TrimSpace(s.Name) == "" {
		return entities.CompanySettings{}, ErrInvalidSettings
	}
	if strings.TrimSpace(s.InvoicePrefix) == "" {
		s.InvoicePrefix = entities.DefaultCompanySettings().InvoicePrefix
	}
	if strings.TrimSpace(s.QuotePrefix) == "" {
		s.QuotePrefix = entities.DefaultCompanySettings().QuotePrefix
	}
	return u.repo.Update(ctx, s)
}
