package interfaces

import (
	"context"

	"whitepaper_billing/internal/domain/entities"
)

// ICompanySettingsRepository persists the singleton issuer record.
//
// Get returns DefaultCompanySettings when the record has never been written,
// so callers always have usable numbering prefixes.

type ICompanySettingsRepository interface {
	Get(ctx context.Context) (entities.CompanySettings, error)
	Update(ctx context.Context, s entities.CompanySettings) (entities.CompanySettings, error)
}
