package ports

import (
	"context"

	"github.com/amaris/catalog-api/internal/core/domain"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.CompanySettings, error)
	// Save upserts the singleton settings document.
	Save(ctx context.Context, settings *domain.CompanySettings) error
}

// SettingsInput is the write shape for the company settings document.
type SettingsInput struct {
	Name            string
	LogoURL         string
	ContactEmail    string
	ContactPhone    string
	Address         string
	SocialMedia     map[string]string
	HomepageContent string
	AboutContent    string
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.CompanySettings, error)
	Update(ctx context.Context, input SettingsInput) (*domain.CompanySettings, error)
}
