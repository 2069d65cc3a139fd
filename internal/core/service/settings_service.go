package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/amaris/catalog-api/internal/core/domain"
	"github.com/amaris/catalog-api/internal/core/ports"
)

// settingsID pins the singleton company settings document.
const settingsID = "company"

// SettingsService reads and updates the company settings singleton.
type SettingsService struct {
	repo ports.SettingsRepository
	log  zerolog.Logger
}

func NewSettingsService(repo ports.SettingsRepository, log zerolog.Logger) *SettingsService {
	return &SettingsService{repo: repo, log: log}
}

func (s *SettingsService) Get(ctx context.Context) (*domain.CompanySettings, error) {
	return s.repo.Get(ctx)
}

// Update overwrites the settings document, creating it on first write.
func (s *SettingsService) Update(ctx context.Context, input ports.SettingsInput) (*domain.CompanySettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrSettingsNotFound) {
			return nil, err
		}
		settings = &domain.CompanySettings{ID: settingsID}
	}

	settings.Name = input.Name
	settings.LogoURL = input.LogoURL
	settings.ContactEmail = input.ContactEmail
	settings.ContactPhone = input.ContactPhone
	settings.Address = input.Address
	settings.SocialMedia = input.SocialMedia
	settings.HomepageContent = input.HomepageContent
	settings.AboutContent = input.AboutContent
	settings.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}
	s.log.Info().Msg("company settings updated")
	return settings, nil
}
