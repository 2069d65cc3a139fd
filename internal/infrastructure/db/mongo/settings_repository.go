package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/amaris/catalog-api/internal/core/domain"
)

const settingsCollection = "company_settings"

type SettingsRepository struct {
	col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{col: db.Collection(settingsCollection)}
}

// Get returns the singleton settings document.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.CompanySettings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var settings domain.CompanySettings
	if err := r.col.FindOne(ctx, bson.M{}).Decode(&settings); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("find settings: %w", err)
	}
	return &settings, nil
}

// Save upserts the settings document keyed by its fixed id.
func (r *SettingsRepository) Save(ctx context.Context, settings *domain.CompanySettings) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.ReplaceOne(ctx,
		bson.M{"_id": settings.ID},
		settings,
		options.Replace().SetUpsert(true),
	); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
