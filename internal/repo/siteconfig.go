package repo

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/fashionbrand/storefront/internal/models"
)

func (r *GormRepo) ConfigValue(ctx context.Context, key string) (string, error) {
	var cfg models.SiteConfig
	if err := r.DB.WithContext(ctx).Where("key = ?", key).First(&cfg).Error; err != nil {
		return "", err
	}
	return cfg.Value, nil
}

func (r *GormRepo) AllConfig(ctx context.Context) (map[string]string, error) {
	var rows []models.SiteConfig
	if err := r.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

func (r *GormRepo) UpsertConfig(ctx context.Context, key, value string) error {
	cfg := models.SiteConfig{Key: key, Value: value, Type: "text"}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&cfg).Error
}
