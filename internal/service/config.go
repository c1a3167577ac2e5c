package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fashionbrand/storefront/internal/cache"
	"github.com/fashionbrand/storefront/internal/logging"
	"github.com/fashionbrand/storefront/internal/repo"
	"github.com/fashionbrand/storefront/internal/whatsapp"
)

const configCachePrefix = "siteconfig:"

// ConfigService reads site-wide key/value settings with a Redis cache in
// front of the database. Admin saves write through and invalidate.
type ConfigService struct {
	Repo  *repo.GormRepo
	Cache *cache.Cache
}

// Value looks one key up, cache first.
func (s *ConfigService) Value(ctx context.Context, key string) (string, bool) {
	var cached string
	if s.Cache.Get(ctx, configCachePrefix+key, &cached) {
		return cached, true
	}

	value, err := s.Repo.ConfigValue(ctx, key)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logging.FromContext(ctx).Error("config_read_error", "key", key, "error", err)
		}
		return "", false
	}

	s.Cache.Set(ctx, configCachePrefix+key, value, cache.ConfigTTL)
	return value, true
}

// WhatsAppNumber resolves the order notification destination, falling back
// to the fixed default when unset.
func (s *ConfigService) WhatsAppNumber(ctx context.Context) string {
	if number, ok := s.Value(ctx, whatsapp.ConfigKey); ok && number != "" {
		return number
	}
	return whatsapp.DefaultNumber
}

func (s *ConfigService) All(ctx context.Context) (map[string]string, error) {
	return s.Repo.AllConfig(ctx)
}

func (s *ConfigService) Save(ctx context.Context, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for key, value := range values {
		if err := s.Repo.UpsertConfig(ctx, key, value); err != nil {
			return err
		}
		keys = append(keys, configCachePrefix+key)
	}
	s.Cache.Del(ctx, keys...)
	return nil
}
