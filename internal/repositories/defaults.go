package repositories

import (
	"context"
	"fmt"

	"capitaluy-backend/internal/models"
)

// ResetToDefaults overwrites every content document with its default.
// The admin account is left alone.
func ResetToDefaults(ctx context.Context, docs *DocumentRepository, stamp string) error {
	defaults := []struct {
		key   string
		value interface{}
	}{
		{SiteConfigKey, models.DefaultSiteConfig()},
		{AboutContentKey, models.DefaultAboutContent()},
		{CoursesKey, models.DefaultCourses()},
		{CryptoPricesKey, models.DefaultCryptoPrices(stamp)},
		{ContactMessageKey, models.ContactMessage{}},
	}

	for _, d := range defaults {
		if err := docs.Save(ctx, d.key, d.value); err != nil {
			return fmt.Errorf("reset %s: %w", d.key, err)
		}
	}
	return nil
}
