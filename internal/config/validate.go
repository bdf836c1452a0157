package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	if c.Revalidate.Enabled() && c.Revalidate.Secret == "" {
		return fmt.Errorf("revalidate.secret is required when revalidate.url is set")
	}

	return nil
}

func (c *CatalogConfig) validate() error {
	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", c.DefaultPageSize)
	}
	if c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", c.MaxPageSize, c.DefaultPageSize)
	}
	if c.MaxLinksPerItem <= 0 {
		return fmt.Errorf("max_links_per_item must be > 0 (got %d)", c.MaxLinksPerItem)
	}
	return nil
}
