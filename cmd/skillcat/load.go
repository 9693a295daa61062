package main

import (
	"context"

	"github.com/spf13/viper"

	"github.com/aa89227/skillcat/pkg/catalog"
)

// loadCatalog loads the catalog from the configured root with the configured
// ignore patterns
func loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	loader, err := catalog.NewLoader(
		catalog.WithIgnorePatterns(viper.GetStringSlice("ignore")...),
	)
	if err != nil {
		return nil, err
	}
	return loader.Load(ctx, viper.GetString("root"))
}
