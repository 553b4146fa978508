package bootstrap

import (
	"vas-broker/internal/pkg/catalog"
	"vas-broker/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewCatalog,
	),
)

func NewCatalog(cfg config.Config) (*catalog.Catalog, error) {
	return catalog.Load(cfg.Catalog.Path)
}
