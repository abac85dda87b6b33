package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/WheelOfFortune_Go/internal/catalog"
	"github.com/osse101/WheelOfFortune_Go/internal/config"
	"github.com/osse101/WheelOfFortune_Go/internal/logger"
	"github.com/osse101/WheelOfFortune_Go/internal/validation"
)

// Content is the game tuning and item catalog a session is built from
type Content struct {
	Game    config.GameConfig
	Catalog *catalog.Catalog
}

// LoadContent reads the game tuning YAML and the item catalog JSON.
// Empty paths fall back to the built-in defaults. The catalog is checked
// against its JSON schema before any item is accepted.
func LoadContent(ctx context.Context, cfg *config.Config) (*Content, error) {
	log := logger.FromContext(ctx)

	game, err := config.LoadGameConfig(cfg.GameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadGameConfig, err)
	}
	log.Info(LogMsgGameConfigLoaded,
		"path", cfg.GameConfigPath,
		"max_zone", game.Zones.MaxZone,
		"slices", game.Wheel.SliceCount,
		"bombs", game.Wheel.BombCount)

	cat, err := catalog.NewLoader(validation.NewSchemaValidator()).Load(ctx, cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	log.Info(LogMsgCatalogLoaded, "path", cfg.CatalogPath, "items", cat.Len())

	return &Content{Game: game, Catalog: cat}, nil
}
