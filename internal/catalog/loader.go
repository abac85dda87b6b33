package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/logger"
	"github.com/osse101/WheelOfFortune_Go/internal/validation"
)

// File is the JSON layout of a catalog file
type File struct {
	Version string `json:"version"`
	Items   []Def  `json:"items"`
}

// Def is one item as authored. Pointer fields distinguish "left out" from zero
// so authoring defaults can be applied.
type Def struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Type               domain.ItemType `json:"type"`
	Rarity             *domain.Rarity  `json:"rarity,omitempty"`
	Icon               string          `json:"icon,omitempty"`
	MinAmount          *int            `json:"min_amount,omitempty"`
	MaxAmount          *int            `json:"max_amount,omitempty"`
	AvailableFromZone  *int            `json:"available_from_zone,omitempty"`
	AvailableUntilZone *int            `json:"available_until_zone,omitempty"`
	SpawnWeight        *float64        `json:"spawn_weight,omitempty"`
}

// Definition applies authoring defaults and returns the domain definition
func (d Def) Definition() domain.ItemDefinition {
	out := domain.ItemDefinition{
		ID:                 d.ID,
		Name:               d.Name,
		Type:               d.Type,
		Rarity:             domain.RarityCommon,
		Icon:               d.Icon,
		MinAmount:          DefaultMinAmount,
		MaxAmount:          DefaultMaxAmount,
		AvailableFromZone:  DefaultAvailableFromZone,
		AvailableUntilZone: DefaultAvailableUntilZone,
		SpawnWeight:        DefaultSpawnWeight,
	}
	if d.Rarity != nil {
		out.Rarity = *d.Rarity
	}
	if d.MinAmount != nil {
		out.MinAmount = *d.MinAmount
		// A lone min raises the range floor; keep max from falling under it
		if d.MaxAmount == nil && out.MaxAmount < out.MinAmount {
			out.MaxAmount = out.MinAmount
		}
	}
	if d.MaxAmount != nil {
		out.MaxAmount = *d.MaxAmount
	}
	if d.AvailableFromZone != nil {
		out.AvailableFromZone = *d.AvailableFromZone
	}
	if d.AvailableUntilZone != nil {
		out.AvailableUntilZone = *d.AvailableUntilZone
	}
	if d.SpawnWeight != nil {
		out.SpawnWeight = *d.SpawnWeight
	}
	return out
}

// Loader reads catalog files
type Loader interface {
	Load(ctx context.Context, path string) (*Catalog, error)
	Parse(ctx context.Context, data []byte, source string) (*Catalog, error)
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader that checks files against the catalog schema
func NewLoader(schemaValidator validation.SchemaValidator) Loader {
	if schemaValidator == nil {
		schemaValidator = validation.NewSchemaValidator()
	}
	return &loader{schemaValidator: schemaValidator}
}

// Load reads a catalog file. An empty path yields the built-in items.
func (l *loader) Load(ctx context.Context, path string) (*Catalog, error) {
	if path == "" {
		logger.FromContext(ctx).Info(LogMsgUsingDefaultItems)
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}
	return l.Parse(ctx, data, path)
}

// Parse validates raw catalog JSON against the schema, then against definition rules
func (l *loader) Parse(ctx context.Context, data []byte, source string) (*Catalog, error) {
	log := logger.FromContext(ctx)

	if err := l.schemaValidator.ValidateBytes(data, ItemsSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrFmtSchemaFailed, domain.ErrInvalidConfig, source, err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}
	if len(file.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	defs := make([]domain.ItemDefinition, 0, len(file.Items))
	bombs := 0
	for _, d := range file.Items {
		if d.Type == domain.ItemTypeBomb {
			bombs++
		}
		defs = append(defs, d.Definition())
	}

	c, err := New(defs)
	if err != nil {
		return nil, err
	}

	if bombs > 0 {
		log.Warn(LogMsgBombItemsSkipped, "source", source, "count", bombs)
	}
	log.Info(LogMsgCatalogLoaded, "source", source, "version", file.Version, "items", c.Len())
	return c, nil
}
