package catalog

// ==================== Configuration ====================

const (
	// ItemsSchemaPath is the JSON schema every catalog file must satisfy
	ItemsSchemaPath = "configs/schemas/wheel_items.schema.json"
)

// Authoring defaults applied to fields a catalog file leaves out
const (
	DefaultMinAmount          = 1
	DefaultMaxAmount          = 1
	DefaultAvailableFromZone  = 1
	DefaultAvailableUntilZone = 999
	DefaultSpawnWeight        = 10.0
)

// ==================== Error Messages ====================

const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
	ErrMsgNoItemsDefined     = "no items defined"
)

// Format strings used with fmt.Errorf
const (
	ErrFmtItemInvalid   = "%w: item %q: %s"
	ErrFmtItemAtIndex   = "%w: item at index %d: %s"
	ErrFmtDuplicateItem = "%w: %q"
	ErrFmtSchemaFailed  = "%w: schema validation failed for %s: %v"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded     = "Wheel item catalog loaded"
	LogMsgBombItemsSkipped  = "Catalog bomb items never fill reward slots"
	LogMsgUsingDefaultItems = "No catalog path configured, using built-in items"
)
