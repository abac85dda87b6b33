package validation

// Error message constants
const (
	ErrMsgReadDataFile     = "failed to read data file"
	ErrMsgLoadSchema       = "failed to load schema"
	ErrMsgParseData        = "failed to parse JSON data"
	ErrMsgSchemaValidation = "schema validation failed"
)
