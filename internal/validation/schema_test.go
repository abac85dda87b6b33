package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const itemSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"type": {"type": "string", "enum": ["Cash", "Gold"]},
			"spawn_weight": {"type": "number", "minimum": 0}
		},
		"required": ["id", "type"]
	}
}`

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	schemaPath := writeSchema(t, itemSchema)
	v := NewSchemaValidator()

	tests := []struct {
		name     string
		data     string
		wantErr  bool
		errorMsg string
	}{
		{"valid items", `[{"id": "coins", "type": "Cash", "spawn_weight": 10}]`, false, ""},
		{"empty array", `[]`, false, ""},
		{"missing required field", `[{"id": "coins"}]`, true, "required"},
		{"unknown enum value", `[{"id": "coins", "type": "Bitcoin"}]`, true, "/0/type"},
		{"negative weight", `[{"id": "coins", "type": "Gold", "spawn_weight": -1}]`, true, "minimum"},
		{"invalid JSON", `[{"id": }]`, true, ErrMsgParseData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), schemaPath)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	schemaPath := writeSchema(t, itemSchema)
	v := NewSchemaValidator()

	dataPath := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`[{"id": "gems", "type": "Gold"}]`), 0o644))

	assert.NoError(t, v.ValidateFile(dataPath, schemaPath))

	err := v.ValidateFile(filepath.Join(t.TempDir(), "missing.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgReadDataFile)
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{}`), "nonexistent.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgLoadSchema)
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	schemaPath := writeSchema(t, itemSchema)
	v := NewSchemaValidator().(*schemaValidator)

	require.NoError(t, v.ValidateBytes([]byte(`[]`), schemaPath))
	require.NoError(t, v.ValidateBytes([]byte(`[]`), schemaPath))

	assert.Len(t, v.schemas, 1)
}

func TestSchemaValidator_ShippedCatalogSchema(t *testing.T) {
	v := NewSchemaValidator()
	err := v.ValidateFile("../../configs/items/wheel_items.json", "configs/schemas/wheel_items.schema.json")
	assert.NoError(t, err)
}
