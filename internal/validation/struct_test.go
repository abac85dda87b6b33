package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spinRequest struct {
	SpinID string `json:"spin_id" validate:"required,uuid"`
	Kind   string `json:"kind" validate:"omitempty,oneof=trash revive"`
	Min    int    `json:"min" validate:"gte=0"`
	Max    int    `json:"max" validate:"gtefield=Min"`
}

func TestStructValidator_ReportsJSONFieldNames(t *testing.T) {
	v := NewStructValidator()

	err := v.ValidateStruct(spinRequest{Kind: "jump", Min: 5, Max: 1})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["spin_id"])
	assert.Equal(t, "Must be one of: trash revive", fields["kind"])
	assert.Equal(t, "Must not be less than Min", fields["max"])
}

func TestStructValidator_Valid(t *testing.T) {
	v := NewStructValidator()
	req := spinRequest{SpinID: "0b9b8f0e-3a8d-4b5c-9d6e-2f1a3b4c5d6e", Min: 1, Max: 1}
	assert.NoError(t, v.ValidateStruct(req))
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	fields := FormatValidationError(assert.AnError)
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, fields)
	assert.Nil(t, FormatValidationError(nil))
}

func TestSummarize_SortsFields(t *testing.T) {
	v := NewStructValidator()
	err := v.ValidateStruct(spinRequest{Min: -1})
	require.Error(t, err)

	assert.Equal(t, "min: Must be at least 0; spin_id: This field is required", Summarize(err))
}
