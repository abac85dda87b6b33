package handler

import (
	"sync"

	"github.com/osse101/WheelOfFortune_Go/internal/validation"
)

var (
	validate     *validation.StructValidator
	validateOnce sync.Once
)

// GetValidator returns the shared request validator
func GetValidator() *validation.StructValidator {
	validateOnce.Do(func() {
		validate = validation.NewStructValidator()
	})
	return validate
}
