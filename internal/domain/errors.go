package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Input errors
	ErrMsgInvalidArgument = "invalid argument"

	// Generation errors
	ErrMsgDegenerateConfiguration = "degenerate configuration"

	// State machine errors
	ErrMsgIllegalStateTransition = "illegal state transition"

	// Persistence errors
	ErrMsgPersistenceUnavailable = "persistence unavailable"

	// Catalog/config errors
	ErrMsgInvalidConfig   = "invalid configuration"
	ErrMsgDuplicateItemID = "duplicate item id"

	// Spin errors
	ErrMsgSpinNotFound = "spin not found"
)

// Common domain errors
// None of these are fatal to the engine; callers absorb them locally or surface them as a
// rejected operation. Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	// ErrInvalidArgument covers out-of-range target indexes and malformed reward records.
	ErrInvalidArgument = errors.New(ErrMsgInvalidArgument)

	// ErrDegenerateConfiguration is reported when a zone has no eligible items to place.
	ErrDegenerateConfiguration = errors.New(ErrMsgDegenerateConfiguration)

	// ErrIllegalStateTransition is returned for any transition outside the game state table.
	ErrIllegalStateTransition = errors.New(ErrMsgIllegalStateTransition)

	// ErrPersistenceUnavailable wraps progress store read/write failures.
	ErrPersistenceUnavailable = errors.New(ErrMsgPersistenceUnavailable)

	ErrInvalidConfig   = errors.New(ErrMsgInvalidConfig)
	ErrDuplicateItemID = errors.New(ErrMsgDuplicateItemID)
	ErrSpinNotFound    = errors.New(ErrMsgSpinNotFound)
)
