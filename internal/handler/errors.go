package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidZone       = "Zone must be a number between 1 and %d"
	ErrMsgItemNotFound      = "Item not found"

	// Readiness
	ErrMsgStoreUnavailable = "progress store unavailable"
)

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidArgumentError  = "Invalid request. Please check your inputs."
	ErrMsgActionNotAllowedError = "That action is not available right now."
	ErrMsgSpinNotFoundError     = "That spin is not in progress."
	ErrMsgUnavailableError      = "Progress could not be saved. Please try again later."
)

// Success messages for API responses
const (
	MsgPopupClosed     = "Result popup closed"
	MsgRevived         = "Revived. Rewards and zone kept"
	MsgTrashed         = "Rewards forfeited. Back to the first zone"
	MsgProgressReset   = "Progress reset"
	MsgAutoSpinPending = "Next spin queued"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgMissingParam      = "Missing query parameter"
	LogMsgOperationFailed   = "Game operation failed"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteBufferFailed = "Failed to write response buffer"
	LogMsgRequestDetails    = "Request details"
	LogMsgOddLogFields      = "LogRequestFields called with odd number of arguments"
)
