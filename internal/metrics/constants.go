package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameSpinsStarted     = "wheel_spins_started_total"
	MetricNameSpinDuration     = "wheel_spin_duration_seconds"
	MetricNameBombHits         = "wheel_bomb_hits_total"
	MetricNameRewardsCollected = "rewards_collected_total"
	MetricNameRewardAmount     = "reward_amount_total"
	MetricNameCurrentZone      = "zone_current"
	MetricNameHighestZone      = "zone_highest"
	MetricNameZonesEntered     = "zones_entered_total"
	MetricNameGameRestarts     = "game_restarts_total"
	MetricNameStateTransitions = "game_state_transitions_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextSpinsStarted     = "Total number of wheel spins started"
	HelpTextSpinDuration     = "Animation duration chosen for each spin in seconds"
	HelpTextBombHits         = "Total number of spins that landed on a bomb"
	HelpTextRewardsCollected = "Total number of rewards collected by kind"
	HelpTextRewardAmount     = "Sum of collected reward amounts by kind"
	HelpTextCurrentZone      = "Zone the player is currently on"
	HelpTextHighestZone      = "Highest zone the player has reached"
	HelpTextZonesEntered     = "Total number of zone entries by zone kind"
	HelpTextGameRestarts     = "Total number of game restarts by reason"
	HelpTextStateTransitions = "Total number of accepted game state transitions"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelKind   = "kind"
	LabelReason = "reason"
	LabelFrom   = "from"
	LabelTo     = "to"
)

// Zone kind label values
const (
	ZoneKindLabelSafe  = "safe"
	ZoneKindLabelSuper = "super"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SpinDurationBuckets covers the configured 2-4s spin window with headroom
var SpinDurationBuckets = []float64{.5, 1, 1.5, 2, 2.5, 3, 3.5, 4, 5, 8}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded"
	LogMsgMetricsRecorded         = "Metrics recorded for event"
)
