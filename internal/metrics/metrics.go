package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	SpinsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSpinsStarted,
			Help: HelpTextSpinsStarted,
		},
	)

	SpinDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSpinDuration,
			Help:    HelpTextSpinDuration,
			Buckets: SpinDurationBuckets,
		},
	)

	BombHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBombHits,
			Help: HelpTextBombHits,
		},
	)

	RewardsCollected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsCollected,
			Help: HelpTextRewardsCollected,
		},
		[]string{LabelKind},
	)

	RewardAmount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardAmount,
			Help: HelpTextRewardAmount,
		},
		[]string{LabelKind},
	)

	CurrentZone = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCurrentZone,
			Help: HelpTextCurrentZone,
		},
	)

	HighestZone = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHighestZone,
			Help: HelpTextHighestZone,
		},
	)

	ZonesEntered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameZonesEntered,
			Help: HelpTextZonesEntered,
		},
		[]string{LabelKind},
	)

	GameRestarts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGameRestarts,
			Help: HelpTextGameRestarts,
		},
		[]string{LabelReason},
	)

	StateTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStateTransitions,
			Help: HelpTextStateTransitions,
		},
		[]string{LabelFrom, LabelTo},
	)
)
