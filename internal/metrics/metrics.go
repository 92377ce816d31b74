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

// Concurrency and access metrics
var (
	VersionConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVersionConflicts,
			Help: HelpTextVersionConflicts,
		},
		[]string{LabelKind},
	)

	AccessDenied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAccessDenied,
			Help: HelpTextAccessDenied,
		},
		[]string{LabelRequired},
	)
)

// Discussion metrics
var (
	DiscussionConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameDiscussionConnections,
			Help: HelpTextDiscussionConnections,
		},
		[]string{LabelTransport},
	)

	DiscussionBroadcasts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDiscussionBroadcasts,
			Help: HelpTextDiscussionBroadcasts,
		},
	)

	DiscussionDroppedMessages = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDiscussionDroppedFrames,
			Help: HelpTextDiscussionDroppedFrames,
		},
	)

	DiscussionConnectRejects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiscussionConnectRejects,
			Help: HelpTextDiscussionConnectRejects,
		},
		[]string{LabelReason},
	)
)

// Business Metrics
var (
	InventoriesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInventoriesCreated,
			Help: HelpTextInventoriesCreated,
		},
	)

	ItemsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsCreated,
			Help: HelpTextItemsCreated,
		},
	)

	PostsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePostsCreated,
			Help: HelpTextPostsCreated,
		},
	)

	Likes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLikes,
			Help: HelpTextLikes,
		},
		[]string{LabelAction},
	)
)
