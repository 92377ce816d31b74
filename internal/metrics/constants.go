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

// Concurrency and access metric names
const (
	MetricNameVersionConflicts = "version_conflicts_total"
	MetricNameAccessDenied     = "access_denied_total"
)

// Discussion metric names
const (
	MetricNameDiscussionConnections    = "discussion_connections"
	MetricNameDiscussionBroadcasts     = "discussion_messages_broadcast_total"
	MetricNameDiscussionDroppedFrames  = "discussion_messages_dropped_total"
	MetricNameDiscussionConnectRejects = "discussion_connect_rejected_total"
)

// Business metric names
const (
	MetricNameInventoriesCreated = "inventories_created_total"
	MetricNameItemsCreated       = "items_created_total"
	MetricNamePostsCreated       = "posts_created_total"
	MetricNameLikes              = "item_likes_total"
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

// Concurrency and access metric help text
const (
	HelpTextVersionConflicts = "Total number of conditional writes rejected for a stale version"
	HelpTextAccessDenied     = "Total number of operations rejected by the access rules"
)

// Discussion metric help text
const (
	HelpTextDiscussionConnections    = "Current number of live discussion connections"
	HelpTextDiscussionBroadcasts     = "Total number of discussion messages fanned out to connections"
	HelpTextDiscussionDroppedFrames  = "Total number of discussion messages dropped for slow connections"
	HelpTextDiscussionConnectRejects = "Total number of discussion connections closed at connect time"
)

// Business metric help text
const (
	HelpTextInventoriesCreated = "Total number of inventories created"
	HelpTextItemsCreated       = "Total number of items created"
	HelpTextPostsCreated       = "Total number of discussion posts created"
	HelpTextLikes              = "Total number of item like changes"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelKind      = "kind"
	LabelRequired  = "required"
	LabelTransport = "transport"
	LabelReason    = "reason"
	LabelAction    = "action"
)

// Like action label values
const (
	LikeActionLike   = "like"
	LikeActionUnlike = "unlike"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
)
