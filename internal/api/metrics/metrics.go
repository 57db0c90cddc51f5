// Package metrics defines the Prometheus collectors of the HustleHub API. It
// is the single source of truth for metric names, labels and help strings.
//
// Collectors register with the default registry through promauto at package
// init; RegisterAuditDropped must be called once at startup.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hustlehub"

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestDuration measures request latency.
// Labels:
//   - method: HTTP method
//   - route: the matched route pattern (e.g. "/jobs/:id"), not the raw path
//   - status: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests by method, route and status.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)

// ── Domain metrics ────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts accounts created, by role.
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// JobsPostedTotal counts job postings, by job type.
var JobsPostedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_posted_total",
		Help:      "Total number of jobs posted, by job type.",
	},
	[]string{"job_type"},
)

// ApplicationsTotal counts application lifecycle events.
// Label:
//   - event: "submitted", "withdrawn" or the new status of a status change
var ApplicationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_total",
		Help:      "Total number of application lifecycle events.",
	},
	[]string{"event"},
)

// ResourceLikesTotal counts like and unlike actions.
// Label:
//   - action: "like" or "unlike"
var ResourceLikesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_likes_total",
		Help:      "Total number of financial resource like and unlike actions.",
	},
	[]string{"action"},
)

// ResumeUploadsTotal counts stored resumes.
var ResumeUploadsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resume_uploads_total",
		Help:      "Total number of resumes uploaded.",
	},
)

// RegisterAuditDropped exposes the audit dispatcher's drop count.
func RegisterAuditDropped(dropped func() uint64) {
	promauto.NewCounterFunc(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_events_dropped_total",
			Help:      "Total number of audit events dropped because the queue was full or closed.",
		},
		func() float64 { return float64(dropped()) },
	)
}
