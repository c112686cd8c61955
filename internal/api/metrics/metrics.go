// Package metrics defines all custom Prometheus metrics for the HavenBridge
// back-office API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry via
// promauto on first import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "homecare"

// SubmissionsTotal counts accepted public submissions.
// Label:
//   - kind: "appointment", "application" or "message"
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of accepted public submissions, by request kind.",
	},
	[]string{"kind"},
)

// AdminLoginsTotal counts admin login attempts.
// Label:
//   - result: "ok" or "denied"
var AdminLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// StatusUpdatesTotal counts successful status transitions.
// Labels:
//   - entity: "appointment", "career_application" or "contact_message"
//   - status: the new status value
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_updates_total",
		Help:      "Total number of admin status updates, by entity kind and new status.",
	},
	[]string{"entity", "status"},
)

// NotificationsSentTotal counts notification delivery attempts.
// Labels:
//   - kind: template kind (e.g. "appointment_confirmation")
//   - result: "ok" or "error"
var NotificationsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of notification delivery attempts, by kind and result.",
	},
	[]string{"kind", "result"},
)

// NotificationQueueDepth tracks the number of notifications waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", ...)
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ResumeUploadsTotal counts resume upload attempts.
// Label:
//   - result: "ok", "rejected" or "error"
var ResumeUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resume_uploads_total",
		Help:      "Total number of resume upload attempts, by result.",
	},
	[]string{"result"},
)
