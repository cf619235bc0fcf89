package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// User Activity Metrics
	NewUsersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_new_users_total",
		Help: "Total number of first-time OAuth sign-ups.",
	})
	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_login_attempts_total",
		Help: "Total number of login attempts (successful and failed).",
	}, []string{"status"}) // status: "success" or "failed"

	// Application-Specific Feature Usage Metrics
	BookmarkCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_bookmark_created_total",
		Help: "Total number of bookmarks created.",
	})
	BookmarkUpdatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_bookmark_updated_total",
		Help: "Total number of bookmarks updated.",
	})
	BookmarkDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_bookmark_deleted_total",
		Help: "Total number of bookmarks deleted.",
	})
	FavoriteToggledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_favorite_toggled_total",
		Help: "Total number of favorite toggles.",
	})
	FavoriteRevertedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_favorite_reverted_total",
		Help: "Total number of optimistic favorite toggles reverted after a store failure.",
	})
	DashboardDerivedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_dashboard_derived_total",
		Help: "Total number of dashboard view derivations.",
	})
)

// Database Metrics
var DBQueryDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "db_query_duration_seconds",
	Help:    "Duration of database queries in seconds.",
	Buckets: prometheus.DefBuckets,
}, []string{"query_type", "repository", "status"})

var DBQueryErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "db_query_errors_total",
	Help: "Total number of failed database queries.",
}, []string{"query_type", "repository"})
