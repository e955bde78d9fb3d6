package metrics

import (
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

var (
	cacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "suppliers_cache_requests_total",
		Help: "Supplier cache lookups by kind (list, detail) and result (hit, miss).",
	}, []string{"kind", "result"})

	cacheLookupSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "suppliers_cache_lookup_seconds",
		Help:    "Duration of supplier cache lookups.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"result"})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "suppliers_login_attempts_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})

	supplierMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "suppliers_mutations_total",
		Help: "Supplier writes by operation.",
	}, []string{"operation"})

	directoryResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "suppliers_directory_results",
		Help:    "Number of suppliers returned by directory searches.",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
	})

	directoryTotals = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "suppliers_directory_totals",
		Help: "Directory counters refreshed by the stats job.",
	}, []string{"metric"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method, route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

func IncListHit()    { cacheRequests.WithLabelValues("list", "hit").Inc() }
func IncListMiss()   { cacheRequests.WithLabelValues("list", "miss").Inc() }
func IncDetailHit()  { cacheRequests.WithLabelValues("detail", "hit").Inc() }
func IncDetailMiss() { cacheRequests.WithLabelValues("detail", "miss").Inc() }

func AddHitDuration(seconds float64)  { cacheLookupSeconds.WithLabelValues("hit").Observe(seconds) }
func AddMissDuration(seconds float64) { cacheLookupSeconds.WithLabelValues("miss").Observe(seconds) }

// Login outcomes
const (
	LoginOK           = "ok"
	LoginCreated      = "created"
	LoginBanned       = "banned"
	LoginClosed       = "registration_closed"
	LoginInvalidEmail = "invalid_email"
	LoginError        = "error"
)

func IncLogin(outcome string) { loginAttempts.WithLabelValues(outcome).Inc() }

func IncSupplierMutation(op string) { supplierMutations.WithLabelValues(op).Inc() }

// SupplierMutationCount reads the current value of the mutation counter for op.
func SupplierMutationCount(op string) float64 {
	var m dto.Metric
	if err := supplierMutations.WithLabelValues(op).Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func ObserveDirectoryResults(n int) { directoryResults.Observe(float64(n)) }

// SetDirectoryTotals publishes the admin dashboard counters as gauges.
func SetDirectoryTotals(stats entity.DashboardStats) {
	directoryTotals.WithLabelValues("suppliers").Set(float64(stats.Suppliers))
	directoryTotals.WithLabelValues("verified_suppliers").Set(float64(stats.VerifiedSuppliers))
	directoryTotals.WithLabelValues("users").Set(float64(stats.Users))
	directoryTotals.WithLabelValues("banned_users").Set(float64(stats.BannedUsers))
	directoryTotals.WithLabelValues("categories").Set(float64(stats.Categories))
}
