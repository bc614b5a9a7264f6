package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	DepositsCreated       prometheus.Counter
	WithdrawalsCreated    prometheus.Counter
	TransactionsConfirmed prometheus.Counter
	TransactionsCancelled prometheus.Counter
	OperationDuration     *prometheus.HistogramVec
	OperationRejections   *prometheus.CounterVec

	// Wallet metrics
	WalletsCreated prometheus.Counter

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates and registers all metrics on the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates all metrics on the given registerer. Tests pass a fresh
// registry so repeated construction does not collide.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		DepositsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "walletd_deposits_created_total",
			Help: "Total number of pending deposits created",
		}),
		WithdrawalsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "walletd_withdrawals_created_total",
			Help: "Total number of pending withdrawals created",
		}),
		TransactionsConfirmed: factory.NewCounter(prometheus.CounterOpts{
			Name: "walletd_transactions_confirmed_total",
			Help: "Total number of transactions confirmed",
		}),
		TransactionsCancelled: factory.NewCounter(prometheus.CounterOpts{
			Name: "walletd_transactions_cancelled_total",
			Help: "Total number of transactions cancelled",
		}),
		OperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "walletd_operation_duration_seconds",
				Help:    "Duration of ledger operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		OperationRejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletd_operation_rejections_total",
				Help: "Total ledger operations rejected by type",
			},
			[]string{"operation", "reason"},
		),
		WalletsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "walletd_wallets_created_total",
			Help: "Total number of wallets created",
		}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "walletd_cache_hits_total",
			Help: "Total wallet cache hits",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "walletd_cache_misses_total",
			Help: "Total wallet cache misses",
		}),
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletd_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "walletd_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}
