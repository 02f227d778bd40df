package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PosDataLoadDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "posav",
			Subsystem: "posdata",
			Name:      "load_duration_seconds",
			Help:      "POS data load duration in seconds",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"status"},
	)

	PosDataProductsLoaded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "posav",
			Subsystem: "posdata",
			Name:      "products_loaded_total",
			Help:      "Total number of products served in POS data payloads",
		},
		[]string{"storable"},
	)

	StockMovesApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "posav",
			Subsystem: "stock",
			Name:      "moves_applied_total",
			Help:      "Total number of stock moves applied",
		},
		[]string{"status"},
	)
)

func init() {
	Registry.MustRegister(PosDataLoadDuration, PosDataProductsLoaded, StockMovesApplied)
}
