package keeper

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// swapsTotal, liquidityAdded and liquidityRemoved are package-level so a
// single Prometheus registration happens regardless of how many Keeper
// instances a test or app wiring constructs, the same pattern
// x/dex/keeper/metrics.go uses for its counter/histogram vectors.
var (
	swapsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dex_swaps_total",
			Help: "Total number of swap operations, by outcome.",
		},
		[]string{"outcome"},
	)

	liquidityAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dex_liquidity_added_total",
			Help: "Total other-currency liquidity added, by currency id.",
		},
		[]string{"currency"},
	)

	liquidityRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dex_liquidity_removed_total",
			Help: "Total other-currency liquidity removed, by currency id.",
		},
		[]string{"currency"},
	)
)

// DEXMetrics exposes the dex module's observability surface. A nil
// *DEXMetrics is always safe to call into; NewKeeper always constructs one.
type DEXMetrics struct{}

// NewDEXMetrics constructs the module's metrics recorder.
func NewDEXMetrics() *DEXMetrics {
	return &DEXMetrics{}
}

func (m *DEXMetrics) recordSwap(outcome string) {
	if m == nil {
		return
	}
	swapsTotal.WithLabelValues(outcome).Inc()
}

func (m *DEXMetrics) recordLiquidityAdded(currency string, amount float64) {
	if m == nil {
		return
	}
	liquidityAdded.WithLabelValues(currency).Add(amount)
}

func (m *DEXMetrics) recordLiquidityRemoved(currency string, amount float64) {
	if m == nil {
		return
	}
	liquidityRemoved.WithLabelValues(currency).Add(amount)
}
