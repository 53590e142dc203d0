package keeper

import (
	"fmt"
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/paw-chain/amm/x/dex/types"
)

// invalidLabel replaces caller-supplied label values that failed validation.
const invalidLabel = "invalid"

// DEXMetrics holds all Prometheus metrics for the DEX module
type DEXMetrics struct {
	// Swap metrics
	SwapsTotal        *prometheus.CounterVec
	SwapVolume        *prometheus.CounterVec
	SwapLatency       prometheus.Histogram
	SwapFeesCollected *prometheus.CounterVec

	// Liquidity metrics
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
	DepositsRejected *prometheus.CounterVec
	PoolReserves     *prometheus.GaugeVec

	// Factory metrics
	PoolsTotal            prometheus.Gauge
	CreationFeesCollected prometheus.Counter
	CreationFeesWithdrawn prometheus.Counter
}

var (
	dexMetricsOnce sync.Once
	dexMetrics     *DEXMetrics
)

// NewDEXMetrics creates and registers DEX metrics (singleton pattern)
func NewDEXMetrics() *DEXMetrics {
	dexMetricsOnce.Do(func() {
		dexMetrics = &DEXMetrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "dex",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"pool_id", "token_in", "token_out", "status"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "dex",
					Name:      "swap_volume_total",
					Help:      "Total swap volume in base units",
				},
				[]string{"pool_id", "denom"},
			),
			SwapLatency: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "paw",
					Subsystem: "dex",
					Name:      "swap_latency_seconds",
					Help:      "Swap execution latency in seconds",
					Buckets:   prometheus.DefBuckets,
				},
			),
			SwapFeesCollected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "dex",
					Name:      "swap_fees_collected_total",
					Help:      "Total swap fees retained by pools",
				},
				[]string{"pool_id", "denom"},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "dex",
					Name:      "liquidity_added_total",
					Help:      "Total liquidity added to pools",
				},
				[]string{"pool_id", "denom"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "dex",
					Name:      "liquidity_removed_total",
					Help:      "Total liquidity removed from pools",
				},
				[]string{"pool_id", "denom"},
			),
			DepositsRejected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "dex",
					Name:      "deposits_rejected_total",
					Help:      "Deposits rejected by the reserve ratio guard",
				},
				[]string{"pool_id"},
			),
			PoolReserves: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "paw",
					Subsystem: "dex",
					Name:      "pool_reserves",
					Help:      "Current pool reserves in base units",
				},
				[]string{"pool_id", "denom"},
			),
			PoolsTotal: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "paw",
					Subsystem: "dex",
					Name:      "pools_total",
					Help:      "Number of registered pools",
				},
			),
			CreationFeesCollected: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "dex",
					Name:      "creation_fees_collected_total",
					Help:      "Pair creation fees collected in native base units",
				},
			),
			CreationFeesWithdrawn: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "dex",
					Name:      "creation_fees_withdrawn_total",
					Help:      "Pair creation fees withdrawn by the owner in native base units",
				},
			),
		}
	})
	return dexMetrics
}

// amountToFloat converts an 18-decimal base-unit amount for reporting. Int64()
// would overflow for anything above ~9.2 whole tokens.
func amountToFloat(amount math.Int) float64 {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float64()
	return f
}

// recordReserves publishes the current reserves of a pool.
func (m *DEXMetrics) recordReserves(pool *types.Pool) {
	poolIDStr := fmt.Sprintf("%d", pool.Id)
	m.PoolReserves.WithLabelValues(poolIDStr, pool.TokenA).Set(amountToFloat(pool.ReserveA))
	m.PoolReserves.WithLabelValues(poolIDStr, pool.TokenB).Set(amountToFloat(pool.ReserveB))
}
