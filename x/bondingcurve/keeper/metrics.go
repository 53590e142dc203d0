package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CurveMetrics holds all Prometheus metrics for the bonding curve module
type CurveMetrics struct {
	CurvesCreated prometheus.Counter
	Trades        *prometheus.CounterVec
	NativeVolume  *prometheus.CounterVec
	Reserve       *prometheus.GaugeVec
	Supply        *prometheus.GaugeVec
	GuardTrips    *prometheus.CounterVec
}

var (
	curveMetricsOnce sync.Once
	curveMetrics     *CurveMetrics
)

// NewCurveMetrics creates and registers bonding curve metrics (singleton pattern)
func NewCurveMetrics() *CurveMetrics {
	curveMetricsOnce.Do(func() {
		curveMetrics = &CurveMetrics{
			CurvesCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "bondingcurve",
					Name:      "curves_created_total",
					Help:      "Total number of bonding curves created",
				},
			),
			Trades: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "bondingcurve",
					Name:      "trades_total",
					Help:      "Total number of curve buys and sells",
				},
				[]string{"denom", "side", "status"},
			),
			NativeVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "bondingcurve",
					Name:      "native_volume_total",
					Help:      "Native base units paid into or out of curves",
				},
				[]string{"denom", "side"},
			),
			Reserve: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "paw",
					Subsystem: "bondingcurve",
					Name:      "native_reserve",
					Help:      "Native reserve held by each curve",
				},
				[]string{"denom"},
			),
			Supply: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "paw",
					Subsystem: "bondingcurve",
					Name:      "total_supply",
					Help:      "Outstanding supply of each curve token in base units",
				},
				[]string{"denom"},
			),
			GuardTrips: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "bondingcurve",
					Name:      "insolvency_guard_trips_total",
					Help:      "Sells rejected because the payout exceeded the reserve",
				},
				[]string{"denom"},
			),
		}
	})
	return curveMetrics
}

func amountToFloat(amount math.Int) float64 {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float64()
	return f
}
