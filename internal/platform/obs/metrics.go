package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	deliveryOnce sync.Once

	// RoundsTotal counts scheduler rounds (one vehicle departure each).
	RoundsTotal prometheus.Counter
	// PackagesDispatchedTotal counts packages given a delivery time.
	PackagesDispatchedTotal prometheus.Counter
	// PackagesIneligibleTotal counts packages heavier than the fleet's max load.
	PackagesIneligibleTotal prometheus.Counter
	// BatchSize records how many packages each round carried.
	BatchSize prometheus.Histogram
	// OffersRejectedTotal counts offers dropped while loading the catalog.
	OffersRejectedTotal prometheus.Counter
)

// MustRegisterDeliveryMetrics initialises and registers the estimator's
// collectors. Only the first call has an effect.
func MustRegisterDeliveryMetrics(namespace string, reg prometheus.Registerer) {
	deliveryOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		RoundsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scheduler_rounds_total",
			Help:      "Number of vehicle departures planned by the scheduler.",
		})
		PackagesDispatchedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "packages_dispatched_total",
			Help:      "Number of packages assigned a delivery time.",
		})
		PackagesIneligibleTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "packages_ineligible_total",
			Help:      "Number of packages heavier than the fleet's max load.",
		})
		BatchSize = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scheduler_batch_size",
			Help:      "Packages carried per scheduler round.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
		})
		OffersRejectedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offers_rejected_total",
			Help:      "Number of offers ignored because of invalid values.",
		})

		for _, c := range []prometheus.Collector{
			RoundsTotal, PackagesDispatchedTotal, PackagesIneligibleTotal, BatchSize, OffersRejectedTotal,
		} {
			if err := reg.Register(c); err != nil {
				panic(fmt.Sprintf("register delivery metrics: %v", err))
			}
		}
	})
}

// ObserveRound records one scheduler round. No-op until metrics are registered.
func ObserveRound(batch int) {
	if RoundsTotal == nil {
		return
	}
	RoundsTotal.Inc()
	PackagesDispatchedTotal.Add(float64(batch))
	BatchSize.Observe(float64(batch))
}

// ObserveIneligible records packages that can never be loaded.
func ObserveIneligible(n int) {
	if PackagesIneligibleTotal == nil || n == 0 {
		return
	}
	PackagesIneligibleTotal.Add(float64(n))
}

// ObserveRejectedOffers records offers dropped from the catalog.
func ObserveRejectedOffers(n int) {
	if OffersRejectedTotal == nil || n == 0 {
		return
	}
	OffersRejectedTotal.Add(float64(n))
}
