package game

import "github.com/prometheus/client_golang/prometheus"

var (
	packagesGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tycoon_packages_generated_total",
		Help: "Packages created by daily demand generation.",
	})
	packagesDelivered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tycoon_packages_delivered_total",
		Help: "Packages delivered, by on-time outcome.",
	}, []string{"outcome"})
	routesDispatched = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tycoon_routes_dispatched_total",
		Help: "Active routes created, by dispatch mode.",
	}, []string{"mode"})
	dayGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tycoon_day",
		Help: "Current simulation day.",
	})
	cashGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tycoon_cash",
		Help: "Cash on hand.",
	})
	loanGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tycoon_loan",
		Help: "Outstanding loan balance.",
	})
	reputationGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tycoon_reputation",
		Help: "Company reputation score.",
	})
)

func init() {
	prometheus.MustRegister(packagesGenerated, packagesDelivered, routesDispatched,
		dayGauge, cashGauge, loanGauge, reputationGauge)
}
