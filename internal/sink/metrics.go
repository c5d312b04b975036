package sink

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/saiputravu/matchbook/internal/domain"
)

// Metrics registers a small set of Prometheus collectors against the
// supplied registry and updates them from book events. The collectors are
// safe for concurrent use: cmd/matchbook fuzz shares one Metrics across all
// of its workers, so the counters hold the totals of every worker's book.
type Metrics struct {
	trades      prometheus.Counter
	tradeQty    prometheus.Counter
	fillQty     prometheus.Histogram
	orders      *prometheus.CounterVec
	cancels     *prometheus.CounterVec
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		trades: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchbook_trades_total",
			Help: "Number of fills executed by the order book.",
		}),
		tradeQty: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchbook_trade_qty_total",
			Help: "Total quantity filled across all trades.",
		}),
		fillQty: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "matchbook_fill_quantity",
			Help:    "Distribution of individual fill quantities.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		}),
		orders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "matchbook_orders_total",
			Help: "Submissions by outcome.",
		}, []string{"outcome"}),
		cancels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "matchbook_cancels_total",
			Help: "Cancel attempts by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(m.trades, m.tradeQty, m.fillQty, m.orders, m.cancels)
	return m
}

func (m *Metrics) OnTrade(t domain.Trade) {
	m.trades.Inc()
	m.tradeQty.Add(float64(t.Qty))
	m.fillQty.Observe(float64(t.Qty))
}

func (m *Metrics) OnOrderAccepted(domain.OrderAck) {
	m.orders.WithLabelValues("accepted").Inc()
}

func (m *Metrics) OnOrderRejected(domain.OrderAck) {
	m.orders.WithLabelValues("rejected").Inc()
}

func (m *Metrics) OnOrderCancelled(_ domain.OrderId, success bool) {
	if success {
		m.cancels.WithLabelValues("ok").Inc()
	} else {
		m.cancels.WithLabelValues("fail").Inc()
	}
}
