package sink

import "github.com/saiputravu/matchbook/internal/domain"

// Stats accumulates the same counters as the reference implementation's
// StatsListener. It is not safe for concurrent use: each independently
// owned Book (see cmd/matchbook's fuzz harness) gets its own Stats.
type Stats struct {
	Trades       uint64
	TradedQty    uint64
	Accepted     uint64
	Rejected     uint64
	CancelsOK    uint64
	CancelsFail  uint64
}

// Snapshot returns a value copy of the current counters.
func (s *Stats) Snapshot() Stats {
	return *s
}

func (s *Stats) OnTrade(t domain.Trade) {
	s.Trades++
	s.TradedQty += uint64(t.Qty)
}

func (s *Stats) OnOrderAccepted(domain.OrderAck) {
	s.Accepted++
}

func (s *Stats) OnOrderRejected(domain.OrderAck) {
	s.Rejected++
}

func (s *Stats) OnOrderCancelled(_ domain.OrderId, success bool) {
	if success {
		s.CancelsOK++
	} else {
		s.CancelsFail++
	}
}
