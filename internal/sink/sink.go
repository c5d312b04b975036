// Package sink provides the event-sink interface the order book invokes
// synchronously at every trade, accept, reject, and cancel, plus a handful
// of concrete sinks used by the CLI.
package sink

import "github.com/saiputravu/matchbook/internal/domain"

// Sink is the narrowest abstraction the book depends on. All four methods
// are invoked synchronously from inside SubmitLimitOrder/CancelOrder; a
// Sink must never call back into the Book that is driving it.
type Sink interface {
	OnTrade(t domain.Trade)
	OnOrderAccepted(ack domain.OrderAck)
	OnOrderRejected(ack domain.OrderAck)
	OnOrderCancelled(id domain.OrderId, success bool)
}

// Noop discards every event. Useful as a zero-value default and in tests
// that only care about the book's resting state.
type Noop struct{}

func (Noop) OnTrade(domain.Trade)                  {}
func (Noop) OnOrderAccepted(domain.OrderAck)       {}
func (Noop) OnOrderRejected(domain.OrderAck)       {}
func (Noop) OnOrderCancelled(domain.OrderId, bool) {}

// Multi fans a single event out to every sink in registration order.
type Multi []Sink

func (m Multi) OnTrade(t domain.Trade) {
	for _, s := range m {
		s.OnTrade(t)
	}
}

func (m Multi) OnOrderAccepted(ack domain.OrderAck) {
	for _, s := range m {
		s.OnOrderAccepted(ack)
	}
}

func (m Multi) OnOrderRejected(ack domain.OrderAck) {
	for _, s := range m {
		s.OnOrderRejected(ack)
	}
}

func (m Multi) OnOrderCancelled(id domain.OrderId, success bool) {
	for _, s := range m {
		s.OnOrderCancelled(id, success)
	}
}
