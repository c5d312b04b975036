// Package book implements the order book: the data structure and match
// loop that maintain bid/ask price levels, per-level FIFO queues, and an
// id index, under strict price-time priority.
//
// The book is not safe for concurrent use. SubmitLimitOrder and CancelOrder
// must not be called from more than one goroutine at a time, and a Sink
// must never call back into the Book from within an event callback.
package book

import (
	"github.com/saiputravu/matchbook/internal/domain"
	"github.com/saiputravu/matchbook/internal/sink"
)

// Book owns every resting order for a single instrument.
type Book struct {
	sink sink.Sink

	bids *side
	asks *side

	idIndex map[domain.OrderId]domain.Locator

	arrivalSeq uint64
}

// New constructs an empty Book. expectedOrders is a sizing hint for the
// id index; pass 0 if unknown.
func New(s sink.Sink, expectedOrders int) *Book {
	idx := make(map[domain.OrderId]domain.Locator, expectedOrders)
	return &Book{
		sink:    s,
		bids:    newSide(true),
		asks:    newSide(false),
		idIndex: idx,
	}
}

// BestBid returns the highest resting bid price, or false if there is none.
func (b *Book) BestBid() (domain.Price, bool) {
	lvl, ok := b.bids.top()
	if !ok {
		return 0, false
	}
	return lvl.Price, true
}

// BestAsk returns the lowest resting ask price, or false if there is none.
func (b *Book) BestAsk() (domain.Price, bool) {
	lvl, ok := b.asks.top()
	if !ok {
		return 0, false
	}
	return lvl.Price, true
}

// SubmitLimitOrder validates, matches, and (if residual remains) rests the
// request, emitting trade/accept/reject events to the book's Sink.
func (b *Book) SubmitLimitOrder(req domain.OrderRequest) {
	if req.Qty <= 0 {
		b.sink.OnOrderRejected(domain.OrderAck{Id: req.Id, Accepted: false, Reason: "Non-positive quantity"})
		return
	}
	if _, dup := b.idIndex[req.Id]; dup {
		b.sink.OnOrderRejected(domain.OrderAck{Id: req.Id, Accepted: false, Reason: "Duplicate order id"})
		return
	}

	remaining := b.match(req)

	if remaining > 0 {
		b.insertResting(req, remaining)
	}
	b.sink.OnOrderAccepted(domain.OrderAck{Id: req.Id, Accepted: true})
}

// CancelOrder removes a resting order by id, emitting a cancel event with
// success reflecting whether the id was found.
func (b *Book) CancelOrder(id domain.OrderId) {
	loc, ok := b.idIndex[id]
	if !ok {
		b.sink.OnOrderCancelled(id, false)
		return
	}

	s := b.sideFor(loc.Side)
	lvl, ok := s.get(loc.Price)
	if !ok {
		// Invariant violation: the index pointed at a level that no longer
		// exists. Treat as not-found rather than panicking.
		delete(b.idIndex, id)
		b.sink.OnOrderCancelled(id, false)
		return
	}

	i := lvl.indexOf(id)
	if i < 0 {
		delete(b.idIndex, id)
		b.sink.OnOrderCancelled(id, false)
		return
	}

	lvl.removeAt(i)
	if lvl.empty() {
		s.deleteLevel(loc.Price)
	}
	delete(b.idIndex, id)
	b.sink.OnOrderCancelled(id, true)
}

func (b *Book) sideFor(s domain.Side) *side {
	if s == domain.Buy {
		return b.bids
	}
	return b.asks
}

func (b *Book) oppositeSideFor(s domain.Side) *side {
	if s == domain.Buy {
		return b.asks
	}
	return b.bids
}
