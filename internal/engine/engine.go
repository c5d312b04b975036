// Package engine provides a thin facade over book.Book that stabilizes the
// public contract for callers; it adds no matching logic of its own.
package engine

import (
	"github.com/saiputravu/matchbook/internal/book"
	"github.com/saiputravu/matchbook/internal/domain"
	"github.com/saiputravu/matchbook/internal/sink"
)

// Engine wraps a single-instrument order book.
type Engine struct {
	book *book.Book
}

// New constructs an Engine backed by a fresh Book. s receives every
// trade/accept/reject/cancel event the book emits; expectedOrders sizes
// the book's id index.
func New(s sink.Sink, expectedOrders int) *Engine {
	return &Engine{book: book.New(s, expectedOrders)}
}

func (e *Engine) SubmitLimitOrder(req domain.OrderRequest) {
	e.book.SubmitLimitOrder(req)
}

func (e *Engine) CancelOrder(id domain.OrderId) {
	e.book.CancelOrder(id)
}

func (e *Engine) BestBid() (domain.Price, bool) {
	return e.book.BestBid()
}

func (e *Engine) BestAsk() (domain.Price, bool) {
	return e.book.BestAsk()
}
