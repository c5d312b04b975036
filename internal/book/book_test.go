package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saiputravu/matchbook/internal/domain"
)

// recordingSink captures every event the book emits so tests can assert on
// exact event order, mirroring the reference implementation's StatsListener
// but keeping the raw event sequence instead of just counts.
type recordingSink struct {
	trades    []domain.Trade
	accepted  []domain.OrderAck
	rejected  []domain.OrderAck
	cancelled []struct {
		id      domain.OrderId
		success bool
	}
}

func (r *recordingSink) OnTrade(t domain.Trade) { r.trades = append(r.trades, t) }
func (r *recordingSink) OnOrderAccepted(ack domain.OrderAck) {
	r.accepted = append(r.accepted, ack)
}
func (r *recordingSink) OnOrderRejected(ack domain.OrderAck) {
	r.rejected = append(r.rejected, ack)
}
func (r *recordingSink) OnOrderCancelled(id domain.OrderId, success bool) {
	r.cancelled = append(r.cancelled, struct {
		id      domain.OrderId
		success bool
	}{id, success})
}

func req(id domain.OrderId, side domain.Side, price, qty int64) domain.OrderRequest {
	return domain.OrderRequest{Id: id, Side: side, Price: price, Qty: qty}
}

// S1 — simple cross with partial fill.
func TestScenario_SimpleCrossPartialFill(t *testing.T) {
	s := &recordingSink{}
	b := New(s, 0)

	b.SubmitLimitOrder(req(1, domain.Buy, 100, 10))
	require.Len(t, s.accepted, 1)
	require.Equal(t, domain.OrderId(1), s.accepted[0].Id)

	b.SubmitLimitOrder(req(2, domain.Sell, 101, 5))
	require.Len(t, s.accepted, 2)

	b.SubmitLimitOrder(req(3, domain.Sell, 100, 7))
	require.Len(t, s.trades, 1)
	assert.Equal(t, domain.Trade{RestingId: 1, TakingId: 3, Price: 100, Qty: 7}, s.trades[0])
	require.Len(t, s.accepted, 3)
	assert.Equal(t, domain.OrderId(3), s.accepted[2].Id)

	bb, ok := b.BestBid()
	require.True(t, ok)
	assert.Equal(t, domain.Price(100), bb)
	ba, ok := b.BestAsk()
	require.True(t, ok)
	assert.Equal(t, domain.Price(101), ba)

	lvl, ok := b.bids.get(100)
	require.True(t, ok)
	assert.Equal(t, domain.Qty(3), lvl.TotalQty)

	b.CancelOrder(1)
	require.Len(t, s.cancelled, 1)
	assert.True(t, s.cancelled[0].success)

	_, ok = b.BestBid()
	assert.False(t, ok)
}

// S2 — price improvement: fill price is the resting order's price.
func TestScenario_PriceImprovement(t *testing.T) {
	s := &recordingSink{}
	b := New(s, 0)

	b.SubmitLimitOrder(req(1, domain.Sell, 100, 10))
	b.SubmitLimitOrder(req(2, domain.Buy, 105, 4))

	require.Len(t, s.trades, 1)
	assert.Equal(t, domain.Price(100), s.trades[0].Price)
	assert.Equal(t, domain.Qty(4), s.trades[0].Qty)
}

// S3 — multi-level sweep across two ask levels with a residual rest.
func TestScenario_MultiLevelSweep(t *testing.T) {
	s := &recordingSink{}
	b := New(s, 0)

	b.SubmitLimitOrder(req(1, domain.Sell, 100, 3))
	b.SubmitLimitOrder(req(2, domain.Sell, 101, 4))
	b.SubmitLimitOrder(req(3, domain.Sell, 102, 5))

	b.SubmitLimitOrder(req(4, domain.Buy, 101, 10))

	require.Len(t, s.trades, 2)
	assert.Equal(t, domain.Trade{RestingId: 1, TakingId: 4, Price: 100, Qty: 3}, s.trades[0])
	assert.Equal(t, domain.Trade{RestingId: 2, TakingId: 4, Price: 101, Qty: 4}, s.trades[1])

	bb, _ := b.BestBid()
	assert.Equal(t, domain.Price(101), bb)
	ba, _ := b.BestAsk()
	assert.Equal(t, domain.Price(102), ba)
}

// S4 — FIFO ordering within a single price level.
func TestScenario_FIFOWithinLevel(t *testing.T) {
	s := &recordingSink{}
	b := New(s, 0)

	b.SubmitLimitOrder(req(1, domain.Buy, 100, 5))
	b.SubmitLimitOrder(req(2, domain.Buy, 100, 5))

	b.SubmitLimitOrder(req(3, domain.Sell, 100, 6))

	require.Len(t, s.trades, 2)
	assert.Equal(t, domain.Trade{RestingId: 1, TakingId: 3, Price: 100, Qty: 5}, s.trades[0])
	assert.Equal(t, domain.Trade{RestingId: 2, TakingId: 3, Price: 100, Qty: 1}, s.trades[1])

	lvl, ok := b.bids.get(100)
	require.True(t, ok)
	require.Len(t, lvl.Orders, 1)
	assert.Equal(t, domain.Qty(4), lvl.Orders[0].RemainingQty)
}

// S5 — cancel of an unknown id is a no-op reported as failure.
func TestScenario_CancelUnknown(t *testing.T) {
	s := &recordingSink{}
	b := New(s, 0)

	b.CancelOrder(42)
	require.Len(t, s.cancelled, 1)
	assert.Equal(t, domain.OrderId(42), s.cancelled[0].id)
	assert.False(t, s.cancelled[0].success)
}

// S6 — non-positive quantity is rejected, never accepted.
func TestScenario_RejectInvalidQuantity(t *testing.T) {
	s := &recordingSink{}
	b := New(s, 0)

	b.SubmitLimitOrder(req(7, domain.Buy, 100, 0))
	require.Len(t, s.rejected, 1)
	assert.Equal(t, "Non-positive quantity", s.rejected[0].Reason)
	assert.Empty(t, s.accepted)

	_, ok := b.BestBid()
	assert.False(t, ok)
}

func TestDuplicateOrderIdIsRejected(t *testing.T) {
	s := &recordingSink{}
	b := New(s, 0)

	b.SubmitLimitOrder(req(1, domain.Buy, 100, 5))
	b.SubmitLimitOrder(req(1, domain.Buy, 101, 5))

	require.Len(t, s.rejected, 1)
	assert.Equal(t, "Duplicate order id", s.rejected[0].Reason)
}

func TestExactTouchPriceCrosses(t *testing.T) {
	s := &recordingSink{}
	b := New(s, 0)

	b.SubmitLimitOrder(req(1, domain.Sell, 100, 5))
	b.SubmitLimitOrder(req(2, domain.Buy, 100, 5))

	require.Len(t, s.trades, 1)
	assert.Equal(t, domain.Qty(5), s.trades[0].Qty)
	_, ok := b.BestBid()
	assert.False(t, ok)
	_, ok = b.BestAsk()
	assert.False(t, ok)
}

func TestEmptyBookQueries(t *testing.T) {
	b := New(&recordingSink{}, 0)
	_, ok := b.BestBid()
	assert.False(t, ok)
	_, ok = b.BestAsk()
	assert.False(t, ok)
}

func TestCancelMidQueueDoesNotDisturbFIFOOrder(t *testing.T) {
	s := &recordingSink{}
	b := New(s, 0)

	b.SubmitLimitOrder(req(1, domain.Buy, 100, 1))
	b.SubmitLimitOrder(req(2, domain.Buy, 100, 1))
	b.SubmitLimitOrder(req(3, domain.Buy, 100, 1))

	b.CancelOrder(2)
	require.Len(t, s.cancelled, 1)
	assert.True(t, s.cancelled[0].success)

	lvl, ok := b.bids.get(100)
	require.True(t, ok)
	require.Len(t, lvl.Orders, 2)
	assert.Equal(t, domain.OrderId(1), lvl.Orders[0].Id)
	assert.Equal(t, domain.OrderId(3), lvl.Orders[1].Id)
	assert.Equal(t, domain.Qty(2), lvl.TotalQty)
}

func TestCancelLastOrderRemovesLevel(t *testing.T) {
	s := &recordingSink{}
	b := New(s, 0)

	b.SubmitLimitOrder(req(1, domain.Buy, 100, 3))
	b.CancelOrder(1)

	_, ok := b.bids.get(100)
	assert.False(t, ok)
	assert.Equal(t, 0, b.bids.len())
}
