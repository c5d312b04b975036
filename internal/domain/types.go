// Package domain holds the value types shared between the order book core,
// the event sink implementations, and the engine facade.
package domain

import "fmt"

// Side is the side of the book an order rests on or crosses against.
type Side uint8

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "BUY"
	}
	return "SELL"
}

// OrderId uniquely identifies an order for the lifetime of a Book.
type OrderId = uint64

// Price is an integer tick count. Ticks, not floats: the book never rounds.
type Price = int64

// Qty is a signed unit count. Submitted quantities must be > 0.
type Qty = int64

// OrderRequest is the immutable input to SubmitLimitOrder.
type OrderRequest struct {
	Id    OrderId
	Side  Side
	Price Price
	Qty   Qty
}

// RestingOrder lives inside exactly one PriceLevel's FIFO while it rests in
// the book. ArrivalSeq is assigned by the book, never by the caller.
type RestingOrder struct {
	Id           OrderId
	Side         Side
	Price        Price
	RemainingQty Qty
	ArrivalSeq   uint64
}

// Trade is emitted once per fill, never stored.
type Trade struct {
	RestingId OrderId
	TakingId  OrderId
	Price     Price
	Qty       Qty
}

func (t Trade) String() string {
	return fmt.Sprintf("TRADE resting=%d taking=%d px=%d qty=%d", t.RestingId, t.TakingId, t.Price, t.Qty)
}

// OrderAck is emitted on accept or reject, never stored.
type OrderAck struct {
	Id       OrderId
	Accepted bool
	Reason   string
}

// Locator is the minimal information needed to find an order's level: the
// side plus the price. The order is then found within the level's FIFO by
// id. We deliberately avoid storing raw container iterators/pointers here
// (see DESIGN.md) so the locator stays valid across level mutation.
type Locator struct {
	Side  Side
	Price Price
}
