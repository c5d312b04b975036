package book

import "github.com/saiputravu/matchbook/internal/domain"

// PriceLevel is the FIFO queue of resting orders at one price on one side.
// It exists in a side's tree iff Orders is non-empty (spec invariant 2).
type PriceLevel struct {
	Price    domain.Price
	Orders   []*domain.RestingOrder
	TotalQty domain.Qty
}

func newLevel(price domain.Price) *PriceLevel {
	return &PriceLevel{Price: price}
}

// append adds a resting order to the tail of the FIFO.
func (lvl *PriceLevel) append(o *domain.RestingOrder) {
	lvl.Orders = append(lvl.Orders, o)
	lvl.TotalQty += o.RemainingQty
}

// removeFront drops the order at the head of the FIFO, used once a resting
// order is fully consumed by the match loop (it is always at index 0 there,
// since fills walk the queue front to back).
func (lvl *PriceLevel) removeFront() {
	lvl.TotalQty -= lvl.Orders[0].RemainingQty
	lvl.Orders[0] = nil
	lvl.Orders = lvl.Orders[1:]
}

// removeAt removes the order at an arbitrary FIFO position, used by cancel.
// O(Q) in the level's depth, per the design notes' accepted cost model.
func (lvl *PriceLevel) removeAt(i int) {
	lvl.TotalQty -= lvl.Orders[i].RemainingQty
	copy(lvl.Orders[i:], lvl.Orders[i+1:])
	lvl.Orders[len(lvl.Orders)-1] = nil
	lvl.Orders = lvl.Orders[:len(lvl.Orders)-1]
}

// indexOf returns the FIFO position of id, or -1 if absent from this level.
func (lvl *PriceLevel) indexOf(id domain.OrderId) int {
	for i, o := range lvl.Orders {
		if o.Id == id {
			return i
		}
	}
	return -1
}

func (lvl *PriceLevel) empty() bool {
	return len(lvl.Orders) == 0
}
