package book

import "github.com/saiputravu/matchbook/internal/domain"

// insertResting creates a RestingOrder for the unfilled remainder of req,
// appends it to the tail of its price level's FIFO (creating the level if
// needed), and registers it in the id index.
func (b *Book) insertResting(req domain.OrderRequest, remaining domain.Qty) {
	b.arrivalSeq++

	o := &domain.RestingOrder{
		Id:           req.Id,
		Side:         req.Side,
		Price:        req.Price,
		RemainingQty: remaining,
		ArrivalSeq:   b.arrivalSeq,
	}

	s := b.sideFor(req.Side)
	lvl := s.getOrCreate(req.Price)
	lvl.append(o)

	b.idIndex[req.Id] = domain.Locator{Side: req.Side, Price: req.Price}
}
