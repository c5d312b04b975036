package book

import "github.com/saiputravu/matchbook/internal/domain"

// crosses reports whether a resting level at levelPrice on the opposite
// side would trade against an aggressor of the given side at aggressorPrice.
// A buy aggressor crosses an ask level priced at or below its limit; a sell
// aggressor crosses a bid level priced at or above its limit.
func crosses(aggressorSide domain.Side, aggressorPrice, levelPrice domain.Price) bool {
	if aggressorSide == domain.Buy {
		return levelPrice <= aggressorPrice
	}
	return levelPrice >= aggressorPrice
}

// match runs the aggressor against the opposite side's resting levels,
// best price first and FIFO within a level, emitting one OnTrade per fill.
// It returns the quantity left unfilled after the sweep.
func (b *Book) match(req domain.OrderRequest) domain.Qty {
	remaining := req.Qty
	opp := b.oppositeSideFor(req.Side)

	for remaining > 0 {
		lvl, ok := opp.top()
		if !ok || !crosses(req.Side, req.Price, lvl.Price) {
			break
		}

		for remaining > 0 && !lvl.empty() {
			resting := lvl.Orders[0]
			fill := min64(remaining, resting.RemainingQty)

			b.sink.OnTrade(domain.Trade{
				RestingId: resting.Id,
				TakingId:  req.Id,
				Price:     lvl.Price,
				Qty:       fill,
			})

			resting.RemainingQty -= fill
			remaining -= fill
			lvl.TotalQty -= fill

			if resting.RemainingQty == 0 {
				delete(b.idIndex, resting.Id)
				// RemainingQty is 0 here, so removeFront leaves TotalQty as
				// the fill above already set it.
				lvl.removeFront()
			}
		}

		if lvl.empty() {
			opp.deleteLevel(lvl.Price)
		}
	}

	return remaining
}

func min64(a, b domain.Qty) domain.Qty {
	if a < b {
		return a
	}
	return b
}
