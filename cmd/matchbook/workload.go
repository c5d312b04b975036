package main

import (
	"math/rand"

	"github.com/saiputravu/matchbook/internal/domain"
	"github.com/saiputravu/matchbook/internal/engine"
)

// workloadParams mirrors the reference implementation's test_engine.cpp
// CLI parameters: num_ops, cancel_prob_pct, max_price, max_qty, seed.
type workloadParams struct {
	numOps         uint64
	cancelProbPct  int
	maxPrice       int64
	maxQty         int64
	seed           int64
}

func (p *workloadParams) clamp() {
	if p.cancelProbPct < 0 {
		p.cancelProbPct = 0
	}
	if p.cancelProbPct > 100 {
		p.cancelProbPct = 100
	}
	if p.maxPrice <= 0 {
		p.maxPrice = 1
	}
	if p.maxQty <= 0 {
		p.maxQty = 1
	}
}

// runWorkload drives eng with num_ops random submissions/cancels, checking
// the no-crossed-book invariant every correctnessCheckEvery operations. It returns an
// error the first time the no-crossed-book invariant is observed broken.
func runWorkload(eng *engine.Engine, p workloadParams, correctnessCheckEvery uint64) error {
	rng := rand.New(rand.NewSource(p.seed))

	knownIds := make([]domain.OrderId, 0, p.numOps)
	var nextId domain.OrderId = 1

	for i := uint64(0); i < p.numOps; i++ {
		doCancel := len(knownIds) > 0 && rng.Intn(100) < p.cancelProbPct

		if doCancel {
			idx := rng.Intn(len(knownIds))
			eng.CancelOrder(knownIds[idx])
		} else {
			side := domain.Buy
			if rng.Intn(2) == 1 {
				side = domain.Sell
			}
			price := domain.Price(1 + rng.Int63n(p.maxPrice))
			qty := domain.Qty(1 + rng.Int63n(p.maxQty))

			eng.SubmitLimitOrder(domain.OrderRequest{Id: nextId, Side: side, Price: price, Qty: qty})
			knownIds = append(knownIds, nextId)
			nextId++
		}

		if correctnessCheckEvery > 0 && i%correctnessCheckEvery == 0 && i != 0 {
			if bb, bbOk := eng.BestBid(); bbOk {
				if ba, baOk := eng.BestAsk(); baOk && bb >= ba {
					return errCrossedBook(i, bb, ba)
				}
			}
		}
	}
	return nil
}
