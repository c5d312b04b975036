package main

import "fmt"

// crossedBookError reports a no-crossed-book invariant violation observed
// by a correctness check during a workload run.
type crossedBookError struct {
	op      uint64
	bestBid int64
	bestAsk int64
}

func (e *crossedBookError) Error() string {
	return fmt.Sprintf("invariant violated at op=%d: best_bid=%d best_ask=%d", e.op, e.bestBid, e.bestAsk)
}

func errCrossedBook(op uint64, bestBid, bestAsk int64) error {
	return &crossedBookError{op: op, bestBid: bestBid, bestAsk: bestAsk}
}
