package book

import (
	"github.com/tidwall/btree"

	"github.com/saiputravu/matchbook/internal/domain"
)

// priceLevels is the per-side sorted index of PriceLevel, keyed by price.
// Grounded in the teacher's engine/orderbook.go tidwall/btree usage: bids
// use a "greater than" comparator so the tree's Min is the highest bid,
// asks use "less than" so the tree's Min is the lowest ask. Both sides'
// top-of-book is therefore always Min(), and a full Scan walks best-price
// first regardless of side.
type priceLevels = btree.BTreeG[*PriceLevel]

type side struct {
	tree *priceLevels
}

func newSide(bidSide bool) *side {
	var less func(a, b *PriceLevel) bool
	if bidSide {
		less = func(a, b *PriceLevel) bool { return a.Price > b.Price }
	} else {
		less = func(a, b *PriceLevel) bool { return a.Price < b.Price }
	}
	return &side{tree: btree.NewBTreeG(less)}
}

func (s *side) top() (*PriceLevel, bool) {
	return s.tree.MinMut()
}

func (s *side) get(price domain.Price) (*PriceLevel, bool) {
	return s.tree.Get(&PriceLevel{Price: price})
}

func (s *side) getOrCreate(price domain.Price) *PriceLevel {
	if lvl, ok := s.get(price); ok {
		return lvl
	}
	lvl := newLevel(price)
	s.tree.Set(lvl)
	return lvl
}

func (s *side) deleteLevel(price domain.Price) {
	s.tree.Delete(&PriceLevel{Price: price})
}

func (s *side) len() int {
	return s.tree.Len()
}

// items returns every level, best price first, for testing and queries.
func (s *side) items() []*PriceLevel {
	out := make([]*PriceLevel, 0, s.tree.Len())
	s.tree.Scan(func(lvl *PriceLevel) bool {
		out = append(out, lvl)
		return true
	})
	return out
}
