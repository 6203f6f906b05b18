package memory

import (
	"context"
	"sort"
	"sync"

	"nutricat/internal/domain/shop"
)

type itemsRepo struct {
	mu   sync.RWMutex
	byID map[string]shop.Item
}

func NewItemsRepo() shop.ItemRepository {
	return &itemsRepo{
		byID: make(map[string]shop.Item),
	}
}

func (r *itemsRepo) List(ctx context.Context) ([]shop.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]shop.Item, 0, len(r.byID))
	for _, it := range r.byID {
		out = append(out, it)
	}

	// orden estable por precio asc (solo consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			return out[i].Price < out[j].Price
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *itemsRepo) GetByID(ctx context.Context, id string) (shop.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.byID[id]
	if !ok {
		return shop.Item{}, shop.ErrItemNotFound
	}
	return it, nil
}

func (r *itemsRepo) Seed(ctx context.Context, items []shop.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.byID) > 0 {
		return nil
	}
	for _, it := range items {
		r.byID[it.ID] = it
	}
	return nil
}
