package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"nutricat/internal/domain/shop"
)

type inventoryRepo struct {
	mu   sync.RWMutex
	byID map[string]shop.InventoryEntry
}

func NewInventoryRepo() shop.InventoryRepository {
	return &inventoryRepo{
		byID: make(map[string]shop.InventoryEntry),
	}
}

func (r *inventoryRepo) GetByID(ctx context.Context, id string) (shop.InventoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return shop.InventoryEntry{}, shop.ErrEntryNotFound
	}
	return e, nil
}

func (r *inventoryRepo) GetByOwnerAndItem(ctx context.Context, ownerUserID, itemID string) (shop.InventoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.byID {
		if e.OwnerUserID == ownerUserID && e.ItemID == itemID {
			return e, nil
		}
	}
	return shop.InventoryEntry{}, shop.ErrEntryNotFound
}

func (r *inventoryRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]shop.InventoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]shop.InventoryEntry, 0)
	for _, e := range r.byID {
		if e.OwnerUserID == ownerUserID {
			out = append(out, e)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *inventoryRepo) Create(ctx context.Context, e shop.InventoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("entry id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("entry already exists")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *inventoryRepo) Save(ctx context.Context, e shop.InventoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[e.ID]; !exists {
		return shop.ErrEntryNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *inventoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return shop.ErrEntryNotFound
	}
	delete(r.byID, id)
	return nil
}
