package shop

import (
	"context"
	"errors"
)

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrEntryNotFound = errors.New("inventory entry not found")
)

type ItemRepository interface {
	List(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id string) (Item, error)

	// Seed inserta el catálogo si todavía está vacío.
	Seed(ctx context.Context, items []Item) error
}

type InventoryRepository interface {
	GetByID(ctx context.Context, id string) (InventoryEntry, error)
	GetByOwnerAndItem(ctx context.Context, ownerUserID, itemID string) (InventoryEntry, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]InventoryEntry, error)
	Create(ctx context.Context, e InventoryEntry) error
	Save(ctx context.Context, e InventoryEntry) error
	Delete(ctx context.Context, id string) error
}
