package postgres

import (
	"context"
	"database/sql"

	"nutricat/internal/domain/shop"
)

type InventoryRepo struct {
	db *sql.DB
}

func NewInventoryRepo(db *sql.DB) *InventoryRepo {
	return &InventoryRepo{db: db}
}

const inventoryColumns = `id, owner_user_id, item_id, quantity, created_at, updated_at`

func (r *InventoryRepo) GetByID(ctx context.Context, id string) (shop.InventoryEntry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+inventoryColumns+`
		FROM inventory_entries
		WHERE id = $1
	`, id)
	return scanInventoryEntry(row)
}

func (r *InventoryRepo) GetByOwnerAndItem(ctx context.Context, ownerUserID, itemID string) (shop.InventoryEntry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+inventoryColumns+`
		FROM inventory_entries
		WHERE owner_user_id = $1 AND item_id = $2
	`, ownerUserID, itemID)
	return scanInventoryEntry(row)
}

func (r *InventoryRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]shop.InventoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+inventoryColumns+`
		FROM inventory_entries
		WHERE owner_user_id = $1
		ORDER BY created_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]shop.InventoryEntry, 0)
	for rows.Next() {
		var e shop.InventoryEntry
		if err := rows.Scan(&e.ID, &e.OwnerUserID, &e.ItemID, &e.Quantity, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *InventoryRepo) Create(ctx context.Context, e shop.InventoryEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory_entries (id, owner_user_id, item_id, quantity, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, e.ID, e.OwnerUserID, e.ItemID, e.Quantity, e.CreatedAt, e.UpdatedAt)
	return err
}

func (r *InventoryRepo) Save(ctx context.Context, e shop.InventoryEntry) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE inventory_entries
		SET quantity = $2, updated_at = $3
		WHERE id = $1
	`, e.ID, e.Quantity, e.UpdatedAt)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return shop.ErrEntryNotFound
	}
	return nil
}

func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM inventory_entries WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return shop.ErrEntryNotFound
	}
	return nil
}

func scanInventoryEntry(row *sql.Row) (shop.InventoryEntry, error) {
	var e shop.InventoryEntry
	err := row.Scan(&e.ID, &e.OwnerUserID, &e.ItemID, &e.Quantity, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return shop.InventoryEntry{}, shop.ErrEntryNotFound
	}
	if err != nil {
		return shop.InventoryEntry{}, err
	}
	return e, nil
}
