package postgres

import (
	"context"
	"database/sql"

	"nutricat/internal/domain/shop"
)

type ItemsRepo struct {
	db *sql.DB
}

func NewItemsRepo(db *sql.DB) *ItemsRepo {
	return &ItemsRepo{db: db}
}

func (r *ItemsRepo) List(ctx context.Context) ([]shop.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, type, price, effect_type, effect_value, effect_tag, icon, description
		FROM items
		ORDER BY price ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]shop.Item, 0)
	for rows.Next() {
		var it shop.Item
		if err := rows.Scan(
			&it.ID,
			&it.Name,
			&it.Type,
			&it.Price,
			&it.EffectType,
			&it.EffectValue,
			&it.EffectTag,
			&it.Icon,
			&it.Description,
		); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *ItemsRepo) GetByID(ctx context.Context, id string) (shop.Item, error) {
	var it shop.Item
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, type, price, effect_type, effect_value, effect_tag, icon, description
		FROM items
		WHERE id = $1
	`, id).Scan(
		&it.ID,
		&it.Name,
		&it.Type,
		&it.Price,
		&it.EffectType,
		&it.EffectValue,
		&it.EffectTag,
		&it.Icon,
		&it.Description,
	)
	if err == sql.ErrNoRows {
		return shop.Item{}, shop.ErrItemNotFound
	}
	if err != nil {
		return shop.Item{}, err
	}
	return it, nil
}

// Seed inserta el catálogo solo si la tabla está vacía.
func (r *ItemsRepo) Seed(ctx context.Context, items []shop.Item) error {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, it := range items {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO items (id, name, type, price, effect_type, effect_value, effect_tag, icon, description)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
			ON CONFLICT (id) DO NOTHING
		`,
			it.ID,
			it.Name,
			it.Type,
			it.Price,
			it.EffectType,
			it.EffectValue,
			it.EffectTag,
			it.Icon,
			it.Description,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
