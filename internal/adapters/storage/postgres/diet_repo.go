package postgres

import (
	"context"
	"database/sql"
	"time"

	"nutricat/internal/domain/diet"
)

type DietRepo struct {
	db *sql.DB
}

func NewDietRepo(db *sql.DB) *DietRepo {
	return &DietRepo{db: db}
}

func (r *DietRepo) Create(ctx context.Context, rec diet.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO diet_records (
			id, owner_user_id, food_name,
			calories, protein, carbs, fat,
			image_path, date
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		rec.ID,
		rec.OwnerUserID,
		rec.FoodName,
		rec.Calories,
		rec.Protein,
		rec.Carbs,
		rec.Fat,
		rec.ImagePath,
		rec.Date,
	)
	return err
}

func (r *DietRepo) ListByOwnerBetween(ctx context.Context, ownerUserID string, from, to time.Time) ([]diet.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_user_id, food_name,
			calories, protein, carbs, fat,
			image_path, date
		FROM diet_records
		WHERE owner_user_id = $1
		  AND date >= $2
		  AND date < $3
		ORDER BY date DESC
	`, ownerUserID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]diet.Record, 0)
	for rows.Next() {
		var rec diet.Record
		if err := rows.Scan(
			&rec.ID,
			&rec.OwnerUserID,
			&rec.FoodName,
			&rec.Calories,
			&rec.Protein,
			&rec.Carbs,
			&rec.Fat,
			&rec.ImagePath,
			&rec.Date,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *DietRepo) CountByOwnerBetween(ctx context.Context, ownerUserID string, from, to time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM diet_records
		WHERE owner_user_id = $1
		  AND date >= $2
		  AND date < $3
	`, ownerUserID, from, to).Scan(&n)
	return n, err
}
