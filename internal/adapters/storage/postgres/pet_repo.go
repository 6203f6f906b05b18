package postgres

import (
	"context"
	"database/sql"
	"time"

	"nutricat/internal/dates"
	"nutricat/internal/domain/pet"
)

type PetRepo struct {
	db *sql.DB
}

func NewPetRepo(db *sql.DB) *PetRepo {
	return &PetRepo{db: db}
}

const petColumns = `
	id, owner_user_id, name,
	level, exp, energy, weight, fur_quality, coins,
	water_count, daily_water_count, last_active_date,
	equipped_decoration, created_at, updated_at`

func (r *PetRepo) Get(ctx context.Context, ownerUserID string) (pet.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE owner_user_id = $1
	`, ownerUserID)

	p, err := scanPet(row)
	if err == sql.ErrNoRows {
		return pet.Pet{}, pet.ErrNotFound
	}
	if err != nil {
		return pet.Pet{}, err
	}
	return p, nil
}

func (r *PetRepo) Create(ctx context.Context, p pet.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, owner_user_id, name,
			level, exp, energy, weight, fur_quality, coins,
			water_count, daily_water_count, last_active_date,
			equipped_decoration, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		p.Level,
		p.Exp,
		p.Energy,
		p.Weight,
		p.FurQuality,
		p.Coins,
		p.WaterCount,
		p.DailyWaterCount,
		p.LastActiveDate.Start(time.UTC),
		p.EquippedDecoration,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetRepo) Save(ctx context.Context, p pet.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			level = $3,
			exp = $4,
			energy = $5,
			weight = $6,
			fur_quality = $7,
			coins = $8,
			water_count = $9,
			daily_water_count = $10,
			last_active_date = $11,
			equipped_decoration = $12,
			updated_at = $13
		WHERE owner_user_id = $1
	`,
		p.OwnerUserID,
		p.Name,
		p.Level,
		p.Exp,
		p.Energy,
		p.Weight,
		p.FurQuality,
		p.Coins,
		p.WaterCount,
		p.DailyWaterCount,
		p.LastActiveDate.Start(time.UTC),
		p.EquippedDecoration,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pet.ErrNotFound
	}
	return nil
}

func (r *PetRepo) ListTop(ctx context.Context, limit int) ([]pet.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		ORDER BY level DESC, exp DESC, fur_quality DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pet.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pet.Pet, error) {
	var p pet.Pet
	var lastActive time.Time
	if err := row.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&p.Level,
		&p.Exp,
		&p.Energy,
		&p.Weight,
		&p.FurQuality,
		&p.Coins,
		&p.WaterCount,
		&p.DailyWaterCount,
		&lastActive,
		&p.EquippedDecoration,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pet.Pet{}, err
	}

	// last_active_date es DATE; pgx lo mapea a midnight UTC
	p.LastActiveDate = dates.FromTime(lastActive, time.UTC)
	return p, nil
}
