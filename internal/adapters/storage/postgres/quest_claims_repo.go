package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"nutricat/internal/dates"
	"nutricat/internal/domain/quests"
)

type QuestClaimsRepo struct {
	db *sql.DB
}

func NewQuestClaimsRepo(db *sql.DB) *QuestClaimsRepo {
	return &QuestClaimsRepo{db: db}
}

// Create depende del unique index (owner_user_id, quest_id, day):
// la base es quien garantiza exactamente-una-vez ante carreras.
func (r *QuestClaimsRepo) Create(ctx context.Context, c quests.Claim) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quest_claims (id, owner_user_id, quest_id, day, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`,
		c.ID,
		c.OwnerUserID,
		c.QuestID,
		c.Day.Start(time.UTC),
		c.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return quests.ErrDuplicateClaim
		}
		return err
	}
	return nil
}

func (r *QuestClaimsRepo) Exists(ctx context.Context, ownerUserID, questID string, day dates.Day) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `
		SELECT 1
		FROM quest_claims
		WHERE owner_user_id = $1 AND quest_id = $2 AND day = $3
	`, ownerUserID, questID, day.Start(time.UTC)).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
