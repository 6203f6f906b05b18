package diet

import (
	"context"
	"time"
)

// Repository persiste el log de comidas.
// ListByOwnerBetween filtra por [from, to) sobre Date y devuelve
// orden estable: más reciente primero.
type Repository interface {
	Create(ctx context.Context, rec Record) error
	ListByOwnerBetween(ctx context.Context, ownerUserID string, from, to time.Time) ([]Record, error)
	CountByOwnerBetween(ctx context.Context, ownerUserID string, from, to time.Time) (int, error)
}
