package quests

import (
	"context"
	"errors"

	"nutricat/internal/dates"
)

// ErrDuplicateClaim indica que ya existe un claim para
// (owner, quest, día). El repo lo garantiza atómicamente.
var ErrDuplicateClaim = errors.New("claim already exists")

type ClaimRepository interface {
	// Create inserta el claim; devuelve ErrDuplicateClaim si la clave
	// (owner, quest, día) ya existe.
	Create(ctx context.Context, c Claim) error
	Exists(ctx context.Context, ownerUserID, questID string, day dates.Day) (bool, error)
}
