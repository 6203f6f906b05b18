package pet

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("pet not found")

// Repository persiste el registro 1:1 (owner -> Pet).
// La atomicidad por owner la garantiza el Service; el repo solo
// necesita ofrecer read-your-writes por owner.
type Repository interface {
	Get(ctx context.Context, ownerUserID string) (Pet, error)
	Create(ctx context.Context, p Pet) error
	Save(ctx context.Context, p Pet) error

	// ListTop devuelve hasta limit pets ordenados por
	// (level desc, exp desc, furQuality desc).
	ListTop(ctx context.Context, limit int) ([]Pet, error)
}
