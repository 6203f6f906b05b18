package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"nutricat/internal/domain/diet"
)

type dietRepo struct {
	mu   sync.RWMutex
	byID map[string]diet.Record
}

func NewDietRepo() diet.Repository {
	return &dietRepo{
		byID: make(map[string]diet.Record),
	}
}

func (r *dietRepo) Create(ctx context.Context, rec diet.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		return errors.New("record id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("record already exists")
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *dietRepo) ListByOwnerBetween(ctx context.Context, ownerUserID string, from, to time.Time) ([]diet.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]diet.Record, 0)
	for _, rec := range r.byID {
		if rec.OwnerUserID != ownerUserID {
			continue
		}
		// [from, to)
		if rec.Date.Before(from) || !rec.Date.Before(to) {
			continue
		}
		out = append(out, rec)
	}

	// más reciente primero
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	return out, nil
}

func (r *dietRepo) CountByOwnerBetween(ctx context.Context, ownerUserID string, from, to time.Time) (int, error) {
	recs, err := r.ListByOwnerBetween(ctx, ownerUserID, from, to)
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}
