package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"nutricat/internal/domain/pet"
)

type petRepo struct {
	mu      sync.RWMutex
	byOwner map[string]pet.Pet
}

func NewPetRepo() pet.Repository {
	return &petRepo{
		byOwner: make(map[string]pet.Pet),
	}
}

func (r *petRepo) Get(ctx context.Context, ownerUserID string) (pet.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byOwner[ownerUserID]
	if !ok {
		return pet.Pet{}, pet.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) Create(ctx context.Context, p pet.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.OwnerUserID) == "" {
		return errors.New("owner id required")
	}
	if _, exists := r.byOwner[p.OwnerUserID]; exists {
		return errors.New("pet already exists")
	}
	r.byOwner[p.OwnerUserID] = p
	return nil
}

func (r *petRepo) Save(ctx context.Context, p pet.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byOwner[p.OwnerUserID]; !exists {
		return pet.ErrNotFound
	}
	r.byOwner[p.OwnerUserID] = p
	return nil
}

func (r *petRepo) ListTop(ctx context.Context, limit int) ([]pet.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pet.Pet, 0, len(r.byOwner))
	for _, p := range r.byOwner {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level > out[j].Level
		}
		if out[i].Exp != out[j].Exp {
			return out[i].Exp > out[j].Exp
		}
		return out[i].FurQuality > out[j].FurQuality
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
