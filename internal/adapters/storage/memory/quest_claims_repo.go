package memory

import (
	"context"
	"errors"
	"sync"

	"nutricat/internal/dates"
	"nutricat/internal/domain/quests"
)

type claimKey struct {
	owner   string
	questID string
	day     dates.Day
}

type questClaimsRepo struct {
	mu    sync.RWMutex
	byKey map[claimKey]quests.Claim
}

func NewQuestClaimsRepo() quests.ClaimRepository {
	return &questClaimsRepo{
		byKey: make(map[claimKey]quests.Claim),
	}
}

// Create inserta bajo el lock del repo: la unicidad de
// (owner, quest, día) es atómica también ante carreras.
func (r *questClaimsRepo) Create(ctx context.Context, c quests.Claim) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		return errors.New("claim id required")
	}

	key := claimKey{owner: c.OwnerUserID, questID: c.QuestID, day: c.Day}
	if _, exists := r.byKey[key]; exists {
		return quests.ErrDuplicateClaim
	}
	r.byKey[key] = c
	return nil
}

func (r *questClaimsRepo) Exists(ctx context.Context, ownerUserID, questID string, day dates.Day) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byKey[claimKey{owner: ownerUserID, questID: questID, day: day}]
	return ok, nil
}
