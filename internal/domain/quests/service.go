package quests

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nutricat/internal/domain/pet"
)

var (
	ErrQuestNotFound  = errors.New("quest not found")
	ErrAlreadyClaimed = errors.New("quest already claimed today")
	ErrNotCompleted   = errors.New("quest not completed yet")
)

// DietCounter es lo único que el motor de quests necesita del módulo
// de dieta: cuántas comidas se registraron hoy.
type DietCounter interface {
	CountToday(ctx context.Context, ownerUserID string) (int, error)
}

type Service struct {
	pets   *pet.Service
	claims ClaimRepository
	meals  DietCounter
	now    func() time.Time
}

func NewService(pets *pet.Service, claims ClaimRepository, meals DietCounter) *Service {
	return &Service{
		pets:   pets,
		claims: claims,
		meals:  meals,
		now:    time.Now,
	}
}

// progress resuelve la fuente de progreso de una quest.
func (s *Service) progress(ctx context.Context, q Quest, p pet.Pet) (int, error) {
	switch q.Source {
	case SourceConstant:
		return 1, nil
	case SourceDailyWater:
		return p.DailyWaterCount, nil
	case SourceTodayMeals:
		return s.meals.CountToday(ctx, p.OwnerUserID)
	default:
		return 0, fmt.Errorf("unknown progress source %q", q.Source)
	}
}

// Statuses calcula el estado de cada quest del catálogo para hoy.
// Corre bajo la sección crítica del owner para que el rollover ya esté
// aplicado y el progreso sea consistente con el registro actual.
func (s *Service) Statuses(ctx context.Context, ownerUserID string) ([]QuestStatus, error) {
	var out []QuestStatus

	err := s.pets.WithOwner(ctx, ownerUserID, func(tx *pet.OwnerTx) error {
		p, err := tx.Pet()
		if err != nil {
			return err
		}
		today := s.pets.Today()

		for _, q := range Catalog() {
			prog, err := s.progress(ctx, q, p)
			if err != nil {
				return err
			}

			claimed, err := s.claims.Exists(ctx, ownerUserID, q.ID, today)
			if err != nil {
				return err
			}

			st := StatusLocked
			switch {
			case claimed:
				st = StatusClaimed
			case prog >= q.Target:
				st = StatusClaimable
			}

			out = append(out, QuestStatus{Quest: q, Progress: prog, Status: st})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ClaimResult es el resultado de un cobro exitoso.
type ClaimResult struct {
	Quest Quest
	Pet   pet.Pet
}

// Claim cobra la recompensa de una quest, a lo sumo una vez por
// (owner, quest, día). El claim se escribe ANTES de acreditar la
// recompensa: si algo falla en el medio puede perderse una recompensa,
// pero nunca acreditarse dos veces. La unicidad la garantiza el repo.
func (s *Service) Claim(ctx context.Context, ownerUserID, questID string) (ClaimResult, error) {
	var quest Quest
	found := false
	for _, q := range Catalog() {
		if q.ID == questID {
			quest = q
			found = true
			break
		}
	}
	if !found {
		return ClaimResult{}, ErrQuestNotFound
	}

	var res ClaimResult
	err := s.pets.WithOwner(ctx, ownerUserID, func(tx *pet.OwnerTx) error {
		p, err := tx.Pet()
		if err != nil {
			return err
		}
		today := s.pets.Today()

		claimed, err := s.claims.Exists(ctx, ownerUserID, quest.ID, today)
		if err != nil {
			return err
		}
		if claimed {
			return ErrAlreadyClaimed
		}

		prog, err := s.progress(ctx, quest, p)
		if err != nil {
			return err
		}
		if prog < quest.Target {
			return ErrNotCompleted
		}

		err = s.claims.Create(ctx, Claim{
			ID:          uuid.NewString(),
			OwnerUserID: ownerUserID,
			QuestID:     quest.ID,
			Day:         today,
			CreatedAt:   s.now(),
		})
		if errors.Is(err, ErrDuplicateClaim) {
			return ErrAlreadyClaimed
		}
		if err != nil {
			return err
		}

		updated, err := tx.Update(func(p *pet.Pet) error {
			p.Coins += quest.RewardCoins
			p.Exp += quest.RewardExp
			return nil
		})
		if err != nil {
			return err
		}

		res = ClaimResult{Quest: quest, Pet: updated}
		return nil
	})
	if err != nil {
		return ClaimResult{}, err
	}
	return res, nil
}
