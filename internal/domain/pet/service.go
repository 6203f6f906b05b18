package pet

import (
	"context"
	"errors"
	"strings"
	"time"

	"nutricat/internal/dates"
	"nutricat/internal/platform/locks"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Costos y recompensas de las acciones directas sobre el gato.
const (
	waterEnergyGain = 10
	waterExpGain    = 5

	playEnergyCost = 20
	playExpGain    = 15
)

// Service es el Pet State Store: toda lectura y mutación del registro
// pasa por acá. Serializa por owner (sección crítica vía locks.Manager),
// aplica el rollover diario de forma perezosa, acota los campos y corre
// el evaluador de nivel antes de persistir.
type Service struct {
	repo  Repository
	locks *locks.Manager
	now   func() time.Time
	loc   *time.Location
}

func NewService(repo Repository, lm *locks.Manager, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:  repo,
		locks: lm,
		now:   time.Now,
		loc:   loc,
	}
}

// Today es la clave de día calendario actual, en la zona configurada.
func (s *Service) Today() dates.Day {
	return dates.FromTime(s.now(), s.loc)
}

// OwnerTx es el alcance de una sección crítica por owner.
// Dentro de WithOwner, Pet() y Update() operan sin carreras contra
// otras acciones del mismo owner.
type OwnerTx struct {
	s     *Service
	ctx   context.Context
	owner string
}

// WithOwner ejecuta fn dentro de la sección crítica del owner.
// Las unidades que tocan más de un registro (claim de quest, compra,
// uso de item) corren enteras acá adentro.
// No es reentrante: fn no debe llamar a Get/Update/WithOwner del Service.
func (s *Service) WithOwner(ctx context.Context, ownerUserID string, fn func(tx *OwnerTx) error) error {
	if strings.TrimSpace(ownerUserID) == "" {
		return ErrInvalidInput
	}
	return s.locks.WithLock(ownerUserID, func() error {
		return fn(&OwnerTx{s: s, ctx: ctx, owner: ownerUserID})
	})
}

// Pet devuelve el registro actual, creándolo con defaults en el primer
// acceso y aplicando el rollover diario si corresponde.
func (tx *OwnerTx) Pet() (Pet, error) {
	return tx.s.load(tx.ctx, tx.owner)
}

// Update aplica el mutator y deja el registro asentado: cotas,
// evaluador de nivel y persistencia como una sola unidad lógica.
// Si el mutator devuelve error no se persiste nada.
func (tx *OwnerTx) Update(mutate func(p *Pet) error) (Pet, error) {
	p, err := tx.s.load(tx.ctx, tx.owner)
	if err != nil {
		return Pet{}, err
	}
	if err := mutate(&p); err != nil {
		return Pet{}, err
	}

	clampBounds(&p)
	ApplyLeveling(&p)
	p.UpdatedAt = tx.s.now()

	if err := tx.s.repo.Save(tx.ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// load hace get-or-create y el rollover perezoso. Corre siempre bajo el
// lock del owner, así el reset diario ejecuta a lo sumo una vez por día:
// el primer acceso del día gana y los siguientes ven la fecha ya al día.
func (s *Service) load(ctx context.Context, ownerUserID string) (Pet, error) {
	today := s.Today()

	p, err := s.repo.Get(ctx, ownerUserID)
	if errors.Is(err, ErrNotFound) {
		p = NewDefault(ownerUserID, s.now(), today)
		if err := s.repo.Create(ctx, p); err != nil {
			return Pet{}, err
		}
		return p, nil
	}
	if err != nil {
		return Pet{}, err
	}

	if p.LastActiveDate != today {
		p.DailyWaterCount = 0
		p.LastActiveDate = today
		p.UpdatedAt = s.now()
		if err := s.repo.Save(ctx, p); err != nil {
			return Pet{}, err
		}
	}

	return p, nil
}

// Get devuelve el Pet del owner (con rollover aplicado).
func (s *Service) Get(ctx context.Context, ownerUserID string) (Pet, error) {
	var out Pet
	err := s.WithOwner(ctx, ownerUserID, func(tx *OwnerTx) error {
		p, err := tx.Pet()
		if err != nil {
			return err
		}
		out = p
		return nil
	})
	return out, err
}

// Update es la conveniencia de una sola mutación atómica.
func (s *Service) Update(ctx context.Context, ownerUserID string, mutate func(p *Pet) error) (Pet, error) {
	var out Pet
	err := s.WithOwner(ctx, ownerUserID, func(tx *OwnerTx) error {
		p, err := tx.Update(mutate)
		if err != nil {
			return err
		}
		out = p
		return nil
	})
	return out, err
}

// DrinkWater registra una toma de agua: suma contadores (histórico y
// diario), algo de energía y exp moderada.
func (s *Service) DrinkWater(ctx context.Context, ownerUserID string) (Pet, error) {
	return s.Update(ctx, ownerUserID, func(p *Pet) error {
		p.WaterCount++
		p.DailyWaterCount++
		p.Energy += waterEnergyGain
		p.Exp += waterExpGain
		return nil
	})
}

// PlayResult distingue "la regla lo impidió" de "el sistema falló":
// Applied=false con mensaje es un resultado de negocio, no un error.
type PlayResult struct {
	Applied bool
	Message string
	Pet     Pet
}

// Play gasta energía a cambio de exp. Con energía insuficiente no se
// aplica nada y se devuelve el registro intacto con la explicación.
func (s *Service) Play(ctx context.Context, ownerUserID string) (PlayResult, error) {
	var res PlayResult
	err := s.WithOwner(ctx, ownerUserID, func(tx *OwnerTx) error {
		p, err := tx.Pet()
		if err != nil {
			return err
		}

		if p.Energy < playEnergyCost {
			res = PlayResult{
				Applied: false,
				Message: "The kitty is tired and needs food or water to recover first!",
				Pet:     p,
			}
			return nil
		}

		updated, err := tx.Update(func(p *Pet) error {
			p.Energy -= playEnergyCost
			p.Exp += playExpGain
			return nil
		})
		if err != nil {
			return err
		}

		res = PlayResult{
			Applied: true,
			Message: "The kitty had a blast! exp +15, energy -20",
			Pet:     updated,
		}
		return nil
	})
	return res, err
}

// TopPets devuelve el ranking para el leaderboard.
func (s *Service) TopPets(ctx context.Context, limit int) ([]Pet, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.ListTop(ctx, limit)
}
