package diet

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"nutricat/internal/dates"
	"nutricat/internal/domain/pet"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Deltas que una comida aplica sobre el gato.
const (
	mealExpGain    = 10
	mealEnergyGain = 30

	highCalorieThreshold = 400
	lowCalorieThreshold  = 200
	weightGainPerMeal    = 0.1
	weightLossPerMeal    = 0.05

	proteinFurThreshold = 10
	furGainPerMeal      = 2
)

type Service struct {
	records Repository
	pets    *pet.Service
	now     func() time.Time
	loc     *time.Location
}

func NewService(records Repository, pets *pet.Service, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		records: records,
		pets:    pets,
		now:     time.Now,
		loc:     loc,
	}
}

type LogInput struct {
	FoodName  string
	Calories  int
	Protein   float64
	Carbs     float64
	Fat       float64
	ImagePath string
}

// Log crea la entrada inmutable y aplica los deltas sobre el gato como
// una sola unidad bajo la sección crítica del owner. El registro se
// escribe antes que el gato: ante una falla a mitad de camino queda la
// comida registrada sin recompensa, nunca recompensa sin comida.
func (s *Service) Log(ctx context.Context, ownerUserID string, in LogInput) (Record, pet.Pet, error) {
	if strings.TrimSpace(in.FoodName) == "" {
		return Record{}, pet.Pet{}, ErrInvalidInput
	}
	if in.Calories < 0 || in.Protein < 0 || in.Carbs < 0 || in.Fat < 0 {
		return Record{}, pet.Pet{}, ErrInvalidInput
	}

	rec := Record{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		FoodName:    strings.TrimSpace(in.FoodName),
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fat:         in.Fat,
		ImagePath:   strings.TrimSpace(in.ImagePath),
		Date:        s.now(),
	}

	var updated pet.Pet
	err := s.pets.WithOwner(ctx, ownerUserID, func(tx *pet.OwnerTx) error {
		if err := s.records.Create(ctx, rec); err != nil {
			return err
		}

		p, err := tx.Update(func(p *pet.Pet) error {
			p.Exp += mealExpGain
			p.Energy += mealEnergyGain

			if rec.Calories > highCalorieThreshold {
				p.Weight += weightGainPerMeal
			} else if rec.Calories < lowCalorieThreshold {
				p.Weight -= weightLossPerMeal
			}

			if rec.Protein > proteinFurThreshold {
				p.FurQuality += furGainPerMeal
			}
			return nil
		})
		if err != nil {
			return err
		}

		updated = p
		return nil
	})
	if err != nil {
		return Record{}, pet.Pet{}, err
	}

	return rec, updated, nil
}

// todayRange devuelve [medianoche de hoy, medianoche de mañana).
func (s *Service) todayRange() (time.Time, time.Time) {
	today := dates.FromTime(s.now(), s.loc)
	return today.Start(s.loc), today.Next().Start(s.loc)
}

// TodayRecords lista las comidas de hoy, más recientes primero.
func (s *Service) TodayRecords(ctx context.Context, ownerUserID string) ([]Record, error) {
	from, to := s.todayRange()
	return s.records.ListByOwnerBetween(ctx, ownerUserID, from, to)
}

// CountToday es la fuente de progreso de la quest de comida saludable.
func (s *Service) CountToday(ctx context.Context, ownerUserID string) (int, error) {
	from, to := s.todayRange()
	return s.records.CountByOwnerBetween(ctx, ownerUserID, from, to)
}

// Range expone lecturas por rango (la usa el reporte semanal).
func (s *Service) Range(ctx context.Context, ownerUserID string, from, to time.Time) ([]Record, error) {
	return s.records.ListByOwnerBetween(ctx, ownerUserID, from, to)
}

// Summarize agrega macros de un conjunto de registros.
func Summarize(recs []Record) DayStats {
	var st DayStats
	for _, r := range recs {
		st.TotalCalories += r.Calories
		st.TotalProtein += r.Protein
		st.TotalCarbs += r.Carbs
		st.TotalFat += r.Fat
	}
	return st
}
