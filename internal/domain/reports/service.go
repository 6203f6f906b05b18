package reports

import (
	"context"
	"math"
	"time"

	"nutricat/internal/dates"
	"nutricat/internal/domain/diet"
)

// Weekly es el reporte de los últimos 7 días: agregación de solo
// lectura más fraseo enlatado, sin IA real detrás.
type Weekly struct {
	StartDay dates.Day
	EndDay   dates.Day

	Score       int
	Summary     string
	Suggestion  string
	AvgCalories int
	RecordCount int

	TotalProtein float64
	TotalCarbs   float64
	TotalFat     float64
}

type Service struct {
	meals *diet.Service
	now   func() time.Time
	loc   *time.Location
}

func NewService(meals *diet.Service, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		meals: meals,
		now:   time.Now,
		loc:   loc,
	}
}

// WeeklyReport agrega las comidas de los últimos 7 días (hoy incluido)
// y arma el texto según buckets fijos. Determinista para un reloj fijo.
func (s *Service) WeeklyReport(ctx context.Context, ownerUserID string) (Weekly, error) {
	endDay := dates.FromTime(s.now(), s.loc)
	to := endDay.Next().Start(s.loc)
	from := to.AddDate(0, 0, -7)
	startDay := dates.FromTime(from, s.loc)

	recs, err := s.meals.Range(ctx, ownerUserID, from, to)
	if err != nil {
		return Weekly{}, err
	}

	stats := diet.Summarize(recs)

	rep := Weekly{
		StartDay:     startDay,
		EndDay:       endDay,
		RecordCount:  len(recs),
		TotalProtein: round1(stats.TotalProtein),
		TotalCarbs:   round1(stats.TotalCarbs),
		TotalFat:     round1(stats.TotalFat),
	}

	days := daysWithRecords(recs, s.loc)
	if days > 0 {
		rep.AvgCalories = stats.TotalCalories / days
	}

	rep.Score = score(len(recs), days, rep.AvgCalories)

	switch {
	case rep.Score >= 85:
		rep.Summary = "A great week! Your logging habit is solid and intake looks balanced."
		rep.Suggestion = "Keep the streak going and remember to hydrate between meals."
	case rep.Score >= 60:
		rep.Summary = "A decent week with room to improve consistency."
		rep.Suggestion = "Try to log every meal, even small snacks, for a clearer picture."
	default:
		rep.Summary = "Not much data this week, so the picture is incomplete."
		rep.Suggestion = "Start small: log one meal a day and build from there."
	}

	return rep, nil
}

// daysWithRecords cuenta los días calendario distintos con al menos
// un registro, para promediar por día activo y no por día vacío.
func daysWithRecords(recs []diet.Record, loc *time.Location) int {
	seen := map[dates.Day]struct{}{}
	for _, r := range recs {
		seen[dates.FromTime(r.Date, loc)] = struct{}{}
	}
	return len(seen)
}

// score: base por regularidad (días con registros y cantidad), con un
// ajuste si el promedio calórico queda fuera de un rango razonable.
func score(records, days, avgCalories int) int {
	s := 40 + days*7
	if records > days {
		s += 5
	}
	if avgCalories > 0 && avgCalories >= 1500 && avgCalories <= 2500 {
		s += 10
	}
	if s > 100 {
		s = 100
	}
	if records == 0 {
		s = 30
	}
	return s
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
