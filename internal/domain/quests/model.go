package quests

import (
	"time"

	"nutricat/internal/dates"
)

// ProgressSource nombra de dónde sale el progreso de una quest.
type ProgressSource string

const (
	// Progreso constante 1: con loguearse alcanza.
	SourceConstant ProgressSource = "constant"
	// Contador diario de agua del Pet.
	SourceDailyWater ProgressSource = "daily_water"
	// Cantidad de comidas registradas hoy.
	SourceTodayMeals ProgressSource = "today_meals"
)

type Status string

const (
	StatusLocked    Status = "locked"
	StatusClaimable Status = "claimable"
	StatusClaimed   Status = "claimed"
)

// Quest es una definición estática del catálogo diario.
type Quest struct {
	ID          string
	Title       string
	Desc        string
	Target      int
	RewardCoins int
	RewardExp   int
	Source      ProgressSource
}

// Catalog son las tres quests diarias fijas.
func Catalog() []Quest {
	return []Quest{
		{
			ID:          "login",
			Title:       "Daily Check-in",
			Desc:        "Open the app today",
			Target:      1,
			RewardCoins: 10,
			RewardExp:   5,
			Source:      SourceConstant,
		},
		{
			ID:          "water",
			Title:       "Stay Hydrated",
			Desc:        "Drink water 3 times",
			Target:      3,
			RewardCoins: 20,
			RewardExp:   10,
			Source:      SourceDailyWater,
		},
		{
			ID:          "meal",
			Title:       "Healthy Meal",
			Desc:        "Log one meal today",
			Target:      1,
			RewardCoins: 30,
			RewardExp:   15,
			Source:      SourceTodayMeals,
		},
	}
}

// Claim es el registro append-only de "ya cobrada hoy".
// Su existencia para (owner, quest, día) es la única fuente de verdad;
// nunca se actualiza ni se borra.
type Claim struct {
	ID          string
	OwnerUserID string
	QuestID     string
	Day         dates.Day
	CreatedAt   time.Time
}

// QuestStatus es una quest con su progreso calculado para el día.
type QuestStatus struct {
	Quest
	Progress int
	Status   Status
}
