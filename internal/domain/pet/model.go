package pet

import (
	"time"

	"github.com/google/uuid"

	"nutricat/internal/dates"
)

// Level define las etapas de crecimiento del gato.
// La transición es monotónica: nunca se baja de nivel.
const (
	LevelKitten = 1
	LevelAdult  = 2
	LevelSenior = 3
)

// Umbrales de exp para subir de nivel.
const (
	ExpForAdult  = 100
	ExpForSenior = 500
)

// Cotas de los campos acotados. Se aplican en cada escritura.
const (
	EnergyMin = 0
	EnergyMax = 100
	FurMin    = 0
	FurMax    = 100
	WeightMin = 0.5
)

// Pet es el registro de progresión del gato virtual de un usuario.
// Relación 1:1 con el owner: cada usuario tiene exactamente un Pet.
type Pet struct {
	ID          string
	OwnerUserID string

	Name string

	Level      int
	Exp        int
	Energy     int     // 0-100
	Weight     float64 // kg, piso 0.5
	FurQuality int     // 0-100
	Coins      int

	WaterCount      int // acumulado histórico
	DailyWaterCount int // se resetea en el rollover diario

	// Día calendario del último acceso; si difiere de "hoy",
	// toca resetear los contadores diarios.
	LastActiveDate dates.Day

	// Tag de la decoración equipada; vacío = ninguna.
	// A lo sumo una decoración activa a la vez.
	EquippedDecoration string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDefault crea el gato inicial de un owner, con los valores
// de arranque del MVP (energía 60 para dejar margen de crecimiento).
func NewDefault(ownerUserID string, now time.Time, today dates.Day) Pet {
	return Pet{
		ID:             uuid.NewString(),
		OwnerUserID:    ownerUserID,
		Name:           "Snowy",
		Level:          LevelKitten,
		Exp:            0,
		Energy:         60,
		Weight:         1.0,
		FurQuality:     80,
		Coins:          0,
		LastActiveDate: today,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
