package diet

import "time"

// Record es una entrada del log de comidas. Inmutable una vez creada:
// no hay update ni delete, solo append y lecturas por rango.
type Record struct {
	ID          string
	OwnerUserID string

	FoodName string
	Calories int
	Protein  float64 // gramos
	Carbs    float64
	Fat      float64

	// Referencia opaca a la imagen subida (opcional).
	ImagePath string

	Date time.Time
}

// DayStats agrega los macros de un día.
type DayStats struct {
	TotalCalories int
	TotalProtein  float64
	TotalCarbs    float64
	TotalFat      float64
}
