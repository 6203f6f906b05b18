package recognition

import "context"

// Food es la forma que el core espera del servicio de reconocimiento:
// nombre del plato y sus macros estimados.
type Food struct {
	Name     string
	Calories int
	Protein  float64
	Carbs    float64
	Fat      float64
}

// FoodRecognizer identifica el plato de una imagen subida.
// La referencia de imagen es opaca para el core.
type FoodRecognizer interface {
	Recognize(ctx context.Context, imageRef string) (Food, error)
}
