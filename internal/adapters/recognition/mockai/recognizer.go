package mockai

import (
	"context"
	"math/rand"
	"sync"

	"nutricat/internal/ports/recognition"
)

// catalog replica la base mock de platos del MVP: una entrada aleatoria
// por reconocimiento, sin IA real detrás.
var catalog = []recognition.Food{
	{Name: "Steamed Rice", Calories: 200, Protein: 4, Carbs: 40, Fat: 0.5},
	{Name: "Braised Pork", Calories: 500, Protein: 15, Carbs: 5, Fat: 40},
	{Name: "Garden Salad", Calories: 150, Protein: 2, Carbs: 10, Fat: 5},
	{Name: "Boiled Egg", Calories: 80, Protein: 7, Carbs: 0.5, Fat: 6},
	{Name: "Burger", Calories: 600, Protein: 20, Carbs: 50, Fat: 30},
}

type Recognizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New crea el recognizer mock. seed fija permite tests deterministas.
func New(seed int64) *Recognizer {
	return &Recognizer{rng: rand.New(rand.NewSource(seed))}
}

func (r *Recognizer) Recognize(ctx context.Context, imageRef string) (recognition.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return catalog[r.rng.Intn(len(catalog))], nil
}
