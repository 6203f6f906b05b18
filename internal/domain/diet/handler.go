package diet

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"nutricat/internal/domain/pet"
	"nutricat/internal/middleware"
	"nutricat/internal/ports/recognition"
)

func RegisterRoutes(r chi.Router, svc *Service, pets *pet.Service, recognizer recognition.FoodRecognizer) {
	r.Post("/diet", logDietHandler(svc))
	r.Get("/dashboard", dashboardHandler(svc, pets))
	r.Post("/recognize", recognizeHandler(recognizer))
}

type logDietRequest struct {
	FoodName string `json:"foodName"`
	// Puntero para distinguir "0 kcal" de campo ausente.
	Calories  *int    `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	ImagePath string  `json:"imagePath"`
}

type recordResponse struct {
	ID        string    `json:"id"`
	FoodName  string    `json:"foodName"`
	Calories  int       `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	ImagePath string    `json:"imagePath,omitempty"`
	Date      time.Time `json:"date"`
}

type logDietResponse struct {
	Success bool           `json:"success"`
	Record  recordResponse `json:"record"`
	Cat     pet.Response   `json:"cat"`
}

type dayStatsResponse struct {
	TotalCalories int     `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFat      float64 `json:"totalFat"`
}

type dashboardResponse struct {
	Cat           pet.Response     `json:"cat"`
	Stats         dayStatsResponse `json:"stats"`
	RecentRecords []recordResponse `json:"recentRecords"`
}

type recognizeResponse struct {
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// logDietHandler godoc
// @Summary Registrar comida
// @Description Crea la entrada inmutable del log y aplica los deltas al gato (exp +10, energía +30, peso y pelaje según macros). Autenticación: `X-Debug-User-ID` (dev) o Bearer (prod).
// @Tags diet
// @Accept json
// @Produce json
// @Param payload body logDietRequest true "Macros de la comida; calories es obligatorio"
// @Success 201 {object} logDietResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /api/diet [post]
func logDietHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req logDietRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Calories == nil {
			http.Error(w, "calories is required", http.StatusBadRequest)
			return
		}

		rec, cat, err := svc.Log(r.Context(), claims.UserID, LogInput{
			FoodName:  req.FoodName,
			Calories:  *req.Calories,
			Protein:   req.Protein,
			Carbs:     req.Carbs,
			Fat:       req.Fat,
			ImagePath: req.ImagePath,
		})
		if err != nil {
			if err == ErrInvalidInput {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, logDietResponse{
			Success: true,
			Record:  toRecordResponse(rec),
			Cat:     pet.ToResponse(cat),
		})
	}
}

// dashboardHandler godoc
// @Summary Dashboard del día
// @Description Devuelve el gato (con rollover aplicado), los totales de macros de hoy y las comidas de hoy, más recientes primero.
// @Tags diet
// @Produce json
// @Success 200 {object} dashboardResponse
// @Failure 401 {string} string "unauthorized"
// @Router /api/dashboard [get]
func dashboardHandler(svc *Service, pets *pet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		cat, err := pets.Get(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		recs, err := svc.TodayRecords(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		stats := Summarize(recs)
		out := dashboardResponse{
			Cat: pet.ToResponse(cat),
			Stats: dayStatsResponse{
				TotalCalories: stats.TotalCalories,
				TotalProtein:  stats.TotalProtein,
				TotalCarbs:    stats.TotalCarbs,
				TotalFat:      stats.TotalFat,
			},
			RecentRecords: make([]recordResponse, 0, len(recs)),
		}
		for _, rec := range recs {
			out.RecentRecords = append(out.RecentRecords, toRecordResponse(rec))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// recognizeHandler godoc
// @Summary Reconocer plato (mock)
// @Description Devuelve {name, calories, protein, carbs, fat} para una imagen. El backend actual es un mock que elige una entrada aleatoria del catálogo.
// @Tags diet
// @Produce json
// @Success 200 {object} recognizeResponse
// @Router /api/recognize [post]
func recognizeHandler(recognizer recognition.FoodRecognizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		food, err := recognizer.Recognize(r.Context(), "")
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, recognizeResponse{
			Name:     food.Name,
			Calories: food.Calories,
			Protein:  food.Protein,
			Carbs:    food.Carbs,
			Fat:      food.Fat,
		})
	}
}

func toRecordResponse(rec Record) recordResponse {
	return recordResponse{
		ID:        rec.ID,
		FoodName:  rec.FoodName,
		Calories:  rec.Calories,
		Protein:   rec.Protein,
		Carbs:     rec.Carbs,
		Fat:       rec.Fat,
		ImagePath: rec.ImagePath,
		Date:      rec.Date,
	}
}

// writeJSON duplicado intencionalmente por módulo (ver pet/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
