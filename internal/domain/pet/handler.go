package pet

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"nutricat/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/water", drinkWaterHandler(svc))
	r.Post("/play", playHandler(svc))
	r.Get("/leaderboard", leaderboardHandler(svc))
}

// Response es la forma JSON del gato que consume el frontend.
// Se exporta porque varios módulos (diet, quests, shop) devuelven el
// registro actualizado junto a su propio payload.
type Response struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Level              int     `json:"level"`
	Exp                int     `json:"exp"`
	Energy             int     `json:"energy"`
	Weight             float64 `json:"weight"`
	FurQuality         int     `json:"furQuality"`
	Coins              int     `json:"coins"`
	WaterCount         int     `json:"waterCount"`
	DailyWaterCount    int     `json:"dailyWaterCount"`
	EquippedDecoration string  `json:"equippedDecoration,omitempty"`
}

func ToResponse(p Pet) Response {
	return Response{
		ID:                 p.ID,
		Name:               p.Name,
		Level:              p.Level,
		Exp:                p.Exp,
		Energy:             p.Energy,
		Weight:             p.Weight,
		FurQuality:         p.FurQuality,
		Coins:              p.Coins,
		WaterCount:         p.WaterCount,
		DailyWaterCount:    p.DailyWaterCount,
		EquippedDecoration: p.EquippedDecoration,
	}
}

type actionResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Cat     Response `json:"cat"`
}

type leaderboardEntry struct {
	Rank         int    `json:"rank"`
	ID           string `json:"id"`
	CatName      string `json:"catName"`
	Owner        string `json:"owner"`
	Level        int    `json:"level"`
	Exp          int    `json:"exp"`
	Fur          int    `json:"fur"`
	EquippedItem string `json:"equippedItem,omitempty"`
}

// drinkWaterHandler godoc
// @Summary Registrar toma de agua
// @Description Suma el contador de agua (histórico y diario), energía +10 y exp +5. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags pet
// @Produce json
// @Success 200 {object} actionResponse
// @Failure 401 {string} string "unauthorized"
// @Router /api/water [post]
func drinkWaterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.DrinkWater(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, actionResponse{Success: true, Cat: ToResponse(p)})
	}
}

// playHandler godoc
// @Summary Jugar con el gato
// @Description Cuesta 20 de energía y da 15 de exp. Con energía < 20 devuelve 200 con success=false y un mensaje: es un resultado de negocio, no un error.
// @Tags pet
// @Produce json
// @Success 200 {object} actionResponse
// @Failure 401 {string} string "unauthorized"
// @Router /api/play [post]
func playHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		res, err := svc.Play(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, actionResponse{
			Success: res.Applied,
			Message: res.Message,
			Cat:     ToResponse(res.Pet),
		})
	}
}

// leaderboardHandler godoc
// @Summary Ranking de gatos
// @Description Top 10 por (level desc, exp desc, furQuality desc). Lectura plana, sin features sociales.
// @Tags pet
// @Produce json
// @Success 200 {array} leaderboardEntry
// @Router /api/leaderboard [get]
func leaderboardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pets, err := svc.TopPets(r.Context(), 10)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]leaderboardEntry, 0, len(pets))
		for i, p := range pets {
			out = append(out, leaderboardEntry{
				Rank:         i + 1,
				ID:           p.ID,
				CatName:      p.Name,
				Owner:        p.OwnerUserID,
				Level:        p.Level,
				Exp:          p.Exp,
				Fur:          p.FurQuality,
				EquippedItem: p.EquippedDecoration,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// writeJSON está duplicado intencionalmente en los handlers de cada
// módulo para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
