package quests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"nutricat/internal/domain/pet"
	"nutricat/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/quests", listQuestsHandler(svc))
	r.Post("/quests/claim", claimQuestHandler(svc))
}

type questResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Desc        string `json:"desc"`
	Target      int    `json:"target"`
	Progress    int    `json:"progress"`
	Status      Status `json:"status"`
	RewardCoins int    `json:"rewardCoins"`
	RewardExp   int    `json:"rewardExp"`
}

type claimRequest struct {
	QuestID string `json:"questId"`
}

type claimResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Cat     pet.Response `json:"cat"`
}

// listQuestsHandler godoc
// @Summary Quests diarias
// @Description Lista el catálogo con progreso y estado de hoy: locked, claimable o claimed.
// @Tags quests
// @Produce json
// @Success 200 {array} questResponse
// @Failure 401 {string} string "unauthorized"
// @Router /api/quests [get]
func listQuestsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		statuses, err := svc.Statuses(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]questResponse, 0, len(statuses))
		for _, st := range statuses {
			out = append(out, questResponse{
				ID:          st.ID,
				Title:       st.Title,
				Desc:        st.Desc,
				Target:      st.Target,
				Progress:    st.Progress,
				Status:      st.Status,
				RewardCoins: st.RewardCoins,
				RewardExp:   st.RewardExp,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// claimQuestHandler godoc
// @Summary Cobrar una quest
// @Description Acredita monedas y exp una sola vez por (owner, quest, día). Repetir el cobro el mismo día devuelve 409.
// @Tags quests
// @Accept json
// @Produce json
// @Param payload body claimRequest true "ID de la quest"
// @Success 200 {object} claimResponse
// @Failure 400 {string} string "invalid json / quest not completed yet"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "quest not found"
// @Failure 409 {string} string "quest already claimed today"
// @Router /api/quests/claim [post]
func claimQuestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req claimRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.Claim(r.Context(), claims.UserID, strings.TrimSpace(req.QuestID))
		if err != nil {
			switch err {
			case ErrQuestNotFound:
				http.Error(w, err.Error(), http.StatusNotFound)
			case ErrAlreadyClaimed:
				http.Error(w, err.Error(), http.StatusConflict)
			case ErrNotCompleted:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, claimResponse{
			Success: true,
			Message: fmt.Sprintf("Reward claimed: +%d coins, +%d exp", res.Quest.RewardCoins, res.Quest.RewardExp),
			Cat:     pet.ToResponse(res.Pet),
		})
	}
}

// writeJSON duplicado intencionalmente por módulo (ver pet/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
