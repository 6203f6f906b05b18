package reports

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"nutricat/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/report/weekly", weeklyReportHandler(svc))
}

type macrosResponse struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

type weeklyResponse struct {
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	Score       int            `json:"score"`
	Summary     string         `json:"summary"`
	AvgCalories int            `json:"avgCalories"`
	RecordCount int            `json:"recordCount"`
	Suggestion  string         `json:"suggestion"`
	Macros      macrosResponse `json:"macros"`
}

// weeklyReportHandler godoc
// @Summary Reporte semanal
// @Description Agregación de los últimos 7 días con fraseo enlatado: score, resumen, sugerencia y macros totales.
// @Tags reports
// @Produce json
// @Success 200 {object} weeklyResponse
// @Failure 401 {string} string "unauthorized"
// @Router /api/report/weekly [get]
func weeklyReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rep, err := svc.WeeklyReport(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, weeklyResponse{
			StartDate:   rep.StartDay.String(),
			EndDate:     rep.EndDay.String(),
			Score:       rep.Score,
			Summary:     rep.Summary,
			AvgCalories: rep.AvgCalories,
			RecordCount: rep.RecordCount,
			Suggestion:  rep.Suggestion,
			Macros: macrosResponse{
				Protein: rep.TotalProtein,
				Carbs:   rep.TotalCarbs,
				Fat:     rep.TotalFat,
			},
		})
	}
}

// writeJSON duplicado intencionalmente por módulo (ver pet/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
