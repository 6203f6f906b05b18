package shop

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"nutricat/internal/domain/pet"
	"nutricat/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/shop", listItemsHandler(svc))
	r.Post("/shop/buy", buyItemHandler(svc))
	r.Get("/inventory", listInventoryHandler(svc))
	r.Post("/inventory/use", useItemHandler(svc))
}

type itemResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        ItemType   `json:"type"`
	Price       int        `json:"price"`
	EffectType  EffectType `json:"effectType"`
	EffectValue int        `json:"effectValue,omitempty"`
	EffectTag   string     `json:"effectTag,omitempty"`
	Icon        string     `json:"icon"`
	Description string     `json:"description"`
}

type buyRequest struct {
	ItemID string `json:"itemId"`
}

type buyResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Cat     pet.Response `json:"cat"`
}

type inventoryEntryResponse struct {
	ID       string       `json:"id"`
	Quantity int          `json:"quantity"`
	Equipped bool         `json:"equipped"`
	Item     itemResponse `json:"item"`
}

type useRequest struct {
	InventoryID string `json:"inventoryId"`
}

type useResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Cat     pet.Response `json:"cat"`
}

// listItemsHandler godoc
// @Summary Catálogo de la tienda
// @Tags shop
// @Produce json
// @Success 200 {array} itemResponse
// @Router /api/shop [get]
func listItemsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListItems(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]itemResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toItemResponse(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// buyItemHandler godoc
// @Summary Comprar un item
// @Description Descuenta monedas e incrementa el inventario como una sola unidad. Sin monedas suficientes: 400, sin cambios observables.
// @Tags shop
// @Accept json
// @Produce json
// @Param payload body buyRequest true "ID del item"
// @Success 200 {object} buyResponse
// @Failure 400 {string} string "invalid json / not enough coins"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "item not found"
// @Router /api/shop/buy [post]
func buyItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req buyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		cat, item, err := svc.Purchase(r.Context(), claims.UserID, strings.TrimSpace(req.ItemID))
		if err != nil {
			switch {
			case errors.Is(err, ErrItemNotFound):
				http.Error(w, err.Error(), http.StatusNotFound)
			case errors.Is(err, ErrInsufficientFunds):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, buyResponse{
			Success: true,
			Message: fmt.Sprintf("%s purchased for %d coins", item.Name, item.Price),
			Cat:     pet.ToResponse(cat),
		})
	}
}

// listInventoryHandler godoc
// @Summary Inventario del usuario
// @Description Entradas del inventario con la info del item joineada y el estado de equipado de las decoraciones.
// @Tags shop
// @Produce json
// @Success 200 {array} inventoryEntryResponse
// @Failure 401 {string} string "unauthorized"
// @Router /api/inventory [get]
func listInventoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		entries, err := svc.ListInventory(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]inventoryEntryResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, inventoryEntryResponse{
				ID:       e.Entry.ID,
				Quantity: e.Entry.Quantity,
				Equipped: e.Equipped,
				Item:     toItemResponse(e.Item),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// useItemHandler godoc
// @Summary Usar un item del inventario
// @Description food/toy consumen cantidad y aplican su efecto; decoration alterna equipado sin consumir.
// @Tags shop
// @Accept json
// @Produce json
// @Param payload body useRequest true "ID de la entrada de inventario"
// @Success 200 {object} useResponse
// @Failure 400 {string} string "invalid json / not enough quantity"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "inventory entry not found"
// @Router /api/inventory/use [post]
func useItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req useRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.Use(r.Context(), claims.UserID, strings.TrimSpace(req.InventoryID))
		if err != nil {
			switch {
			case errors.Is(err, ErrEntryNotFound), errors.Is(err, ErrItemNotFound):
				http.Error(w, err.Error(), http.StatusNotFound)
			case errors.Is(err, ErrInsufficientQuantity):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, useResponse{
			Success: true,
			Message: res.Message,
			Cat:     pet.ToResponse(res.Pet),
		})
	}
}

func toItemResponse(it Item) itemResponse {
	return itemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Type:        it.Type,
		Price:       it.Price,
		EffectType:  it.EffectType,
		EffectValue: it.EffectValue,
		EffectTag:   it.EffectTag,
		Icon:        it.Icon,
		Description: it.Description,
	}
}

// writeJSON duplicado intencionalmente por módulo (ver pet/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
