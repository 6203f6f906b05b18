package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nutricat/internal/domain/pet"
)

var (
	ErrInsufficientFunds    = errors.New("not enough coins")
	ErrInsufficientQuantity = errors.New("not enough quantity")
)

type Service struct {
	pets      *pet.Service
	items     ItemRepository
	inventory InventoryRepository
	now       func() time.Time
}

func NewService(pets *pet.Service, items ItemRepository, inventory InventoryRepository) *Service {
	return &Service{
		pets:      pets,
		items:     items,
		inventory: inventory,
		now:       time.Now,
	}
}

// ListItems devuelve el catálogo de la tienda.
func (s *Service) ListItems(ctx context.Context) ([]Item, error) {
	return s.items.List(ctx)
}

// Purchase descuenta el precio e incrementa el inventario como una sola
// unidad bajo la sección crítica del owner. También las decoraciones se
// compran así: poseer una decoración exige compra aunque usarla no
// consuma cantidad.
func (s *Service) Purchase(ctx context.Context, ownerUserID, itemID string) (pet.Pet, Item, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return pet.Pet{}, Item{}, err
	}

	var updated pet.Pet
	err = s.pets.WithOwner(ctx, ownerUserID, func(tx *pet.OwnerTx) error {
		p, err := tx.Update(func(p *pet.Pet) error {
			if p.Coins < item.Price {
				return ErrInsufficientFunds
			}
			p.Coins -= item.Price
			return nil
		})
		if err != nil {
			return err
		}

		entry, err := s.inventory.GetByOwnerAndItem(ctx, ownerUserID, item.ID)
		switch {
		case errors.Is(err, ErrEntryNotFound):
			err = s.inventory.Create(ctx, InventoryEntry{
				ID:          uuid.NewString(),
				OwnerUserID: ownerUserID,
				ItemID:      item.ID,
				Quantity:    1,
				CreatedAt:   s.now(),
				UpdatedAt:   s.now(),
			})
			if err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			entry.Quantity++
			entry.UpdatedAt = s.now()
			if err := s.inventory.Save(ctx, entry); err != nil {
				return err
			}
		}

		updated = p
		return nil
	})
	if err != nil {
		return pet.Pet{}, Item{}, err
	}
	return updated, item, nil
}

// InventoryItem es una entrada con su item joineado, lista para la UI.
type InventoryItem struct {
	Entry    InventoryEntry
	Item     Item
	Equipped bool
}

// ListInventory lista el inventario del owner con info del item y si la
// decoración está equipada en este momento.
func (s *Service) ListInventory(ctx context.Context, ownerUserID string) ([]InventoryItem, error) {
	var out []InventoryItem
	err := s.pets.WithOwner(ctx, ownerUserID, func(tx *pet.OwnerTx) error {
		p, err := tx.Pet()
		if err != nil {
			return err
		}

		entries, err := s.inventory.ListByOwner(ctx, ownerUserID)
		if err != nil {
			return err
		}

		for _, e := range entries {
			item, err := s.items.GetByID(ctx, e.ItemID)
			if err != nil {
				// entrada huérfana (item fuera de catálogo); se omite
				continue
			}
			out = append(out, InventoryItem{
				Entry:    e,
				Item:     item,
				Equipped: item.Type == TypeDecoration && item.EffectTag != "" && p.EquippedDecoration == item.EffectTag,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UseResult es el efecto aplicado y el gato resultante.
type UseResult struct {
	Message string
	Pet     pet.Pet
}

// Use consume o alterna un item del inventario:
//   - food: energía += EffectValue, cantidad -1, borra la entrada en 0.
//   - toy:  exp += EffectValue, cantidad -1, borra la entrada en 0.
//   - decoration: alterna equipado/desequipado, cantidad intacta.
//
// El decremento se asienta antes de aplicar el efecto: ante una falla a
// mitad de camino se pierde un uso, nunca se duplica un efecto.
func (s *Service) Use(ctx context.Context, ownerUserID, entryID string) (UseResult, error) {
	var res UseResult
	err := s.pets.WithOwner(ctx, ownerUserID, func(tx *pet.OwnerTx) error {
		entry, err := s.inventory.GetByID(ctx, entryID)
		if err != nil {
			return err
		}
		if entry.OwnerUserID != ownerUserID {
			return ErrEntryNotFound
		}
		if entry.Quantity <= 0 {
			return ErrInsufficientQuantity
		}

		item, err := s.items.GetByID(ctx, entry.ItemID)
		if err != nil {
			return err
		}

		switch item.Type {
		case TypeFood, TypeToy:
			entry.Quantity--
			entry.UpdatedAt = s.now()
			if entry.Quantity == 0 {
				if err := s.inventory.Delete(ctx, entry.ID); err != nil {
					return err
				}
			} else {
				if err := s.inventory.Save(ctx, entry); err != nil {
					return err
				}
			}

			updated, err := tx.Update(func(p *pet.Pet) error {
				if item.Type == TypeFood {
					p.Energy += item.EffectValue
				} else {
					p.Exp += item.EffectValue
				}
				return nil
			})
			if err != nil {
				return err
			}

			if item.Type == TypeFood {
				res = UseResult{
					Message: fmt.Sprintf("%s devoured! energy +%d", item.Name, item.EffectValue),
					Pet:     updated,
				}
			} else {
				res = UseResult{
					Message: fmt.Sprintf("Played with %s! exp +%d", item.Name, item.EffectValue),
					Pet:     updated,
				}
			}
			return nil

		case TypeDecoration:
			equipped := false
			updated, err := tx.Update(func(p *pet.Pet) error {
				if p.EquippedDecoration == item.EffectTag {
					p.EquippedDecoration = ""
				} else {
					p.EquippedDecoration = item.EffectTag
					equipped = true
				}
				return nil
			})
			if err != nil {
				return err
			}

			if equipped {
				res = UseResult{Message: fmt.Sprintf("%s equipped", item.Name), Pet: updated}
			} else {
				res = UseResult{Message: fmt.Sprintf("%s unequipped", item.Name), Pet: updated}
			}
			return nil

		default:
			return fmt.Errorf("unknown item type %q", item.Type)
		}
	})
	if err != nil {
		return UseResult{}, err
	}
	return res, nil
}
