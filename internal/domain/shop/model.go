package shop

import "time"

type ItemType string

const (
	TypeFood       ItemType = "food"
	TypeToy        ItemType = "toy"
	TypeDecoration ItemType = "decoration"
)

type EffectType string

const (
	EffectEnergy     EffectType = "energy"
	EffectExp        EffectType = "exp"
	EffectAppearance EffectType = "appearance"
)

// Item es una entrada del catálogo (estático, seedeado una vez).
// EffectValue es la magnitud de los consumibles; EffectTag es el tag
// de apariencia de las decoraciones. El MVP original metía ambos en una
// sola columna string; acá van tipados por separado.
type Item struct {
	ID          string
	Name        string
	Type        ItemType
	Price       int
	EffectType  EffectType
	EffectValue int
	EffectTag   string
	Icon        string
	Description string
}

// InventoryEntry es la tenencia de un item por un owner.
// Los consumibles (food, toy) se borran al llegar a cantidad 0;
// las decoraciones representan propiedad y nunca se borran por uso.
type InventoryEntry struct {
	ID          string
	OwnerUserID string
	ItemID      string
	Quantity    int

	CreatedAt time.Time
	UpdatedAt time.Time
}
