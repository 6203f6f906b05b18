package shop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutricat/internal/domain/pet"
	"nutricat/internal/platform/locks"
)

// -------------------------
// Test repos (in-memory)
// -------------------------

type testPetRepo struct {
	mu      sync.Mutex
	byOwner map[string]pet.Pet
}

func newTestPetRepo() *testPetRepo {
	return &testPetRepo{byOwner: map[string]pet.Pet{}}
}

func (r *testPetRepo) Get(ctx context.Context, owner string) (pet.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byOwner[owner]
	if !ok {
		return pet.Pet{}, pet.ErrNotFound
	}
	return p, nil
}

func (r *testPetRepo) Create(ctx context.Context, p pet.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byOwner[p.OwnerUserID] = p
	return nil
}

func (r *testPetRepo) Save(ctx context.Context, p pet.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byOwner[p.OwnerUserID] = p
	return nil
}

func (r *testPetRepo) ListTop(ctx context.Context, limit int) ([]pet.Pet, error) {
	return nil, nil
}

type testItemsRepo struct {
	items []Item
}

func (r *testItemsRepo) List(ctx context.Context) ([]Item, error) { return r.items, nil }

func (r *testItemsRepo) GetByID(ctx context.Context, id string) (Item, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrItemNotFound
}

func (r *testItemsRepo) Seed(ctx context.Context, items []Item) error {
	if len(r.items) == 0 {
		r.items = items
	}
	return nil
}

type testInventoryRepo struct {
	mu   sync.Mutex
	byID map[string]InventoryEntry
}

func newTestInventoryRepo() *testInventoryRepo {
	return &testInventoryRepo{byID: map[string]InventoryEntry{}}
}

func (r *testInventoryRepo) GetByID(ctx context.Context, id string) (InventoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byID[id]
	if !ok {
		return InventoryEntry{}, ErrEntryNotFound
	}
	return e, nil
}

func (r *testInventoryRepo) GetByOwnerAndItem(ctx context.Context, owner, itemID string) (InventoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.byID {
		if e.OwnerUserID == owner && e.ItemID == itemID {
			return e, nil
		}
	}
	return InventoryEntry{}, ErrEntryNotFound
}

func (r *testInventoryRepo) ListByOwner(ctx context.Context, owner string) ([]InventoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]InventoryEntry, 0)
	for _, e := range r.byID {
		if e.OwnerUserID == owner {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *testInventoryRepo) Create(ctx context.Context, e InventoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[e.ID] = e
	return nil
}

func (r *testInventoryRepo) Save(ctx context.Context, e InventoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[e.ID]; !ok {
		return ErrEntryNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *testInventoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return ErrEntryNotFound
	}
	delete(r.byID, id)
	return nil
}

func newTestService() (*Service, *pet.Service, *testInventoryRepo) {
	pets := pet.NewService(newTestPetRepo(), locks.NewManager(), time.UTC)
	inv := newTestInventoryRepo()
	items := &testItemsRepo{}
	_ = items.Seed(context.Background(), DefaultCatalog())
	return NewService(pets, items, inv), pets, inv
}

func giveCoins(t *testing.T, pets *pet.Service, owner string, coins int) {
	t.Helper()
	_, err := pets.Update(context.Background(), owner, func(p *pet.Pet) error {
		p.Coins = coins
		return nil
	})
	require.NoError(t, err)
}

// -------------------------
// Tests
// -------------------------

func TestPurchase_InsufficientFundsLeavesStateIntact(t *testing.T) {
	svc, pets, inv := newTestService()
	ctx := context.Background()

	giveCoins(t, pets, "owner-1", 40)

	// premium_can cuesta 50.
	_, _, err := svc.Purchase(ctx, "owner-1", "premium_can")
	require.ErrorIs(t, err, ErrInsufficientFunds)

	p, err := pets.Get(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 40, p.Coins)

	entries, err := inv.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPurchase_UnknownItem(t *testing.T) {
	svc, _, _ := newTestService()

	_, _, err := svc.Purchase(context.Background(), "owner-1", "nope")
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestPurchase_DeductsAndAddsToInventory(t *testing.T) {
	svc, pets, _ := newTestService()
	ctx := context.Background()

	giveCoins(t, pets, "owner-1", 100)

	p, item, err := svc.Purchase(ctx, "owner-1", "dried_fish")
	require.NoError(t, err)
	assert.Equal(t, 80, p.Coins)
	assert.Equal(t, "Dried Fish", item.Name)

	list, err := svc.ListInventory(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].Entry.Quantity)
}

func TestPurchase_RepeatIncrementsQuantity(t *testing.T) {
	svc, pets, _ := newTestService()
	ctx := context.Background()

	giveCoins(t, pets, "owner-1", 100)

	_, _, err := svc.Purchase(ctx, "owner-1", "dried_fish")
	require.NoError(t, err)
	_, _, err = svc.Purchase(ctx, "owner-1", "dried_fish")
	require.NoError(t, err)

	list, err := svc.ListInventory(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].Entry.Quantity)
}

func TestUse_FoodRestoresEnergyAndClamps(t *testing.T) {
	svc, pets, _ := newTestService()
	ctx := context.Background()

	giveCoins(t, pets, "owner-1", 100)
	_, _, err := svc.Purchase(ctx, "owner-1", "premium_can")
	require.NoError(t, err)

	list, err := svc.ListInventory(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	// Energía default 60 + 50 se acota en 100.
	res, err := svc.Use(ctx, "owner-1", list[0].Entry.ID)
	require.NoError(t, err)
	assert.Equal(t, pet.EnergyMax, res.Pet.Energy)

	// Cantidad llegó a 0: la entrada desaparece.
	list, err = svc.ListInventory(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUse_ToyGrantsExp(t *testing.T) {
	svc, pets, _ := newTestService()
	ctx := context.Background()

	giveCoins(t, pets, "owner-1", 100)
	_, _, err := svc.Purchase(ctx, "owner-1", "feather_wand")
	require.NoError(t, err)

	list, err := svc.ListInventory(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	res, err := svc.Use(ctx, "owner-1", list[0].Entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, res.Pet.Exp)
}

func TestUse_DecorationTogglesWithoutConsuming(t *testing.T) {
	svc, pets, _ := newTestService()
	ctx := context.Background()

	giveCoins(t, pets, "owner-1", 100)
	_, _, err := svc.Purchase(ctx, "owner-1", "bow")
	require.NoError(t, err)

	list, err := svc.ListInventory(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	entryID := list[0].Entry.ID

	// Equipar.
	res, err := svc.Use(ctx, "owner-1", entryID)
	require.NoError(t, err)
	assert.Equal(t, "bow", res.Pet.EquippedDecoration)

	list, err = svc.ListInventory(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Equipped)
	assert.Equal(t, 1, list[0].Entry.Quantity)

	// Desequipar.
	res, err = svc.Use(ctx, "owner-1", entryID)
	require.NoError(t, err)
	assert.Empty(t, res.Pet.EquippedDecoration)
}

func TestUse_DecorationReplacesEquipped(t *testing.T) {
	svc, pets, _ := newTestService()
	ctx := context.Background()

	giveCoins(t, pets, "owner-1", 300)
	_, _, err := svc.Purchase(ctx, "owner-1", "bow")
	require.NoError(t, err)
	_, _, err = svc.Purchase(ctx, "owner-1", "crown")
	require.NoError(t, err)

	list, err := svc.ListInventory(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 2)

	var bowID, crownID string
	for _, e := range list {
		switch e.Item.ID {
		case "bow":
			bowID = e.Entry.ID
		case "crown":
			crownID = e.Entry.ID
		}
	}

	_, err = svc.Use(ctx, "owner-1", bowID)
	require.NoError(t, err)
	res, err := svc.Use(ctx, "owner-1", crownID)
	require.NoError(t, err)

	// A lo sumo una decoración activa.
	assert.Equal(t, "crown", res.Pet.EquippedDecoration)
}

func TestUse_OtherOwnersEntryRejected(t *testing.T) {
	svc, pets, _ := newTestService()
	ctx := context.Background()

	giveCoins(t, pets, "owner-1", 100)
	_, _, err := svc.Purchase(ctx, "owner-1", "dried_fish")
	require.NoError(t, err)

	list, err := svc.ListInventory(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = svc.Use(ctx, "owner-2", list[0].Entry.ID)
	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestUse_UnknownEntry(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Use(context.Background(), "owner-1", "nope")
	require.ErrorIs(t, err, ErrEntryNotFound)
}
