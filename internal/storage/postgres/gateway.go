package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tinyxi/pethatch/internal/game/item"
	"github.com/tinyxi/pethatch/internal/game/pet"
	"github.com/tinyxi/pethatch/internal/game/service"
)

// Gateway bundles the pet, inventory, and shop repositories behind the
// service.Gateway interface, translating storage sentinels to service ones.
type Gateway struct {
	pets      *PetRepository
	inventory *InventoryRepository
	shop      *ShopRepository
}

// NewGateway creates a Gateway backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewGateway(db *pgxpool.Pool) *Gateway {
	return &Gateway{
		pets:      NewPetRepository(db),
		inventory: NewInventoryRepository(db),
		shop:      NewShopRepository(db),
	}
}

func (g *Gateway) LoadPet(ctx context.Context, ownerID string) (*pet.Pet, error) {
	p, err := g.pets.Load(ctx, ownerID)
	if errors.Is(err, ErrPetNotFound) {
		return nil, service.ErrNoPet
	}
	return p, err
}

func (g *Gateway) SavePet(ctx context.Context, ownerID string, p *pet.Pet) error {
	return g.pets.Save(ctx, ownerID, p)
}

func (g *Gateway) CreatePet(ctx context.Context, ownerID string, p *pet.Pet) error {
	err := g.pets.Create(ctx, ownerID, p)
	if errors.Is(err, ErrPetExists) {
		return service.ErrPetExists
	}
	return err
}

func (g *Gateway) GetInventory(ctx context.Context, ownerID string) ([]service.InventoryEntry, error) {
	entries, err := g.inventory.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]service.InventoryEntry, len(entries))
	for i, e := range entries {
		out[i] = service.InventoryEntry{ItemName: e.ItemName, Quantity: e.Quantity}
	}
	return out, nil
}

func (g *Gateway) AddItem(ctx context.Context, ownerID, itemName string, qty int) error {
	return g.inventory.Add(ctx, ownerID, itemName, qty)
}

func (g *Gateway) ConsumeItem(ctx context.Context, ownerID, itemName string, qty int) error {
	err := g.inventory.Consume(ctx, ownerID, itemName, qty)
	if errors.Is(err, ErrInsufficientItem) {
		return service.ErrInsufficientItem
	}
	return err
}

func (g *Gateway) ShopCatalog(ctx context.Context) ([]item.Consumable, error) {
	return g.shop.Catalog(ctx)
}
