// Package service is the facade the chat-bot command handlers call. It owns
// the load-mutate-save cycle around every pet operation, serialised per owner,
// and wires the pet, battle, and progression packages to the persistence
// gateway. It formats result messages but knows nothing about chat protocols
// or rendering.
package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/tinyxi/pethatch/internal/game/dice"
	"github.com/tinyxi/pethatch/internal/game/item"
	"github.com/tinyxi/pethatch/internal/game/pet"
	"github.com/tinyxi/pethatch/internal/game/progression"
	"github.com/tinyxi/pethatch/internal/game/species"
)

// ErrNoPet is returned when the owner has not adopted a pet yet.
var ErrNoPet = errors.New("owner has no pet")

// ErrPetExists is returned when adopting while already owning a pet.
var ErrPetExists = errors.New("owner already has a pet")

// ErrInsufficientItem is returned when consuming more of an item than owned.
var ErrInsufficientItem = errors.New("insufficient item quantity")

// InventoryEntry is one item stack as reported by the gateway.
type InventoryEntry struct {
	ItemName string
	Quantity int
}

// Gateway is the persistence surface the core consumes. Implementations must
// be safe for concurrent use and must translate their storage errors to
// ErrNoPet, ErrPetExists, and ErrInsufficientItem.
type Gateway interface {
	LoadPet(ctx context.Context, ownerID string) (*pet.Pet, error)
	// SavePet is a full-state upsert; the in-memory pet is not
	// authoritative until it returns nil.
	SavePet(ctx context.Context, ownerID string, p *pet.Pet) error
	CreatePet(ctx context.Context, ownerID string, p *pet.Pet) error

	GetInventory(ctx context.Context, ownerID string) ([]InventoryEntry, error)
	AddItem(ctx context.Context, ownerID, itemName string, qty int) error
	ConsumeItem(ctx context.Context, ownerID, itemName string, qty int) error

	ShopCatalog(ctx context.Context) ([]item.Consumable, error)
}

// Config tunes the service's battle behavior.
type Config struct {
	// MaxBattleRounds caps every battle's round loop.
	MaxBattleRounds int
	// SkillProcChance is the per-attack skill proc probability.
	SkillProcChance float64
	// WildLevelSpread is the +/- level range for synthesized wild opponents.
	WildLevelSpread int
}

// Service exposes the game operations to command-handling collaborators.
type Service struct {
	gw    Gateway
	reg   *species.Registry
	prog  *progression.Engine
	src   dice.Source
	log   *zap.Logger
	cfg   Config
	locks *ownerLocks

	// now is the clock; replaced in tests.
	now func() time.Time
}

// New creates a Service.
//
// Precondition: gw, reg, prog, src, and log must be non-nil.
// Postcondition: Returns a Service ready for concurrent use.
func New(gw Gateway, reg *species.Registry, prog *progression.Engine, src dice.Source, log *zap.Logger, cfg Config) *Service {
	if cfg.WildLevelSpread == 0 {
		cfg.WildLevelSpread = 2
	}
	return &Service{
		gw:    gw,
		reg:   reg,
		prog:  prog,
		src:   src,
		log:   log,
		cfg:   cfg,
		locks: newOwnerLocks(),
		now:   time.Now,
	}
}

// catalog returns the shop catalog from the gateway, falling back to the
// built-in defaults when the store is unreachable, so feeding and shopping
// stay renderable.
func (s *Service) catalog(ctx context.Context) *item.Catalog {
	items, err := s.gw.ShopCatalog(ctx)
	if err != nil || len(items) == 0 {
		if err != nil {
			s.log.Warn("shop catalog unavailable, using built-in defaults", zap.Error(err))
		}
		return item.DefaultCatalog()
	}
	return item.NewCatalog(items)
}

// healingItems expands the owner's inventory into the individual healing
// consumables available for auto-healing during a battle.
func (s *Service) healingItems(ctx context.Context, ownerID string, cat *item.Catalog) []item.Consumable {
	entries, err := s.gw.GetInventory(ctx, ownerID)
	if err != nil {
		s.log.Warn("inventory unavailable, battling without items",
			zap.String("owner", ownerID), zap.Error(err))
		return nil
	}
	var out []item.Consumable
	for _, e := range entries {
		c, ok := cat.ByName(e.ItemName)
		if !ok || !c.IsHealing() {
			continue
		}
		for i := 0; i < e.Quantity; i++ {
			out = append(out, c)
		}
	}
	return out
}
