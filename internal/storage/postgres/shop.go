package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tinyxi/pethatch/internal/game/item"
)

// ShopRepository provides the shop catalog.
type ShopRepository struct {
	db *pgxpool.Pool
}

// NewShopRepository creates a ShopRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewShopRepository(db *pgxpool.Pool) *ShopRepository {
	return &ShopRepository{db: db}
}

// Catalog returns all shop items in display order.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *ShopRepository) Catalog(ctx context.Context) ([]item.Consumable, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, price, effect_hunger, effect_mood, effect_hp
		FROM shop_items ORDER BY display_order ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing shop catalog: %w", err)
	}
	defer rows.Close()

	items := make([]item.Consumable, 0)
	for rows.Next() {
		var c item.Consumable
		if err := rows.Scan(&c.ID, &c.Name, &c.Price,
			&c.Effect.Hunger, &c.Effect.Mood, &c.Effect.HP); err != nil {
			return nil, fmt.Errorf("scanning shop row: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// Seed upserts the given consumables into the shop catalog, preserving their
// slice order as display order. Used by the seed-shop tool.
//
// Postcondition: Every entry in items is present in the catalog afterwards.
func (r *ShopRepository) Seed(ctx context.Context, items []item.Consumable) error {
	for i, c := range items {
		_, err := r.db.Exec(ctx, `
			INSERT INTO shop_items (id, name, price, effect_hunger, effect_mood, effect_hp, display_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				price = EXCLUDED.price,
				effect_hunger = EXCLUDED.effect_hunger,
				effect_mood = EXCLUDED.effect_mood,
				effect_hp = EXCLUDED.effect_hp,
				display_order = EXCLUDED.display_order`,
			c.ID, c.Name, c.Price, c.Effect.Hunger, c.Effect.Mood, c.Effect.HP, i,
		)
		if err != nil {
			return fmt.Errorf("seeding shop item %q: %w", c.ID, err)
		}
	}
	return nil
}
