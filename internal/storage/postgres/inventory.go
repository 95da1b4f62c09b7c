package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrInsufficientItem is returned when consuming more of an item than the
// owner holds.
var ErrInsufficientItem = errors.New("insufficient item quantity")

// InventoryEntry is one item stack in an owner's inventory.
type InventoryEntry struct {
	ItemName string
	Quantity int
}

// InventoryRepository provides consumable inventory persistence per owner.
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates an InventoryRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Get returns all item stacks for ownerID with quantity > 0, ordered by name.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *InventoryRepository) Get(ctx context.Context, ownerID string) ([]InventoryEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT item_name, quantity FROM inventories
		WHERE owner_id = $1 AND quantity > 0
		ORDER BY item_name ASC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing inventory: %w", err)
	}
	defer rows.Close()

	entries := make([]InventoryEntry, 0)
	for rows.Next() {
		var e InventoryEntry
		if err := rows.Scan(&e.ItemName, &e.Quantity); err != nil {
			return nil, fmt.Errorf("scanning inventory row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Add increases the owner's stack of itemName by qty, creating it if absent.
//
// Precondition: qty must be > 0.
func (r *InventoryRepository) Add(ctx context.Context, ownerID, itemName string, qty int) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO inventories (owner_id, item_name, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_id, item_name)
		DO UPDATE SET quantity = inventories.quantity + EXCLUDED.quantity`,
		ownerID, itemName, qty,
	)
	if err != nil {
		return fmt.Errorf("adding inventory item: %w", err)
	}
	return nil
}

// Consume decreases the owner's stack of itemName by qty.
// The decrement is atomic: it only applies when the stack holds at least qty.
//
// Precondition: qty must be > 0.
// Postcondition: Returns ErrInsufficientItem (and changes nothing) when the
// owner holds fewer than qty units.
func (r *InventoryRepository) Consume(ctx context.Context, ownerID, itemName string, qty int) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE inventories SET quantity = quantity - $3
		WHERE owner_id = $1 AND item_name = $2 AND quantity >= $3`,
		ownerID, itemName, qty,
	)
	if err != nil {
		return fmt.Errorf("consuming inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrInsufficientItem
	}
	return nil
}
