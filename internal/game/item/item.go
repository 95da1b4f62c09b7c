// Package item defines consumable items and the shop catalog model.
//
// Inventory quantities belong to the persistence gateway; this package only
// describes what an item does when consumed.
package item

// Effect is what consuming one unit of an item does. Any combination of the
// three restores may be present.
type Effect struct {
	Hunger int `yaml:"hunger"`
	Mood   int `yaml:"mood"`
	HP     int `yaml:"hp"`
}

// Consumable is one purchasable, consumable item.
type Consumable struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Price  int    `yaml:"price"`
	Effect Effect `yaml:"effect"`
}

// IsHealing reports whether consuming the item restores HP. Auto-healing in
// battle only considers healing items.
func (c Consumable) IsHealing() bool {
	return c.Effect.HP > 0
}

// Catalog is an ordered set of consumables with name and ID lookup.
type Catalog struct {
	items  []Consumable
	byID   map[string]Consumable
	byName map[string]Consumable
}

// NewCatalog builds a Catalog from items, preserving order.
//
// Postcondition: ByID and ByName resolve every entry; duplicate IDs keep the
// last entry.
func NewCatalog(items []Consumable) *Catalog {
	c := &Catalog{
		items:  items,
		byID:   make(map[string]Consumable, len(items)),
		byName: make(map[string]Consumable, len(items)),
	}
	for _, it := range items {
		c.byID[it.ID] = it
		c.byName[it.Name] = it
	}
	return c
}

// Items returns the catalog entries in display order.
func (c *Catalog) Items() []Consumable {
	out := make([]Consumable, len(c.items))
	copy(out, c.items)
	return out
}

// ByID resolves an item by its ID.
func (c *Catalog) ByID(id string) (Consumable, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// ByName resolves an item by its display name.
func (c *Catalog) ByName(name string) (Consumable, bool) {
	it, ok := c.byName[name]
	return it, ok
}

// DefaultCatalog returns the built-in shop stock.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Consumable{
		{ID: "kibble", Name: "kibble", Price: 10, Effect: Effect{Hunger: 30}},
		{ID: "treat", Name: "treat", Price: 15, Effect: Effect{Mood: 25}},
		{ID: "small-potion", Name: "small potion", Price: 30, Effect: Effect{HP: 20}},
		{ID: "big-potion", Name: "big potion", Price: 80, Effect: Effect{HP: 60}},
		{ID: "feast", Name: "feast", Price: 50, Effect: Effect{Hunger: 40, Mood: 20, HP: 10}},
	})
}
