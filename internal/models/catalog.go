package models

import (
	"errors"
	"fmt"
)

// DefaultGrowthFactor is the cost multiplier applied after each purchase of an item
const DefaultGrowthFactor = 1.15

// ErrInvalidCatalog is returned when a catalog fails validation
var ErrInvalidCatalog = errors.New("invalid catalog")

// Item is a purchasable upgrade
type Item struct {
	Name       string  `json:"name" yaml:"name"`
	Cost       float64 `json:"cost" yaml:"cost"`
	Production float64 `json:"production" yaml:"production"`
}

// Catalog holds the purchasable items with their current cost and production increment.
// Items keep insertion order so every scan over them is deterministic.
type Catalog struct {
	order  []string
	items  map[string]*Item
	growth float64
}

// NewCatalog creates a catalog from items in the given order
func NewCatalog(items []Item, growth float64) *Catalog {
	c := &Catalog{
		order:  make([]string, 0, len(items)),
		items:  make(map[string]*Item, len(items)),
		growth: growth,
	}
	for _, it := range items {
		c.Add(it)
	}
	return c
}

// DefaultCatalog returns the classic ten buildings
func DefaultCatalog() *Catalog {
	return NewCatalog([]Item{
		{Name: "Cursor", Cost: 15.0, Production: 0.1},
		{Name: "Grandma", Cost: 100.0, Production: 0.5},
		{Name: "Farm", Cost: 500.0, Production: 4.0},
		{Name: "Factory", Cost: 3000.0, Production: 10.0},
		{Name: "Mine", Cost: 10000.0, Production: 40.0},
		{Name: "Shipment", Cost: 40000.0, Production: 100.0},
		{Name: "Alchemy Lab", Cost: 200000.0, Production: 400.0},
		{Name: "Portal", Cost: 1666666.0, Production: 6666.0},
		{Name: "Time Machine", Cost: 123456789.0, Production: 98765.4321},
		{Name: "Antimatter Condenser", Cost: 3999999999.0, Production: 999999.0},
	}, DefaultGrowthFactor)
}

// Add inserts an item, replacing any item with the same name in place
func (c *Catalog) Add(it Item) {
	if _, ok := c.items[it.Name]; !ok {
		c.order = append(c.order, it.Name)
	}
	item := it
	c.items[it.Name] = &item
}

// Clone creates a deep copy of the catalog
func (c *Catalog) Clone() *Catalog {
	clone := &Catalog{
		order:  make([]string, len(c.order)),
		items:  make(map[string]*Item, len(c.items)),
		growth: c.growth,
	}
	copy(clone.order, c.order)
	for name, it := range c.items {
		item := *it
		clone.items[name] = &item
	}
	return clone
}

// Items returns item names in catalog order
func (c *Catalog) Items() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.order)
}

// Growth returns the cost growth factor
func (c *Catalog) Growth() float64 {
	return c.growth
}

// Item returns a copy of the named item
func (c *Catalog) Item(name string) (Item, bool) {
	it, ok := c.items[name]
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// Has reports whether the catalog contains the named item
func (c *Catalog) Has(name string) bool {
	_, ok := c.items[name]
	return ok
}

// Cost returns the current cost of an item (0 if unknown)
func (c *Catalog) Cost(name string) float64 {
	if it, ok := c.items[name]; ok {
		return it.Cost
	}
	return 0
}

// Production returns the production increment of an item (0 if unknown)
func (c *Catalog) Production(name string) float64 {
	if it, ok := c.items[name]; ok {
		return it.Production
	}
	return 0
}

// Update applies the growth factor to the cost of an item after a purchase
func (c *Catalog) Update(name string) {
	if it, ok := c.items[name]; ok {
		it.Cost *= c.growth
	}
}

// Snapshot returns copies of all items in catalog order
func (c *Catalog) Snapshot() []Item {
	out := make([]Item, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, *c.items[name])
	}
	return out
}

// Validate checks that the catalog can drive a terminating simulation
func (c *Catalog) Validate() error {
	if len(c.order) == 0 {
		return fmt.Errorf("%w: no items", ErrInvalidCatalog)
	}
	if c.growth < 1 {
		return fmt.Errorf("%w: growth factor %g is below 1", ErrInvalidCatalog, c.growth)
	}
	for _, name := range c.order {
		it := c.items[name]
		if name == "" {
			return fmt.Errorf("%w: item with empty name", ErrInvalidCatalog)
		}
		if !(it.Cost > 0) {
			return fmt.Errorf("%w: %s: cost must be positive, got %g", ErrInvalidCatalog, name, it.Cost)
		}
		if !(it.Production >= 0) {
			return fmt.Errorf("%w: %s: production must not be negative, got %g", ErrInvalidCatalog, name, it.Production)
		}
	}
	return nil
}
