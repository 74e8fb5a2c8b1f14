package cart

import (
	"github.com/shopspring/decimal"

	"github.com/honeyshop/honeyshop-backend/internal/inventory"
)

// Line is one cart entry. Display fields are value-copied from the item at
// add time; later catalog edits do not rewrite lines already in the cart.
type Line struct {
	ItemID   string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// Totals are derived from the lines on every read, never stored.
type Totals struct {
	ItemCount  int     `json:"item_count"`
	TotalPrice float64 `json:"total_price"`
}

// Cart holds one session's pending purchase. Lines keep insertion order and
// hold at most one entry per item id. Methods are not safe for concurrent
// use; the Registry serializes access.
type Cart struct {
	lines []Line
	open  bool
}

// New returns an empty, closed cart.
func New() *Cart {
	return &Cart{}
}

// AddItem merges the item into the cart: an existing line gains one unit, a
// new item appends a line with quantity 1. The cart drawer opens either way.
func (c *Cart) AddItem(item inventory.Item) {
	for i := range c.lines {
		if c.lines[i].ItemID == item.ID {
			c.lines[i].Quantity++
			c.open = true
			return
		}
	}
	c.lines = append(c.lines, Line{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Image:    item.Image,
		Quantity: 1,
	})
	c.open = true
}

// RemoveItem drops the line for the id. An absent id is a no-op.
func (c *Cart) RemoveItem(itemID string) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the line's quantity. Zero or negative removes the
// line. An absent id is a no-op.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Totals recomputes the unit count and price sum from the current lines.
// Money math runs on decimals so float drift never accumulates per line.
func (c *Cart) Totals() Totals {
	count := 0
	sum := decimal.Zero
	for _, line := range c.lines {
		count += line.Quantity
		lineTotal := decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity)))
		sum = sum.Add(lineTotal)
	}
	total, _ := sum.Round(2).Float64()
	return Totals{ItemCount: count, TotalPrice: total}
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Open marks the cart drawer visible.
func (c *Cart) Open() { c.open = true }

// Close marks the cart drawer hidden.
func (c *Cart) Close() { c.open = false }

// IsOpen reports the drawer state.
func (c *Cart) IsOpen() bool { return c.open }
