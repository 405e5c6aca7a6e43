package cart

import "storefront-service/internal/catalog"

// Line is one (product, quantity) pair in a cart.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is the in-memory aggregator for one shopping session. It keeps
// lines in insertion order and holds at most one line per product id.
// The cart is not safe for concurrent use; each session owns its own.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add puts one unit of p in the cart, incrementing the existing line
// when the product is already present. Stock is not checked here; call
// sites decide whether an out-of-stock product may be added.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// SetQuantity sets the quantity of the line for productID. A quantity
// of zero or less removes the line entirely. Unknown ids are a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	for i := range c.lines {
		if c.lines[i].Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = quantity
		}
		return
	}
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice is the cart subtotal in whole NOK.
func (c *Cart) TotalPrice() int {
	total := 0
	for _, l := range c.lines {
		total += l.Product.Price * l.Quantity
	}
	return total
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}
