package cart

import (
	"sync"

	"github.com/chaunsagold/storefront/internal/catalog"
)

type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

func (l Line) Subtotal() int { return l.Product.Price * l.Quantity }

// Cart keeps at most one line per product id and never lets a quantity drop
// below 1. Removal is its own operation, not a side effect of decrementing.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart { return &Cart{} }

// Add increments the quantity when the product is already in the cart,
// otherwise inserts a fresh line with quantity 1.
func (c *Cart) Add(p catalog.Product) Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return c.lines[i]
		}
	}
	line := Line{Product: p, Quantity: 1}
	c.lines = append(c.lines, line)
	return line
}

func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity applies a delta with a floor of 1. Absent ids are a no-op.
func (c *Cart) UpdateQuantity(productID string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			q := c.lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.lines[i].Quantity = q
			return
		}
	}
}

// Items returns a snapshot in insertion order.
func (c *Cart) Items() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	sum := 0
	for _, l := range c.lines {
		sum += l.Product.Price * l.Quantity
	}
	return sum
}

func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}
