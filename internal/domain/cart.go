package domain

import "github.com/shopspring/decimal"

// CartLine is one product+quantity pair inside a Cart. The beer reference is
// the resolved catalog entry, never data carried over from a session blob.
type CartLine struct {
	Product  Beer `json:"product"`
	Quantity int  `json:"quantity"`
}

// Subtotal is the line's price contribution: unit price times quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is a session-scoped mutable collection of cart lines, keyed by
// product id. It is accessed by one request at a time, so it carries no
// locking.
type Cart struct {
	lines []CartLine
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	return c.lines
}

// AddLine merges quantity into an existing line for the same beer, or
// appends a new line. Quantity is taken at face value; callers validate it.
func (c *Cart) AddLine(product Beer, quantity int) {
	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, CartLine{Product: product, Quantity: quantity})
}

// RemoveLine removes the line for the given beer id. Removing a beer that is
// not in the cart is a no-op.
func (c *Cart) RemoveLine(productID int) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// NumberOfItems is the count of distinct lines, not the sum of quantities.
func (c *Cart) NumberOfItems() int {
	return len(c.lines)
}

// TotalValue sums the line subtotals.
func (c *Cart) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
