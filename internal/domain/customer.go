package domain

import "time"

// Customer owns its orders exclusively; deleting a customer deletes them.
type Customer struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	FirstName string    `json:"firstName"`
	Street    string    `json:"street,omitempty"`
	Location  *Location `json:"location,omitempty"`
	Orders    []*Order  `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// PlaceOrder is the only way an Order comes into existence. It validates via
// NewOrder and appends the result to the customer's orders. The cart is not
// cleared here; the caller clears it after the order was persisted.
func (c *Customer) PlaceOrder(cart *Cart, deliveryDate *time.Time, giftwrapping bool, street string, location *Location, policy DeliveryPolicy) (*Order, error) {
	order, err := NewOrder(cart, deliveryDate, giftwrapping, street, location, policy)
	if err != nil {
		return nil, err
	}
	c.Orders = append(c.Orders, order)
	return order, nil
}
