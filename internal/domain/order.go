package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryPolicy holds the delivery-date rules applied at checkout.
type DeliveryPolicy struct {
	// MinLeadDays is the minimum number of days between placing an order
	// and its delivery date.
	MinLeadDays int
	// BlockedWeekday is the weekday on which no deliveries happen.
	BlockedWeekday time.Weekday
}

// DefaultDeliveryPolicy matches the store's standing delivery rules.
var DefaultDeliveryPolicy = DeliveryPolicy{
	MinLeadDays:    3,
	BlockedWeekday: time.Sunday,
}

// OrderLine is one product+quantity record inside an Order. UnitPrice is the
// catalog price captured when the order was placed; later catalog changes do
// not affect it.
type OrderLine struct {
	ProductID   int             `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
}

// Subtotal is the captured unit price times quantity.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is a validated snapshot of a cart plus shipping details. It can only
// be built through NewOrder and is never mutated afterwards; all state is
// reached through accessors that copy.
type Order struct {
	orderDate    time.Time
	deliveryDate *time.Time
	giftwrapping bool
	street       string
	location     Location
	lines        []OrderLine
}

// NewOrder validates the proposed order and, if valid, snapshots the cart
// into an immutable Order. Rules are checked fail-fast: street, location,
// delivery date, non-empty cart. The order date is the construction date,
// never caller input. The source cart is left untouched.
func NewOrder(cart *Cart, deliveryDate *time.Time, giftwrapping bool, street string, location *Location, policy DeliveryPolicy) (*Order, error) {
	if strings.TrimSpace(street) == "" {
		return nil, newValidationError("Street is required")
	}
	if location == nil {
		return nil, newValidationError("Location is required")
	}

	orderDate := truncateToDay(time.Now())
	if deliveryDate != nil {
		delivery := truncateToDay(*deliveryDate)
		if delivery.Before(orderDate.AddDate(0, 0, policy.MinLeadDays)) {
			return nil, newValidationError(fmt.Sprintf("Date of delivery must at least be %d days after placing order", policy.MinLeadDays))
		}
		if delivery.Weekday() == policy.BlockedWeekday {
			return nil, newValidationError(fmt.Sprintf("%ss are not valid delivery days", policy.BlockedWeekday))
		}
	}
	if cart.NumberOfItems() == 0 {
		return nil, newValidationError("An order requires a non empty cart")
	}

	lines := make([]OrderLine, 0, cart.NumberOfItems())
	for _, l := range cart.Lines() {
		lines = append(lines, OrderLine{
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			UnitPrice:   l.Product.Price,
			Quantity:    l.Quantity,
		})
	}

	var delivery *time.Time
	if deliveryDate != nil {
		d := truncateToDay(*deliveryDate)
		delivery = &d
	}

	return &Order{
		orderDate:    orderDate,
		deliveryDate: delivery,
		giftwrapping: giftwrapping,
		street:       strings.TrimSpace(street),
		location:     *location,
		lines:        lines,
	}, nil
}

// OrderDate is the day the order was placed.
func (o *Order) OrderDate() time.Time { return o.orderDate }

// DeliveryDate is the requested delivery day, nil when the customer has no
// preference.
func (o *Order) DeliveryDate() *time.Time {
	if o.deliveryDate == nil {
		return nil
	}
	d := *o.deliveryDate
	return &d
}

// Giftwrapping reports whether the order should be gift wrapped.
func (o *Order) Giftwrapping() bool { return o.giftwrapping }

// Street is the shipping street.
func (o *Order) Street() string { return o.street }

// Location is the shipping location.
func (o *Order) Location() Location { return o.location }

// Lines returns a copy of the order lines.
func (o *Order) Lines() []OrderLine {
	lines := make([]OrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Total sums the line subtotals using the captured prices.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
