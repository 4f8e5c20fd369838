package domain

import "time"

type (
	// Cart is the session-scoped accumulation of line items. It lives
	// only for the duration of the client session and is torn down on
	// successful submission or explicit clear.
	Cart struct {
		SessionID string
		Items     []CartItem
	}

	// CartItem is one product+quantity entry. Quantity is always >= 1
	// in stored state; the minimum is enforced at the input boundary.
	CartItem struct {
		ProductID    string
		SKU          string
		Title        string
		Manufacturer string
		UOM          string
		ImageSrc     string
		Quantity     int
	}
)

// Add merges an item into the cart: an item for an already present
// product increments its quantity instead of creating a second line.
func (c *Cart) Add(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Find returns the line for a product id, reporting whether it exists.
func (c *Cart) Find(productID string) (CartItem, bool) {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return it, true
		}
	}
	return CartItem{}, false
}

// SetQuantity replaces the quantity of an existing line.
func (c *Cart) SetQuantity(productID string, qty int) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = qty
			return true
		}
	}
	return false
}

// Remove drops the line for a product id, reporting whether it existed.
func (c *Cart) Remove(productID string) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Empty() bool { return len(c.Items) == 0 }

type (
	// Order is a submitted cart. Orders are only ever appended to the
	// backing store, never mutated.
	Order struct {
		ID            string
		CustomerEmail string
		SubmittedAt   time.Time
		Lines         []OrderLine
	}

	OrderLine struct {
		ProductID    string
		SKU          string
		Title        string
		Manufacturer string
		UOM          string
		Quantity     int
	}
)

// Session is an authenticated client session.
type Session struct {
	ID    string
	Email string
}
