package entities

import "github.com/google/uuid"

// CartItem is owned by its cart. Quantity is always >= 1,
// lines that drop to zero are removed instead.
type CartItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// Cart is the mutable per-user item collection. Each user has
// at most one cart; conversion to an order empties it but never
// destroys it.
type Cart struct {
	CartID uuid.UUID
	UserID uuid.UUID
	Items  []CartItem
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// AddItem accumulates quantity onto an existing line for the same
// product or appends a new line.
func (c *Cart) AddItem(productID uuid.UUID, quantity int) {
	for i, it := range c.Items {
		if it.ProductID == productID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: quantity})
}

// RemoveItem drops the line for the product. Removing an absent
// product is a no-op.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	for i, it := range c.Items {
		if it.ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetItemQuantity sets the absolute quantity for a product line.
// A quantity of zero or less removes the line.
func (c *Cart) SetItemQuantity(productID uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i, it := range c.Items {
		if it.ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: quantity})
}

func (c *Cart) Clear() {
	c.Items = nil
}
