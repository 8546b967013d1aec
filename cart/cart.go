// Package cart implements the service selection engine: a per-category
// collection of selected service line items with quantities, optional
// custom pricing and derived totals.
package cart

// CatalogEntry describes a service offered in one of the company's
// catalogs. Entries are static and read-only; user selections copy the
// fields they need so later catalog changes never affect an open cart.
type CatalogEntry struct {
	ID               string   `json:"id"`
	Label            string   `json:"label"`
	Description      string   `json:"description"`
	Price            float64  `json:"price"`
	HasVariablePrice bool     `json:"hasVariablePrice"`
	MinPrice         *float64 `json:"minPrice,omitempty"`
	Category         string   `json:"category"`
	EstimatedTime    string   `json:"estimatedTime,omitempty"`
	Frequency        []string `json:"frequency,omitempty"`
	Includes         []string `json:"includes,omitempty"`
}

// SelectedService is one line in a cart. Price and MinPrice are copied
// from the catalog at selection time. CustomPrice is nil until the user
// overrides the price; a set value has already been clamped to MinPrice.
type SelectedService struct {
	ID               string   `json:"id"`
	Label            string   `json:"label"`
	Price            float64  `json:"price"`
	Quantity         int      `json:"quantity"`
	HasVariablePrice bool     `json:"hasVariablePrice"`
	CustomPrice      *float64 `json:"customPrice,omitempty"`
	MinPrice         *float64 `json:"minPrice,omitempty"`
	Category         string   `json:"category"`
}

// UnitPrice returns the effective unit price: the custom override when
// one has been set, the base price otherwise.
func (s SelectedService) UnitPrice() float64 {
	if s.CustomPrice != nil {
		return *s.CustomPrice
	}
	return s.Price
}

// LineTotal returns UnitPrice multiplied by quantity.
func (s SelectedService) LineTotal() float64 {
	return s.UnitPrice() * float64(s.Quantity)
}

// Cart holds the services selected from a single category.
type Cart struct {
	Items []SelectedService `json:"items"`
}

// Toggle flips the selection state of a catalog entry. If the entry is
// already in the cart it is removed, along with any quantity or custom
// price edits. Otherwise it is appended with quantity 1; variable-price
// entries start at MinPrice when one is defined, else at the base price.
// Returns true when the entry ended up selected.
func (c *Cart) Toggle(entry CatalogEntry) bool {
	if c.Remove(entry.ID) {
		return false
	}

	item := SelectedService{
		ID:               entry.ID,
		Label:            entry.Label,
		Price:            entry.Price,
		Quantity:         1,
		HasVariablePrice: entry.HasVariablePrice,
		MinPrice:         entry.MinPrice,
		Category:         entry.Category,
	}
	if entry.HasVariablePrice {
		initial := entry.Price
		if entry.MinPrice != nil {
			initial = *entry.MinPrice
		}
		item.CustomPrice = &initial
	}
	c.Items = append(c.Items, item)
	return true
}

// UpdateQuantity sets the quantity of an item. Quantities below 1 are
// ignored, as are ids not present in the cart.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// UpdateCustomPrice sets the price override of a variable-price item,
// clamped to the item's minimum price (or zero when none was defined).
// No upper bound is enforced. Fixed-price items are left untouched.
func (c *Cart) UpdateCustomPrice(id string, price float64) {
	for i := range c.Items {
		if c.Items[i].ID != id {
			continue
		}
		if !c.Items[i].HasVariablePrice {
			return
		}
		floor := 0.0
		if c.Items[i].MinPrice != nil {
			floor = *c.Items[i].MinPrice
		}
		if price < floor {
			price = floor
		}
		c.Items[i].CustomPrice = &price
		return
	}
}

// Remove deletes the item with the given id, reporting whether it was
// present.
func (c *Cart) Remove(id string) bool {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every item.
func (c *Cart) Clear() {
	c.Items = nil
}

// Contains reports whether an entry with the given id is selected.
func (c *Cart) Contains(id string) bool {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return true
		}
	}
	return false
}

// Total derives the cart total from current state on every call; it is
// never cached.
func (c *Cart) Total() float64 {
	var total float64
	for i := range c.Items {
		total += c.Items[i].LineTotal()
	}
	return total
}
